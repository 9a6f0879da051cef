package snake

import "github.com/vovakirdan/dungeon-snake/internal/core"

// Snapshot is a consistent copy of the engine state for rendering and
// determinism tests. It shares no memory with the engine.
type Snapshot struct {
	Tick         uint64
	State        State
	Level        Level
	HasNextLevel bool
	GridSize     int
	Snake        []core.Position // Head at index 0
	Direction    core.Direction
	Pending      core.Direction
	Food         core.Position // core.Nowhere when the board is full
	Obstacles    []Obstacle
	Score        int
	HighScore    int
	FoodEaten    int
	Speed        float64 // Ticks per second
	Unlocked     []int
	LoopActive   bool
	Muted        bool
}

// Head returns the snake's head cell.
func (s Snapshot) Head() core.Position {
	return s.Snake[0]
}

// FoodLeft returns how much food remains to clear the level.
func (s Snapshot) FoodLeft() int {
	return max(s.Level.FoodCount-s.FoodEaten, 0)
}

// IsUnlocked reports whether id is in the unlocked set.
func (s Snapshot) IsUnlocked(id int) bool {
	for _, u := range s.Unlocked {
		if u == id {
			return true
		}
	}
	return false
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, hasNext := e.catalog.Next(e.level.ID)
	snake := make([]core.Position, len(e.snake))
	copy(snake, e.snake)
	obstacles := make([]Obstacle, len(e.obstacles))
	copy(obstacles, e.obstacles)

	return Snapshot{
		Tick:         e.tick,
		State:        e.state,
		Level:        e.level,
		HasNextLevel: hasNext,
		GridSize:     e.settings.GridSize,
		Snake:        snake,
		Direction:    e.direction,
		Pending:      e.pending,
		Food:         e.food,
		Obstacles:    obstacles,
		Score:        e.score,
		HighScore:    e.highScore,
		FoodEaten:    e.foodEaten,
		Speed:        e.speed,
		Unlocked:     e.unlockedIDs(),
		LoopActive:   e.looping,
		Muted:        e.fx.Muted(),
	}
}
