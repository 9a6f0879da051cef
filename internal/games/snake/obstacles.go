package snake

import (
	"math"

	"github.com/vovakirdan/dungeon-snake/internal/core"
)

// NeverMoves is the move frequency of obstacles on static levels.
const NeverMoves = math.MaxInt

// Obstacle is a blocking cell that may roam the grid.
type Obstacle struct {
	Pos           core.Position
	Dir           core.Direction
	MoveCounter   int // Ticks since the last move attempt
	MoveFrequency int // Ticks required before the next move attempt
}

// MoveFrequency maps a level's obstacle speed to ticks between move
// attempts. Higher speed means more frequent moves, never faster than every
// second tick; speed <= 0 never moves.
func MoveFrequency(speed float64) int {
	if speed <= 0 {
		return NeverMoves
	}
	return max(2, int(math.Floor(20/speed)))
}

// positions returns the cells occupied by the obstacles.
func positions(obstacles []Obstacle) []core.Position {
	out := make([]core.Position, len(obstacles))
	for i, o := range obstacles {
		out[i] = o.Pos
	}
	return out
}

// obstacleField holds what obstacle generation and motion must avoid.
type obstacleField struct {
	size  int
	rng   core.Rand
	snake []core.Position
	food  core.Position
}

// generate places up to count obstacles at random cells. Each obstacle gets
// attempts tries; candidates inside the safety zone or on the snake, the
// food or an earlier obstacle are rejected. An obstacle that runs out of
// tries is skipped, so fewer than count may be returned.
func (f obstacleField) generate(count, attempts int, safety core.Rect, freq int) []Obstacle {
	placed := make([]Obstacle, 0, count)
	taken := make([]core.Position, 0, count)

	for i := 0; i < count; i++ {
		for i := 0; i < attempts; i++ {
			p := core.Position{X: f.rng.Intn(f.size), Y: f.rng.Intn(f.size)}
			if safety.ContainsPos(p) || p == f.food || core.Occupied(p, f.snake, taken) {
				continue
			}

			placed = append(placed, Obstacle{
				Pos:           p,
				Dir:           core.RandomDirection(f.rng),
				MoveFrequency: freq,
			})
			taken = append(taken, p)
			break
		}
	}
	return placed
}

// advance runs one tick of obstacle motion and returns the new obstacles.
//
// Every obstacle counts the tick; when its counter reaches the move
// frequency the counter resets and it tries to step one cell along its
// direction, wrapping at the grid edges. The step is refused if the target
// holds the snake, the food, another obstacle's pre-tick cell, or a cell an
// earlier obstacle already moved into this tick. A refused obstacle stays put
// and picks a new random direction.
func (f obstacleField) advance(obstacles []Obstacle) []Obstacle {
	before := positions(obstacles)
	next := make([]Obstacle, len(obstacles))
	copy(next, obstacles)
	claimed := make([]core.Position, 0, len(obstacles))

	for i := range next {
		o := &next[i]
		o.MoveCounter++
		if o.MoveCounter < o.MoveFrequency {
			continue
		}
		o.MoveCounter = 0

		target := o.Pos.StepWrapped(o.Dir, f.size)
		if f.blocked(target, i, before, claimed) {
			o.Dir = core.RandomDirection(f.rng)
			continue
		}
		o.Pos = target
		claimed = append(claimed, target)
	}
	return next
}

func (f obstacleField) blocked(target core.Position, self int, before, claimed []core.Position) bool {
	if target == f.food || core.Occupied(target, f.snake, claimed) {
		return true
	}
	for j, p := range before {
		if j != self && p == target {
			return true
		}
	}
	return false
}
