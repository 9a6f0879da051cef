package snake

import (
	"github.com/vovakirdan/dungeon-snake/internal/core"
)

// collision is the reason a move ended the game.
type collision int

const (
	collisionNone collision = iota
	collisionWall
	collisionSelf
	collisionObstacle
)

func (c collision) String() string {
	switch c {
	case collisionWall:
		return "wall"
	case collisionSelf:
		return "self"
	case collisionObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// onTick is the scheduler callback for loop generation id.
func (e *Engine) onTick(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id != e.loopID || e.state != StatePlaying {
		return
	}
	e.step()
}

// step advances the simulation by one tick.
func (e *Engine) step() {
	e.tick++
	e.direction = e.pending

	if e.level.ObstacleSpeed > 0 {
		e.obstacles = e.field().advance(e.obstacles)
	}

	head := e.snake[0].Step(e.direction)
	if c := e.checkCollision(head); c != collisionNone {
		e.gameOver(c)
		return
	}

	grown := make([]core.Position, 0, len(e.snake)+1)
	grown = append(grown, head)
	grown = append(grown, e.snake...)
	e.snake = grown

	if head == e.food {
		e.eat()
		return
	}
	e.snake = e.snake[:len(e.snake)-1]
}

// checkCollision tests the candidate head against the walls, every current
// segment including the tail, and the obstacles.
func (e *Engine) checkCollision(head core.Position) collision {
	switch {
	case !head.InBounds(e.settings.GridSize):
		return collisionWall
	case core.Occupied(head, e.snake):
		return collisionSelf
	case core.Occupied(head, positions(e.obstacles)):
		return collisionObstacle
	default:
		return collisionNone
	}
}

// eat handles a head landing on food. The snake has already grown.
func (e *Engine) eat() {
	e.score++
	e.foodEaten++
	if e.score > e.highScore {
		e.highScore = e.score
		e.saveHighScore()
	}

	e.speed = core.ClampF(e.speed+e.level.InitialSpeed*e.settings.SpeedUpFactor, e.level.InitialSpeed, e.level.MaxSpeed)
	e.arm()
	e.fx.FoodConsumed()

	e.food = core.Nowhere
	e.placeFood()

	if e.foodEaten >= e.level.FoodCount {
		e.completeLevel()
	}
}

// placeFood moves the food to a random free cell. A full board leaves the
// food off-grid.
func (e *Engine) placeFood() {
	p, ok := core.RandomEmptyCell(e.settings.GridSize, e.rng, e.snake, positions(e.obstacles))
	if !ok {
		e.logger.Debug("no free cell for food", "snake_len", len(e.snake), "obstacles", len(e.obstacles))
	}
	e.food = p
}

func (e *Engine) gameOver(c collision) {
	e.disarm()
	e.fx.Collision()
	e.setState(StateGameOver)
	e.logger.Info("game over", "reason", c, "level", e.level.ID, "score", e.score, "tick", e.tick)
}

// completeLevel stops play and unlocks the successor level, if any.
func (e *Engine) completeLevel() {
	e.disarm()
	if next, ok := e.catalog.Next(e.level.ID); ok && !e.unlocked[next.ID] {
		e.unlocked[next.ID] = true
		e.saveUnlocked()
		e.logger.Info("level unlocked", "level", next.ID, "name", next.Name)
	}
	e.setState(StateLevelComplete)
	e.logger.Info("level complete", "level", e.level.ID, "score", e.score)
}
