// Package snake implements the dungeon snake simulation: a tick-driven engine
// with ten campaign levels, moving obstacles and persisted progress.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dungeon-snake/internal/config"
)

// Level is an immutable difficulty configuration.
type Level struct {
	ID            int
	Name          string
	Description   string
	ObstacleCount int
	ObstacleSpeed float64 // 0 = static obstacles
	FoodCount     int     // Food needed to clear the level
	InitialSpeed  float64 // Ticks per second at the start of a run
	MaxSpeed      float64
}

// Catalog is the ordered, read-only level table. Ids run 1..n without gaps
// and the successor of a level is the next entry.
type Catalog struct {
	levels []Level
}

// NewCatalog builds a catalog from configured levels.
func NewCatalog(levels []config.LevelConfig) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, errors.New("snake: catalog needs at least one level")
	}

	c := &Catalog{levels: make([]Level, len(levels))}
	for i, l := range levels {
		if l.ID != i+1 {
			return nil, fmt.Errorf("snake: level at position %d has id %d", i+1, l.ID)
		}
		c.levels[i] = Level{
			ID:            l.ID,
			Name:          l.Name,
			Description:   l.Description,
			ObstacleCount: l.ObstacleCount,
			ObstacleSpeed: l.ObstacleSpeed,
			FoodCount:     l.FoodCount,
			InitialSpeed:  l.InitialSpeed,
			MaxSpeed:      l.MaxSpeed,
		}
	}
	return c, nil
}

// DefaultCatalog returns the ten reference levels.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(config.DefaultSnakeConfig().Levels)
	if err != nil {
		panic(err) // built-in table is always well formed
	}
	return c
}

// Level returns the level with the given id.
func (c *Catalog) Level(id int) (Level, bool) {
	if id < 1 || id > len(c.levels) {
		return Level{}, false
	}
	return c.levels[id-1], true
}

// Next returns the successor of the level with the given id.
func (c *Catalog) Next(id int) (Level, bool) {
	if _, ok := c.Level(id); !ok {
		return Level{}, false
	}
	return c.Level(id + 1)
}

// First returns the first level.
func (c *Catalog) First() Level {
	return c.levels[0]
}

// All returns a copy of every level in order.
func (c *Catalog) All() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}
