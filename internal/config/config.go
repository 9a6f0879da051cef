// Package config provides YAML-based game configuration loading for the
// snake engine: grid geometry, engine tuning and the level table.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dungeon-snake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig    `yaml:"grid"`
	Engine EngineConfig  `yaml:"engine"`
	Levels []LevelConfig `yaml:"levels"`
}

// GridConfig defines the fixed square play field.
type GridConfig struct {
	Size         int `yaml:"size"`
	SpawnX       int `yaml:"spawn_x"`
	SpawnY       int `yaml:"spawn_y"`
	SafetyRadius int `yaml:"safety_radius"` // Cells around spawn kept free of obstacles
}

// EngineConfig defines tuning knobs of the simulation.
type EngineConfig struct {
	SpeedUpFactor     float64 `yaml:"speed_up_factor"`    // Fraction of initial speed added per food
	PlacementAttempts int     `yaml:"placement_attempts"` // Random tries per obstacle before giving up
	StartDirection    string  `yaml:"start_direction"`
}

// LevelConfig defines one entry of the level table.
type LevelConfig struct {
	ID            int     `yaml:"id"`
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	ObstacleCount int     `yaml:"obstacle_count"`
	ObstacleSpeed float64 `yaml:"obstacle_speed"` // 0 = static
	FoodCount     int     `yaml:"food_count"`     // Food needed to clear the level
	InitialSpeed  float64 `yaml:"initial_speed"`  // Ticks per second
	MaxSpeed      float64 `yaml:"max_speed"`
}

// Spawn returns the snake's spawn cell.
func (g GridConfig) Spawn() core.Position {
	return core.Position{X: g.SpawnX, Y: g.SpawnY}
}

// Direction returns the parsed start direction, defaulting to right.
func (e EngineConfig) Direction() core.Direction {
	d, _ := core.ParseDirection(e.StartDirection)
	return d
}

// Validate checks the configuration for values the engine cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Grid.Size < 5 {
		return fmt.Errorf("config: grid size %d is too small (minimum 5)", c.Grid.Size)
	}
	if !c.Grid.Spawn().InBounds(c.Grid.Size) {
		return fmt.Errorf("config: spawn (%d, %d) is outside the %dx%d grid",
			c.Grid.SpawnX, c.Grid.SpawnY, c.Grid.Size, c.Grid.Size)
	}
	if c.Grid.SafetyRadius < 0 {
		return errors.New("config: safety radius must not be negative")
	}
	if c.Engine.SpeedUpFactor < 0 {
		return errors.New("config: speed up factor must not be negative")
	}
	if c.Engine.PlacementAttempts <= 0 {
		return errors.New("config: placement attempts must be positive")
	}
	if c.Engine.StartDirection != "" {
		if _, ok := core.ParseDirection(c.Engine.StartDirection); !ok {
			return fmt.Errorf("config: unknown start direction %q", c.Engine.StartDirection)
		}
	}
	if len(c.Levels) == 0 {
		return errors.New("config: at least one level is required")
	}

	for i, lvl := range c.Levels {
		if lvl.ID != i+1 {
			return fmt.Errorf("config: level %d has id %d, ids must run 1..n without gaps", i+1, lvl.ID)
		}
		if lvl.FoodCount <= 0 {
			return fmt.Errorf("config: level %d: food count must be positive", lvl.ID)
		}
		if lvl.ObstacleCount < 0 {
			return fmt.Errorf("config: level %d: obstacle count must not be negative", lvl.ID)
		}
		if lvl.InitialSpeed <= 0 {
			return fmt.Errorf("config: level %d: initial speed must be positive", lvl.ID)
		}
		if lvl.MaxSpeed < lvl.InitialSpeed {
			return fmt.Errorf("config: level %d: max speed %.2f is below initial speed %.2f",
				lvl.ID, lvl.MaxSpeed, lvl.InitialSpeed)
		}
	}
	return nil
}
