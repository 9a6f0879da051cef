package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the reference configuration: a 20x20 grid and
// the ten campaign levels.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:         20,
			SpawnX:       5,
			SpawnY:       5,
			SafetyRadius: 1,
		},
		Engine: EngineConfig{
			SpeedUpFactor:     0.05,
			PlacementAttempts: 100,
			StartDirection:    "right",
		},
		Levels: []LevelConfig{
			{ID: 1, Name: "Novice Crawler", Description: "Static obstacles, perfect for beginners",
				ObstacleCount: 5, ObstacleSpeed: 0, FoodCount: 10, InitialSpeed: 8, MaxSpeed: 16},
			{ID: 2, Name: "Apprentice", Description: "Obstacles with slight movement",
				ObstacleCount: 7, ObstacleSpeed: 0.2, FoodCount: 12, InitialSpeed: 8, MaxSpeed: 16},
			{ID: 3, Name: "Slither Master", Description: "More obstacles and faster movement",
				ObstacleCount: 8, ObstacleSpeed: 0.4, FoodCount: 15, InitialSpeed: 8, MaxSpeed: 16},
			{ID: 4, Name: "Dungeon Explorer", Description: "Navigate through a crowded dungeon",
				ObstacleCount: 10, ObstacleSpeed: 0.6, FoodCount: 18, InitialSpeed: 9, MaxSpeed: 17},
			{ID: 5, Name: "Shadow Serpent", Description: "Faster obstacles and increased challenge",
				ObstacleCount: 12, ObstacleSpeed: 0.8, FoodCount: 20, InitialSpeed: 9, MaxSpeed: 17},
			{ID: 6, Name: "Venom Stalker", Description: "Obstacles now move at your speed",
				ObstacleCount: 12, ObstacleSpeed: 1.0, FoodCount: 22, InitialSpeed: 9, MaxSpeed: 18},
			{ID: 7, Name: "Dungeon Lord", Description: "A true test of your reflexes",
				ObstacleCount: 14, ObstacleSpeed: 1.2, FoodCount: 25, InitialSpeed: 10, MaxSpeed: 18},
			{ID: 8, Name: "Immortal Coil", Description: "Chaotic obstacle movements",
				ObstacleCount: 16, ObstacleSpeed: 1.5, FoodCount: 28, InitialSpeed: 10, MaxSpeed: 19},
			{ID: 9, Name: "Abyss Diver", Description: "The deep dungeon challenges your skills",
				ObstacleCount: 18, ObstacleSpeed: 1.8, FoodCount: 30, InitialSpeed: 10, MaxSpeed: 20},
			{ID: 10, Name: "Legendary Serpent", Description: "Only legends complete this level",
				ObstacleCount: 20, ObstacleSpeed: 2.0, FoodCount: 35, InitialSpeed: 11, MaxSpeed: 22},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
