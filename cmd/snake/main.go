// snake is a dungeon-crawling snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play, optionally starting on an unlocked level
//	snake levels             - List levels and which are unlocked
//	snake progress           - Show or reset the saved progress
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path> - Custom snake.yaml
//	--db <path>     - Progress database (default: ~/.arcade/snake.db)
//	--seed <value>  - RNG seed for reproducible boards
//	--fps <rate>    - Render frame rate (default: 30)
//	--log <path>    - Write logs to a file
//	--debug         - Verbose logging
//	--mute          - Start with sound off
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagSeed    int64
	flagFPS     int
	flagLogPath string
	flagDebug   bool
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Dungeon Snake - guide a snake through ten dungeon levels",
	Long: `Dungeon Snake is a terminal snake game on a 20x20 dungeon floor.
Eat enough food to clear a level and unlock the next one; obstacles
start roaming from level 2 on. Your high score and unlocked levels
are saved between sessions.

Available commands:
  play      - Play (default)
  levels    - List levels and lock status
  progress  - Show or reset saved progress
  config    - Print the effective configuration

Examples:
  snake
  snake play --level 3
  snake levels
  snake progress --reset
  snake config > ~/.arcade/configs/snake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/snake.db", "Path to progress database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Render frame rate")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(configCmd)
}
