package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying the
search order (--config, ~/.arcade/configs/snake.yaml, ./configs/snake.yaml,
built-in defaults). Redirect it to a file to start customizing.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
