package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-snake/internal/storage"
)

var flagReset bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved progress",
	Long: `Display the high score and unlocked levels stored in the progress database.

Examples:
  snake progress
  snake progress --reset`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the high score and lock every level but the first")
}

func runProgress(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening progress database: %w", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetProgress(); err != nil {
			return err
		}
		fmt.Println("Progress reset.")
		return nil
	}

	p, err := store.Progress()
	if err != nil {
		return err
	}

	fmt.Printf("Progress - %s\n", store.Path())
	fmt.Println()
	fmt.Printf("  High score:      %d\n", p.HighScore)

	unlocked := p.UnlockedLevels
	if len(unlocked) == 0 {
		unlocked = []int{1}
	}
	fmt.Printf("  Unlocked levels: %v\n", unlocked)
	if !p.UpdatedAt.IsZero() {
		fmt.Printf("  Last saved:      %s\n", p.UpdatedAt.Format("2006-01-02 15:04"))
	} else {
		fmt.Println()
		fmt.Println("Nothing saved yet. Run 'snake play' to start.")
	}
	return nil
}
