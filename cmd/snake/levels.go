package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows every level of the dungeon with its difficulty and whether it is unlocked.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	_, catalog, err := loadConfig()
	if err != nil {
		return err
	}

	store := openProgress(logger)
	defer store.Close()

	unlocked, err := store.LoadUnlockedLevels()
	if err != nil {
		logger.Warn("cannot read unlocked levels", "err", err)
	}
	levels := catalog.All()

	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %-9s  %-4s  %-9s  %s\n", "#", maxNameLen, "Name", "Obstacles", "Food", "Speed", "Status")
	fmt.Printf("  %-3s  %-*s  %-9s  %-4s  %-9s  %s\n", "-", maxNameLen, "----", "---------", "----", "-----", "------")

	for _, l := range levels {
		status := "locked"
		if l.ID == 1 || slices.Contains(unlocked, l.ID) {
			status = "unlocked"
		}
		moving := ""
		if l.ObstacleSpeed > 0 {
			moving = "~"
		}
		fmt.Printf("  %-3d  %-*s  %-9s  %-4d  %-9s  %s\n",
			l.ID, maxNameLen, l.Name,
			fmt.Sprintf("%d%s", l.ObstacleCount, moving),
			l.FoodCount,
			fmt.Sprintf("%g-%g", l.InitialSpeed, l.MaxSpeed),
			status)
	}

	fmt.Println()
	fmt.Println("~ marks roaming obstacles. Run 'snake play --level <n>' to start on an unlocked level.")
	return nil
}
