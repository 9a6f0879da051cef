package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dungeon-snake/internal/audio"
	"github.com/vovakirdan/dungeon-snake/internal/core"
	"github.com/vovakirdan/dungeon-snake/internal/games/snake"
	"github.com/vovakirdan/dungeon-snake/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Arrows/WASD  - Turn
  Space        - Start, pause, resume, retry
  Esc/P        - Pause/resume
  L            - Level select
  N            - Next level (after clearing one)
  R            - Restart the level
  M            - Toggle sound
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --level 4
  snake play --seed 42 --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start on this level if it is unlocked")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, catalog, err := loadConfig()
	if err != nil {
		return err
	}

	store := openProgress(logger)
	defer store.Close()

	opts := []snake.Option{
		snake.WithSettings(snake.SettingsFromConfig(cfg)),
		snake.WithLogger(logger),
	}
	if flagSeed != 0 {
		opts = append(opts, snake.WithSeed(flagSeed))
	}

	player, err := audio.Open(logger)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
	} else {
		player.SetMuted(flagMute)
		opts = append(opts, snake.WithFeedback(player))
	}

	engine := snake.New(catalog, store, opts...)
	defer engine.Close()

	if flagLevel != 0 {
		if !engine.IsLevelUnlocked(flagLevel) {
			return fmt.Errorf("level %d is locked (unlocked: %v)", flagLevel, engine.UnlockedLevels())
		}
		engine.SetLevel(flagLevel)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.FrameRate = flagFPS

	logger.Info("session start", "level", engine.Snapshot().Level.ID, "seed", flagSeed)
	if err := tui.Run(engine, rc); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	snap := engine.Snapshot()
	logger.Info("session end", "high_score", snap.HighScore, "unlocked", snap.Unlocked)
	return nil
}
