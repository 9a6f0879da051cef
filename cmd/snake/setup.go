package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dungeon-snake/internal/config"
	"github.com/vovakirdan/dungeon-snake/internal/games/snake"
	"github.com/vovakirdan/dungeon-snake/internal/storage"
)

// progressStore is what the commands need from a store.
type progressStore interface {
	snake.ProgressStore
	Close() error
}

// memoryStore adapts storage.Memory to progressStore.
type memoryStore struct {
	*storage.Memory
}

func (memoryStore) Close() error { return nil }

// newLogger builds the session logger. The TUI owns the terminal, so logs go
// to --log or nowhere. The returned closer releases the log file.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadConfig loads the snake configuration and builds its level catalog.
func loadConfig() (config.SnakeConfig, *snake.Catalog, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	catalog, err := snake.NewCatalog(cfg.Levels)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, catalog, nil
}

// openProgress opens the progress database. When that fails the game still
// runs with progress kept in memory.
func openProgress(logger *log.Logger) progressStore {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("progress database unavailable, progress will not be saved", "path", flagDBPath, "err", err)
		return memoryStore{storage.NewMemory()}
	}
	logger.Debug("progress database opened", "path", store.Path())
	return store
}
