package storage

import (
	"slices"
	"sync"
)

// Memory is a volatile progress store, used when no database is configured
// or the database cannot be opened.
type Memory struct {
	mu       sync.Mutex
	high     int
	unlocked []int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadHighScore returns the best score saved in this process.
func (m *Memory) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high, nil
}

// SaveHighScore stores score.
func (m *Memory) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.high = score
	return nil
}

// LoadUnlockedLevels returns a copy of the unlocked ids.
func (m *Memory) LoadUnlockedLevels() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.unlocked), nil
}

// SaveUnlockedLevels replaces the unlocked ids.
func (m *Memory) SaveUnlockedLevels(ids []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unlocked = slices.Clone(ids)
	return nil
}
