package snake

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/dungeon-snake/internal/config"
	"github.com/vovakirdan/dungeon-snake/internal/loop"
)

var errDisk = errors.New("disk unavailable")

// memStore records every write and can be told to fail.
type memStore struct {
	high     int
	unlocked []int
	loadErr  error
	saveErr  error

	highSaves   []int
	unlockSaves [][]int
}

func (m *memStore) LoadHighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.high, nil
}

func (m *memStore) SaveHighScore(score int) error {
	m.highSaves = append(m.highSaves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.high = score
	return nil
}

func (m *memStore) LoadUnlockedLevels() ([]int, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return slices.Clone(m.unlocked), nil
}

func (m *memStore) SaveUnlockedLevels(ids []int) error {
	m.unlockSaves = append(m.unlockSaves, slices.Clone(ids))
	if m.saveErr != nil {
		return m.saveErr
	}
	m.unlocked = slices.Clone(ids)
	return nil
}

// recordingFeedback counts cues.
type recordingFeedback struct {
	eats       int
	collisions int
	starts     int
	stops      int
	muted      bool
}

func (r *recordingFeedback) FoodConsumed()       { r.eats++ }
func (r *recordingFeedback) Collision()          { r.collisions++ }
func (r *recordingFeedback) StartMusic()         { r.starts++ }
func (r *recordingFeedback) StopMusic()          { r.stops++ }
func (r *recordingFeedback) Muted() bool         { return r.muted }
func (r *recordingFeedback) SetMuted(muted bool) { r.muted = muted }

// captureScheduler keeps every armed callback so stale ones can be replayed.
type captureScheduler struct {
	fns   []func()
	stops int
}

func (c *captureScheduler) Every(_ time.Duration, fn func()) { c.fns = append(c.fns, fn) }
func (c *captureScheduler) Stop()                            { c.stops++ }

// fixedRand always answers the same index.
type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

func testLevels() []config.LevelConfig {
	return []config.LevelConfig{
		{ID: 1, Name: "Open Field", FoodCount: 10, InitialSpeed: 8, MaxSpeed: 16},
		{ID: 2, Name: "Short", FoodCount: 2, InitialSpeed: 9, MaxSpeed: 10},
		{ID: 3, Name: "Roamers", ObstacleCount: 6, ObstacleSpeed: 10, FoodCount: 5, InitialSpeed: 10, MaxSpeed: 12},
	}
}

type harness struct {
	e     *Engine
	sched *loop.Manual
	fx    *recordingFeedback
	store *memStore
}

func newHarness(t *testing.T, store *memStore, opts ...Option) *harness {
	t.Helper()

	catalog, err := NewCatalog(testLevels())
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	if store == nil {
		store = &memStore{}
	}
	h := &harness{
		sched: loop.NewManual(),
		fx:    &recordingFeedback{},
		store: store,
	}
	base := []Option{WithScheduler(h.sched), WithFeedback(h.fx), WithSeed(1)}
	h.e = New(catalog, store, append(base, opts...)...)
	return h
}
