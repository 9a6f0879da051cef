package loop

import (
	"sync"
	"time"
)

// Manual is a scheduler that only runs when told to. It records how it was
// armed so deterministic callers (tests, headless runs) can inspect it.
type Manual struct {
	mu     sync.Mutex
	fn     func()
	period time.Duration
	arms   int
	stops  int
}

// NewManual creates an idle Manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Every replaces the armed function.
func (m *Manual) Every(period time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fn = fn
	m.period = period
	m.arms++
}

// Stop disarms the scheduler.
func (m *Manual) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fn != nil {
		m.stops++
	}
	m.fn = nil
	m.period = 0
}

// Fire runs the armed function once. Returns false if nothing is armed.
func (m *Manual) Fire() bool {
	m.mu.Lock()
	fn := m.fn
	m.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// FireN fires up to n times, stopping early once the scheduler is disarmed.
// Returns the number of times the function ran.
func (m *Manual) FireN(n int) int {
	fired := 0
	for i := 0; i < n; i++ {
		if !m.Fire() {
			break
		}
		fired++
	}
	return fired
}

// Active reports whether a function is armed.
func (m *Manual) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fn != nil
}

// Period returns the period of the armed schedule, or 0.
func (m *Manual) Period() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.period
}

// Arms returns how many times Every was called.
func (m *Manual) Arms() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.arms
}

// Stops returns how many times an armed schedule was stopped.
func (m *Manual) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}
