// Package loop provides schedulers that run a function periodically.
// A scheduler runs at most one schedule at a time: arming it again replaces
// the previous schedule, and Stop cancels whatever is armed.
package loop

import (
	"sync"
	"time"
)

// Ticker runs the armed function on a goroutine driven by time.Ticker.
// Every and Stop never block, so they may be called from inside the armed
// function itself.
type Ticker struct {
	mu   sync.Mutex
	stop chan struct{}
}

// NewTicker creates an idle Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Every cancels any running schedule and starts calling fn once per period.
func (t *Ticker) Every(period time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	if period <= 0 {
		return
	}

	stop := make(chan struct{})
	t.stop = stop
	go run(period, fn, stop)
}

// Stop cancels the running schedule, if any.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Active reports whether a schedule is armed.
func (t *Ticker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *Ticker) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func run(period time.Duration, fn func(), stop <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// A stop may race with a pending tick; prefer the stop.
			select {
			case <-stop:
				return
			default:
			}
			fn()
		}
	}
}
