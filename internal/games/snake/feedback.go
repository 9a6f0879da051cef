package snake

// Feedback receives fire-and-forget sensory cues from the engine.
// Implementations must not block and must not call back into the engine:
// every method is invoked while the engine holds its lock.
type Feedback interface {
	FoodConsumed()
	Collision()
	StartMusic()
	StopMusic()
	Muted() bool
	SetMuted(muted bool)
}

// quietFeedback is used when no audio backend is wired. It only remembers
// the mute flag.
type quietFeedback struct {
	muted bool
}

func (q *quietFeedback) FoodConsumed()       {}
func (q *quietFeedback) Collision()          {}
func (q *quietFeedback) StartMusic()         {}
func (q *quietFeedback) StopMusic()          {}
func (q *quietFeedback) Muted() bool         { return q.muted }
func (q *quietFeedback) SetMuted(muted bool) { q.muted = muted }
