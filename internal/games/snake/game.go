package snake

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dungeon-snake/internal/config"
	"github.com/vovakirdan/dungeon-snake/internal/core"
	"github.com/vovakirdan/dungeon-snake/internal/loop"
)

// State is the phase of the engine's state machine.
type State string

const (
	StateIdle          State = "idle"
	StatePlaying       State = "playing"
	StatePaused        State = "paused"
	StateGameOver      State = "game_over"
	StateLevelComplete State = "level_complete"
	StateLevelSelect   State = "level_select"
)

// Scheduler drives the game loop. Every replaces any running schedule and
// Stop cancels it; neither may block waiting for a callback to finish.
type Scheduler interface {
	Every(period time.Duration, fn func())
	Stop()
}

// Settings are the board and engine tunables shared by every level.
type Settings struct {
	GridSize          int
	Spawn             core.Position
	SafetyRadius      int     // Obstacle-free radius around the spawn cell
	SpeedUpFactor     float64 // Fraction of the level's initial speed added per food
	PlacementAttempts int     // Random tries per obstacle
	StartDirection    core.Direction
}

// SettingsFromConfig extracts engine settings from a loaded configuration.
func SettingsFromConfig(cfg config.SnakeConfig) Settings {
	return Settings{
		GridSize:          cfg.Grid.Size,
		Spawn:             cfg.Grid.Spawn(),
		SafetyRadius:      cfg.Grid.SafetyRadius,
		SpeedUpFactor:     cfg.Engine.SpeedUpFactor,
		PlacementAttempts: cfg.Engine.PlacementAttempts,
		StartDirection:    cfg.Engine.Direction(),
	}
}

// DefaultSettings returns the reference 20×20 board settings.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultSnakeConfig())
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler replaces the wall-clock ticker.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithRand sets the random source for food and obstacle placement.
func WithRand(r core.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed seeds a private math/rand source.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithFeedback wires the audio cue sink.
func WithFeedback(f Feedback) Option {
	return func(e *Engine) { e.fx = f }
}

// WithLogger sets the logger for state transitions and storage warnings.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithSettings overrides the board settings.
func WithSettings(s Settings) Option {
	return func(e *Engine) { e.settings = s }
}

// Engine is the snake game state machine. All methods are safe for
// concurrent use; the scheduler callback and UI commands serialize on mu.
type Engine struct {
	mu sync.Mutex

	catalog  *Catalog
	store    ProgressStore
	sched    Scheduler
	rng      core.Rand
	fx       Feedback
	logger   *log.Logger
	settings Settings

	state     State
	level     Level
	tick      uint64
	snake     []core.Position // Head at index 0
	direction core.Direction
	pending   core.Direction // Applied at the start of the next tick
	food      core.Position
	obstacles []Obstacle
	score     int
	foodEaten int // Food eaten in the current run
	speed     float64
	highScore int
	unlocked  map[int]bool

	loopID  uint64 // Generation of the armed schedule; stale callbacks are dropped
	looping bool
}

// New creates an engine on the catalog's first level, loading progress from
// store. A nil store keeps progress in memory only.
func New(catalog *Catalog, store ProgressStore, opts ...Option) *Engine {
	if store == nil {
		store = noProgress{}
	}
	e := &Engine{
		catalog:  catalog,
		store:    store,
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sched == nil {
		e.sched = loop.NewTicker()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.fx == nil {
		e.fx = &quietFeedback{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.highScore = e.loadHighScore()
	e.unlocked = e.loadUnlocked()
	e.level = catalog.First()
	e.resetRun()
	e.state = StateIdle

	e.logger.Debug("engine ready", "level", e.level.ID, "high_score", e.highScore, "unlocked", e.unlockedIDs())
	return e
}

// Start begins play. From game over or level complete it first resets the
// run; from paused it behaves like Resume. Ignored while playing or in the
// level selector.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case StateIdle, StatePaused:
	case StateGameOver, StateLevelComplete:
		e.resetRun()
	default:
		return
	}
	e.play()
}

// Pause suspends a running game. Ignored unless playing.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePlaying {
		return
	}
	e.disarm()
	e.fx.StopMusic()
	e.setState(StatePaused)
}

// Resume continues a paused game. Ignored unless paused.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePaused {
		return
	}
	e.play()
}

// Reset restarts the current level and returns to idle.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.disarm()
	e.resetRun()
	e.setState(StateIdle)
}

// SetLevel switches to the level with the given id and resets the run.
// Unknown ids are ignored. Locked levels are accepted; the UI gates them.
func (e *Engine) SetLevel(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.setLevel(id)
}

// ShowLevelSelect stops play and opens the level selector.
func (e *Engine) ShowLevelSelect() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.disarm()
	e.setState(StateLevelSelect)
}

// RequestTurn buffers a direction for the next tick. A turn straight back
// into the current direction is rejected; the last accepted request wins.
func (e *Engine) RequestTurn(d core.Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if d == e.direction.Opposite() {
		return
	}
	e.pending = d
}

// NextLevel advances to the successor of a completed level.
// Ignored unless the level is complete and a successor exists.
func (e *Engine) NextLevel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateLevelComplete {
		return
	}
	if next, ok := e.catalog.Next(e.level.ID); ok {
		e.setLevel(next.ID)
	}
}

// Replay restarts the current level in idle.
func (e *Engine) Replay() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.setLevel(e.level.ID)
}

// IsLevelUnlocked reports whether the level id may be selected.
func (e *Engine) IsLevelUnlocked(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.unlocked[id]
}

// UnlockedLevels returns the unlocked level ids in ascending order.
func (e *Engine) UnlockedLevels() []int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.unlockedIDs()
}

// Catalog returns the level table the engine plays.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// ToggleMute flips the audio mute flag and returns the new value. Music is
// started or stopped to match when a game is running.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	muted := !e.fx.Muted()
	e.fx.SetMuted(muted)
	switch {
	case muted:
		e.fx.StopMusic()
	case e.state == StatePlaying:
		e.fx.StartMusic()
	}
	return muted
}

// Close stops the loop and the music. The engine must not be used afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.disarm()
	e.fx.StopMusic()
}

// play enters the playing state and arms the loop.
func (e *Engine) play() {
	if !e.fx.Muted() {
		e.fx.StartMusic()
	}
	e.setState(StatePlaying)
	e.arm()
}

func (e *Engine) setLevel(id int) {
	lvl, ok := e.catalog.Level(id)
	if !ok {
		e.logger.Debug("unknown level ignored", "level", id)
		return
	}
	e.disarm()
	e.level = lvl
	e.resetRun()
	e.setState(StateIdle)
	e.logger.Info("level selected", "level", lvl.ID, "name", lvl.Name)
}

// resetRun puts the snake back on the spawn cell with a fresh board for the
// current level. Food is placed before obstacles so obstacles avoid it.
func (e *Engine) resetRun() {
	e.snake = []core.Position{e.settings.Spawn}
	e.direction = e.settings.StartDirection
	e.pending = e.settings.StartDirection
	e.score = 0
	e.foodEaten = 0
	e.speed = e.level.InitialSpeed
	e.tick = 0

	e.obstacles = nil
	e.food = core.Nowhere
	e.placeFood()

	e.obstacles = e.field().generate(
		e.level.ObstacleCount,
		e.settings.PlacementAttempts,
		core.Around(e.settings.Spawn, e.settings.SafetyRadius),
		MoveFrequency(e.level.ObstacleSpeed),
	)
	if len(e.obstacles) < e.level.ObstacleCount {
		e.logger.Debug("placed fewer obstacles than requested",
			"level", e.level.ID, "placed", len(e.obstacles), "want", e.level.ObstacleCount)
	}
}

// arm (re)starts the loop at the current speed under a new generation.
func (e *Engine) arm() {
	e.loopID++
	id := e.loopID
	e.looping = true
	e.sched.Every(tickPeriod(e.speed), func() { e.onTick(id) })
}

// disarm cancels the loop. Any callback already in flight becomes stale.
func (e *Engine) disarm() {
	e.loopID++
	e.looping = false
	e.sched.Stop()
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.logger.Debug("state", "from", e.state, "to", s)
	e.state = s
}

// tickPeriod converts ticks per second to the loop period.
func tickPeriod(speed float64) time.Duration {
	return time.Duration(float64(time.Second) / speed)
}

func (e *Engine) field() obstacleField {
	return obstacleField{
		size:  e.settings.GridSize,
		rng:   e.rng,
		snake: e.snake,
		food:  e.food,
	}
}
