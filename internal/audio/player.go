// Package audio plays procedurally generated cues for the snake engine
// through oto: an eat chirp, a crash chord and a looping dungeon drone.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/dungeon-snake/internal/games/snake"
)

const (
	sfxVolume   = 0.58
	musicVolume = 0.14
)

// Player is the oto-backed feedback sink. Every method returns immediately;
// one-shot cues play on their own goroutine. A zero Player is silent.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	logger *log.Logger

	eat   []byte
	crash []byte

	mu    sync.Mutex
	muted bool
	music oto.Player
}

// Ensure Player implements snake.Feedback
var _ snake.Feedback = (*Player)(nil)

// Open creates the audio context. The device may take a moment to become
// ready; cues requested before then are dropped.
func Open(logger *log.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		logger: logger,
		eat:    genEat(),
		crash:  genCrash(),
	}, nil
}

// FoodConsumed plays the eat chirp.
func (p *Player) FoodConsumed() {
	p.playOnce(p.eat)
}

// Collision plays the crash chord.
func (p *Player) Collision() {
	p.playOnce(p.crash)
}

// StartMusic starts the drone loop unless muted or already running.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.music != nil || !p.isReady() {
		return
	}
	p.music = p.ctx.NewPlayer(&drone{})
	p.music.SetVolume(musicVolume)
	p.music.Play()
	p.logger.Debug("music started")
}

// StopMusic stops the drone loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	if err := p.music.Close(); err != nil {
		p.logger.Debug("close music player", "err", err)
	}
	p.music = nil
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetMuted suppresses or re-enables cues. Muting does not stop running
// music; the engine does that.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

func (p *Player) isReady() bool {
	if p.ctx == nil {
		return false
	}
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

func (p *Player) playOnce(sample []byte) {
	p.mu.Lock()
	skip := p.muted || !p.isReady()
	p.mu.Unlock()
	if skip || len(sample) == 0 {
		return
	}

	go func() {
		player := p.ctx.NewPlayer(&pcm{data: sample})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}
