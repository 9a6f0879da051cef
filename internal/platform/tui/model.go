package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dungeon-snake/internal/core"
	"github.com/vovakirdan/dungeon-snake/internal/games/snake"
)

// Model is the Bubble Tea model driving one snake session.
type Model struct {
	engine    *snake.Engine
	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	selector  *LevelSelect
	config    core.RuntimeConfig
	width     int
	height    int
	quitting  bool
}

// NewModel creates a model for the engine.
func NewModel(engine *snake.Engine, cfg core.RuntimeConfig) Model {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}
	w, h := BoardSize(engine.Snapshot().GridSize)

	return Model{
		engine:    engine,
		screen:    core.NewScreen(w, h),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		config:    cfg,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selector != nil {
			return m.handleSelectorKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case LevelChosenMsg:
		m.engine.SetLevel(msg.ID)
		m.selector = nil
		return m, nil

	case LevelSelectClosedMsg:
		m.engine.Replay()
		m.selector = nil
		return m, nil

	case FrameMsg:
		return m, frameCmd(m.config.FrameRate)
	}

	return m, nil
}

// handleKey maps a key to an engine operation depending on the engine state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.engine.Close()
		m.quitting = true
		return m, tea.Quit
	}

	if d, ok := action.Direction(); ok {
		m.engine.RequestTurn(d)
		return m, nil
	}

	state := m.engine.Snapshot().State
	switch action {
	case core.ActionConfirm:
		if state == snake.StatePlaying {
			m.engine.Pause()
		} else {
			m.engine.Start()
		}
	case core.ActionPause:
		switch state {
		case snake.StatePlaying:
			m.engine.Pause()
		case snake.StatePaused:
			m.engine.Resume()
		}
	case core.ActionRestart, core.ActionBack:
		m.engine.Reset()
	case core.ActionNextLevel:
		m.engine.NextLevel()
	case core.ActionLevelSelect:
		m.openSelector()
	case core.ActionMute:
		m.engine.ToggleMute()
	}
	return m, nil
}

func (m Model) handleSelectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "q" || key == "ctrl+c" {
		m.engine.Close()
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.selector.Update(msg)
}

// openSelector stops play and shows the level table.
func (m *Model) openSelector() {
	m.engine.ShowLevelSelect()
	snap := m.engine.Snapshot()
	m.selector = NewLevelSelect(m.engine.Catalog().All(), snap.Unlocked, snap.Level.ID, m.width, m.height)
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() {
	DrawBoard(m.screen, m.engine.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.selector != nil {
		return m.selector.View()
	}

	if m.width > 0 && m.height > 0 && (m.width < m.screen.Width() || m.height < m.screen.Height()+1) {
		return centerText(fmt.Sprintf("Window too small: need %dx%d", m.screen.Width(), m.screen.Height()+1), m.width)
	}

	DrawBoard(m.screen, m.engine.Snapshot())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program for the engine and blocks until the
// player quits.
func Run(engine *snake.Engine, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(engine, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
