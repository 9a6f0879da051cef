package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dungeon-snake/internal/games/snake"
)

// LevelChosenMsg reports an unlocked level picked in the selector.
type LevelChosenMsg struct {
	ID int
}

// LevelSelectClosedMsg reports that the selector was dismissed.
type LevelSelectClosedMsg struct{}

// LevelSelectKeyMap defines the key bindings for the level selector.
type LevelSelectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelSelectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LevelSelectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Choose},
		{k.Back, k.Quit},
	}
}

// DefaultLevelSelectKeyMap returns default key bindings.
func DefaultLevelSelectKeyMap() LevelSelectKeyMap {
	return LevelSelectKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "l"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelSelect is a table of the catalog with lock status.
// Locked levels can be browsed but not chosen.
type LevelSelect struct {
	levels   []snake.Level
	unlocked map[int]bool
	table    table.Model
	help     help.Model
	keys     LevelSelectKeyMap
	notice   string
	width    int
}

// NewLevelSelect creates a selector with the cursor on the current level.
func NewLevelSelect(levels []snake.Level, unlocked []int, current, width, height int) *LevelSelect {
	s := &LevelSelect{
		levels:   levels,
		unlocked: make(map[int]bool, len(unlocked)),
		help:     help.New(),
		keys:     DefaultLevelSelectKeyMap(),
		width:    width,
	}
	for _, id := range unlocked {
		s.unlocked[id] = true
	}

	s.table = s.createTable(height)
	for i, l := range levels {
		if l.ID == current {
			s.table.SetCursor(i)
		}
	}
	return s
}

// createTable creates the level table with appropriate columns.
func (s *LevelSelect) createTable(height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 20},
		{Title: "Obstacles", Width: 9},
		{Title: "Food", Width: 5},
		{Title: "Speed", Width: 10},
		{Title: "", Width: 8},
	}

	rows := make([]table.Row, len(s.levels))
	for i, l := range s.levels {
		status := "locked"
		if s.unlocked[l.ID] {
			status = "open"
		}
		rows[i] = table.Row{
			strconv.Itoa(l.ID),
			l.Name,
			strconv.Itoa(l.ObstacleCount),
			strconv.Itoa(l.FoodCount),
			fmt.Sprintf("%g→%g", l.InitialSpeed, l.MaxSpeed),
			status,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height-8, len(rows)+1)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// Selected returns the level under the cursor.
func (s *LevelSelect) Selected() snake.Level {
	return s.levels[s.table.Cursor()]
}

// Update handles a key press. Choosing an unlocked level or backing out
// returns a command that reports it to the parent model.
func (s *LevelSelect) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Back):
		return func() tea.Msg { return LevelSelectClosedMsg{} }

	case key.Matches(msg, s.keys.Choose):
		lvl := s.Selected()
		if !s.unlocked[lvl.ID] {
			s.notice = fmt.Sprintf("Level %d is locked. Clear level %d first.", lvl.ID, lvl.ID-1)
			return nil
		}
		return func() tea.Msg { return LevelChosenMsg{ID: lvl.ID} }

	case key.Matches(msg, s.keys.Up), key.Matches(msg, s.keys.Down):
		s.notice = ""
		if key.Matches(msg, s.keys.Up) {
			s.table.MoveUp(1)
		} else {
			s.table.MoveDown(1)
		}
	}
	return nil
}

// View renders the selector.
func (s *LevelSelect) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SELECT LEVEL", s.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(s.table.View()))
	b.WriteString("\n")

	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	b.WriteString(descStyle.Render(" " + s.Selected().Description))
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(" " + s.notice))
	}
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(s.help.View(s.keys)))

	return b.String()
}
