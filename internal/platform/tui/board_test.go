package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dungeon-snake/internal/core"
	"github.com/vovakirdan/dungeon-snake/internal/games/snake"
)

func testSnapshot() snake.Snapshot {
	lvl, _ := snake.DefaultCatalog().Level(2)
	return snake.Snapshot{
		State:     snake.StatePlaying,
		Level:     lvl,
		GridSize:  20,
		Snake:     []core.Position{{X: 3, Y: 2}, {X: 2, Y: 2}},
		Food:      core.Position{X: 10, Y: 10},
		Obstacles: []snake.Obstacle{{Pos: core.Position{X: 0, Y: 19}}},
		Score:     4,
		HighScore: 9,
		Speed:     9.6,
		Unlocked:  []int{1, 2},
	}
}

func TestDrawBoardGlyphs(t *testing.T) {
	w, h := BoardSize(20)
	s := core.NewScreen(w, h)
	DrawBoard(s, testSnapshot())

	checks := []struct {
		p    core.Position
		want rune
	}{
		{core.Position{X: 3, Y: 2}, glyphHead},
		{core.Position{X: 2, Y: 2}, glyphBody},
		{core.Position{X: 10, Y: 10}, glyphFood},
		{core.Position{X: 0, Y: 19}, glyphObstacle},
	}
	for _, c := range checks {
		x, y := cellOrigin(c.p)
		if got := s.Get(x, y); got != c.want {
			t.Errorf("cell %v = %q, expected %q", c.p, got, c.want)
		}
	}

	if s.Get(0, boardTop) != '┌' || s.Get(41, boardTop+21) != '┘' {
		t.Error("board border misplaced")
	}
	if !strings.Contains(s.Row(0), "Apprentice") {
		t.Errorf("title row %q missing level name", s.Row(0))
	}
	if !strings.Contains(s.String(), "High score 9") {
		t.Error("panel missing high score")
	}
}

func TestDrawBoardOverlays(t *testing.T) {
	tests := []struct {
		state   snake.State
		hasNext bool
		want    string
	}{
		{snake.StateIdle, false, "SPACE to start"},
		{snake.StatePaused, false, "Paused"},
		{snake.StateGameOver, false, "Game Over"},
		{snake.StateLevelComplete, true, "Level 2 cleared!"},
		{snake.StateLevelComplete, false, "Dungeon conquered!"},
	}

	for _, tc := range tests {
		t.Run(string(tc.state), func(t *testing.T) {
			snap := testSnapshot()
			snap.State = tc.state
			snap.HasNextLevel = tc.hasNext

			w, h := BoardSize(20)
			s := core.NewScreen(w, h)
			DrawBoard(s, snap)
			if !strings.Contains(s.String(), tc.want) {
				t.Errorf("overlay missing %q", tc.want)
			}
		})
	}
}

func TestDrawBoardSkipsUnplacedFood(t *testing.T) {
	snap := testSnapshot()
	snap.Food = core.Nowhere

	w, h := BoardSize(20)
	s := core.NewScreen(w, h)
	DrawBoard(s, snap)
	if strings.ContainsRune(s.String(), glyphFood) {
		t.Error("food drawn while off-grid")
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("Only legends complete this level", 12)
	for _, l := range lines {
		if len(l) > 12 {
			t.Errorf("line %q longer than 12", l)
		}
	}
	if strings.Join(lines, " ") != "Only legends complete this level" {
		t.Errorf("wrap lost words: %v", lines)
	}
}
