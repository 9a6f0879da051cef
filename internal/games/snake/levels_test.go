package snake

import (
	"testing"

	"github.com/vovakirdan/dungeon-snake/internal/config"
	"github.com/vovakirdan/dungeon-snake/internal/core"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", c.Len())
	}
	if c.First().Name != "Novice Crawler" {
		t.Errorf("first level %q", c.First().Name)
	}

	last, ok := c.Level(10)
	if !ok || last.ObstacleCount != 20 || last.FoodCount != 35 || last.MaxSpeed != 22 {
		t.Errorf("level 10 = %+v", last)
	}
	if _, ok := c.Next(10); ok {
		t.Error("level 10 must have no successor")
	}
	if next, ok := c.Next(4); !ok || next.ID != 5 {
		t.Errorf("Next(4) = %+v, %v", next, ok)
	}
	for _, id := range []int{0, -1, 11} {
		if _, ok := c.Level(id); ok {
			t.Errorf("Level(%d) should not exist", id)
		}
		if _, ok := c.Next(id); ok {
			t.Errorf("Next(%d) should not exist", id)
		}
	}
}

func TestCatalogAllIsACopy(t *testing.T) {
	c := DefaultCatalog()
	all := c.All()
	all[0].Name = "changed"
	if c.First().Name == "changed" {
		t.Error("All() leaked internal storage")
	}
}

func TestNewCatalogRejectsBadIDs(t *testing.T) {
	if _, err := NewCatalog(nil); err == nil {
		t.Error("expected error for empty catalog")
	}
	_, err := NewCatalog([]config.LevelConfig{{ID: 1}, {ID: 3}})
	if err == nil {
		t.Error("expected error for id gap")
	}
}

func TestMoveFrequency(t *testing.T) {
	tests := []struct {
		speed float64
		want  int
	}{
		{0, NeverMoves},
		{-1, NeverMoves},
		{0.5, 40},
		{1, 20},
		{2, 10},
		{8, 2},
		{20, 2},
		{100, 2},
	}
	for _, tc := range tests {
		if got := MoveFrequency(tc.speed); got != tc.want {
			t.Errorf("MoveFrequency(%v) = %d, expected %d", tc.speed, got, tc.want)
		}
	}
}

func TestObstacleAdvance(t *testing.T) {
	field := obstacleField{
		size:  20,
		rng:   fixedRand(0), // blocked obstacles turn up
		snake: []core.Position{pos(5, 5), pos(4, 5)},
		food:  pos(15, 15),
	}

	tests := []struct {
		name   string
		in     Obstacle
		others []Obstacle
		want   Obstacle
	}{
		{
			name: "counter below frequency",
			in:   Obstacle{Pos: pos(10, 10), Dir: core.DirRight, MoveCounter: 0, MoveFrequency: 3},
			want: Obstacle{Pos: pos(10, 10), Dir: core.DirRight, MoveCounter: 1, MoveFrequency: 3},
		},
		{
			name: "moves and resets counter",
			in:   Obstacle{Pos: pos(10, 10), Dir: core.DirRight, MoveCounter: 2, MoveFrequency: 3},
			want: Obstacle{Pos: pos(11, 10), Dir: core.DirRight, MoveCounter: 0, MoveFrequency: 3},
		},
		{
			name: "wraps at right edge",
			in:   Obstacle{Pos: pos(19, 3), Dir: core.DirRight, MoveCounter: 1, MoveFrequency: 2},
			want: Obstacle{Pos: pos(0, 3), Dir: core.DirRight, MoveCounter: 0, MoveFrequency: 2},
		},
		{
			name: "wraps at top edge",
			in:   Obstacle{Pos: pos(7, 0), Dir: core.DirUp, MoveCounter: 1, MoveFrequency: 2},
			want: Obstacle{Pos: pos(7, 19), Dir: core.DirUp, MoveCounter: 0, MoveFrequency: 2},
		},
		{
			name: "blocked by snake",
			in:   Obstacle{Pos: pos(6, 5), Dir: core.DirLeft, MoveCounter: 1, MoveFrequency: 2},
			want: Obstacle{Pos: pos(6, 5), Dir: core.DirUp, MoveCounter: 0, MoveFrequency: 2},
		},
		{
			name: "blocked by food",
			in:   Obstacle{Pos: pos(14, 15), Dir: core.DirRight, MoveCounter: 1, MoveFrequency: 2},
			want: Obstacle{Pos: pos(14, 15), Dir: core.DirUp, MoveCounter: 0, MoveFrequency: 2},
		},
		{
			name:   "blocked by resting obstacle",
			in:     Obstacle{Pos: pos(10, 10), Dir: core.DirRight, MoveCounter: 1, MoveFrequency: 2},
			others: []Obstacle{{Pos: pos(11, 10), Dir: core.DirUp, MoveFrequency: 2}},
			want:   Obstacle{Pos: pos(10, 10), Dir: core.DirUp, MoveCounter: 0, MoveFrequency: 2},
		},
		{
			name:   "cell vacated this tick still blocks",
			in:     Obstacle{Pos: pos(10, 10), Dir: core.DirRight, MoveCounter: 1, MoveFrequency: 2},
			others: []Obstacle{{Pos: pos(11, 10), Dir: core.DirRight, MoveCounter: 1, MoveFrequency: 2}},
			want:   Obstacle{Pos: pos(10, 10), Dir: core.DirUp, MoveCounter: 0, MoveFrequency: 2},
		},
		{
			name: "never moves",
			in:   Obstacle{Pos: pos(10, 10), Dir: core.DirRight, MoveCounter: 5, MoveFrequency: NeverMoves},
			want: Obstacle{Pos: pos(10, 10), Dir: core.DirRight, MoveCounter: 6, MoveFrequency: NeverMoves},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := append([]Obstacle{tc.in}, tc.others...)
			out := field.advance(in)
			if out[0] != tc.want {
				t.Errorf("got %+v, expected %+v", out[0], tc.want)
			}
			if in[0] != tc.in {
				t.Error("advance mutated its input")
			}
		})
	}
}

func TestObstaclesNeverShareACell(t *testing.T) {
	field := obstacleField{size: 20, rng: fixedRand(1), food: core.Nowhere}
	// Both step into (11,10) on the same tick.
	in := []Obstacle{
		{Pos: pos(10, 10), Dir: core.DirRight, MoveCounter: 1, MoveFrequency: 2},
		{Pos: pos(12, 10), Dir: core.DirLeft, MoveCounter: 1, MoveFrequency: 2},
	}

	out := field.advance(in)
	if out[0].Pos == out[1].Pos {
		t.Fatalf("obstacles overlap at %v", out[0].Pos)
	}
	if out[0].Pos != pos(11, 10) || out[1].Pos != pos(12, 10) {
		t.Errorf("positions = %v, %v", out[0].Pos, out[1].Pos)
	}
}

func TestObstacleGenerateRespectsExclusions(t *testing.T) {
	field := obstacleField{
		size:  5,
		rng:   fixedRand(0),
		snake: []core.Position{pos(2, 2)},
		food:  pos(0, 1),
	}
	// fixedRand(0) proposes (0,0) forever, so only one obstacle fits.
	got := field.generate(3, 10, core.Around(pos(2, 2), 1), 7)
	if len(got) != 1 {
		t.Fatalf("placed %d obstacles, expected 1", len(got))
	}
	if got[0].Pos != pos(0, 0) || got[0].MoveFrequency != 7 || got[0].MoveCounter != 0 {
		t.Errorf("obstacle = %+v", got[0])
	}

	field.food = pos(0, 0)
	if got := field.generate(2, 10, core.Around(pos(2, 2), 1), 7); len(got) != 0 {
		t.Errorf("placed %d obstacles onto food", len(got))
	}
}
