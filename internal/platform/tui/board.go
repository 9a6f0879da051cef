package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/dungeon-snake/internal/core"
	"github.com/vovakirdan/dungeon-snake/internal/games/snake"
)

// Board layout. Each grid cell is two columns wide so the board looks square.
const (
	cellWidth  = 2
	boardTop   = 1 // Row of the top border
	panelGap   = 3 // Columns between the board and the side panel
	panelWidth = 30
)

// Glyphs used on the board.
const (
	glyphHead     = '@'
	glyphBody     = 'o'
	glyphFood     = '*'
	glyphObstacle = '#'
)

// BoardSize returns the screen size needed to draw a grid of the given size.
func BoardSize(gridSize int) (w, h int) {
	return gridSize*cellWidth + 2 + panelGap + panelWidth, gridSize + 2 + boardTop
}

// boardRect returns the bordered board area.
func boardRect(gridSize int) core.Rect {
	return core.NewRect(0, boardTop, gridSize*cellWidth+2, gridSize+2)
}

// cellOrigin converts a grid position to screen coordinates.
func cellOrigin(p core.Position) (x, y int) {
	return 1 + p.X*cellWidth, boardTop + 1 + p.Y
}

// DrawBoard renders a snapshot: title line, bordered grid, side panel and
// a state overlay.
func DrawBoard(dst *core.Screen, snap snake.Snapshot) {
	dst.Clear()

	title := fmt.Sprintf(" DUNGEON SNAKE  ·  Level %d: %s", snap.Level.ID, snap.Level.Name)
	dst.DrawTextColored(0, 0, title, core.ColorYellow)

	board := boardRect(snap.GridSize)
	dst.DrawBox(board, core.ColorGray)

	for _, o := range snap.Obstacles {
		drawCell(dst, o.Pos, glyphObstacle, core.ColorOrange)
	}
	if snap.Food.InBounds(snap.GridSize) {
		drawCell(dst, snap.Food, glyphFood, core.ColorBrightRed)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, snap.Snake[i], glyphHead, core.ColorBrightGreen)
		} else {
			drawCell(dst, snap.Snake[i], glyphBody, core.ColorGreen)
		}
	}

	drawPanel(dst, board.Right()+panelGap, board.Y, snap)
	drawOverlay(dst, board, snap)
}

func drawCell(dst *core.Screen, p core.Position, r rune, c core.Color) {
	x, y := cellOrigin(p)
	dst.SetColored(x, y, r, c)
}

// drawPanel draws run statistics to the right of the board.
func drawPanel(dst *core.Screen, x, y int, snap snake.Snapshot) {
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	line(fmt.Sprintf("Score      %d", snap.Score), core.ColorBrightYellow)
	line(fmt.Sprintf("High score %d", snap.HighScore), core.ColorYellow)
	line(fmt.Sprintf("Length     %d", len(snap.Snake)), core.ColorDefault)
	line(fmt.Sprintf("Food       %d/%d", snap.FoodEaten, snap.Level.FoodCount), core.ColorDefault)
	line(fmt.Sprintf("Speed      %.1f/s", snap.Speed), core.ColorDefault)
	line(fmt.Sprintf("Obstacles  %d", len(snap.Obstacles)), core.ColorDefault)
	dst.DrawHLine(x, y, panelWidth, '─', core.ColorGray)
	y++

	for _, l := range wrap(snap.Level.Description, panelWidth) {
		line(l, core.ColorGray)
	}
	y++

	line(fmt.Sprintf("Unlocked   %s", joinInts(snap.Unlocked)), core.ColorCyan)
	if snap.Muted {
		line("Sound      off", core.ColorGray)
	} else {
		line("Sound      on", core.ColorGray)
	}
}

// drawOverlay draws a centered message box over the board for every state
// except playing.
func drawOverlay(dst *core.Screen, board core.Rect, snap snake.Snapshot) {
	var lines []string
	switch snap.State {
	case snake.StateIdle:
		lines = []string{"Ready", "SPACE to start"}
	case snake.StatePaused:
		lines = []string{"Paused", "SPACE or ESC to resume"}
	case snake.StateGameOver:
		lines = []string{"Game Over", fmt.Sprintf("Score %d", snap.Score), "SPACE to retry"}
	case snake.StateLevelComplete:
		if snap.HasNextLevel {
			lines = []string{fmt.Sprintf("Level %d cleared!", snap.Level.ID), "N for the next level"}
		} else {
			lines = []string{"Dungeon conquered!", fmt.Sprintf("Final score %d", snap.Score)}
		}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	cx, cy := board.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorCyan)
	for i, l := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(l))/2
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorCyan
		}
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

// wrap splits text into lines no longer than width, breaking on spaces.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}
