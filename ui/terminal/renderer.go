package terminal

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Canvas is the part of tcell.Screen the renderer draws on
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Each grid cell is two terminal columns wide so the board looks square
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws snapshots on a terminal. After the first frame only the
// cells that changed are repainted.
type Renderer struct {
	prev  game.Snapshot
	drawn bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Invalidate forces the next Draw to repaint the whole board
func (r *Renderer) Invalidate() {
	r.drawn = false
}

// Draw paints next on c
func (r *Renderer) Draw(c Canvas, next game.Snapshot, highScore int) {
	if !r.drawn || r.prev.Grid != next.Grid {
		r.drawBorder(c, next.Grid)
		blank := game.Snapshot{Grid: next.Grid}
		next.Grid.Each(func(at types.Coordinate) {
			r.drawCell(c, at, game.Empty)
		})
		r.prev = blank
		r.drawn = true
	}

	for _, change := range game.Diff(r.prev, next) {
		r.drawCell(c, change.At, change.Cell)
	}
	r.drawStatus(c, next, highScore)
	r.prev = next
}

func (r *Renderer) drawBorder(c Canvas, grid types.Grid) {
	right := grid.Cols*cellWidth + 1
	bottom := grid.Rows + 1
	for x := 1; x < right; x++ {
		c.SetContent(x, 0, '─', nil, borderStyle)
		c.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		c.SetContent(0, y, '│', nil, borderStyle)
		c.SetContent(right, y, '│', nil, borderStyle)
	}
	c.SetContent(0, 0, '┌', nil, borderStyle)
	c.SetContent(right, 0, '┐', nil, borderStyle)
	c.SetContent(0, bottom, '└', nil, borderStyle)
	c.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawCell(c Canvas, at types.Coordinate, cell game.Cell) {
	x, y := at.Col*cellWidth+1, at.Row+1

	glyph, style := ' ', tcell.StyleDefault
	switch cell {
	case game.Body:
		glyph, style = '█', bodyStyle
	case game.Head:
		glyph, style = '█', headStyle
	case game.Food:
		glyph, style = '●', foodStyle
	}

	c.SetContent(x, y, glyph, nil, style)
	if cell == game.Food {
		c.SetContent(x+1, y, ' ', nil, tcell.StyleDefault)
	} else {
		c.SetContent(x+1, y, glyph, nil, style)
	}
}

func (r *Renderer) drawStatus(c Canvas, s game.Snapshot, highScore int) {
	y := s.Grid.Rows + 2
	width, _ := c.Size()

	line := fmt.Sprintf("Score: %d  Best: %d  Length: %d  Speed: %dms",
		s.Score, highScore, s.Length, s.Interval.Milliseconds())
	style := textStyle
	if s.Phase == types.GameOver {
		line = fmt.Sprintf("Game over (%s). Score: %d  Best: %d | r: restart  q: quit",
			s.Collision, s.Score, highScore)
		style = alertStyle
	}
	drawText(c, 0, y, width, line, style)
}

// drawText writes s at (x, y) and blanks the rest of the row up to width
func drawText(c Canvas, x, y, width int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= width {
			return
		}
		c.SetContent(x, y, ch, nil, style)
		x++
	}
	for ; x < width; x++ {
		c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
