package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 40 // Score line under the grid
)

// Renderer draws session snapshots in a raylib window
type Renderer struct {
	cellSize int32
	offsetX  int32
	offsetY  int32
}

func NewRenderer(cellSize int32) *Renderer {
	return &Renderer{
		cellSize: cellSize,
		offsetX:  borderPadding,
		offsetY:  borderPadding,
	}
}

// WindowSize returns the window dimensions needed for grid
func (r *Renderer) WindowSize(grid types.Grid) (int32, int32) {
	w := int32(grid.Cols)*r.cellSize + 2*borderPadding
	h := int32(grid.Rows)*r.cellSize + 2*borderPadding + statusHeight
	return w, h
}

// cellOrigin returns the top-left pixel of a grid cell
func (r *Renderer) cellOrigin(at types.Coordinate) (int32, int32) {
	return r.offsetX + int32(at.Col)*r.cellSize, r.offsetY + int32(at.Row)*r.cellSize
}

func (r *Renderer) Draw(s game.Snapshot, highScore int) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	gridW := int32(s.Grid.Cols) * r.cellSize
	gridH := int32(s.Grid.Rows) * r.cellSize

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, gridW+2, gridH+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, gridW, gridH, rl.Black)

	for at, cell := range s.Cells() {
		x, y := r.cellOrigin(at)
		switch cell {
		case game.Body:
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Green)
		case game.Head:
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Lime)
			r.drawHeadArrow(x, y, s.Direction)
		case game.Food:
			half := float32(r.cellSize) / 2
			rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, half-2, rl.Red)
		}
	}

	fontSize := int32(statusHeight / 2)
	statusY := r.offsetY + gridH + (statusHeight-fontSize)/2
	status := fmt.Sprintf("Score: %d   Best: %d   Speed: %dms", s.Score, highScore, s.Interval.Milliseconds())
	rl.DrawText(status, r.offsetX, statusY, fontSize, rl.White)

	if s.Phase == types.GameOver {
		r.drawGameOver(s, gridW, gridH)
	}
	rl.EndDrawing()
}

// drawHeadArrow draws a direction indicator on the head cell
func (r *Renderer) drawHeadArrow(headX, headY int32, direction types.Direction) {
	halfCell := r.cellSize / 2
	switch direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawGameOver(s game.Snapshot, gridW, gridH int32) {
	rl.DrawRectangle(r.offsetX, r.offsetY, gridW, gridH, rl.Fade(rl.Black, 0.6))

	fontSize := int32(28)
	lines := []string{
		fmt.Sprintf("Game Over, record = %d", s.Length),
		fmt.Sprintf("%s collision, score %d", s.Collision, s.Score),
		"Press R to play again",
	}
	y := r.offsetY + gridH/2 - int32(len(lines))*fontSize/2
	for _, line := range lines {
		textWidth := rl.MeasureText(line, fontSize)
		rl.DrawText(line, r.offsetX+(gridW-textWidth)/2, y, fontSize, rl.White)
		y += fontSize + 4
	}
}
