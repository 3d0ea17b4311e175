package ui

import (
	"log"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyDirection reads arrow keys and WASD pressed since the last frame
func KeyDirection() (types.Direction, bool) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return types.Up, true
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return types.Down, true
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return types.Left, true
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return types.Right, true
	}
	return types.None, false
}

// Run opens a window and plays session until the window closes or Q is
// pressed. The frame loop ticks the session whenever its interval has elapsed.
func Run(session *game.Session, cellSize int) error {
	renderer := NewRenderer(int32(cellSize))
	width, height := renderer.WindowSize(session.Config().Grid())

	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	lastUpdate := time.Now()
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if d, ok := KeyDirection(); ok {
			session.RequestDirection(d)
		}

		if session.Phase() == types.GameOver {
			if rl.IsKeyPressed(rl.KeyR) {
				if err := session.Reset(); err != nil {
					return err
				}
				lastUpdate = time.Now()
			}
		} else if time.Since(lastUpdate) >= session.Interval() {
			res := session.Tick()
			lastUpdate = time.Now()
			if res.Ate {
				log.Printf("food eaten: score %d, interval %v", res.Score, res.Interval)
			}
		}

		renderer.Draw(session.CurrentState(), session.ScoreBoard().HighScore())
	}
	return nil
}
