package terminal

import (
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// KeyDirection maps arrow keys, WASD and hjkl to a direction
func KeyDirection(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return types.Up, true
		case 's', 'S', 'j':
			return types.Down, true
		case 'a', 'A', 'h':
			return types.Left, true
		case 'd', 'D', 'l':
			return types.Right, true
		}
	}
	return types.None, false
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

func isRestart(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R')
}
