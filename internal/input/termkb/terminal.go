// Package termkb maps tcell key presses onto input events for the terminal host.
package termkb

import (
	"github.com/gdamore/tcell/v2"

	"lane-defense/internal/input"
)

// FromTerminal maps a terminal key press onto an event. Terminals only report key
// presses, never releases, so every call is already an edge.
func FromTerminal(key tcell.Key, r rune) (input.Event, bool) {
	switch key {
	case tcell.KeyUp:
		return input.MoveUp, true
	case tcell.KeyDown:
		return input.MoveDown, true
	case tcell.KeyLeft:
		return input.MoveLeft, true
	case tcell.KeyRight:
		return input.MoveRight, true
	case tcell.KeyEnter:
		return input.Confirm, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.Cancel, true
	case tcell.KeyRune:
		switch r {
		case 'z', 'Z':
			return input.Confirm, true
		case 'x', 'X':
			return input.Cancel, true
		case 'w', 'W':
			return input.MoveUp, true
		case 's', 'S':
			return input.MoveDown, true
		case 'a', 'A':
			return input.MoveLeft, true
		case 'd', 'D':
			return input.MoveRight, true
		}
	}
	return 0, false
}
