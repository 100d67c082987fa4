// Package ebitenkb turns ebiten key-down edges into input events for the windowed host.
package ebitenkb

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lane-defense/internal/input"
)

// Binding maps a physical key to an event.
type Binding struct {
	Key   ebiten.Key
	Event input.Event
}

// DefaultBindings: Z confirms, X cancels, arrows (or WASD) move.
var DefaultBindings = []Binding{
	{ebiten.KeyZ, input.Confirm},
	{ebiten.KeyEnter, input.Confirm},
	{ebiten.KeyX, input.Cancel},
	{ebiten.KeyBackspace, input.Cancel},
	{ebiten.KeyArrowUp, input.MoveUp},
	{ebiten.KeyW, input.MoveUp},
	{ebiten.KeyArrowDown, input.MoveDown},
	{ebiten.KeyS, input.MoveDown},
	{ebiten.KeyArrowLeft, input.MoveLeft},
	{ebiten.KeyA, input.MoveLeft},
	{ebiten.KeyArrowRight, input.MoveRight},
	{ebiten.KeyD, input.MoveRight},
}

// Keyboard turns key-down edges into events. Holding a key yields one event.
type Keyboard struct {
	bindings    []Binding
	justPressed func(ebiten.Key) bool
	buf         []input.Event
}

// NewKeyboard returns a keyboard source over bindings, or DefaultBindings when nil.
func NewKeyboard(bindings []Binding) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{
		bindings:    bindings,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Poll returns the events whose key went down this frame, in binding order.
// The returned slice is reused by the next call.
func (k *Keyboard) Poll() []input.Event {
	k.buf = k.buf[:0]
	for _, b := range k.bindings {
		if k.justPressed(b.Key) {
			k.buf = append(k.buf, b.Event)
		}
	}
	return k.buf
}
