package ebitenkb

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"lane-defense/internal/input"
)

func TestKeyboard_PollEdges(t *testing.T) {
	down := map[ebiten.Key]bool{}
	k := NewKeyboard(nil)
	k.justPressed = func(key ebiten.Key) bool { return down[key] }

	assert.Empty(t, k.Poll())

	down[ebiten.KeyZ] = true
	down[ebiten.KeyArrowLeft] = true
	assert.Equal(t, []input.Event{input.Confirm, input.MoveLeft}, k.Poll())

	down = map[ebiten.Key]bool{ebiten.KeyX: true}
	assert.Equal(t, []input.Event{input.Cancel}, k.Poll())
}

func TestDefaultBindings_CoverEveryEvent(t *testing.T) {
	bound := map[input.Event]bool{}
	for _, b := range DefaultBindings {
		bound[b.Event] = true
	}
	for _, e := range input.All {
		assert.True(t, bound[e], e.String())
	}
}
