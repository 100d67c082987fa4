package ebitenrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderShape(t *testing.T) {
	assert.Equal(t, Shape{Width: 160, Height: 90}, PlaceholderShape("frame"))
	assert.Equal(t, Shape{Width: 17, Height: 15, Outline: true}, PlaceholderShape("cursor"))
	assert.Equal(t, Shape{Width: 13, Height: 11}, PlaceholderShape("tower_2"))
	assert.Equal(t, Shape{Width: 7, Height: 13}, PlaceholderShape("enemy_4"))
	assert.Equal(t, Shape{Width: 3, Height: 1}, PlaceholderShape("arrow"))
}
