// pkg/render/color.go
package render

import (
	"image/color"
	"strconv"
	"strings"

	"lane-defense/internal/config"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// SpriteIndex extracts N from names like "tower_N".
func SpriteIndex(name, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// SpriteColor is the fill used for generated placeholder sprites.
func SpriteColor(name string) color.RGBA {
	if n, ok := SpriteIndex(name, "tower_"); ok && n < len(config.TowerColors) {
		return config.TowerColors[n]
	}
	if n, ok := SpriteIndex(name, "enemy_"); ok {
		// чем дальше по таблице, тем темнее
		c := config.EnemyColor
		for i := 1; i < n && c.R > 80; i++ {
			c = DarkenColor(c)
			c.R += 60
		}
		return c
	}
	switch name {
	case "frame":
		return config.FrameColor
	case "cursor":
		return config.CursorColor
	case "arrow_up", "arrow_down", "title":
		return config.TextLightColor
	}
	return config.ProjectileColor
}
