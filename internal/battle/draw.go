package battle

import (
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/pkg/glyph"
	"lane-defense/pkg/render"
)

// Draw issues the frame's draw requests: frame, currency, towers, projectiles, enemies,
// cursor and, in Build mode, the tower picker.
func (b *Battle) Draw(p render.Presenter) {
	p.DrawSprite(string(defs.SpriteFrame), 0, 0)
	p.DrawGlyphs(glyph.Digits(b.money, 2), config.MoneyX, config.MoneyY)

	for row := range b.tiles {
		for col := range b.tiles[row] {
			if sprite := b.catalog.Tower(b.tiles[row][col].Tower).Sprite; sprite != defs.SpriteNone {
				p.DrawSprite(string(sprite), columnPosition(col), rowPosition(row))
			}
		}
	}
	for row := range b.projectiles {
		for _, pr := range b.projectiles[row] {
			p.DrawSprite(string(b.catalog.Projectile(pr.Type).Sprite), pr.Position, rowPosition(row))
		}
	}
	for row := range b.enemies {
		for _, e := range b.enemies[row] {
			p.DrawSprite(string(b.catalog.Enemy(e.Type).Sprite), e.Position, rowPosition(row))
		}
	}

	p.DrawSprite(string(defs.SpriteCursor), columnPosition(b.cursorColumn), rowPosition(b.cursorRow))

	if b.mode != ModeBuild {
		return
	}
	if b.ShowUpArrow() {
		p.DrawSprite(string(defs.SpriteArrowUp), config.ArrowX, config.ArrowUpY)
	}
	if b.ShowDownArrow() {
		p.DrawSprite(string(defs.SpriteArrowDown), config.ArrowX, config.ArrowDownY)
	}
	t := b.catalog.Tower(defs.TowerID(b.selected))
	p.DrawGlyphs(t.Glyphs, config.NameX, config.NameY)
	p.DrawGlyphs(glyph.Digits(t.Cost, 1), config.CostX, config.CostY)
}
