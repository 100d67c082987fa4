// Package ebitenrender draws battle frames onto an ebiten window.
package ebitenrender

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"lane-defense/internal/config"
	"lane-defense/internal/logger"
	"lane-defense/pkg/glyph"
	"lane-defense/pkg/render"
)

// Размер ячейки шрифта basicfont.Face7x13.
const (
	fontCellWidth  = 7
	fontCellHeight = 13
	fontBaseline   = 11
	glyphHeight    = 7
)

// Shape describes the placeholder drawn for a sprite without an image file.
type Shape struct {
	Width, Height int
	Outline       bool // only the border is drawn
}

// PlaceholderShape returns the placeholder geometry for a sprite name.
func PlaceholderShape(name string) Shape {
	switch {
	case name == "frame" || name == "title":
		return Shape{Width: config.ScreenWidth, Height: config.ScreenHeight}
	case name == "cursor":
		return Shape{Width: config.TileWidth, Height: config.TileHeight, Outline: true}
	case name == "arrow_up" || name == "arrow_down":
		return Shape{Width: 3, Height: 3}
	}
	if _, ok := render.SpriteIndex(name, "tower_"); ok {
		return Shape{Width: config.TileWidth - 4, Height: config.TileHeight - 4}
	}
	if _, ok := render.SpriteIndex(name, "enemy_"); ok {
		return Shape{Width: 7, Height: config.TileHeight - 2}
	}
	return Shape{Width: 3, Height: 1}
}

// Atlas загружает и кэширует изображения спрайтов и глифов.
// Спрайт ищется как <dir>/<name>.png; если файла нет, рисуется заглушка.
type Atlas struct {
	dir    string
	images map[string]*ebiten.Image
	glyphs map[byte]*ebiten.Image
	log    *zap.Logger
}

// NewAtlas creates an atlas reading sprite files from dir. An empty dir uses placeholders only.
func NewAtlas(dir string) *Atlas {
	return &Atlas{
		dir:    dir,
		images: make(map[string]*ebiten.Image),
		glyphs: make(map[byte]*ebiten.Image),
		log:    logger.L().Named("atlas"),
	}
}

// Sprite returns the image for name, loading it on first use.
func (a *Atlas) Sprite(name string) *ebiten.Image {
	if img, ok := a.images[name]; ok {
		return img
	}
	img := a.load(name)
	a.images[name] = img
	return img
}

func (a *Atlas) load(name string) *ebiten.Image {
	if a.dir != "" {
		path := filepath.Join(a.dir, name+".png")
		if _, err := os.Stat(path); err == nil {
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err == nil {
				a.log.Debug("sprite loaded", zap.String("sprite", name), zap.String("path", path))
				return img
			}
			a.log.Warn("sprite file unreadable, using placeholder", zap.String("path", path), zap.Error(err))
		}
	}
	return placeholder(name)
}

func placeholder(name string) *ebiten.Image {
	shape := PlaceholderShape(name)
	img := ebiten.NewImage(shape.Width, shape.Height)
	c := render.SpriteColor(name)
	w, h := float32(shape.Width), float32(shape.Height)

	switch name {
	case "frame":
		img.Fill(config.BackgroundColor)
		for row := 0; row < config.RowCount; row++ {
			for col := 0; col < config.ColumnCount; col++ {
				x := float32(config.FieldOffset + col*config.TileWidth)
				y := float32(config.FieldOffset + row*config.TileHeight)
				vector.DrawFilledRect(img, x, y, config.TileWidth-1, config.TileHeight-1, config.TileColor, false)
			}
		}
		vector.StrokeRect(img, 1, float32(config.MoneyY-2), float32(config.ScreenWidth-2), float32(config.ScreenHeight-config.MoneyY+1), 1, c, false)
	case "title":
		img.Fill(config.BackgroundColor)
		text.Draw(img, "Rat Defense", basicfont.Face7x13, 42, 40, c)
		text.Draw(img, "press Z", basicfont.Face7x13, 56, 60, render.DarkenColor(c))
	case "arrow_up":
		vector.DrawFilledRect(img, 1, 0, 1, 1, c, false)
		vector.DrawFilledRect(img, 0, 1, 3, 2, c, false)
	case "arrow_down":
		vector.DrawFilledRect(img, 0, 0, 3, 2, c, false)
		vector.DrawFilledRect(img, 1, 2, 1, 1, c, false)
	default:
		if shape.Outline {
			vector.StrokeRect(img, 0, 0, w, h, 1, c, false)
			break
		}
		vector.DrawFilledRect(img, 0, 0, w, h, c, false)
		if w > 2 && h > 2 {
			vector.StrokeRect(img, 0, 0, w, h, 1, render.DarkenColor(c), false)
		}
	}
	return img
}

// Glyph returns the font image for glyph index g.
func (a *Atlas) Glyph(g byte) *ebiten.Image {
	if img, ok := a.glyphs[g]; ok {
		return img
	}
	img := ebiten.NewImage(fontCellWidth, fontCellHeight)
	text.Draw(img, string(glyph.Rune(g)), basicfont.Face7x13, 0, fontBaseline, config.TextLightColor)
	a.glyphs[g] = img
	return img
}

// Reload drops every cached image so the next frame reads the sprite files again.
func (a *Atlas) Reload() {
	for name, img := range a.images {
		img.Deallocate()
		delete(a.images, name)
	}
	a.log.Info("sprites reloaded", zap.String("dir", a.dir))
}

// EbitenPresenter draws onto an ebiten screen image through an Atlas.
type EbitenPresenter struct {
	atlas  *Atlas
	screen *ebiten.Image
	op     ebiten.DrawImageOptions
}

func NewEbitenPresenter(atlas *Atlas) *EbitenPresenter {
	return &EbitenPresenter{atlas: atlas}
}

// Begin targets the next draw calls at screen and clears it.
func (p *EbitenPresenter) Begin(screen *ebiten.Image) {
	p.screen = screen
	screen.Fill(color.Black)
}

func (p *EbitenPresenter) DrawSprite(sprite string, x, y int) {
	if p.screen == nil || sprite == "" {
		return
	}
	p.op.GeoM.Reset()
	p.op.Filter = ebiten.FilterNearest
	p.op.GeoM.Translate(float64(x), float64(y))
	p.screen.DrawImage(p.atlas.Sprite(sprite), &p.op)
}

func (p *EbitenPresenter) DrawGlyphs(glyphs []byte, x, y int) {
	if p.screen == nil {
		return
	}
	sx := float64(config.GlyphWidth-1) / fontCellWidth
	sy := float64(glyphHeight) / fontCellHeight
	for i, g := range glyphs {
		p.op.GeoM.Reset()
		p.op.Filter = ebiten.FilterLinear
		p.op.GeoM.Scale(sx, sy)
		p.op.GeoM.Translate(float64(x+i*config.GlyphWidth), float64(y))
		p.screen.DrawImage(p.atlas.Glyph(g), &p.op)
	}
}
