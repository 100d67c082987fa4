package render

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"lane-defense/internal/config"
	"lane-defense/pkg/glyph"
)

// Один символ терминала покрывает CellWidth x CellHeight логических пикселей.
const (
	CellWidth  = 2
	CellHeight = 3

	TerminalColumns = config.ScreenWidth / CellWidth
	TerminalRows    = config.ScreenHeight / CellHeight
)

// CellWriter is the part of tcell.Screen the presenter needs.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var spriteRunes = map[string]rune{
	"tower_1":    'c',
	"tower_2":    'b',
	"tower_3":    'a',
	"tower_4":    'k',
	"arrow":      '-',
	"arrow_up":   '^',
	"arrow_down": 'v',
}

// TerminalPresenter maps the 160x90 pixel screen onto an 80x30 character grid.
type TerminalPresenter struct {
	out CellWriter
}

func NewTerminalPresenter(out CellWriter) *TerminalPresenter {
	return &TerminalPresenter{out: out}
}

// CellAt converts logical pixel coordinates to a terminal cell.
func CellAt(x, y int) (col, row int) {
	return floorDiv(x, CellWidth), floorDiv(y, CellHeight)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (p *TerminalPresenter) set(col, row int, r rune, style tcell.Style) {
	if col < 0 || col >= TerminalColumns || row < 0 || row >= TerminalRows {
		return
	}
	p.out.SetContent(col, row, r, nil, style)
}

func colorStyle(name string) tcell.Style {
	c := SpriteColor(name)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (p *TerminalPresenter) DrawSprite(sprite string, x, y int) {
	col, row := CellAt(x, y)
	style := colorStyle(sprite)

	switch sprite {
	case "":
		return
	case "frame":
		p.drawFrame()
		return
	case "title":
		p.drawTitle()
		return
	case "cursor":
		right, _ := CellAt(x+config.TileWidth-1, y)
		mid := row + config.TileHeight/CellHeight/2
		p.set(col, mid, '[', style)
		p.set(right, mid, ']', style)
		return
	}

	if _, ok := SpriteIndex(sprite, "tower_"); ok {
		// башня рисуется в центре клетки
		cc, cr := CellAt(x+config.TileWidth/2, y+config.TileHeight/2)
		p.set(cc, cr, spriteRune(sprite), style.Bold(true))
		return
	}
	if _, ok := SpriteIndex(sprite, "enemy_"); ok {
		_, cr := CellAt(x, y+config.TileHeight/2)
		p.set(col, cr, spriteRune(sprite), style.Bold(true))
		return
	}
	_, cr := CellAt(x, y+config.TileHeight/2)
	p.set(col, cr, spriteRune(sprite), style)
}

func spriteRune(name string) rune {
	if r, ok := spriteRunes[name]; ok {
		return r
	}
	if n, ok := SpriteIndex(name, "enemy_"); ok && n <= 9 {
		return rune('0' + n)
	}
	for _, r := range name {
		return unicode.ToUpper(r)
	}
	return '?'
}

func (p *TerminalPresenter) drawFrame() {
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)
	tile := colorStyle("frame")
	for row := 0; row < TerminalRows; row++ {
		for col := 0; col < TerminalColumns; col++ {
			p.set(col, row, ' ', bg)
		}
	}
	for r := 0; r < config.RowCount; r++ {
		for c := 0; c < config.ColumnCount; c++ {
			x0, y0 := CellAt(config.FieldOffset+c*config.TileWidth, config.FieldOffset+r*config.TileHeight)
			x1, y1 := CellAt(config.FieldOffset+(c+1)*config.TileWidth-1, config.FieldOffset+(r+1)*config.TileHeight-1)
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					p.set(x, y, '.', tile)
				}
			}
		}
	}
}

func (p *TerminalPresenter) drawTitle() {
	style := colorStyle("title")
	p.drawText("RAT DEFENSE", TerminalColumns/2-5, TerminalRows/2-1, style.Bold(true))
	p.drawText("press z or enter", TerminalColumns/2-8, TerminalRows/2+1, style)
}

func (p *TerminalPresenter) drawText(s string, col, row int, style tcell.Style) {
	for i, r := range s {
		p.set(col+i, row, r, style)
	}
}

// DrawGlyphs writes glyphs as consecutive characters starting at the cell of (x, y).
func (p *TerminalPresenter) DrawGlyphs(glyphs []byte, x, y int) {
	col, row := CellAt(x, y)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, g := range glyphs {
		p.set(col+i, row, glyph.Rune(g), style)
	}
}
