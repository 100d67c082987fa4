package script

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"lane-defense/pkg/render"
)

// Frame is an in-memory character grid the terminal presenter can draw into.
type Frame struct {
	cells [render.TerminalRows][render.TerminalColumns]rune
}

func NewFrame() *Frame {
	f := &Frame{}
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = ' '
		}
	}
	return f
}

func (f *Frame) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	if y < 0 || y >= len(f.cells) || x < 0 || x >= len(f.cells[y]) {
		return
	}
	f.cells[y][x] = primary
}

// String renders the grid with trailing spaces trimmed.
func (f *Frame) String() string {
	var sb strings.Builder
	for y := range f.cells {
		sb.WriteString(strings.TrimRight(string(f.cells[y][:]), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
