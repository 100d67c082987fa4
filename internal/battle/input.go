package battle

import (
	"errors"
	"fmt"

	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/event"
	"lane-defense/internal/input"
)

// Mode is the state of the input controller.
type Mode uint8

const (
	ModeSelect Mode = iota // cursor moves over the grid
	ModeBuild              // a tower type is being chosen for the cursor tile
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeBuild:
		return "build"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

var (
	ErrInsufficientFunds = errors.New("not enough money for tower")
	ErrOutOfBounds       = errors.New("tile outside the battlefield")
)

type transitionKey struct {
	mode  Mode
	event input.Event
}

// transitions is the whole controller. A pair missing from the table is ignored.
// Each handler applies its guard and effect and returns the next mode.
var transitions = map[transitionKey]func(*Battle) Mode{
	{ModeSelect, input.Confirm}:   enterBuild,
	{ModeSelect, input.MoveUp}:    moveCursor(-1, 0),
	{ModeSelect, input.MoveDown}:  moveCursor(1, 0),
	{ModeSelect, input.MoveLeft}:  moveCursor(0, -1),
	{ModeSelect, input.MoveRight}: moveCursor(0, 1),

	{ModeBuild, input.Confirm}:  confirmBuild,
	{ModeBuild, input.Cancel}:   cancelBuild,
	{ModeBuild, input.MoveUp}:   moveSelection(-1),
	{ModeBuild, input.MoveDown}: moveSelection(1),
}

// HandleInput feeds one event to the controller. It must be called between updates.
func (b *Battle) HandleInput(ev input.Event) {
	if handle, ok := transitions[transitionKey{b.mode, ev}]; ok {
		b.mode = handle(b)
	}
}

func enterBuild(b *Battle) Mode {
	b.selected = 0
	return ModeBuild
}

func cancelBuild(b *Battle) Mode {
	b.selected = 0
	return ModeSelect
}

func confirmBuild(b *Battle) Mode {
	if err := b.Place(b.cursorRow, b.cursorColumn, defs.TowerID(b.selected)); err != nil {
		return ModeBuild
	}
	b.selected = 0
	return ModeSelect
}

func moveCursor(dRow, dColumn int) func(*Battle) Mode {
	return func(b *Battle) Mode {
		b.cursorRow = clamp(b.cursorRow+dRow, 0, config.RowCount-1)
		b.cursorColumn = clamp(b.cursorColumn+dColumn, 0, config.ColumnCount-1)
		return ModeSelect
	}
}

func moveSelection(delta int) func(*Battle) Mode {
	return func(b *Battle) Mode {
		b.selected = clamp(b.selected+delta, 0, b.catalog.TowerCount()-1)
		return ModeBuild
	}
}

// Place builds tower id on a tile, paying its cost. The previous tower is overwritten and
// the new one starts with a fresh clock. On error nothing changes.
func (b *Battle) Place(row, column int, id defs.TowerID) error {
	if row < 0 || row >= config.RowCount || column < 0 || column >= config.ColumnCount {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, column)
	}
	t := b.catalog.Tower(id)
	if b.money < t.Cost {
		b.emit(event.PlacementRefused, Placement{Row: row, Column: column, Tower: id, Cost: t.Cost, Money: b.money})
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, t.Cost, b.money)
	}
	b.money -= t.Cost
	b.tiles[row][column] = b.newTile(id)
	b.emit(event.TowerPlaced, Placement{Row: row, Column: column, Tower: id, Cost: t.Cost, Money: b.money})
	return nil
}

// ShowUpArrow reports whether the Build overlay should draw the up arrow.
func (b *Battle) ShowUpArrow() bool {
	return b.mode == ModeBuild && b.selected > 0
}

// ShowDownArrow reports whether the Build overlay should draw the down arrow.
func (b *Battle) ShowDownArrow() bool {
	return b.mode == ModeBuild && b.selected < b.catalog.TowerCount()-1
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
