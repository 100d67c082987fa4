// Package input defines the discrete events the battle reacts to and their
// text form used by scripts and config. Host key mappings live in ebitenkb and termkb.
package input

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Event is one edge-triggered player action.
type Event uint8

const (
	Confirm Event = iota
	Cancel
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// All lists every event in declaration order.
var All = []Event{Confirm, Cancel, MoveUp, MoveDown, MoveLeft, MoveRight}

var names = [...]string{
	Confirm:   "confirm",
	Cancel:    "cancel",
	MoveUp:    "up",
	MoveDown:  "down",
	MoveLeft:  "left",
	MoveRight: "right",
}

func (e Event) String() string {
	if int(e) < len(names) {
		return names[e]
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// Parse accepts the names produced by String, case-insensitively.
func Parse(s string) (Event, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return Event(i), nil
		}
	}
	return 0, fmt.Errorf("unknown input event %q", s)
}

// UnmarshalYAML lets input scripts spell events by name.
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*e = parsed
	return nil
}
