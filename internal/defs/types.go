// internal/defs/types.go
package defs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Identifiers index directly into the catalog tables.
type (
	TowerID      uint8
	ProjectileID uint8
	EnemyID      uint8
)

// EmptyTower is the sentinel type occupying every unbuilt tile.
const EmptyTower TowerID = 0

// SpriteID names a sprite in the presentation layer's atlas. The core never looks inside it.
type SpriteID string

// Sprites the battle draws besides the ones referenced from the tables.
const (
	SpriteNone      SpriteID = ""
	SpriteTitle     SpriteID = "title"
	SpriteFrame     SpriteID = "frame"
	SpriteCursor    SpriteID = "cursor"
	SpriteArrowUp   SpriteID = "arrow_up"
	SpriteArrowDown SpriteID = "arrow_down"
)

// Behavior is the effect a tower performs each time its clock fires.
type Behavior uint8

const (
	BehaviorNone Behavior = iota
	BehaviorAccelerateIncome
	BehaviorSpawnProjectile
)

var behaviorNames = map[Behavior]string{
	BehaviorNone:             "none",
	BehaviorAccelerateIncome: "accelerate_income",
	BehaviorSpawnProjectile:  "spawn_projectile",
}

func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Behavior(%d)", uint8(b))
}

// ParseBehavior is the inverse of String.
func ParseBehavior(s string) (Behavior, error) {
	for b, name := range behaviorNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown tower behavior %q", s)
}

// UnmarshalYAML accepts the behavior name.
func (b *Behavior) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseBehavior(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*b = parsed
	return nil
}

// MarshalYAML writes the behavior name.
func (b Behavior) MarshalYAML() (any, error) {
	return b.String(), nil
}
