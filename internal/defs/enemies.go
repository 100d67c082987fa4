// internal/defs/enemies.go
package defs

// EnemyType holds all the static data for a specific type of enemy.
type EnemyType struct {
	Sprite SpriteID `yaml:"sprite"`
	Health int      `yaml:"health"`
	Speed  int      `yaml:"speed"` // pixels per movement step, leftward
}
