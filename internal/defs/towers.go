// internal/defs/towers.go
package defs

// TowerType holds all the static data for one kind of tower.
type TowerType struct {
	Name       string       `yaml:"name"`
	Glyphs     []byte       `yaml:"-"` // Name encoded for the bitmap font
	Sprite     SpriteID     `yaml:"sprite"`
	Cost       int          `yaml:"cost"`
	Period     int          `yaml:"period"` // ticks between behavior runs, 0 = passive
	Behavior   Behavior     `yaml:"behavior"`
	Projectile ProjectileID `yaml:"projectile"` // used by BehaviorSpawnProjectile
}

// ProjectileType holds the static data for one kind of projectile.
type ProjectileType struct {
	Sprite SpriteID `yaml:"sprite"`
	Damage int      `yaml:"damage"`
	Speed  int      `yaml:"speed"` // pixels per tick, rightward
}
