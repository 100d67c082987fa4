package defs

import "fmt"

// Catalog is the immutable set of type tables loaded once before a battle starts.
// Live entities refer to its entries only by index.
type Catalog struct {
	Towers      []TowerType      `yaml:"towers"`
	Projectiles []ProjectileType `yaml:"projectiles"`
	Enemies     []EnemyType      `yaml:"enemies"`
	Waves       []WaveDefinition `yaml:"waves"`
	RepeatFrom  int              `yaml:"wave_repeat_from"`
}

// Tower returns the tower type for id. An id outside the table is a programming error.
func (c *Catalog) Tower(id TowerID) *TowerType {
	if int(id) >= len(c.Towers) {
		panic(fmt.Sprintf("defs: tower type %d out of range [0, %d)", id, len(c.Towers)))
	}
	return &c.Towers[id]
}

// Projectile returns the projectile type for id and panics on an invalid id.
func (c *Catalog) Projectile(id ProjectileID) *ProjectileType {
	if int(id) >= len(c.Projectiles) {
		panic(fmt.Sprintf("defs: projectile type %d out of range [0, %d)", id, len(c.Projectiles)))
	}
	return &c.Projectiles[id]
}

// Enemy returns the enemy type for id and panics on an invalid id.
func (c *Catalog) Enemy(id EnemyID) *EnemyType {
	if int(id) >= len(c.Enemies) {
		panic(fmt.Sprintf("defs: enemy type %d out of range [0, %d)", id, len(c.Enemies)))
	}
	return &c.Enemies[id]
}

// TowerCount is the number of selectable tower types, the empty type included.
func (c *Catalog) TowerCount() int { return len(c.Towers) }

// Validate checks the cross references and numeric bounds the engine relies on.
func (c *Catalog) Validate() error {
	if len(c.Towers) == 0 {
		return fmt.Errorf("%w: no tower types", ErrInvalidCatalog)
	}
	if len(c.Towers) > 256 || len(c.Projectiles) > 256 || len(c.Enemies) > 256 {
		return fmt.Errorf("%w: tables are limited to 256 entries", ErrInvalidCatalog)
	}
	empty := c.Towers[EmptyTower]
	if empty.Cost != 0 || empty.Period != 0 || empty.Behavior != BehaviorNone {
		return fmt.Errorf("%w: tower 0 must be the empty type (cost 0, period 0, behavior none)", ErrInvalidCatalog)
	}
	for i, t := range c.Towers {
		if t.Cost < 0 || t.Cost > 255 {
			return fmt.Errorf("%w: tower %d cost %d out of [0, 255]", ErrInvalidCatalog, i, t.Cost)
		}
		if t.Period < 0 {
			return fmt.Errorf("%w: tower %d has negative period", ErrInvalidCatalog, i)
		}
		if _, ok := behaviorNames[t.Behavior]; !ok {
			return fmt.Errorf("%w: tower %d has unknown behavior %d", ErrInvalidCatalog, i, t.Behavior)
		}
		if t.Behavior == BehaviorSpawnProjectile && int(t.Projectile) >= len(c.Projectiles) {
			return fmt.Errorf("%w: tower %d spawns unknown projectile %d", ErrInvalidCatalog, i, t.Projectile)
		}
	}
	for i, p := range c.Projectiles {
		if p.Speed <= 0 {
			return fmt.Errorf("%w: projectile %d speed must be positive", ErrInvalidCatalog, i)
		}
		if p.Damage < 0 {
			return fmt.Errorf("%w: projectile %d has negative damage", ErrInvalidCatalog, i)
		}
	}
	for i, e := range c.Enemies {
		if e.Health <= 0 || e.Speed <= 0 {
			return fmt.Errorf("%w: enemy %d needs positive health and speed", ErrInvalidCatalog, i)
		}
	}
	for i, w := range c.Waves {
		if int(w.Enemy) >= len(c.Enemies) {
			return fmt.Errorf("%w: wave %d uses unknown enemy %d", ErrInvalidCatalog, i, w.Enemy)
		}
		if w.Count < 0 || w.Interval < 1 || w.Delay < 0 {
			return fmt.Errorf("%w: wave %d needs count >= 0, interval >= 1, delay >= 0", ErrInvalidCatalog, i)
		}
	}
	if len(c.Waves) > 0 && (c.RepeatFrom < 0 || c.RepeatFrom >= len(c.Waves)) {
		return fmt.Errorf("%w: wave_repeat_from %d out of range", ErrInvalidCatalog, c.RepeatFrom)
	}
	return nil
}
