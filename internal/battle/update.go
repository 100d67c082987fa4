package battle

import (
	"slices"

	"lane-defense/internal/config"
	"lane-defense/internal/event"
)

// Update advances the battle by one tick:
//  1. passive income clock
//  2. tower behavior clocks, row-major
//  3. projectile collisions and motion
//  4. enemy motion and escapes
//  5. wave spawning
//
// Projectiles spawned in step 2 start moving on the next tick.
func (b *Battle) Update() {
	var settled [config.RowCount]int
	for row := range b.projectiles {
		settled[row] = len(b.projectiles[row])
	}

	b.moneyClock.Tick(b)

	for row := range b.tiles {
		for col := range b.tiles[row] {
			b.tiles[row][col].clock.Tick(TowerContext{Battle: b, Row: row, Column: col})
		}
	}

	for row := range b.projectiles {
		b.updateProjectiles(row, settled[row])
	}
	for row := range b.enemies {
		b.updateEnemies(row)
	}

	b.updateWaves()
	b.tick++
}

// updateProjectiles filters the row in place. Entries at index >= settled were spawned
// this tick and are kept untouched.
func (b *Battle) updateProjectiles(row, settled int) {
	projectiles := b.projectiles[row]
	kept := projectiles[:0]
	for i, p := range projectiles {
		if i >= settled {
			kept = append(kept, p)
			continue
		}
		t := b.catalog.Projectile(p.Type)

		if target := b.findTarget(row, p.Position, t.Speed); target >= 0 {
			b.damageEnemy(row, target, t.Damage)
			continue
		}

		p.Position += t.Speed
		if p.Position >= config.FieldWidth {
			continue
		}
		kept = append(kept, p)
	}
	b.projectiles[row] = kept
}

// findTarget returns the index of the first enemy in collection order that lies within
// one projectile step ahead of position, or -1. Collection order, not distance, breaks ties.
func (b *Battle) findTarget(row, position, speed int) int {
	for i, e := range b.enemies[row] {
		if d := e.Position - position; d >= 0 && d < speed {
			return i
		}
	}
	return -1
}

func (b *Battle) damageEnemy(row, index, damage int) {
	e := &b.enemies[row][index]
	e.Health -= damage
	if e.Health > 0 {
		b.emit(event.EnemyHit, Hit{Row: row, Enemy: e.Type, Damage: damage, Health: e.Health, Position: e.Position})
		return
	}
	killed := *e
	b.enemies[row] = slices.Delete(b.enemies[row], index, index+1)
	b.emit(event.EnemyDestroyed, Hit{Row: row, Enemy: killed.Type, Damage: damage, Health: 0, Position: killed.Position})
}

func (b *Battle) updateEnemies(row int) {
	enemies := b.enemies[row]
	kept := enemies[:0]
	for i := range enemies {
		e := enemies[i]
		e.step.Tick(&e)
		if e.Position <= 0 {
			b.emit(event.EnemyEscaped, Escape{Row: row, Enemy: e.Type})
			continue
		}
		kept = append(kept, e)
	}
	clear(enemies[len(kept):])
	b.enemies[row] = kept
}
