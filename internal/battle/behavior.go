package battle

import (
	"fmt"

	"lane-defense/internal/defs"
	"lane-defense/internal/event"
)

// accrueMoney is the passive income step, saturating at the configured maximum.
func accrueMoney(b *Battle) {
	if b.money < b.settings.MaxMoney {
		b.money++
	}
}

// runTowerBehavior dispatches on the behavior of the tower standing at ctx.
func runTowerBehavior(ctx TowerContext) {
	b := ctx.Battle
	t := b.catalog.Tower(b.tiles[ctx.Row][ctx.Column].Tower)

	switch t.Behavior {
	case defs.BehaviorNone:
	case defs.BehaviorAccelerateIncome:
		b.moneyClock.Tick(b)
	case defs.BehaviorSpawnProjectile:
		b.spawnProjectile(ctx.Row, ctx.Column, t.Projectile)
	default:
		panic(fmt.Sprintf("battle: unhandled tower behavior %v", t.Behavior))
	}
}

func (b *Battle) spawnProjectile(row, column int, id defs.ProjectileID) {
	b.projectiles[row] = append(b.projectiles[row], Projectile{
		Type:     id,
		Row:      row,
		Position: columnPosition(column),
	})
	b.emit(event.ProjectileFired, Shot{Row: row, Column: column, Projectile: id})
}

func (b *Battle) stepEnemy(e *Enemy) {
	e.Position -= b.catalog.Enemy(e.Type).Speed
}
