package battle

import (
	"fmt"

	"lane-defense/internal/clock"
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
)

// Tile is one grid cell: the tower type standing on it and that tower's behavior clock.
// Unbuilt tiles hold defs.EmptyTower.
type Tile struct {
	Tower defs.TowerID
	clock clock.Clock[TowerContext]
}

// TowerContext is what a tower behavior gets when its clock fires.
type TowerContext struct {
	Battle *Battle
	Row    int
	Column int
}

// Projectile is a live shot. Its row never changes.
type Projectile struct {
	Type     defs.ProjectileID
	Row      int
	Position int // pixels, grows rightward
}

// Enemy is a live attacker. Its row never changes.
type Enemy struct {
	Type     defs.EnemyID
	Row      int
	Health   int
	Position int // pixels, counts down toward the left edge
	step     clock.Clock[*Enemy]
}

func (b *Battle) newTile(id defs.TowerID) Tile {
	t := b.catalog.Tower(id)
	return Tile{Tower: id, clock: clock.New(t.Period, runTowerBehavior)}
}

// SpawnEnemy puts a fresh enemy of type id at the right edge of row.
func (b *Battle) SpawnEnemy(row int, id defs.EnemyID) {
	if row < 0 || row >= config.RowCount {
		panic(fmt.Sprintf("battle: enemy row %d out of range [0, %d)", row, config.RowCount))
	}
	t := b.catalog.Enemy(id)
	b.enemies[row] = append(b.enemies[row], Enemy{
		Type:     id,
		Row:      row,
		Health:   t.Health,
		Position: config.EnemySpawnPosition,
		step:     clock.New(b.settings.EnemyStepPeriod, b.stepEnemy),
	})
}

// columnPosition is the pixel x of a grid column's left edge.
func columnPosition(column int) int {
	return config.FieldOffset + column*config.TileWidth
}

// rowPosition is the pixel y of a grid row's top edge.
func rowPosition(row int) int {
	return config.FieldOffset + row*config.TileHeight
}
