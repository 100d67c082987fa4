package battle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/event"
	"lane-defense/internal/input"
)

func testSettings() config.Settings {
	s := config.Default()
	s.Waves = false
	s.Seed = 1
	return s
}

// testCatalog is the shipped catalog plus fast spawners and a sturdy enemy.
func testCatalog() *defs.Catalog {
	c := &defs.Catalog{
		Towers: []defs.TowerType{
			{Name: ""},
			{Name: "Chef", Sprite: "tower_1", Cost: 2, Period: 1, Behavior: defs.BehaviorAccelerateIncome},
			{Name: "Bandit", Sprite: "tower_2", Cost: 5},
			{Name: "Archer", Sprite: "tower_3", Cost: 4, Period: 90, Behavior: defs.BehaviorSpawnProjectile},
			{Name: "Knight", Sprite: "tower_4", Cost: 2},
			{Name: "Gun", Sprite: "tower_5", Cost: 1, Period: 1, Behavior: defs.BehaviorSpawnProjectile, Projectile: 0},
		},
		Projectiles: []defs.ProjectileType{
			{Sprite: "arrow", Damage: 1, Speed: 2},
			{Sprite: "bolt", Damage: 1, Speed: 3},
		},
		Enemies: []defs.EnemyType{
			{Sprite: "enemy_1", Health: 10, Speed: 1},
			{Sprite: "enemy_2", Health: 3, Speed: 1},
		},
	}
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

type collector struct{ events []event.Event }

func (c *collector) OnEvent(e event.Event) { c.events = append(c.events, e) }

func (c *collector) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func listen(b *Battle) *collector {
	c := &collector{}
	b.Events().Subscribe(c, event.TowerPlaced, event.PlacementRefused, event.ProjectileFired,
		event.EnemyHit, event.EnemyDestroyed, event.EnemyEscaped, event.WaveStarted)
	return c
}

func press(b *Battle, evs ...input.Event) {
	for _, ev := range evs {
		b.HandleInput(ev)
	}
}

func TestNew_InitialState(t *testing.T) {
	b := New(defs.MustBuiltin(), testSettings(), nil)

	assert.Equal(t, 20, b.Money())
	row, col := b.Cursor()
	assert.Zero(t, row)
	assert.Zero(t, col)
	assert.Equal(t, ModeSelect, b.Mode())
	assert.Equal(t, -1, b.Wave())
	for r := 0; r < config.RowCount; r++ {
		for c := 0; c < config.ColumnCount; c++ {
			assert.Equal(t, defs.EmptyTower, b.TowerAt(r, c))
		}
	}
	p, e := b.Counts()
	assert.Zero(t, p)
	assert.Zero(t, e)
	assert.Panics(t, func() { New(nil, testSettings(), nil) })
}

func TestScenario_BuildTower(t *testing.T) {
	b := New(defs.MustBuiltin(), testSettings(), nil)
	events := listen(b)

	press(b, input.Confirm)
	require.Equal(t, ModeBuild, b.Mode())
	require.Equal(t, defs.TowerID(0), b.Selected())

	press(b, input.MoveDown, input.MoveDown)
	require.Equal(t, defs.TowerID(2), b.Selected())
	require.Equal(t, 5, b.Catalog().Tower(b.Selected()).Cost)

	press(b, input.Confirm)
	assert.Equal(t, 15, b.Money())
	assert.Equal(t, defs.TowerID(2), b.TowerAt(0, 0))
	assert.Equal(t, ModeSelect, b.Mode())

	placed := events.ofType(event.TowerPlaced)
	require.Len(t, placed, 1)
	assert.Equal(t, Placement{Row: 0, Column: 0, Tower: 2, Cost: 5, Money: 15}, placed[0].Data)
}

func TestBuild_RefusedPlacementChangesNothing(t *testing.T) {
	s := testSettings()
	s.StartingMoney = 3
	b := New(defs.MustBuiltin(), s, nil)
	events := listen(b)

	press(b, input.MoveRight, input.Confirm, input.MoveDown, input.MoveDown)
	before := b.StateHash()

	press(b, input.Confirm)

	assert.Equal(t, before, b.StateHash())
	assert.Equal(t, 3, b.Money())
	assert.Equal(t, defs.EmptyTower, b.TowerAt(0, 1))
	assert.Equal(t, ModeBuild, b.Mode())
	assert.Equal(t, defs.TowerID(2), b.Selected())
	assert.Len(t, events.ofType(event.PlacementRefused), 1)
	assert.Empty(t, events.ofType(event.TowerPlaced))
}

func TestBuild_PlacingEmptyTypeIsFree(t *testing.T) {
	b := New(defs.MustBuiltin(), testSettings(), nil)
	require.NoError(t, b.Place(1, 1, 4))
	require.Equal(t, 18, b.Money())

	press(b, input.MoveDown, input.MoveRight, input.Confirm, input.Confirm)
	assert.Equal(t, defs.EmptyTower, b.TowerAt(1, 1))
	assert.Equal(t, 18, b.Money())
	assert.Equal(t, ModeSelect, b.Mode())
}

func TestBuild_CancelDiscardsSelection(t *testing.T) {
	b := New(defs.MustBuiltin(), testSettings(), nil)
	press(b, input.Confirm, input.MoveDown, input.MoveDown, input.MoveDown, input.Cancel)

	assert.Equal(t, ModeSelect, b.Mode())
	assert.Equal(t, 20, b.Money())
	assert.Equal(t, defs.EmptyTower, b.TowerAt(0, 0))

	press(b, input.Confirm)
	assert.Equal(t, defs.TowerID(0), b.Selected())
}

func TestBuild_SelectionClampsAndArrows(t *testing.T) {
	b := New(defs.MustBuiltin(), testSettings(), nil)
	assert.False(t, b.ShowUpArrow())
	assert.False(t, b.ShowDownArrow())

	press(b, input.Confirm)
	assert.False(t, b.ShowUpArrow())
	assert.True(t, b.ShowDownArrow())

	press(b, input.MoveUp)
	assert.Equal(t, defs.TowerID(0), b.Selected())

	for i := 0; i < 10; i++ {
		press(b, input.MoveDown)
	}
	last := defs.TowerID(b.Catalog().TowerCount() - 1)
	assert.Equal(t, last, b.Selected())
	assert.True(t, b.ShowUpArrow())
	assert.False(t, b.ShowDownArrow())

	// left/right are not part of Build
	press(b, input.MoveLeft, input.MoveRight)
	row, col := b.Cursor()
	assert.Equal(t, [2]int{0, 0}, [2]int{row, col})
	assert.Equal(t, ModeBuild, b.Mode())
}

func TestSelect_CancelIsNoop(t *testing.T) {
	b := New(defs.MustBuiltin(), testSettings(), nil)
	before := b.StateHash()
	press(b, input.Cancel)
	assert.Equal(t, before, b.StateHash())
}

func TestSelect_CursorStaysInBounds(t *testing.T) {
	b := New(defs.MustBuiltin(), testSettings(), nil)
	moves := []input.Event{input.MoveUp, input.MoveDown, input.MoveLeft, input.MoveRight}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 5000; i++ {
		ev := moves[rng.Intn(len(moves))]
		repeat := 1 + rng.Intn(12)
		for j := 0; j < repeat; j++ {
			press(b, ev)
		}
		row, col := b.Cursor()
		require.GreaterOrEqual(t, row, 0)
		require.Less(t, row, config.RowCount)
		require.GreaterOrEqual(t, col, 0)
		require.Less(t, col, config.ColumnCount)
	}

	for i := 0; i < 20; i++ {
		press(b, input.MoveDown, input.MoveRight)
	}
	row, col := b.Cursor()
	assert.Equal(t, config.RowCount-1, row)
	assert.Equal(t, config.ColumnCount-1, col)
}

func TestPlace_Errors(t *testing.T) {
	b := New(defs.MustBuiltin(), testSettings(), nil)
	require.ErrorIs(t, b.Place(-1, 0, 1), ErrOutOfBounds)
	require.ErrorIs(t, b.Place(0, config.ColumnCount, 1), ErrOutOfBounds)

	b.money = 1
	require.ErrorIs(t, b.Place(0, 0, 2), ErrInsufficientFunds)
	assert.Panics(t, func() { _ = b.Place(0, 0, 200) })
}

func TestPlace_OverwriteReseedsClock(t *testing.T) {
	b := New(testCatalog(), testSettings(), nil)
	require.NoError(t, b.Place(0, 0, 3))
	for i := 0; i < 50; i++ {
		b.Update()
	}
	require.Equal(t, 50, b.tiles[0][0].clock.Elapsed())

	require.NoError(t, b.Place(0, 0, 3))
	assert.Zero(t, b.tiles[0][0].clock.Elapsed())
	assert.Equal(t, 90, b.tiles[0][0].clock.Period())
}

func TestMoney_PassiveAccrual(t *testing.T) {
	b := New(defs.MustBuiltin(), testSettings(), nil)
	for i := 0; i < 599; i++ {
		b.Update()
	}
	assert.Equal(t, 20, b.Money())
	b.Update()
	assert.Equal(t, 21, b.Money())
}

func TestMoney_SaturatesAtMax(t *testing.T) {
	s := testSettings()
	s.MoneyPeriod = 1
	s.StartingMoney = 95
	b := New(defs.MustBuiltin(), s, nil)

	for i := 0; i < 1000; i++ {
		b.Update()
		require.LessOrEqual(t, b.Money(), 99)
		require.GreaterOrEqual(t, b.Money(), 0)
	}
	assert.Equal(t, 99, b.Money())
}

func TestMoney_IncomeTowerAcceleratesClock(t *testing.T) {
	s := testSettings()
	s.MoneyPeriod = 4
	b := New(defs.MustBuiltin(), s, nil)
	require.NoError(t, b.Place(0, 0, 1))
	require.Equal(t, 18, b.Money())

	for i := 0; i < 4; i++ {
		b.Update()
	}
	// two clock ticks per update: one passive, one from the chef
	assert.Equal(t, 20, b.Money())
}

func TestSpawner_ProjectileAppearsAtTowerColumn(t *testing.T) {
	b := New(testCatalog(), testSettings(), nil)
	events := listen(b)
	require.NoError(t, b.Place(2, 3, 5))

	b.Update()

	got := b.Projectiles(2)
	require.Len(t, got, 1)
	assert.Equal(t, Projectile{Type: 0, Row: 2, Position: config.FieldOffset + 3*config.TileWidth}, got[0])
	for _, row := range []int{0, 1, 3, 4} {
		assert.Empty(t, b.Projectiles(row))
	}
	require.Len(t, events.ofType(event.ProjectileFired), 1)
	assert.Equal(t, Shot{Row: 2, Column: 3, Projectile: 0}, events.ofType(event.ProjectileFired)[0].Data)

	b.Update()
	got = b.Projectiles(2)
	require.Len(t, got, 2)
	assert.Equal(t, config.FieldOffset+3*config.TileWidth+2, got[0].Position)
	assert.Equal(t, config.FieldOffset+3*config.TileWidth, got[1].Position)
}

func TestProjectile_LifecycleWithoutEnemies(t *testing.T) {
	cases := []struct {
		projectile defs.ProjectileID
		start      int
	}{
		{0, config.FieldOffset},
		{0, config.FieldOffset + 3*config.TileWidth},
		{1, config.FieldOffset},
		{1, config.FieldOffset + 8*config.TileWidth},
		{1, config.FieldWidth - 1},
	}
	for _, c := range cases {
		b := New(testCatalog(), testSettings(), nil)
		speed := b.Catalog().Projectile(c.projectile).Speed
		b.projectiles[1] = append(b.projectiles[1], Projectile{Type: c.projectile, Row: 1, Position: c.start})

		want := int(math.Ceil(float64(config.FieldWidth-c.start) / float64(speed)))
		ticks := 0
		for len(b.Projectiles(1)) > 0 {
			b.Update()
			ticks++
			require.LessOrEqual(t, ticks, config.FieldWidth, "projectile never left the field")
		}
		assert.Equal(t, want, ticks, "start %d speed %d", c.start, speed)
	}
}

func TestEnemy_RemovedAfterHealthHits(t *testing.T) {
	s := testSettings()
	s.EnemyStepPeriod = 100000
	b := New(testCatalog(), s, nil)
	events := listen(b)

	b.SpawnEnemy(4, 1) // health 3
	pos := b.Enemies(4)[0].Position

	for hit := 1; hit <= 3; hit++ {
		b.projectiles[4] = append(b.projectiles[4], Projectile{Type: 0, Row: 4, Position: pos})
		b.Update()
		assert.Empty(t, b.Projectiles(4), "projectile should be consumed by hit %d", hit)
		if hit < 3 {
			require.Len(t, b.Enemies(4), 1, "enemy removed before hit %d", hit)
			assert.Equal(t, 3-hit, b.Enemies(4)[0].Health)
		}
	}
	assert.Empty(t, b.Enemies(4))
	assert.Len(t, events.ofType(event.EnemyHit), 2)
	assert.Len(t, events.ofType(event.EnemyDestroyed), 1)
}

func TestProjectile_HitsFirstEnemyInCollectionOrder(t *testing.T) {
	s := testSettings()
	s.EnemyStepPeriod = 100000
	b := New(testCatalog(), s, nil)

	b.SpawnEnemy(0, 0)
	b.SpawnEnemy(0, 0)
	b.enemies[0][0].Position = 51 // farther, but first in the collection
	b.enemies[0][1].Position = 50
	b.projectiles[0] = append(b.projectiles[0], Projectile{Type: 0, Row: 0, Position: 50})

	b.Update()

	enemies := b.Enemies(0)
	require.Len(t, enemies, 2)
	assert.Equal(t, 9, enemies[0].Health)
	assert.Equal(t, 10, enemies[1].Health)
}

func TestProjectile_MissesEnemyBehindOrOutOfStep(t *testing.T) {
	s := testSettings()
	s.EnemyStepPeriod = 100000
	b := New(testCatalog(), s, nil)

	b.SpawnEnemy(0, 0)
	b.enemies[0][0].Position = 49 // behind the projectile
	b.SpawnEnemy(1, 0)
	b.enemies[1][0].Position = 52 // exactly one step ahead, not within
	b.projectiles[0] = append(b.projectiles[0], Projectile{Type: 0, Row: 0, Position: 50})
	b.projectiles[1] = append(b.projectiles[1], Projectile{Type: 0, Row: 1, Position: 50})

	b.Update()

	assert.Equal(t, 10, b.Enemies(0)[0].Health)
	assert.Equal(t, 10, b.Enemies(1)[0].Health)
	assert.Equal(t, 52, b.Projectiles(0)[0].Position)
	assert.Equal(t, 52, b.Projectiles(1)[0].Position)

	// now level with the enemy in row 1
	b.Update()
	assert.Equal(t, 9, b.Enemies(1)[0].Health)
	assert.Empty(t, b.Projectiles(1))
}

func TestProjectile_OtherRowsUnaffected(t *testing.T) {
	s := testSettings()
	s.EnemyStepPeriod = 100000
	b := New(testCatalog(), s, nil)
	b.SpawnEnemy(3, 0)
	b.enemies[3][0].Position = 50
	b.projectiles[2] = append(b.projectiles[2], Projectile{Type: 0, Row: 2, Position: 50})

	b.Update()
	assert.Equal(t, 10, b.Enemies(3)[0].Health)
	assert.Len(t, b.Projectiles(2), 1)
}

func TestEnemy_ClockGatedMovementAndEscape(t *testing.T) {
	s := testSettings()
	s.EnemyStepPeriod = 20
	b := New(testCatalog(), s, nil)
	events := listen(b)
	b.SpawnEnemy(2, 0)

	for i := 0; i < 19; i++ {
		b.Update()
	}
	assert.Equal(t, config.EnemySpawnPosition, b.Enemies(2)[0].Position)
	b.Update()
	assert.Equal(t, config.EnemySpawnPosition-1, b.Enemies(2)[0].Position)

	for len(b.Enemies(2)) > 0 {
		b.Update()
	}
	assert.Equal(t, uint64(20*config.EnemySpawnPosition), b.Tick())
	escaped := events.ofType(event.EnemyEscaped)
	require.Len(t, escaped, 1)
	assert.Equal(t, Escape{Row: 2, Enemy: 0}, escaped[0].Data)
}

func TestEnemy_PerTickMovement(t *testing.T) {
	s := testSettings()
	s.EnemyStepPeriod = 1
	b := New(testCatalog(), s, nil)
	b.SpawnEnemy(0, 0)
	b.SpawnEnemy(0, 1)
	for i := 0; i < 10; i++ {
		b.Update()
	}
	enemies := b.Enemies(0)
	require.Len(t, enemies, 2)
	assert.Equal(t, config.EnemySpawnPosition-10, enemies[0].Position)
	assert.Equal(t, config.EnemySpawnPosition-10, enemies[1].Position)
}

func TestSpawnEnemy_Contract(t *testing.T) {
	b := New(testCatalog(), testSettings(), nil)
	assert.Panics(t, func() { b.SpawnEnemy(config.RowCount, 0) })
	assert.Panics(t, func() { b.SpawnEnemy(0, 9) })
}

func TestTowerAt_Contract(t *testing.T) {
	b := New(testCatalog(), testSettings(), nil)
	assert.Equal(t, defs.EmptyTower, b.TowerAt(config.RowCount-1, config.ColumnCount-1))
	assert.PanicsWithValue(t, "battle: tile (5, 0) out of range [0, 5)x[0, 9)", func() { b.TowerAt(config.RowCount, 0) })
	assert.Panics(t, func() { b.TowerAt(0, config.ColumnCount) })
	assert.Panics(t, func() { b.TowerAt(-1, 0) })
	assert.Panics(t, func() { b.TowerAt(0, -1) })
}

func TestArcherKillsEnemy(t *testing.T) {
	s := testSettings()
	s.EnemyStepPeriod = 1
	b := New(testCatalog(), s, nil)
	events := listen(b)
	require.NoError(t, b.Place(1, 0, 5)) // fires every tick

	b.SpawnEnemy(1, 1)
	for i := 0; i < 200 && len(b.Enemies(1)) > 0; i++ {
		b.Update()
	}
	assert.Empty(t, b.Enemies(1))
	assert.Len(t, events.ofType(event.EnemyDestroyed), 1)
	assert.Empty(t, events.ofType(event.EnemyEscaped))
}
