// Package battle is the simulation core: the tower grid, the per-row projectile and
// enemy collections, the currency economy and the Select/Build input controller.
//
// A Battle is owned by a single goroutine. Update and HandleInput must never run
// concurrently; hosts serialize them through one loop.
package battle

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lane-defense/internal/clock"
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/event"
	"lane-defense/internal/logger"
	"lane-defense/internal/utils"
)

// Battle is the aggregate root of one play session.
type Battle struct {
	id       uuid.UUID
	catalog  *defs.Catalog
	settings config.Settings
	events   *event.Dispatcher
	rng      *utils.PRNGService
	log      *zap.Logger

	tick       uint64
	money      int
	moneyClock clock.Clock[*Battle]

	tiles       [config.RowCount][config.ColumnCount]Tile
	projectiles [config.RowCount][]Projectile
	enemies     [config.RowCount][]Enemy

	cursorRow    int
	cursorColumn int
	mode         Mode
	selected     int

	waves waveSpawner
}

// New creates a battle in Select mode with an empty grid. A nil dispatcher gets a private one.
func New(catalog *defs.Catalog, settings config.Settings, events *event.Dispatcher) *Battle {
	if catalog == nil {
		panic("battle: catalog cannot be nil")
	}
	if events == nil {
		events = event.NewDispatcher()
	}
	b := &Battle{
		id:         uuid.New(),
		catalog:    catalog,
		settings:   settings,
		events:     events,
		rng:        utils.NewPRNGService(settings.Seed),
		money:      settings.StartingMoney,
		moneyClock: clock.New(settings.MoneyPeriod, accrueMoney),
		mode:       ModeSelect,
	}
	b.log = logger.L().With(zap.String("battle", b.id.String()))

	for row := range b.tiles {
		for col := range b.tiles[row] {
			b.tiles[row][col] = b.newTile(defs.EmptyTower)
		}
	}
	if settings.Waves {
		b.waves.load(catalog, 0)
	}

	events.Subscribe(&eventLogger{log: b.log},
		event.TowerPlaced, event.PlacementRefused, event.EnemyDestroyed, event.EnemyEscaped, event.WaveStarted)

	b.log.Info("battle created",
		zap.Int64("seed", b.rng.Seed()),
		zap.Int("money", b.money),
		zap.Bool("waves", settings.Waves))
	return b
}

// ID identifies the session in logs.
func (b *Battle) ID() uuid.UUID { return b.id }

// Seed is the seed actually used for wave row selection.
func (b *Battle) Seed() int64 { return b.rng.Seed() }

// Catalog returns the type tables the battle was built with.
func (b *Battle) Catalog() *defs.Catalog { return b.catalog }

// Events returns the dispatcher battle events are published on.
func (b *Battle) Events() *event.Dispatcher { return b.events }

// Tick is the number of completed updates.
func (b *Battle) Tick() uint64 { return b.tick }

// Money is the current currency balance.
func (b *Battle) Money() int { return b.money }

// Cursor returns the selected tile.
func (b *Battle) Cursor() (row, column int) { return b.cursorRow, b.cursorColumn }

// Mode is the current input state.
func (b *Battle) Mode() Mode { return b.mode }

// Selected is the tower type highlighted in Build mode.
func (b *Battle) Selected() defs.TowerID { return defs.TowerID(b.selected) }

// TowerAt returns the tower type on a tile. The tile must be on the grid.
func (b *Battle) TowerAt(row, column int) defs.TowerID {
	if row < 0 || row >= config.RowCount || column < 0 || column >= config.ColumnCount {
		panic(fmt.Sprintf("battle: tile (%d, %d) out of range [0, %d)x[0, %d)",
			row, column, config.RowCount, config.ColumnCount))
	}
	return b.tiles[row][column].Tower
}

// Projectiles returns a copy of the projectiles travelling along row.
func (b *Battle) Projectiles(row int) []Projectile {
	return append([]Projectile(nil), b.projectiles[row]...)
}

// Enemies returns a copy of the enemies walking along row.
func (b *Battle) Enemies(row int) []Enemy {
	return append([]Enemy(nil), b.enemies[row]...)
}

// Counts returns the number of live projectiles and enemies on the whole field.
func (b *Battle) Counts() (projectiles, enemies int) {
	for row := range b.projectiles {
		projectiles += len(b.projectiles[row])
		enemies += len(b.enemies[row])
	}
	return projectiles, enemies
}

// Wave is the 0-based index of the wave being spawned, or -1 when waves are off.
func (b *Battle) Wave() int {
	if !b.waves.enabled {
		return -1
	}
	return b.waves.number
}

func (b *Battle) emit(t event.EventType, data any) {
	b.events.Dispatch(event.Event{Type: t, Tick: b.tick, Data: data})
}
