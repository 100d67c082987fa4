package battle

import (
	"go.uber.org/zap"

	"lane-defense/internal/defs"
	"lane-defense/internal/event"
)

// Placement is the payload of TowerPlaced and PlacementRefused.
type Placement struct {
	Row, Column int
	Tower       defs.TowerID
	Cost        int
	Money       int // balance after the attempt
}

// Shot is the payload of ProjectileFired.
type Shot struct {
	Row, Column int
	Projectile  defs.ProjectileID
}

// Hit is the payload of EnemyHit and EnemyDestroyed.
type Hit struct {
	Row      int
	Enemy    defs.EnemyID
	Damage   int
	Health   int // remaining, 0 when destroyed
	Position int
}

// Escape is the payload of EnemyEscaped.
type Escape struct {
	Row   int
	Enemy defs.EnemyID
}

// WaveInfo is the payload of WaveStarted.
type WaveInfo struct {
	Number int // 0-based
	Enemy  defs.EnemyID
	Count  int
}

// eventLogger writes the low-frequency battle events to the debug log.
type eventLogger struct {
	log *zap.Logger
}

func (l *eventLogger) OnEvent(e event.Event) {
	fields := []zap.Field{zap.String("event", string(e.Type)), zap.Uint64("tick", e.Tick)}
	switch d := e.Data.(type) {
	case Placement:
		fields = append(fields, zap.Int("row", d.Row), zap.Int("column", d.Column),
			zap.Uint8("tower", uint8(d.Tower)), zap.Int("cost", d.Cost), zap.Int("money", d.Money))
	case Hit:
		fields = append(fields, zap.Int("row", d.Row), zap.Uint8("enemy", uint8(d.Enemy)))
	case Escape:
		fields = append(fields, zap.Int("row", d.Row), zap.Uint8("enemy", uint8(d.Enemy)))
	case WaveInfo:
		fields = append(fields, zap.Int("wave", d.Number), zap.Uint8("enemy", uint8(d.Enemy)), zap.Int("count", d.Count))
	}
	l.log.Debug("battle event", fields...)
}
