package battle

import (
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/event"
)

// waveSpawner walks the catalog's wave table: wait Delay ticks, announce the wave, then
// spawn Count enemies Interval ticks apart on rows drawn from the battle's PRNG.
type waveSpawner struct {
	enabled bool
	number  int
	def     defs.WaveDefinition
	started bool
	spawned int
	wait    int
}

func (w *waveSpawner) load(catalog *defs.Catalog, n int) {
	def, ok := catalog.Wave(n)
	if !ok {
		w.enabled = false
		return
	}
	*w = waveSpawner{enabled: true, number: n, def: def, wait: def.Delay}
}

func (b *Battle) updateWaves() {
	w := &b.waves
	if !w.enabled {
		return
	}
	if w.wait > 0 {
		w.wait--
		return
	}
	if !w.started {
		w.started = true
		b.emit(event.WaveStarted, WaveInfo{Number: w.number, Enemy: w.def.Enemy, Count: w.def.Count})
	}
	if w.spawned < w.def.Count {
		b.SpawnEnemy(b.rng.Intn(config.RowCount), w.def.Enemy)
		w.spawned++
		w.wait = w.def.Interval - 1
	}
	if w.spawned >= w.def.Count {
		w.load(b.catalog, w.number+1)
	}
}
