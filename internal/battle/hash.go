package battle

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// StateHash digests everything that influences future ticks, the random source's
// seed and position included. Two battles fed the same ticks and inputs from the
// same start produce the same hash.
func (b *Battle) StateHash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	putBool := func(v bool) {
		if v {
			put(1)
		} else {
			put(0)
		}
	}

	put(int64(b.tick))
	put(int64(b.money))
	put(int64(b.moneyClock.Elapsed()))
	put(int64(b.cursorRow))
	put(int64(b.cursorColumn))
	put(int64(b.mode))
	put(int64(b.selected))
	put(b.rng.Seed())
	put(int64(b.rng.Draws()))

	for row := range b.tiles {
		for col := range b.tiles[row] {
			put(int64(b.tiles[row][col].Tower))
			put(int64(b.tiles[row][col].clock.Elapsed()))
		}
	}
	for row := range b.projectiles {
		put(int64(len(b.projectiles[row])))
		for _, p := range b.projectiles[row] {
			put(int64(p.Type))
			put(int64(p.Position))
		}
	}
	for row := range b.enemies {
		put(int64(len(b.enemies[row])))
		for _, e := range b.enemies[row] {
			put(int64(e.Type))
			put(int64(e.Health))
			put(int64(e.Position))
			put(int64(e.step.Elapsed()))
		}
	}

	w := b.waves
	put(int64(w.number))
	put(int64(w.spawned))
	put(int64(w.wait))
	putBool(w.enabled)
	putBool(w.started)
	return h.Sum64()
}
