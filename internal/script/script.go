// Package script replays recorded input against a battle without a window.
package script

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"lane-defense/internal/battle"
	"lane-defense/internal/config"
	"lane-defense/internal/event"
	"lane-defense/internal/input"
)

var ErrInvalidScript = errors.New("invalid script")

// Step is the input delivered right before the update that starts at Tick.
type Step struct {
	Tick  uint64        `yaml:"tick"`
	Input []input.Event `yaml:"input"`
}

// Script is a YAML input recording.
//
//	ticks: 1200
//	seed: 7
//	steps:
//	  - tick: 10
//	    input: [confirm, down, confirm]
type Script struct {
	Ticks uint64 `yaml:"ticks"`
	Seed  int64  `yaml:"seed"`  // 0 - из настроек
	Waves *bool  `yaml:"waves"` // nil - из настроек
	Steps []Step `yaml:"steps"`
}

// Decode reads and checks a script. Steps must be ordered by tick.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "failed to decode script")
	}
	if s.Ticks == 0 {
		return nil, errors.Wrap(ErrInvalidScript, "ticks must be positive")
	}
	for i := 1; i < len(s.Steps); i++ {
		if s.Steps[i].Tick < s.Steps[i-1].Tick {
			return nil, errors.Wrapf(ErrInvalidScript, "step %d at tick %d comes after tick %d", i, s.Steps[i].Tick, s.Steps[i-1].Tick)
		}
	}
	return &s, nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open script %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Apply returns settings with the script's overrides.
func (s *Script) Apply(settings config.Settings) config.Settings {
	if s.Seed != 0 {
		settings.Seed = s.Seed
	}
	if s.Waves != nil {
		settings.Waves = *s.Waves
	}
	return settings
}

// Summary is the outcome of a run.
type Summary struct {
	Battle      string `yaml:"battle"`
	Seed        int64  `yaml:"seed"`
	Ticks       uint64 `yaml:"ticks"`
	Money       int    `yaml:"money"`
	Towers      int    `yaml:"towers"`
	Projectiles int    `yaml:"projectiles"`
	Enemies     int    `yaml:"enemies"`
	Placed      int    `yaml:"placed"`
	Refused     int    `yaml:"refused"`
	Destroyed   int    `yaml:"destroyed"`
	Escaped     int    `yaml:"escaped"`
	Waves       int    `yaml:"waves_started"`
	Hash        uint64 `yaml:"state_hash"`
}

type tally struct{ counts map[event.EventType]int }

func (t *tally) OnEvent(e event.Event) { t.counts[e.Type]++ }

// Run plays s against b from its current tick and summarizes the result.
func Run(b *battle.Battle, s *Script) Summary {
	t := &tally{counts: make(map[event.EventType]int)}
	counted := []event.EventType{event.TowerPlaced, event.PlacementRefused, event.EnemyDestroyed, event.EnemyEscaped, event.WaveStarted}
	b.Events().Subscribe(t, counted...)
	defer func() {
		for _, typ := range counted {
			b.Events().Unsubscribe(typ, t)
		}
	}()

	steps := s.Steps
	for i := uint64(0); i < s.Ticks; i++ {
		for len(steps) > 0 && steps[0].Tick <= b.Tick() {
			for _, ev := range steps[0].Input {
				b.HandleInput(ev)
			}
			steps = steps[1:]
		}
		b.Update()
	}

	sum := Summary{
		Battle:    b.ID().String(),
		Seed:      b.Seed(),
		Ticks:     b.Tick(),
		Money:     b.Money(),
		Placed:    t.counts[event.TowerPlaced],
		Refused:   t.counts[event.PlacementRefused],
		Destroyed: t.counts[event.EnemyDestroyed],
		Escaped:   t.counts[event.EnemyEscaped],
		Waves:     t.counts[event.WaveStarted],
		Hash:      b.StateHash(),
	}
	sum.Projectiles, sum.Enemies = b.Counts()
	for row := 0; row < config.RowCount; row++ {
		for col := 0; col < config.ColumnCount; col++ {
			if b.TowerAt(row, col) != 0 {
				sum.Towers++
			}
		}
	}
	return sum
}
