package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"lane-defense/internal/event"
	"lane-defense/internal/logger"
)

// Sink accepts cues to play. Player is the speaker-backed implementation.
type Sink interface {
	Play(c Cue)
}

// Player mixes cues into the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         *zap.Logger
}

// NewPlayer creates a player. Nothing is audible until Initialize succeeds.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    logger.L().Named("audio"),
	}
}

// Initialize opens the speaker. A failure leaves the player silent; callers log and go on.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Info("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Play queues cue c. It is a no-op when the speaker is not initialized.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Streamer(c, p.volume, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup drops every queued cue.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Listener turns battle events into cues.
type Listener struct {
	sink Sink
}

func NewListener(sink Sink) *Listener {
	return &Listener{sink: sink}
}

// Attach subscribes the listener to every event it has a cue for.
func (l *Listener) Attach(d *event.Dispatcher) {
	types := make([]event.EventType, 0, len(eventCues))
	for t := range eventCues {
		types = append(types, t)
	}
	d.Subscribe(l, types...)
}

// Detach removes the listener from d.
func (l *Listener) Detach(d *event.Dispatcher) {
	for t := range eventCues {
		d.Unsubscribe(t, l)
	}
}

var eventCues = map[event.EventType]Cue{
	event.TowerPlaced:      CuePlace,
	event.PlacementRefused: CueRefused,
	event.ProjectileFired:  CueShoot,
	event.EnemyHit:         CueHit,
	event.EnemyDestroyed:   CueKill,
	event.EnemyEscaped:     CueEscape,
	event.WaveStarted:      CueWave,
}

func (l *Listener) OnEvent(e event.Event) {
	if c, ok := eventCues[e.Type]; ok {
		l.sink.Play(c)
	}
}
