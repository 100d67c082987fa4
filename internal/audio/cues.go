// Package audio plays short synthesized cues for battle events.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies one sound effect.
type Cue uint8

const (
	CuePlace Cue = iota
	CueRefused
	CueShoot
	CueHit
	CueKill
	CueEscape
	CueWave
	cueCount
)

var cueNames = [cueCount]string{"place", "refused", "shoot", "hit", "kill", "escape", "wave"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return fmt.Sprintf("Cue(%d)", uint8(c))
}

// note is one tone of a cue.
type note struct {
	freq     float64
	duration time.Duration
	square   bool
}

var cueNotes = [cueCount][]note{
	CuePlace:   {{freq: 660, duration: 60 * time.Millisecond}, {freq: 880, duration: 80 * time.Millisecond}},
	CueRefused: {{freq: 140, duration: 150 * time.Millisecond, square: true}},
	CueShoot:   {{freq: 1200, duration: 25 * time.Millisecond}},
	CueHit:     {{freq: 300, duration: 30 * time.Millisecond, square: true}},
	CueKill:    {{freq: 520, duration: 50 * time.Millisecond}, {freq: 390, duration: 50 * time.Millisecond}, {freq: 260, duration: 90 * time.Millisecond}},
	CueEscape:  {{freq: 200, duration: 120 * time.Millisecond, square: true}, {freq: 110, duration: 200 * time.Millisecond, square: true}},
	CueWave:    {{freq: 440, duration: 100 * time.Millisecond}, {freq: 440, duration: 100 * time.Millisecond}, {freq: 660, duration: 160 * time.Millisecond}},
}

// tone is a fixed-length square oscillator with a linear fade-out.
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newTone(n note, rate beep.SampleRate) *tone {
	return &tone{freq: n.freq, length: rate.N(n.duration), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.position >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.length {
			return i, true
		}
		v := 1.0
		if t.phase >= 0.5 {
			v = -1
		}
		v *= 1 - float64(t.position)/float64(t.length)
		samples[i][0], samples[i][1] = v, v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Streamer builds a fresh streamer for cue c at the given volume (0..1).
func Streamer(c Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	if c >= cueCount {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(cueNotes[c]))
	for _, n := range cueNotes[c] {
		if !n.square {
			if sine, err := generators.SineTone(rate, n.freq); err == nil {
				parts = append(parts, beep.Take(rate.N(n.duration), sine))
				continue
			}
		}
		parts = append(parts, newTone(n, rate))
	}
	if volume <= 0 {
		return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Silent: true}
	}
	// громкость в октавах относительно полной
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: math.Log2(math.Min(volume, 1))}
}

// Length is the number of samples cue c lasts at rate.
func Length(c Cue, rate beep.SampleRate) int {
	if c >= cueCount {
		return 0
	}
	total := 0
	for _, n := range cueNotes[c] {
		total += rate.N(n.duration)
	}
	return total
}
