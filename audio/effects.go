// Package audio synthesizes the game's sound cues. Everything is
// generated, no sample assets.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-duration wave streamer.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping so cues start and end without
// clicks
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// eatCue is a short bright blip played when the apple is consumed.
func eatCue(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(880.0, 60*time.Millisecond, WaveSine, rate)
	return NewEnvelope(osc, 60*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond, rate)
}

// gameOverCue is a falling two-note figure played on death.
func gameOverCue(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(440.0, 150*time.Millisecond, WaveSquare, rate)
	n2 := NewOscillator(220.0, 300*time.Millisecond, WaveSquare, rate)
	return beep.Seq(
		NewEnvelope(n1, 150*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate),
		NewEnvelope(n2, 300*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, rate),
	)
}
