package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/serpent/constant"
)

// Engine plays game cues through the system speaker. A failed or muted
// engine degrades to no-ops; the game never depends on audio.
type Engine struct {
	mu    sync.Mutex
	rate  beep.SampleRate
	ready bool
	muted bool
}

// NewEngine creates an engine; call Init before playing.
func NewEngine(muted bool) *Engine {
	return &Engine{
		rate:  beep.SampleRate(constant.AudioSampleRate),
		muted: muted,
	}
}

// Init opens the speaker. Failure is reported but non-fatal: the caller
// may log it and continue without sound.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ready {
		return nil
	}
	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	e.ready = true
	return nil
}

// SetMuted toggles cue playback without touching the speaker.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

func (e *Engine) play(s beep.Streamer) {
	e.mu.Lock()
	ok := e.ready && !e.muted
	e.mu.Unlock()
	if ok {
		speaker.Play(s)
	}
}

// PlayEat plays the apple-consumed blip.
func (e *Engine) PlayEat() {
	e.play(eatCue(e.rate))
}

// PlayGameOver plays the death cue and waits for it to finish, so
// closing the speaker right after does not clip it.
func (e *Engine) PlayGameOver() {
	e.mu.Lock()
	ok := e.ready && !e.muted
	e.mu.Unlock()
	if ok {
		speaker.PlayAndWait(gameOverCue(e.rate))
	}
}

// Close releases the speaker. Safe to call on an uninitialized engine.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ready {
		speaker.Close()
		e.ready = false
	}
}
