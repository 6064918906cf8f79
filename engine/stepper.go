package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/serpent/core"
)

// Sounder plays game event cues. Implementations must be safe to call
// from the simulation goroutine and must never block on the state lock.
type Sounder interface {
	PlayEat()
	PlayGameOver()
}

// Stepper drives the simulation: one tick advances the snake a single
// cell, mutates the shared state, renders, then sleeps for the current
// tick delay. Tunable fields (direction, board, wrap, delay) are re-read
// every tick so live configuration changes apply on the very next one.
type Stepper struct {
	state    *GameState
	renderer Renderer
	rng      *rand.Rand
	sound    Sounder
	sleep    func(time.Duration)
}

// NewStepper creates a stepper over the shared state. sound may be nil.
func NewStepper(state *GameState, r Renderer, rng *rand.Rand, sound Sounder) *Stepper {
	return &Stepper{
		state:    state,
		renderer: r,
		rng:      rng,
		sound:    sound,
		sleep:    time.Sleep,
	}
}

// Run loops ticks until the snake dies. A non-nil error means a broken
// internal invariant, not a game over; the caller should report it after
// restoring the terminal.
func (s *Stepper) Run() error {
	for {
		alive, err := s.Tick()
		if err != nil {
			return err
		}
		if !alive {
			if s.sound != nil {
				s.sound.PlayGameOver()
			}
			return nil
		}
		// Lock is released before pacing so the input actor never waits
		// out a full tick delay.
		s.sleep(s.state.Delay())
	}
}

// Tick performs one simulation step and reports whether the snake is
// still alive. The death tick fixes up the head segment's shape with the
// direction it was about to move and renders one final frame.
func (s *Stepper) Tick() (bool, error) {
	g := s.state

	g.mu.Lock()
	head := g.head
	w, h := g.boardW, g.boardH
	dir := g.direction
	wrap := g.wrap
	g.mu.Unlock()

	next, inBounds := advance(head, dir, w, h, wrap)
	if !inBounds {
		// Wall death: no growth logic runs on this path.
		g.mu.Lock()
		defer g.mu.Unlock()
		return false, s.dieLocked()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, seg := range g.body {
		if seg.X == next.X && seg.Y == next.Y {
			return false, s.dieLocked()
		}
	}

	g.head = next

	// Close the shape of the outgoing head with the freshly re-read
	// direction, then append the new head as a straight.
	last := len(g.body) - 1
	shape, err := core.ShapeFromTransition(g.body[last].Facing, g.direction)
	if err != nil {
		return false, err
	}
	g.body[last].Shape = shape

	segment := core.Segment{
		X:      next.X,
		Y:      next.Y,
		Shape:  core.ShapeFromHeading(g.direction),
		Facing: g.direction,
	}

	if next == g.apple {
		// Net growth by one. The relocated apple may land on the body;
		// it becomes reachable again once the snake moves off.
		g.apple = Cell{
			X: s.rng.Intn(g.boardW),
			Y: s.rng.Intn(g.boardH),
		}
		if s.sound != nil {
			s.sound.PlayEat()
		}
	} else {
		g.body = g.body[1:]
	}
	g.body = append(g.body, segment)

	g.renderLocked(s.renderer)
	return true, nil
}

// dieLocked performs the Dead transition: the head segment's shape is
// fixed up against the current direction and a final frame is drawn.
// Caller holds the state lock.
func (s *Stepper) dieLocked() error {
	g := s.state
	last := len(g.body) - 1
	shape, err := core.ShapeFromTransition(g.body[last].Facing, g.direction)
	if err != nil {
		return err
	}
	g.body[last].Shape = shape
	g.renderLocked(s.renderer)
	return nil
}

// advance computes the next head cell one step along d. With wrap
// enabled an out-of-bounds step re-enters at the opposite edge; with it
// disabled the step reports false and the snake dies.
func advance(head Cell, d core.Direction, w, h int, wrap bool) (Cell, bool) {
	dx, dy := d.Delta()
	x, y := head.X+dx, head.Y+dy
	if x >= 0 && x < w && y >= 0 && y < h {
		return Cell{X: x, Y: y}, true
	}
	if !wrap {
		return Cell{}, false
	}
	return Cell{X: wrapCoord(x, w), Y: wrapCoord(y, h)}, true
}

func wrapCoord(v, limit int) int {
	v %= limit
	if v < 0 {
		v += limit
	}
	return v
}
