// Package engine owns the mutable game state and the fixed-tick
// simulation loop. GameState is shared by exactly two actors (input and
// simulation); every access goes through its mutex, and the lock is never
// held across a sleep or a blocking event read.
package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/serpent/constant"
	"github.com/lixenwraith/serpent/core"
)

// Cell is one board position.
type Cell struct {
	X, Y int
}

// Snapshot is a read-only copy of the renderable state, taken under the
// state lock so a frame never mixes two updates.
type Snapshot struct {
	Body        []core.Segment
	Apple       Cell
	BoardWidth  int
	BoardHeight int
	SnakeStyle  core.SnakeStyle
	AppleStyle  core.AppleStyle
	Color       bool
}

// Renderer projects a snapshot onto the display. Mutators that the key
// table marks as immediate call it while still holding the state lock so
// both actors share one render discipline.
type Renderer interface {
	Render(Snapshot)
}

// Settings carries the absolute configuration fields applied on startup
// and on config-file reload. Values are clamped, not rejected.
type Settings struct {
	BoardWidth  int
	BoardHeight int
	TickDelay   time.Duration
	SnakeStyle  core.SnakeStyle
	AppleStyle  core.AppleStyle
	Wrap        bool
	Color       bool
}

// GameState is the single source of truth shared by the input and
// simulation actors.
type GameState struct {
	mu sync.Mutex

	body      []core.Segment // oldest first, head last
	head      Cell
	direction core.Direction

	boardW, boardH int
	apple          Cell
	delay          time.Duration

	snakeStyle core.SnakeStyle
	appleStyle core.AppleStyle
	wrap       bool
	color      bool
}

// New creates the initial game state: a two-segment body at (0,0)-(1,0)
// heading East on a 10x10 board, apple at (5,5), wrap off, color on.
func New() *GameState {
	return &GameState{
		body: []core.Segment{
			{X: 0, Y: 0, Shape: core.EastWest, Facing: core.East},
			{X: 1, Y: 0, Shape: core.EastWest, Facing: core.East},
		},
		head:      Cell{X: 1, Y: 0},
		direction: core.East,
		boardW:    constant.DefaultBoardWidth,
		boardH:    constant.DefaultBoardHeight,
		apple:     Cell{X: constant.InitialAppleX, Y: constant.InitialAppleY},
		delay:     constant.DefaultTickDelay,
		color:     true,
	}
}

func (g *GameState) snapshotLocked() Snapshot {
	body := make([]core.Segment, len(g.body))
	copy(body, g.body)
	return Snapshot{
		Body:        body,
		Apple:       g.apple,
		BoardWidth:  g.boardW,
		BoardHeight: g.boardH,
		SnakeStyle:  g.snakeStyle,
		AppleStyle:  g.appleStyle,
		Color:       g.color,
	}
}

func (g *GameState) renderLocked(r Renderer) {
	if r != nil {
		r.Render(g.snapshotLocked())
	}
}

// Snapshot returns a consistent copy of the renderable state.
func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Render draws the current state. Used for redraws that mutate nothing,
// such as terminal resize events.
func (g *GameState) Render(r Renderer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.renderLocked(r)
}

// Steer proposes a new movement direction. The proposal is rejected when
// it is the exact opposite of the oldest remaining segment's facing; that
// guard is what keeps the snake from reversing into its own trailing
// edge on the next tick. Reports whether the direction changed.
func (g *GameState) Steer(d core.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if d == g.body[0].Facing.Opposite() {
		return false
	}
	g.direction = d
	return true
}

// Direction returns the currently stored movement direction.
func (g *GameState) Direction() core.Direction {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.direction
}

// ResizeBoard grows or shrinks the board by (dw, dh) cells, clamped so
// neither dimension drops below the minimum, and renders immediately.
func (g *GameState) ResizeBoard(dw, dh int, r Renderer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.boardW = max(g.boardW+dw, constant.MinBoardDim)
	g.boardH = max(g.boardH+dh, constant.MinBoardDim)
	g.renderLocked(r)
}

// AdjustDelay changes the tick delay by delta, clamped at the minimum
// delay. No render: the change only affects the next sleep.
func (g *GameState) AdjustDelay(delta time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.delay = max(g.delay+delta, constant.MinTickDelay)
}

// Delay returns the current tick delay.
func (g *GameState) Delay() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.delay
}

// CycleSnakeStyle advances the snake glyph style and renders immediately.
func (g *GameState) CycleSnakeStyle(r Renderer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.snakeStyle = g.snakeStyle.Next()
	g.renderLocked(r)
}

// CycleAppleStyle advances the apple glyph style and renders immediately.
func (g *GameState) CycleAppleStyle(r Renderer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.appleStyle = g.appleStyle.Next()
	g.renderLocked(r)
}

// ToggleWrap flips toroidal boundary mode. No render: the flag only
// affects future boundary checks.
func (g *GameState) ToggleWrap() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.wrap = !g.wrap
}

// ToggleColor flips colored output and renders immediately.
func (g *GameState) ToggleColor(r Renderer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.color = !g.color
	g.renderLocked(r)
}

// ApplySettings overwrites the configurable fields with clamped absolute
// values and renders once. Used at startup and on config-file reload.
func (g *GameState) ApplySettings(s Settings, r Renderer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.boardW = max(s.BoardWidth, constant.MinBoardDim)
	g.boardH = max(s.BoardHeight, constant.MinBoardDim)
	g.delay = max(s.TickDelay, constant.MinTickDelay)
	g.snakeStyle = s.SnakeStyle
	g.appleStyle = s.AppleStyle
	g.wrap = s.Wrap
	g.color = s.Color
	g.renderLocked(r)
}
