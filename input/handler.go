package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/constant"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
)

// Handler is the input actor: it blocks on the next terminal event, then
// mutates the shared state. Actions with synchronous visual feedback
// render while the mutator still holds the state lock; steering, speed
// and wrap changes surface on the next tick instead.
type Handler struct {
	state    *engine.GameState
	renderer engine.Renderer
	quit     func()
}

// NewHandler creates an input handler. quit is invoked on the quit key
// and must restore the terminal before ending the process.
func NewHandler(state *engine.GameState, r engine.Renderer, quit func()) *Handler {
	return &Handler{state: state, renderer: r, quit: quit}
}

// Run consumes terminal events until the channel closes.
func (h *Handler) Run(events <-chan tcell.Event) {
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			h.Apply(ActionForKey(ev))
		case *tcell.EventResize:
			h.state.Render(h.renderer)
		}
	}
}

// Apply executes a single action against the game state.
func (h *Handler) Apply(a Action) {
	switch a {
	case ActionQuit:
		h.quit()

	case ActionSteerNorth:
		h.state.Steer(core.North)
	case ActionSteerSouth:
		h.state.Steer(core.South)
	case ActionSteerEast:
		h.state.Steer(core.East)
	case ActionSteerWest:
		h.state.Steer(core.West)

	case ActionBoardNarrower:
		h.state.ResizeBoard(-1, 0, h.renderer)
	case ActionBoardWider:
		h.state.ResizeBoard(1, 0, h.renderer)
	case ActionBoardShorter:
		h.state.ResizeBoard(0, -1, h.renderer)
	case ActionBoardTaller:
		h.state.ResizeBoard(0, 1, h.renderer)

	case ActionSlower:
		h.state.AdjustDelay(constant.DelayStep)
	case ActionFaster:
		h.state.AdjustDelay(-constant.DelayStep)

	case ActionSnakeStyle:
		h.state.CycleSnakeStyle(h.renderer)
	case ActionAppleStyle:
		h.state.CycleAppleStyle(h.renderer)

	case ActionToggleWrap:
		h.state.ToggleWrap()
	case ActionToggleColor:
		h.state.ToggleColor(h.renderer)
	}
}
