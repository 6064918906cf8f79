package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
)

type countingRenderer struct {
	frames int
}

func (r *countingRenderer) Render(engine.Snapshot) { r.frames++ }

// TestActionForKey verifies the full key binding table
func TestActionForKey(t *testing.T) {
	runeCases := map[rune]Action{
		'q': ActionQuit,
		'k': ActionSteerNorth,
		'j': ActionSteerSouth,
		'h': ActionSteerWest,
		'l': ActionSteerEast,
		'1': ActionBoardNarrower,
		'2': ActionBoardWider,
		'3': ActionBoardShorter,
		'4': ActionBoardTaller,
		'5': ActionSlower,
		'6': ActionFaster,
		'7': ActionSnakeStyle,
		'8': ActionAppleStyle,
		'9': ActionToggleWrap,
		'0': ActionToggleColor,
	}
	for r, want := range runeCases {
		ev := tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
		if got := ActionForKey(ev); got != want {
			t.Errorf("Key %q: expected action %d, got %d", r, want, got)
		}
	}

	keyCases := map[tcell.Key]Action{
		tcell.KeyUp:    ActionSteerNorth,
		tcell.KeyDown:  ActionSteerSouth,
		tcell.KeyLeft:  ActionSteerWest,
		tcell.KeyRight: ActionSteerEast,
	}
	for k, want := range keyCases {
		ev := tcell.NewEventKey(k, 0, tcell.ModNone)
		if got := ActionForKey(ev); got != want {
			t.Errorf("Key %v: expected action %d, got %d", k, want, got)
		}
	}

	if got := ActionForKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); got != ActionNone {
		t.Errorf("Unbound key: expected ActionNone, got %d", got)
	}
}

// TestApplySteering verifies direction proposals flow through the
// reversal guard
func TestApplySteering(t *testing.T) {
	state := engine.New()
	h := NewHandler(state, &countingRenderer{}, func() {})

	h.Apply(ActionSteerNorth)
	if state.Direction() != core.North {
		t.Errorf("Expected North, got %s", state.Direction())
	}

	// Oldest segment still faces East, so West is an illegal reversal
	h.Apply(ActionSteerWest)
	if state.Direction() != core.North {
		t.Errorf("Expected reversal ignored, direction is %s", state.Direction())
	}
}

// TestApplyImmediateRenders verifies which actions draw synchronously
func TestApplyImmediateRenders(t *testing.T) {
	state := engine.New()
	r := &countingRenderer{}
	h := NewHandler(state, r, func() {})

	immediate := []Action{
		ActionBoardNarrower, ActionBoardWider,
		ActionBoardShorter, ActionBoardTaller,
		ActionSnakeStyle, ActionAppleStyle,
		ActionToggleColor,
	}
	for i, a := range immediate {
		h.Apply(a)
		if r.frames != i+1 {
			t.Errorf("Action %d: expected %d frames, got %d", a, i+1, r.frames)
		}
	}

	deferred := []Action{
		ActionSteerNorth, ActionSlower, ActionFaster, ActionToggleWrap,
	}
	before := r.frames
	for _, a := range deferred {
		h.Apply(a)
	}
	if r.frames != before {
		t.Errorf("Deferred actions rendered: expected %d frames, got %d", before, r.frames)
	}
}

// TestApplyQuit verifies the quit action reaches the shutdown hook
func TestApplyQuit(t *testing.T) {
	quit := false
	h := NewHandler(engine.New(), &countingRenderer{}, func() { quit = true })

	h.Apply(ActionQuit)
	if !quit {
		t.Error("Expected quit hook to be invoked")
	}
}

// TestRunConsumesEvents verifies the event loop applies key events and
// redraws on resize
func TestRunConsumesEvents(t *testing.T) {
	state := engine.New()
	r := &countingRenderer{}
	h := NewHandler(state, r, func() {})

	events := make(chan tcell.Event, 3)
	events <- tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone)
	events <- tcell.NewEventResize(80, 24)
	close(events)

	h.Run(events)

	if state.Direction() != core.North {
		t.Errorf("Expected North after 'k', got %s", state.Direction())
	}
	if r.frames != 2 {
		t.Errorf("Expected 2 frames (resize redraw + board change), got %d", r.frames)
	}
}
