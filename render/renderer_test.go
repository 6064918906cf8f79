package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
)

func testScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(40, 20)
	return screen
}

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Body: []core.Segment{
			{X: 0, Y: 0, Shape: core.EastWest, Facing: core.East},
			{X: 1, Y: 0, Shape: core.EastWest, Facing: core.East},
		},
		Apple:       engine.Cell{X: 5, Y: 5},
		BoardWidth:  10,
		BoardHeight: 10,
		SnakeStyle:  core.StyleCurvedLine,
		AppleStyle:  core.AppleRing,
		Color:       true,
	}
}

// TestRenderDrawsBodyAppleAndBorder verifies the full frame layout
func TestRenderDrawsBodyAppleAndBorder(t *testing.T) {
	screen := testScreen(t)
	defer screen.Fini()

	New(screen).Render(testSnapshot())

	if ch, _, _, _ := screen.GetContent(5, 5); ch != 'O' {
		t.Errorf("Expected apple O at (5,5), got %c", ch)
	}
	if ch, _, _, _ := screen.GetContent(0, 0); ch != '─' {
		t.Errorf("Expected body ─ at (0,0), got %c", ch)
	}
	if ch, _, _, _ := screen.GetContent(1, 0); ch != '─' {
		t.Errorf("Expected body ─ at (1,0), got %c", ch)
	}

	// Bottom border, right border, closing corner
	if ch, _, _, _ := screen.GetContent(3, 10); ch != '─' {
		t.Errorf("Expected border ─ at (3,10), got %c", ch)
	}
	if ch, _, _, _ := screen.GetContent(10, 4); ch != '│' {
		t.Errorf("Expected border │ at (10,4), got %c", ch)
	}
	if ch, _, _, _ := screen.GetContent(10, 10); ch != '╯' {
		t.Errorf("Expected corner ╯ at (10,10), got %c", ch)
	}
}

// TestRenderColorFlag verifies foreground colors follow the color flag
func TestRenderColorFlag(t *testing.T) {
	screen := testScreen(t)
	defer screen.Fini()
	r := New(screen)

	snap := testSnapshot()
	r.Render(snap)
	_, _, style, _ := screen.GetContent(5, 5)
	fg, _, _ := style.Decompose()
	if fg != tcell.ColorRed {
		t.Errorf("Expected red apple with color on, got %v", fg)
	}
	_, _, style, _ = screen.GetContent(0, 0)
	fg, _, _ = style.Decompose()
	if fg != tcell.ColorGreen {
		t.Errorf("Expected green body with color on, got %v", fg)
	}

	snap.Color = false
	r.Render(snap)
	_, _, style, _ = screen.GetContent(5, 5)
	fg, _, _ = style.Decompose()
	if fg != tcell.ColorDefault {
		t.Errorf("Expected default color with color off, got %v", fg)
	}
}

// TestRenderStyles verifies glyph selection follows the snapshot styles
func TestRenderStyles(t *testing.T) {
	screen := testScreen(t)
	defer screen.Fini()
	r := New(screen)

	snap := testSnapshot()
	snap.SnakeStyle = core.StyleBlock
	snap.AppleStyle = core.AppleSolid
	r.Render(snap)

	if ch, _, _, _ := screen.GetContent(0, 0); ch != '█' {
		t.Errorf("Expected block body, got %c", ch)
	}
	if ch, _, _, _ := screen.GetContent(5, 5); ch != '●' {
		t.Errorf("Expected solid apple, got %c", ch)
	}
	if ch, _, _, _ := screen.GetContent(10, 10); ch != '█' {
		t.Errorf("Expected block border corner, got %c", ch)
	}
}

// TestRenderClearsPreviousFrame verifies stale cells do not survive
func TestRenderClearsPreviousFrame(t *testing.T) {
	screen := testScreen(t)
	defer screen.Fini()
	r := New(screen)

	snap := testSnapshot()
	r.Render(snap)

	snap.Apple = engine.Cell{X: 7, Y: 7}
	r.Render(snap)

	if ch, _, _, _ := screen.GetContent(5, 5); ch == 'O' {
		t.Error("Expected old apple cell to be cleared")
	}
	if ch, _, _, _ := screen.GetContent(7, 7); ch != 'O' {
		t.Errorf("Expected apple at (7,7), got %c", ch)
	}
}
