// Package render projects a game state snapshot onto the terminal grid.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
)

// Renderer draws snapshots onto a tcell screen. It is stateless between
// frames; every call redraws the full board.
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer over an initialized screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render clears the screen, draws the apple, the body oldest-to-newest,
// and the bottom/right border in the current snake style, then flushes.
// The flush must complete before returning: the next event read may
// block indefinitely.
func (r *Renderer) Render(snap engine.Snapshot) {
	r.screen.Clear()

	appleStyle := tcell.StyleDefault
	bodyStyle := tcell.StyleDefault
	if snap.Color {
		appleStyle = appleStyle.Foreground(tcell.ColorRed)
		bodyStyle = bodyStyle.Foreground(tcell.ColorGreen)
	}

	r.screen.SetContent(snap.Apple.X, snap.Apple.Y, snap.AppleStyle.Glyph(), nil, appleStyle)

	for _, seg := range snap.Body {
		r.screen.SetContent(seg.X, seg.Y, snap.SnakeStyle.Glyph(seg.Shape), nil, bodyStyle)
	}

	// Border along the bottom and right edges, closed with a corner.
	for x := 0; x < snap.BoardWidth; x++ {
		r.screen.SetContent(x, snap.BoardHeight, snap.SnakeStyle.Glyph(core.EastWest), nil, tcell.StyleDefault)
	}
	for y := 0; y < snap.BoardHeight; y++ {
		r.screen.SetContent(snap.BoardWidth, y, snap.SnakeStyle.Glyph(core.NorthSouth), nil, tcell.StyleDefault)
	}
	r.screen.SetContent(snap.BoardWidth, snap.BoardHeight, snap.SnakeStyle.Glyph(core.NorthWest), nil, tcell.StyleDefault)

	r.screen.Show()
}
