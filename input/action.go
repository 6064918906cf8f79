// Package input maps terminal key events to game actions and applies
// them to the shared state. It is the sole gate for direction changes,
// so the reversal guard lives here-side of the geometry module.
package input

import "github.com/gdamore/tcell/v2"

// Action discriminates the semantic effect of a key press.
type Action uint8

const (
	ActionNone Action = iota

	ActionQuit

	// Steering
	ActionSteerNorth
	ActionSteerSouth
	ActionSteerEast
	ActionSteerWest

	// Live configuration
	ActionBoardNarrower // 1
	ActionBoardWider    // 2
	ActionBoardShorter  // 3
	ActionBoardTaller   // 4
	ActionSlower        // 5: delay +step
	ActionFaster        // 6: delay -step
	ActionSnakeStyle    // 7
	ActionAppleStyle    // 8
	ActionToggleWrap    // 9
	ActionToggleColor   // 0
)

// Key tables. Arrows live in the special-key table, everything else is a
// rune binding.
var specialKeys = map[tcell.Key]Action{
	tcell.KeyUp:    ActionSteerNorth,
	tcell.KeyDown:  ActionSteerSouth,
	tcell.KeyLeft:  ActionSteerWest,
	tcell.KeyRight: ActionSteerEast,
}

var runeKeys = map[rune]Action{
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

// ActionForKey resolves a key event to its bound action, or ActionNone.
func ActionForKey(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return runeKeys[ev.Rune()]
	}
	return specialKeys[ev.Key()]
}
