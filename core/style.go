package core

// SnakeStyle selects the glyph set used for body segments and the board
// border. Styles cycle forward.
type SnakeStyle uint8

const (
	StyleCurvedLine SnakeStyle = iota
	StyleSharpLine
	StyleBlock

	snakeStyleCount
)

// String returns the style name.
func (s SnakeStyle) String() string {
	switch s {
	case StyleCurvedLine:
		return "CurvedLine"
	case StyleSharpLine:
		return "SharpLine"
	case StyleBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// Next returns the following style, wrapping around.
func (s SnakeStyle) Next() SnakeStyle {
	return (s + 1) % snakeStyleCount
}

var curvedGlyphs = map[SegmentShape]rune{
	NorthSouth: '│',
	NorthEast:  '╰',
	NorthWest:  '╯',
	SouthEast:  '╭',
	SouthWest:  '╮',
	EastWest:   '─',
}

var sharpGlyphs = map[SegmentShape]rune{
	NorthSouth: '│',
	NorthEast:  '└',
	NorthWest:  '┘',
	SouthEast:  '┌',
	SouthWest:  '┐',
	EastWest:   '─',
}

// Glyph returns the rune rendering the given shape in this style.
func (s SnakeStyle) Glyph(shape SegmentShape) rune {
	switch s {
	case StyleSharpLine:
		return sharpGlyphs[shape]
	case StyleBlock:
		return '█'
	default:
		return curvedGlyphs[shape]
	}
}

// AppleStyle selects the apple glyph. Styles cycle forward.
type AppleStyle uint8

const (
	AppleRing AppleStyle = iota
	AppleSolid
	AppleGlyph

	appleStyleCount
)

// String returns the style name.
func (a AppleStyle) String() string {
	switch a {
	case AppleRing:
		return "Ring"
	case AppleSolid:
		return "Solid"
	case AppleGlyph:
		return "Glyph"
	default:
		return "Unknown"
	}
}

// Next returns the following style, wrapping around.
func (a AppleStyle) Next() AppleStyle {
	return (a + 1) % appleStyleCount
}

// Glyph returns the rune rendering the apple in this style.
func (a AppleStyle) Glyph() rune {
	switch a {
	case AppleSolid:
		return '●'
	case AppleGlyph:
		return '@'
	default:
		return 'O'
	}
}
