// Package core holds the pure game geometry: directions, segment shapes,
// and visual styles. It has no state and no terminal dependencies.
package core

// Direction is one of the four cardinal movement directions. There is no
// diagonal motion.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset of one step in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}
