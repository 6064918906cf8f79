package core

import "fmt"

// SegmentShape classifies how a body cell connects to its neighbors:
// two straights and four corner turns. Shapes are always derived from
// direction transitions, never stored as ground truth.
type SegmentShape uint8

const (
	NorthSouth SegmentShape = iota
	EastWest
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// String returns the shape name.
func (s SegmentShape) String() string {
	switch s {
	case NorthSouth:
		return "NorthSouth"
	case EastWest:
		return "EastWest"
	case NorthEast:
		return "NorthEast"
	case NorthWest:
		return "NorthWest"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	default:
		return "Unknown"
	}
}

// Segment is one occupied cell of the snake body. Facing records the
// direction the snake was moving when this cell became the head; the
// oldest segment's Facing gates the reversal rule.
type Segment struct {
	X, Y   int
	Shape  SegmentShape
	Facing Direction
}

// ShapeFromTransition maps the direction a cell was entered with and the
// direction the snake left it toward to the connecting shape. Opposite
// pairs have no body shape; the input reversal guard keeps them from
// occurring, so receiving one reports a broken invariant rather than
// falling back silently.
func ShapeFromTransition(prev, next Direction) (SegmentShape, error) {
	if next == prev.Opposite() {
		return 0, fmt.Errorf("invalid segment transition %s -> %s: direction reversal reached shape derivation", prev, next)
	}

	switch prev {
	case North:
		switch next {
		case North:
			return NorthSouth, nil
		case East:
			return SouthEast, nil
		case West:
			return SouthWest, nil
		}
	case South:
		switch next {
		case South:
			return NorthSouth, nil
		case East:
			return NorthEast, nil
		case West:
			return NorthWest, nil
		}
	case East:
		switch next {
		case East:
			return EastWest, nil
		case North:
			return NorthWest, nil
		case South:
			return SouthWest, nil
		}
	case West:
		switch next {
		case West:
			return EastWest, nil
		case North:
			return NorthEast, nil
		case South:
			return SouthEast, nil
		}
	}
	return 0, fmt.Errorf("invalid segment transition %s -> %s", prev, next)
}

// ShapeFromHeading returns the straight shape for a freshly created head
// segment whose next transition is not yet known.
func ShapeFromHeading(d Direction) SegmentShape {
	if d == North || d == South {
		return NorthSouth
	}
	return EastWest
}
