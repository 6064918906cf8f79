package core

import "testing"

// TestDirectionDelta verifies screen-coordinate offsets
func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{North, 0, -1},
		{South, 0, 1},
		{East, 1, 0},
		{West, -1, 0},
	}

	for _, c := range cases {
		dx, dy := c.dir.Delta()
		if dx != c.dx || dy != c.dy {
			t.Errorf("%s: expected delta (%d,%d), got (%d,%d)", c.dir, c.dx, c.dy, dx, dy)
		}
	}
}

// TestDirectionOpposite verifies reversal pairs both ways
func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		North: South,
		East:  West,
	}

	for a, b := range pairs {
		if a.Opposite() != b {
			t.Errorf("Expected opposite of %s to be %s, got %s", a, b, a.Opposite())
		}
		if b.Opposite() != a {
			t.Errorf("Expected opposite of %s to be %s, got %s", b, a, b.Opposite())
		}
	}
}
