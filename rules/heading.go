package rules

// Heading is the direction a snake will move on its next tick.
type Heading int

const (
	// Up decreases the row.
	Up Heading = iota
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
	// Right increases the column.
	Right
)

func (h Heading) delta() Point {
	switch h {
	case Up:
		return Point{Row: -1}
	case Down:
		return Point{Row: 1}
	case Left:
		return Point{Col: -1}
	default:
		return Point{Col: 1}
	}
}

// Opposite returns the reverse heading, the one a snake may never turn
// straight into.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}
