package rules

// Point is one cell on the board. Row 0 is the top row, column 0 the
// left edge. Points are plain values so they compare with == and work
// as map keys.
type Point struct {
	Row int
	Col int
}

// Add returns the point one cell away in the given heading.
func (p Point) Add(h Heading) Point {
	d := h.delta()
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}
