package rules

// Board is the playing field. Bounds are half open: rows [0, Height),
// columns [0, Width).
type Board struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the board.
func (b Board) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.Height && p.Col >= 0 && p.Col < b.Width
}
