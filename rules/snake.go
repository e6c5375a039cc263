package rules

// Snake is one player's body on the board. Body is ordered head first
// and is never empty while the snake exists.
type Snake struct {
	ID      string
	Name    string
	Body    []Point
	Heading Heading
	Death   *Death
	Growth  int
	Score   int
}

// Death records when and why a snake died. A nil Death means the snake
// is alive.
type Death struct {
	Turn  int
	Cause string
}

// Alive reports whether the snake is still moving.
func (s *Snake) Alive() bool {
	return s.Death == nil
}

// Head returns the first point in the body.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body.
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// NextHead returns the cell the snake will move into on its next tick.
// It does not mutate the snake.
func (s *Snake) NextHead() Point {
	return s.Head().Add(s.Heading)
}

// SetHeading points the snake at h for its next move. A request to
// reverse straight back over the neck is ignored, not queued; when
// several requests land between two ticks the last accepted one wins.
func (s *Snake) SetHeading(h Heading) {
	if h == s.Heading.Opposite() {
		return
	}
	s.Heading = h
}

// Grow keeps the tail in place for the next n advances, netting one
// extra cell of length each.
func (s *Snake) Grow(n int) {
	s.Growth += n
}

// Advance moves the head into newHead, consuming one pending growth
// step if any; with no growth pending the tail cell is dropped. The
// caller has already ruled on collisions, Advance performs no checks.
func (s *Snake) Advance(newHead Point) {
	s.Body = append([]Point{newHead}, s.Body...)
	if s.Growth > 0 {
		s.Growth--
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Contains reports whether any body cell occupies p.
func (s *Snake) Contains(p Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}
