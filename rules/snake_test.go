package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetHeadingRejectsReversal(t *testing.T) {
	snake := &Snake{
		Body:    []Point{{Row: 5, Col: 5}, {Row: 5, Col: 4}, {Row: 5, Col: 3}},
		Heading: Right,
	}
	snake.SetHeading(Left)
	require.Equal(t, Right, snake.Heading)
	require.Equal(t, Point{Row: 5, Col: 6}, snake.NextHead())
}

func TestSetHeadingRejectsReversalAtLengthOne(t *testing.T) {
	snake := &Snake{
		Body:    []Point{{Row: 5, Col: 5}},
		Heading: Right,
	}
	snake.SetHeading(Left)
	require.Equal(t, Right, snake.Heading)
}

func TestSetHeadingLatestValidWins(t *testing.T) {
	snake := &Snake{
		Body:    []Point{{Row: 5, Col: 5}, {Row: 5, Col: 4}},
		Heading: Right,
	}
	// Up then Left between two ticks: both legal in sequence, so the
	// snake turns left even though Left was illegal against Right.
	snake.SetHeading(Up)
	snake.SetHeading(Left)
	require.Equal(t, Left, snake.Heading)
	require.Equal(t, Point{Row: 5, Col: 4}, snake.NextHead())
}

func TestNextHeadDoesNotMutate(t *testing.T) {
	snake := &Snake{
		Body:    []Point{{Row: 3, Col: 3}},
		Heading: Down,
	}
	require.Equal(t, Point{Row: 4, Col: 3}, snake.NextHead())
	require.Equal(t, []Point{{Row: 3, Col: 3}}, snake.Body)
}

func TestAdvanceDropsTail(t *testing.T) {
	snake := &Snake{
		Body:    []Point{{Row: 5, Col: 5}, {Row: 5, Col: 4}, {Row: 5, Col: 3}},
		Heading: Right,
	}
	snake.Advance(Point{Row: 5, Col: 6})
	require.Equal(t, []Point{{Row: 5, Col: 6}, {Row: 5, Col: 5}, {Row: 5, Col: 4}}, snake.Body)
}

func TestAdvanceWithGrowthKeepsTail(t *testing.T) {
	snake := &Snake{
		Body:    []Point{{Row: 5, Col: 5}, {Row: 5, Col: 4}},
		Heading: Right,
	}
	snake.Grow(1)
	snake.Advance(Point{Row: 5, Col: 6})
	require.Equal(t, []Point{{Row: 5, Col: 6}, {Row: 5, Col: 5}, {Row: 5, Col: 4}}, snake.Body)
	require.Equal(t, 0, snake.Growth)
}

func TestContains(t *testing.T) {
	snake := &Snake{
		Body: []Point{{Row: 1, Col: 1}, {Row: 1, Col: 2}},
	}
	require.True(t, snake.Contains(Point{Row: 1, Col: 2}))
	require.False(t, snake.Contains(Point{Row: 2, Col: 1}))
}

func TestHeadingOpposites(t *testing.T) {
	require.Equal(t, Down, Up.Opposite())
	require.Equal(t, Up, Down.Opposite())
	require.Equal(t, Right, Left.Opposite())
	require.Equal(t, Left, Right.Opposite())
}
