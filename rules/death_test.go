package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, g *Game) []deathUpdate {
	t.Helper()
	return classifyMoves(g.Board, g.Snakes, g.Corpse, g.proposeMoves())
}

func TestClassifyWallCollision(t *testing.T) {
	snake := &Snake{
		ID:      PlayerOneID,
		Body:    []Point{{Row: 0, Col: 5}},
		Heading: Up,
	}
	g := testGame(10, 8, snake)

	updates := classify(t, g)
	require.Len(t, updates, 1)
	require.Equal(t, snake, updates[0].Snake)
	require.Equal(t, DeathCauseWallCollision, updates[0].Cause)
}

func TestClassifySelfCollision(t *testing.T) {
	// Head at (2,1) heading up into (1,1), which is still part of the
	// body.
	snake := &Snake{
		ID:      PlayerOneID,
		Body:    []Point{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 1}},
		Heading: Up,
	}
	g := testGame(10, 8, snake)

	updates := classify(t, g)
	require.Len(t, updates, 1)
	require.Equal(t, DeathCauseSelfCollision, updates[0].Cause)
}

func TestClassifyTailCellStillCounts(t *testing.T) {
	// 2x2 loop: next head lands on the current tail. Pre-move bodies
	// rule, so this dies even though the tail would move away.
	snake := &Snake{
		ID:      PlayerOneID,
		Body:    []Point{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 1}},
		Heading: Down,
	}
	g := testGame(10, 8, snake)

	updates := classify(t, g)
	require.Len(t, updates, 1)
	require.Equal(t, DeathCauseSelfCollision, updates[0].Cause)
}

func TestClassifyOpponentCollision(t *testing.T) {
	// Snake A is head-bound for (3,3); snake B's pre-move body holds
	// it. Only A dies, B's own move is safe.
	snakeA := &Snake{
		ID:      PlayerOneID,
		Body:    []Point{{Row: 3, Col: 2}, {Row: 3, Col: 1}},
		Heading: Right,
	}
	snakeB := &Snake{
		ID:      PlayerTwoID,
		Body:    []Point{{Row: 3, Col: 3}, {Row: 4, Col: 3}},
		Heading: Up,
	}
	g := testGame(10, 8, snakeA, snakeB)

	updates := classify(t, g)
	require.Len(t, updates, 1)
	require.Equal(t, snakeA, updates[0].Snake)
	require.Equal(t, DeathCauseSnakeCollision, updates[0].Cause)
}

func TestClassifyCorpseCollision(t *testing.T) {
	snake := &Snake{
		ID:      PlayerOneID,
		Body:    []Point{{Row: 3, Col: 2}},
		Heading: Right,
	}
	g := testGame(10, 8, snake)
	g.Corpse[Point{Row: 3, Col: 3}] = struct{}{}

	updates := classify(t, g)
	require.Len(t, updates, 1)
	require.Equal(t, DeathCauseCorpseCollision, updates[0].Cause)
}

func TestClassifyConvergingHeadsBothPass(t *testing.T) {
	// Both snakes step into the same empty cell on the same tick. Each
	// is judged against the other's pre-move body only, so neither
	// dies at that cell.
	snakeA := &Snake{
		ID:      PlayerOneID,
		Body:    []Point{{Row: 3, Col: 2}},
		Heading: Right,
	}
	snakeB := &Snake{
		ID:      PlayerTwoID,
		Body:    []Point{{Row: 3, Col: 4}},
		Heading: Left,
	}
	g := testGame(10, 8, snakeA, snakeB)

	require.Empty(t, classify(t, g))
}

func TestClassifyIgnoresDeadBodies(t *testing.T) {
	// A dead snake's body no longer counts as a snake collision; its
	// cells block through the corpse set instead.
	dead := &Snake{
		ID:    PlayerTwoID,
		Body:  []Point{{Row: 3, Col: 3}},
		Death: &Death{Turn: 1, Cause: DeathCauseWallCollision},
	}
	snake := &Snake{
		ID:      PlayerOneID,
		Body:    []Point{{Row: 3, Col: 2}},
		Heading: Right,
	}
	g := testGame(10, 8, snake, dead)
	g.Corpse[Point{Row: 3, Col: 3}] = struct{}{}

	updates := classify(t, g)
	require.Len(t, updates, 1)
	require.Equal(t, DeathCauseCorpseCollision, updates[0].Cause)
}
