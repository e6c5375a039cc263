package rules

import (
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

// testGame wires up a running game around preset snakes, skipping
// NewGame so tests control every cell. Food starts absent; set
// g.Food explicitly where a test needs it.
func testGame(width, height int, snakes ...*Snake) *Game {
	return &Game{
		ID:      "test-game",
		Board:   Board{Width: width, Height: height},
		Snakes:  snakes,
		Corpse:  map[Point]struct{}{},
		Status:  GameStatusRunning,
		players: len(snakes),
		reward:  10,
		rnd:     rand.New(rand.NewSource(1)),
	}
}

func foodAt(p Point) *Point {
	return &p
}
