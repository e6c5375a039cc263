package rules

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// GameMode says how many players a game was created with.
type GameMode string

const (
	// GameModeSinglePlayer is one snake; the game ends when it dies.
	GameModeSinglePlayer GameMode = "single-player"
	// GameModeTwoPlayer is two snakes on one board; the game ends when
	// both are dead and the higher score wins.
	GameModeTwoPlayer GameMode = "two-player"
)

// Game is the whole simulation: board, snakes, food, corpse cells,
// scores and the lifecycle state machine. It is the single owner of
// all mutable state and must be driven from one goroutine; every
// operation is a plain, non-blocking state mutation.
type Game struct {
	ID     string
	Board  Board
	Snakes []*Snake
	Turn   int

	// Food is nil while the board has no free cell for it; see
	// BoardFull.
	Food   *Point
	Corpse map[Point]struct{}

	Status GameStatus
	// Winner is the id of the winning snake once a two-player game is
	// complete; empty on a tie or in single-player mode.
	Winner string
	Tie    bool
	// BoardFull is set when food could not be spawned. The next tick
	// retries, since deaths can free cells.
	BoardFull bool

	players int
	reward  int
	rnd     *rand.Rand
}

// Mode reports whether this is a single or two player game.
func (g *Game) Mode() GameMode {
	if g.players > 1 {
		return GameModeTwoPlayer
	}
	return GameModeSinglePlayer
}

// AliveSnakes returns all the alive snakes.
func (g *Game) AliveSnakes() []*Snake {
	snakes := []*Snake{}
	for _, s := range g.Snakes {
		if s.Alive() {
			snakes = append(snakes, s)
		}
	}
	return snakes
}

func (g *Game) snakeByID(id string) *Snake {
	for _, s := range g.Snakes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// occupied returns every cell covered by a snake body or a corpse.
func (g *Game) occupied() map[Point]struct{} {
	cells := map[Point]struct{}{}
	for p := range g.Corpse {
		cells[p] = struct{}{}
	}
	for _, s := range g.Snakes {
		for _, b := range s.Body {
			cells[b] = struct{}{}
		}
	}
	return cells
}

// Start begins play. It only has an effect on a fresh game that has
// not started yet.
func (g *Game) Start() {
	if g.Status != GameStatusNotStarted {
		return
	}
	g.Status = GameStatusRunning
	log.WithFields(log.Fields{
		"game": g.ID,
		"mode": g.Mode(),
	}).Info("game started")
}

// TogglePause flips between Running and Paused. Finished games stay
// finished.
func (g *Game) TogglePause() {
	switch g.Status {
	case GameStatusRunning:
		g.Status = GameStatusPaused
	case GameStatusPaused:
		g.Status = GameStatusRunning
	}
}

// Restart throws the current round away and begins a new one on the
// same board, in the same mode, immediately. It succeeds from any
// state and never leaves a partial round behind.
func (g *Game) Restart() {
	g.reset()
	g.Status = GameStatusRunning
	log.WithFields(log.Fields{
		"game": g.ID,
		"mode": g.Mode(),
	}).Info("game restarted")
}

// SetHeading steers a snake. Unknown ids, dead snakes and reversal
// requests are all ignored; when several requests land between two
// ticks the last accepted heading is the one the tick uses.
func (g *Game) SetHeading(id string, h Heading) {
	s := g.snakeByID(id)
	if s == nil || !s.Alive() {
		return
	}
	s.SetHeading(h)
}
