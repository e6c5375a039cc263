package rules

import (
	"math/rand"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/snaketerm/engine/config"
)

// Snake ids used in input events and snapshots. PlayerTwoID only
// exists in two-player games.
const (
	PlayerOneID = "player-1"
	PlayerTwoID = "player-2"
)

// NewGame builds a game on a width x height board, waiting for Start.
// Dimensions are assumed to be validated already (see config.Game).
// The seed only feeds food placement: two games built with the same
// seed and fed the same inputs stay identical tick for tick.
func NewGame(width, height int, twoPlayer bool, seed int64) *Game {
	players := 1
	if twoPlayer {
		players = 2
	}
	g := &Game{
		Board:   Board{Width: width, Height: height},
		players: players,
		reward:  config.FoodReward,
		rnd:     rand.New(rand.NewSource(seed)),
	}
	g.reset()
	g.Status = GameStatusNotStarted
	log.WithFields(log.Fields{
		"game":   g.ID,
		"width":  width,
		"height": height,
		"mode":   g.Mode(),
	}).Info("game created")
	return g
}

// reset rebuilds snakes, food, scores and corpse cells for a fresh
// round on the same board.
func (g *Game) reset() {
	g.ID = uuid.NewV4().String()
	g.Turn = 0
	g.Snakes = startingSnakes(g.Board, g.players)
	g.Corpse = map[Point]struct{}{}
	g.Winner = ""
	g.Tie = false
	g.Food = nil
	g.BoardFull = false
	g.placeFood()
}

func startingSnakes(b Board, players int) []*Snake {
	if players == 1 {
		return []*Snake{{
			ID:      PlayerOneID,
			Name:    "Player 1",
			Body:    []Point{{Row: b.Height / 2, Col: b.Width / 2}},
			Heading: Right,
		}}
	}
	return []*Snake{
		{
			ID:      PlayerOneID,
			Name:    "Player 1",
			Body:    []Point{{Row: b.Height / 2, Col: b.Width / 4}},
			Heading: Right,
		},
		{
			ID:      PlayerTwoID,
			Name:    "Player 2",
			Body:    []Point{{Row: b.Height / 2, Col: 3 * b.Width / 4}},
			Heading: Left,
		},
	}
}
