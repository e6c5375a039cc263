package rules

import (
	log "github.com/sirupsen/logrus"
)

// moveProposal pairs a snake with the cell its heading points at,
// captured before anything moves.
type moveProposal struct {
	Snake *Snake
	Next  Point
}

// Tick advances the simulation one step: every live snake proposes its
// next head, all proposals are classified against the pre-move bodies,
// and only then do the survivors advance. Outside Running it does
// nothing, so an external clock can fire it unconditionally.
func (g *Game) Tick() {
	if g.Status != GameStatusRunning {
		return
	}
	g.Turn++

	moves := g.proposeMoves()
	for _, du := range classifyMoves(g.Board, g.Snakes, g.Corpse, moves) {
		g.killSnake(du.Snake, du.Cause)
	}

	ate := false
	for _, m := range moves {
		if !m.Snake.Alive() {
			continue
		}
		if g.Food != nil && m.Next == *g.Food {
			m.Snake.Grow(1)
			m.Snake.Score += g.reward
			ate = true
			log.WithFields(log.Fields{
				"game":  g.ID,
				"turn":  g.Turn,
				"snake": m.Snake.ID,
				"score": m.Snake.Score,
			}).Info("snake ate")
		}
		m.Snake.Advance(m.Next)
	}
	if ate {
		g.Food = nil
	}
	if g.Food == nil {
		// Covers both eaten food and a previously full board.
		g.placeFood()
	}

	g.checkGameOver()
}

func (g *Game) proposeMoves() []moveProposal {
	moves := make([]moveProposal, 0, len(g.Snakes))
	for _, s := range g.AliveSnakes() {
		moves = append(moves, moveProposal{Snake: s, Next: s.NextHead()})
	}
	return moves
}

// killSnake marks the snake dead where it stands and freezes its
// pre-move body into the corpse set, where it blocks movement until
// the next restart.
func (g *Game) killSnake(s *Snake, cause string) {
	s.Death = &Death{Turn: g.Turn, Cause: cause}
	for _, b := range s.Body {
		g.Corpse[b] = struct{}{}
	}
	log.WithFields(log.Fields{
		"game":  g.ID,
		"turn":  g.Turn,
		"snake": s.ID,
		"cause": cause,
	}).Info("snake died")
}

// placeFood spawns a replacement food cell, excluding every body and
// corpse cell as they stand after this tick's moves. When no cell is
// free the board-full flag goes up, food stays absent and the next
// tick retries.
func (g *Game) placeFood() {
	p, err := spawnFood(g.Board, g.occupied(), g.rnd)
	if err != nil {
		g.Food = nil
		g.BoardFull = true
		log.WithFields(log.Fields{
			"game": g.ID,
			"turn": g.Turn,
		}).Warn("no free cell for food")
		return
	}
	g.Food = &p
	g.BoardFull = false
}

// checkGameOver flips the game into its terminal state once the last
// snake dies. In a two-player game the survivor keeps moving and
// scoring after the first death.
func (g *Game) checkGameOver() {
	if len(g.AliveSnakes()) > 0 {
		return
	}
	g.Status = GameStatusComplete
	if g.Mode() == GameModeTwoPlayer {
		one, two := g.Snakes[0], g.Snakes[1]
		switch {
		case one.Score > two.Score:
			g.Winner = one.ID
		case two.Score > one.Score:
			g.Winner = two.ID
		default:
			g.Tie = true
		}
	}
	log.WithFields(log.Fields{
		"game":   g.ID,
		"turn":   g.Turn,
		"winner": g.Winner,
		"tie":    g.Tie,
	}).Info("game over")
}
