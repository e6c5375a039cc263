package rules

type deathUpdate struct {
	Snake *Snake
	Cause string
}

// classifyMoves judges every proposed move against the bodies exactly
// as they stood before any snake advanced this tick. One snake's move
// never changes another's classification within the same tick; two
// heads converging on the same empty cell both pass, each checked only
// against the other's old body.
func classifyMoves(b Board, snakes []*Snake, corpse map[Point]struct{}, moves []moveProposal) []deathUpdate {
	updates := []deathUpdate{}
	for _, m := range moves {
		if cause, dead := classifyMove(b, snakes, corpse, m); dead {
			updates = append(updates, deathUpdate{Snake: m.Snake, Cause: cause})
		}
	}
	return updates
}

func classifyMove(b Board, snakes []*Snake, corpse map[Point]struct{}, m moveProposal) (string, bool) {
	if !b.Contains(m.Next) {
		return DeathCauseWallCollision, true
	}
	// The current tail cell counts: it only vacates after the move.
	if m.Snake.Contains(m.Next) {
		return DeathCauseSelfCollision, true
	}
	for _, other := range snakes {
		if other == m.Snake || !other.Alive() {
			continue
		}
		if other.Contains(m.Next) {
			return DeathCauseSnakeCollision, true
		}
	}
	if _, ok := corpse[m.Next]; ok {
		return DeathCauseCorpseCollision, true
	}
	return "", false
}
