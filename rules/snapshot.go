package rules

// Snapshot is a deep, point-in-time copy of everything a renderer
// needs. Mutating a snapshot never touches the live game, and the game
// never hands out interior slices or maps.
type Snapshot struct {
	GameID    string
	Width     int
	Height    int
	Turn      int
	Status    GameStatus
	Mode      GameMode
	Snakes    []SnakeState
	Corpse    []Point
	Food      *Point
	Winner    string
	Tie       bool
	BoardFull bool
}

// SnakeState is one snake's view inside a Snapshot.
type SnakeState struct {
	ID         string
	Name       string
	Body       []Point
	Heading    Heading
	Alive      bool
	DeathCause string
	Score      int
}

// Snapshot copies the current state out of the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		GameID:    g.ID,
		Width:     g.Board.Width,
		Height:    g.Board.Height,
		Turn:      g.Turn,
		Status:    g.Status,
		Mode:      g.Mode(),
		Snakes:    make([]SnakeState, 0, len(g.Snakes)),
		Corpse:    make([]Point, 0, len(g.Corpse)),
		Winner:    g.Winner,
		Tie:       g.Tie,
		BoardFull: g.BoardFull,
	}
	for _, s := range g.Snakes {
		state := SnakeState{
			ID:      s.ID,
			Name:    s.Name,
			Body:    append([]Point(nil), s.Body...),
			Heading: s.Heading,
			Alive:   s.Alive(),
			Score:   s.Score,
		}
		if s.Death != nil {
			state.DeathCause = s.Death.Cause
		}
		snap.Snakes = append(snap.Snakes, state)
	}
	for p := range g.Corpse {
		snap.Corpse = append(snap.Corpse, p)
	}
	if g.Food != nil {
		f := *g.Food
		snap.Food = &f
	}
	return snap
}
