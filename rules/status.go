package rules

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	// GameStatusNotStarted represents a game waiting for its start signal
	GameStatusNotStarted GameStatus = "not-started"
	// GameStatusRunning represents a running game
	GameStatusRunning GameStatus = "running"
	// GameStatusPaused represents a running game that is temporarily suspended
	GameStatusPaused GameStatus = "paused"
	// GameStatusComplete represents a game that is done
	GameStatusComplete GameStatus = "complete"
)
