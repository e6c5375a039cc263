package rules

const (
	// DeathCauseWallCollision is when a snake runs off the board.
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSelfCollision is when a snake runs into its own body.
	DeathCauseSelfCollision = "self-collision"
	// DeathCauseSnakeCollision is when a snake runs into the other snake's body.
	DeathCauseSnakeCollision = "snake-collision"
	// DeathCauseCorpseCollision is when a snake runs into the remains of a dead snake.
	DeathCauseCorpseCollision = "corpse-collision"
)
