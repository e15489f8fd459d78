package rules

const (
	// DeathCauseSnakeSelfCollision is when the snake's head runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
)

// Death records the turn and reason a game ended.
type Death struct {
	Turn  int    `json:"turn"`
	Cause string `json:"cause"`
}
