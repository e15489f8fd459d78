package rules

// RunState is the lifecycle state of a game.
type RunState string

const (
	// StateRunning represents a game that is still being ticked
	StateRunning RunState = "running"
	// StateGameOver represents a game that ended in a collision, it stays
	// this way until the game is restarted
	StateGameOver RunState = "game-over"
)
