package rules

// checkForDeath looks at the snake with its updated coords and reports how it
// died, or nil if it is still alive. The head dies by leaving the board or by
// landing on any other segment of its own body.
func checkForDeath(width, height, turn int, body []Point) *Death {
	if len(body) == 0 {
		return nil
	}
	head := body[0]
	if deathByOutOfBounds(head, width, height) {
		return &Death{Turn: turn, Cause: DeathCauseWallCollision}
	}

	for i, b := range body {
		if i == 0 {
			continue
		}
		if deathByBodyCollision(head, b) {
			return &Death{Turn: turn, Cause: DeathCauseSnakeSelfCollision}
		}
	}
	return nil
}

func deathByBodyCollision(head, body Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head Point, width, height int) bool {
	return !inBounds(head, width, height)
}
