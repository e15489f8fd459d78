package rules

// Frame is a read-only snapshot of a game, everything a renderer needs to
// draw one tick. Frames never share memory with the engine.
type Frame struct {
	ID        string    `json:"id"`
	Turn      int       `json:"turn"`
	Snake     []Point   `json:"snake"`
	Apple     Point     `json:"apple"`
	Direction Direction `json:"direction"`
	Score     int       `json:"score"`
	State     RunState  `json:"state"`
	Death     *Death    `json:"death,omitempty"`
}

// Head returns the first point in the body
func (f Frame) Head() (Point, bool) {
	if len(f.Snake) == 0 {
		return Point{}, false
	}
	return f.Snake[0], true
}

// GameOver reports whether the game in this frame has ended.
func (f Frame) GameOver() bool {
	return f.State == StateGameOver
}

// Occupied reports whether any body segment sits on p.
func (f Frame) Occupied(p Point) bool {
	for _, b := range f.Snake {
		if b.Equal(p) {
			return true
		}
	}
	return false
}
