package rules

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// Tick advances the game one turn. It moves the snake, lets it eat, and
// checks for death. It does nothing once the game is over and reports
// whether a turn was played.
func (e *Engine) Tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateGameOver {
		return false
	}

	e.turn++
	e.direction = e.pending

	// 1. move the head
	e.body = move(e.body, e.direction)
	head := e.body[0]

	// 2. grow if the apple was eaten, otherwise drop the tail
	if head.Equal(e.apple) {
		e.score++
		e.logger().WithFields(log.Fields{
			"apple":  e.apple,
			"score":  e.score,
			"length": len(e.body),
		}).Info("snake ate")
		e.placeApple()
	} else {
		e.body = e.body[:len(e.body)-1]
	}

	// 3. check for death
	//    a - wall collision
	//    b - self collision
	if death := checkForDeath(GridWidth, GridHeight, e.turn, e.body); death != nil {
		e.state = StateGameOver
		e.death = death
		e.logger().WithFields(log.Fields{
			"cause": death.Cause,
			"head":  head,
			"score": e.score,
		}).Info("game over")
		return true
	}

	e.logger().WithFields(log.Fields{
		"head":      head,
		"direction": e.direction,
	}).Debug("tick")
	return true
}

// placeApple moves the apple to a random cell the snake does not cover. If
// the snake fills the board the apple stays where it was.
func (e *Engine) placeApple() {
	p, ok := getUnoccupiedPoint(e.rng, GridWidth, GridHeight, e.body)
	if !ok {
		e.logger().Warn("no unoccupied cell left for the apple")
		return
	}
	e.apple = p
}

func getUnoccupiedPoint(rng *rand.Rand, width, height int, body []Point) (Point, bool) {
	openPoints := getUnoccupiedPoints(width, height, body)

	if len(openPoints) == 0 {
		return Point{}, false
	}

	return openPoints[rng.Intn(len(openPoints))], true
}

func getUnoccupiedPoints(width, height int, body []Point) []Point {
	occupied := make(map[Point]struct{}, len(body))
	for _, b := range body {
		occupied[b] = struct{}{}
	}

	candidatePoints := make([]Point, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			p := Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}

	return candidatePoints
}
