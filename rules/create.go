package rules

import (
	"math/rand"
	"time"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRand sets the random source used to place apples.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// WithSnake seeds the first game with a custom body, head first, heading in
// direction d. Restart always goes back to the standard starting position.
func WithSnake(d Direction, body ...Point) Option {
	return func(e *Engine) {
		if len(body) == 0 || !d.Valid() {
			return
		}
		e.body = append([]Point(nil), body...)
		e.direction = d
		e.pending = d
	}
}

// New creates an engine holding a fresh game and starts it.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:  uuid.NewV4().String(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.reset()
	for _, opt := range opts {
		opt(e)
	}

	log.WithFields(log.Fields{
		"game":   e.id,
		"length": len(e.body),
		"head":   e.body[0],
	}).Debug("created game")

	e.Start()
	return e
}

// reset puts the snake back on the start point and clears the score.
func (e *Engine) reset() {
	e.body = InitialSnake()
	e.direction = DirectionRight
	e.pending = DirectionRight
	e.score = 0
	e.turn = 0
	e.death = nil
}
