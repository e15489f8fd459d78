package rules

import (
	"math/rand"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Engine holds the state of one game session and advances it a tick at a
// time. It is safe to steer it from an input goroutine while another
// goroutine ticks it.
type Engine struct {
	mu sync.RWMutex

	id  string
	rng *rand.Rand

	body      []Point
	direction Direction
	pending   Direction
	apple     Point
	score     int
	turn      int
	state     RunState
	death     *Death
}

// Start places an apple on a free cell and sets the game running. It is
// called when the engine is created and on every restart.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.start()
}

func (e *Engine) start() {
	e.placeApple()
	e.state = StateRunning
	e.logger().WithField("apple", e.apple).Info("game started")
}

// SetDirection queues d as the heading for the next tick. A heading that
// reverses the current direction is rejected. Only the last accepted call
// before a tick takes effect.
func (e *Engine) SetDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if d == e.direction.Opposite() {
		return false
	}
	e.pending = d
	return true
}

// Restart resets a finished game to its starting position and starts it
// again. It is ignored while the game is still running.
func (e *Engine) Restart() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateGameOver {
		return false
	}
	score := e.score
	e.reset()
	e.logger().WithField("lastScore", score).Info("restarting game")
	e.start()
	return true
}

// Frame returns a snapshot of the game for rendering.
func (e *Engine) Frame() Frame {
	e.mu.RLock()
	defer e.mu.RUnlock()

	f := Frame{
		ID:        e.id,
		Turn:      e.turn,
		Snake:     append([]Point(nil), e.body...),
		Apple:     e.apple,
		Direction: e.direction,
		Score:     e.score,
		State:     e.state,
	}
	if e.death != nil {
		d := *e.death
		f.Death = &d
	}
	return f
}

// ID returns the session id used in logs and frames.
func (e *Engine) ID() string {
	return e.id
}

// State returns the current run state.
func (e *Engine) State() RunState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Score returns the number of apples eaten this game.
func (e *Engine) Score() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.score
}

// Direction returns the heading applied on the last tick.
func (e *Engine) Direction() Direction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.direction
}

// Apple returns the cell of the current apple.
func (e *Engine) Apple() Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.apple
}

// Head returns the cell of the snake's head.
func (e *Engine) Head() Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.body[0]
}

// Len returns the number of body segments.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.body)
}

func (e *Engine) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"game": e.id,
		"turn": e.turn,
	})
}
