// Package worker drives a game session. It ticks the engine on a fixed
// period and hands every frame to the renderers and sinks attached to it.
// Input from a front end reaches the engine through Handle.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/snakearcade/snake/rules"
)

// Renderer draws a frame. It is called on the runner goroutine once per tick.
type Renderer interface {
	Render(rules.Frame) error
}

// FrameSink receives every frame the runner produces. Publish must not block.
type FrameSink interface {
	Publish(rules.Frame)
}

// RendererFunc adapts a plain function to a Renderer.
type RendererFunc func(rules.Frame) error

// Render calls f.
func (f RendererFunc) Render(frame rules.Frame) error { return f(frame) }

// Runner ticks a single game until its context is done or it is told to
// quit. The ticker stops while the game is over and starts again after a
// restart.
type Runner struct {
	Engine    *rules.Engine
	Interval  time.Duration
	Renderers []Renderer
	Sinks     []FrameSink

	restarted chan struct{}
	quit      chan struct{}
	quitOnce  sync.Once
}

// NewRunner returns a runner for e ticking every rules.TickInterval.
func NewRunner(e *rules.Engine) *Runner {
	return &Runner{
		Engine:    e,
		Interval:  rules.TickInterval,
		restarted: make(chan struct{}, 1),
		quit:      make(chan struct{}),
	}
}

// Run runs the game loop. It returns nil after ActionQuit, the context error
// when ctx is done, or the first render error.
func (r *Runner) Run(ctx context.Context) error {
	logger := log.WithField("game", r.Engine.ID())
	logger.WithField("interval", r.Interval).Info("starting game loop")

	if err := r.publish(r.Engine.Frame()); err != nil {
		return err
	}

	ticker := time.NewTicker(r.Interval)
	defer func() { ticker.Stop() }()
	tick := ticker.C

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-r.quit:
			logger.Info("quit requested")
			return nil

		case <-r.restarted:
			ticker.Stop()
			ticker = time.NewTicker(r.Interval)
			tick = ticker.C
			if err := r.publish(r.Engine.Frame()); err != nil {
				return err
			}

		case <-tick:
			frame, err := r.step()
			if err != nil {
				return err
			}
			if frame.GameOver() {
				ticker.Stop()
				tick = nil
				logger.WithFields(log.Fields{
					"turn":  frame.Turn,
					"score": frame.Score,
				}).Info("game over, waiting for restart")
			}
		}
	}
}

// step plays one turn and publishes the result.
func (r *Runner) step() (rules.Frame, error) {
	score := r.Engine.Score()

	done := instrument()
	played := r.Engine.Tick()
	done()

	frame := r.Engine.Frame()
	if played {
		observe(frame, score)
	}
	return frame, r.publish(frame)
}

func (r *Runner) publish(frame rules.Frame) error {
	for _, s := range r.Sinks {
		s.Publish(frame)
	}
	for _, rn := range r.Renderers {
		if err := rn.Render(frame); err != nil {
			return errors.Wrapf(err, "render turn %d", frame.Turn)
		}
	}
	return nil
}

// Handle applies a player action. It is safe to call from any goroutine.
func (r *Runner) Handle(a Action) {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		r.Engine.SetDirection(a.Direction())
	case ActionRestart:
		if !r.Engine.Restart() {
			return
		}
		restarts.Inc()
		select {
		case r.restarted <- struct{}{}:
		default:
		}
	case ActionQuit:
		r.quitOnce.Do(func() { close(r.quit) })
	}
}

// Done is closed once ActionQuit has been handled.
func (r *Runner) Done() <-chan struct{} {
	return r.quit
}

// RunAlongside runs the game loop on its own goroutine while front runs on
// the caller's goroutine. When front returns the loop is cancelled and
// waited for. The front end's error wins over the loop's.
func (r *Runner) RunAlongside(ctx context.Context, front func() error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() { loopErr <- r.Run(ctx) }()

	frontErr := front()
	cancel()
	err := <-loopErr
	if frontErr != nil {
		return frontErr
	}
	if err == context.Canceled {
		return nil
	}
	return err
}
