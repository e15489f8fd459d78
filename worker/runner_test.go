package worker

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/snakearcade/snake/rules"
)

type recorder struct {
	sync.Mutex
	frames []rules.Frame
}

func (rec *recorder) Publish(f rules.Frame) {
	rec.Lock()
	defer rec.Unlock()
	rec.frames = append(rec.frames, f)
}

func (rec *recorder) count() int {
	rec.Lock()
	defer rec.Unlock()
	return len(rec.frames)
}

func (rec *recorder) last() rules.Frame {
	rec.Lock()
	defer rec.Unlock()
	return rec.frames[len(rec.frames)-1]
}

func (rec *recorder) since(n int) []rules.Frame {
	rec.Lock()
	defer rec.Unlock()
	return append([]rules.Frame(nil), rec.frames[n:]...)
}

func testRunner(opts ...rules.Option) (*Runner, *recorder) {
	opts = append([]rules.Option{rules.WithRand(rand.New(rand.NewSource(3)))}, opts...)
	r := NewRunner(rules.New(opts...))
	r.Interval = time.Millisecond
	rec := &recorder{}
	r.Sinks = append(r.Sinks, rec)
	return r, rec
}

func TestRunnerStopsTickingOnGameOver(t *testing.T) {
	r, rec := testRunner(rules.WithSnake(rules.DirectionUp, rules.Point{X: 3, Y: 1}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()

	require.Eventually(t, func() bool {
		return rec.count() > 0 && rec.last().GameOver()
	}, time.Second, time.Millisecond)

	frames := rec.count()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, frames, rec.count(), "runner kept ticking after game over")

	last := rec.last()
	require.Equal(t, rules.DeathCauseWallCollision, last.Death.Cause)

	r.Handle(ActionRestart)
	require.Eventually(t, func() bool {
		for _, f := range rec.since(frames) {
			if f.State == rules.StateRunning && f.Turn > 0 {
				return true
			}
		}
		return false
	}, time.Second, time.Millisecond)

	r.Handle(ActionQuit)
	r.Handle(ActionQuit)
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(time.Second):
		require.Fail(t, "runner did not quit")
	}
}

func TestRunnerContextCancel(t *testing.T) {
	r, rec := testRunner()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	require.Equal(t, context.DeadlineExceeded, err)
	require.True(t, rec.count() > 1)
	require.Equal(t, rec.frames[0].ID, r.Engine.ID())
}

func TestRunnerRenderError(t *testing.T) {
	r, _ := testRunner()
	r.Renderers = append(r.Renderers, RendererFunc(func(f rules.Frame) error {
		if f.Turn == 2 {
			return errors.New("screen gone")
		}
		return nil
	}))

	err := r.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "render turn 2")
	require.Contains(t, err.Error(), "screen gone")
}

func TestRunnerHandleSteers(t *testing.T) {
	r, _ := testRunner()

	r.Handle(ActionLeft)
	r.Handle(ActionUp)
	r.Engine.Tick()
	require.Equal(t, rules.DirectionUp, r.Engine.Direction())

	r.Handle(ActionDown)
	r.Engine.Tick()
	require.Equal(t, rules.DirectionUp, r.Engine.Direction())

	r.Handle(ActionRestart)
	require.Equal(t, rules.StateRunning, r.Engine.State())
	select {
	case <-r.restarted:
		require.Fail(t, "restart signalled while running")
	default:
	}
}

func TestActionNames(t *testing.T) {
	require.Equal(t, "restart", ActionRestart.String())
	require.Equal(t, "unknown", Action(99).String())
	require.Equal(t, rules.DirectionLeft, ActionLeft.Direction())
	require.Equal(t, rules.Direction(""), ActionQuit.Direction())
}

func TestRunAlongsideFrontError(t *testing.T) {
	r, rec := testRunner()

	err := r.RunAlongside(context.Background(), func() error {
		require.Eventually(t, func() bool { return rec.count() > 2 }, time.Second, time.Millisecond)
		return errors.New("window closed badly")
	})
	require.EqualError(t, err, "window closed badly")

	frames := rec.count()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, frames, rec.count(), "loop kept running after the front end returned")
}

func TestRunAlongsideQuit(t *testing.T) {
	r, _ := testRunner()

	err := r.RunAlongside(context.Background(), func() error {
		r.Handle(ActionQuit)
		<-r.Done()
		return nil
	})
	require.NoError(t, err)
}

func TestRunAlongsideLoopError(t *testing.T) {
	r, _ := testRunner()
	r.Renderers = append(r.Renderers, RendererFunc(func(f rules.Frame) error {
		if f.Turn == 1 {
			return errors.New("screen gone")
		}
		return nil
	}))

	err := r.RunAlongside(context.Background(), func() error {
		time.Sleep(20 * time.Millisecond)
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "render turn 1")
}
