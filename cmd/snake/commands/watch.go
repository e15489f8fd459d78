package commands

import (
	"context"
	"time"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakearcade/snake/api"
	"github.com/snakearcade/snake/render/term"
	"github.com/snakearcade/snake/rules"
)

func init() {
	watchCmd.Flags().StringVar(&apiAddr, "addr", apiAddr, "address of the spectator api")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "watches a game served with --spectate-listen",
	RunE: func(*cobra.Command, []string) error {
		restore, err := logToFile()
		if err != nil {
			return err
		}
		defer restore()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		stream, err := api.Watch(ctx, apiAddr)
		cancel()
		if err != nil {
			return err
		}
		defer func() {
			if err := stream.Close(); err != nil {
				log.WithError(err).Warn("unable to close spectator feed")
			}
		}()

		select {
		case <-stream.Frames.InitialFrame():
		case <-stream.Done():
			if err := stream.Err(); err != nil {
				return err
			}
			return errors.New("spectator feed closed before the first frame")
		case <-time.After(time.Second):
			return errors.New("no frame received from spectator feed")
		}

		if err := term.Init(); err != nil {
			return err
		}
		defer term.Close()

		return watch(stream.Frames, term.Events())
	},
}

// watch plays frames as they arrive. Space pauses, the arrow keys step
// through the history and Esc quits.
func watch(frames *api.FrameHolder, events <-chan termbox.Event) error {
	r := term.NewRenderer()
	cycle := time.NewTicker(rules.TickInterval)
	defer cycle.Stop()

	index := 0
	paused := false
	show := func() error {
		frame, ok := frames.Get(index)
		if !ok {
			return nil
		}
		r.Caption = "LIVE"
		if paused {
			r.Caption = "PAUSED"
		}
		return r.Render(frame)
	}
	if err := show(); err != nil {
		return err
	}

	for {
		select {
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC:
				return nil
			case termbox.KeySpace:
				paused = !paused
			case termbox.KeyArrowLeft:
				paused = true
				if index > 0 {
					index--
				}
			case termbox.KeyArrowRight:
				paused = true
				if index < frames.Count()-1 {
					index++
				}
			}
			if err := show(); err != nil {
				return err
			}
		case <-cycle.C:
			if paused || index >= frames.Count()-1 {
				continue
			}
			index++
			if err := show(); err != nil {
				return err
			}
		}
	}
}
