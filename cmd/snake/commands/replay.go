package commands

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakearcade/snake/api"
	"github.com/snakearcade/snake/record"
	"github.com/snakearcade/snake/render/term"
)

var replayFile string

func init() {
	replayCmd.Flags().StringVarP(&replayFile, "file", "f", "", "recording made with --record")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replays a recorded game in the terminal",
	Args: func(c *cobra.Command, args []string) error {
		if len(replayFile) == 0 {
			return errors.New("--file is required")
		}
		return nil
	},
	RunE: func(*cobra.Command, []string) error {
		info, frames, err := record.ReadFile(replayFile)
		if err != nil {
			return err
		}
		if len(frames) == 0 {
			return errors.Errorf("%s has no frames", replayFile)
		}
		log.WithFields(log.Fields{
			"file":    replayFile,
			"version": info.Version,
			"frames":  len(frames),
		}).Info("replaying game")

		holder := api.NewFrameHolder()
		for _, f := range frames {
			holder.Append(f)
		}

		if err := term.Init(); err != nil {
			return err
		}
		defer term.Close()

		return watch(holder, term.Events())
	},
}
