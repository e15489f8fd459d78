package commands

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakearcade/snake/render/window"
	"github.com/snakearcade/snake/rules"
	"github.com/snakearcade/snake/worker"
)

func init() {
	playCmd.Flags().AddFlagSet(gameFlags())
}

var playCmd = &cobra.Command{
	Use:    "play",
	Short:  "plays snake in a window",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	RunE: func(*cobra.Command, []string) error {
		engine := rules.New()
		runner := worker.NewRunner(engine)
		stop := spectate(runner)
		defer stop()
		closeRecording, err := recordTo(runner)
		if err != nil {
			return err
		}
		defer closeRecording()

		err = runner.RunAlongside(context.Background(), func() error {
			return window.Run(window.New(runner, engine))
		})
		if err != nil {
			log.WithError(err).WithField("game", engine.ID()).Error("game ended with an error")
		}
		return err
	},
}
