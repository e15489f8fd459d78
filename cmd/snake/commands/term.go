package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/snakearcade/snake/render/term"
	"github.com/snakearcade/snake/rules"
	"github.com/snakearcade/snake/worker"
)

func init() {
	termCmd.Flags().AddFlagSet(gameFlags())
}

var termCmd = &cobra.Command{
	Use:    "term",
	Short:  "plays snake in the terminal",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	RunE: func(*cobra.Command, []string) error {
		restore, err := logToFile()
		if err != nil {
			return err
		}
		defer restore()

		if err := term.Init(); err != nil {
			return err
		}
		defer term.Close()

		runner := worker.NewRunner(rules.New())
		runner.Renderers = append(runner.Renderers, term.NewRenderer())
		stop := spectate(runner)
		defer stop()
		closeRecording, err := recordTo(runner)
		if err != nil {
			return err
		}
		defer closeRecording()

		go func() {
			for ev := range term.Events() {
				runner.Handle(term.ActionForEvent(ev))
			}
		}()

		return runner.Run(context.Background())
	},
}
