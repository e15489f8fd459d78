package commands

import (
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakearcade/snake/api"
)

func init() {
	statusCmd.Flags().StringVar(&apiAddr, "addr", apiAddr, "address of the spectator api")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "prints the latest frame of a spectated game",
	Run: func(*cobra.Command, []string) {
		frame, err := api.Status(apiAddr)
		if err != nil {
			log.WithError(err).WithField("addr", apiAddr).Fatal("unable to get status")
		}
		spew.Dump(frame)
	},
}
