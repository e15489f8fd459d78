package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/snakearcade/snake/config"
	"github.com/snakearcade/snake/version"
)

var rootCmd = &cobra.Command{
	Use:               "snake",
	Short:             "snake is a single player arcade game",
	Version:           version.Version,
	PersistentPreRunE: setupLogging,
	PreRun: func(c *cobra.Command, args []string) {
		playCmd.PreRun(c, args)
	},
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	logLevel       = config.LogLevel
	logJSON        bool
	spectateListen string
	apiAddr        = "http://localhost:3005"
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as json")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging(*cobra.Command, []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	log.SetLevel(level)
	if logJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
	return nil
}

// logToFile sends logs to config.LogFile while a terminal front end owns
// the screen. The returned func restores stderr.
func logToFile() (func(), error) {
	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", config.LogFile)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("unable to close log file")
		}
	}, nil
}
