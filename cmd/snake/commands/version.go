package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snakearcade/snake/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the version",
	Run: func(*cobra.Command, []string) {
		fmt.Println(version.Version)
	},
}
