// Package version holds the build version, set with -ldflags at release time.
package version

// Version is the release version of the game.
var Version = "dev"
