// Package render holds what the front ends agree on: the text they show and
// the colours they draw with.
package render

import (
	"fmt"
	"image/color"
)

// Text shown by every front end.
const (
	GameOverText = "Game Over"
	RestartText  = "Press 'R' to restart"
	Title        = "Snake"
)

// Colours of the board.
var (
	BackgroundColor = color.RGBA{A: 255}
	AppleColor      = color.RGBA{R: 255, A: 255}
	HeadColor       = color.RGBA{G: 255, A: 255}
	BodyColor       = color.RGBA{R: 45, G: 180, A: 255}
	TextColor       = color.RGBA{R: 255, A: 255}
)

// ScoreText formats the score line.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Center returns the offset that centres something width wide inside total.
func Center(total, width int) int {
	return (total - width) / 2
}
