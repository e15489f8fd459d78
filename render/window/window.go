// Package window draws the game in a desktop window with ebiten.
//
// Ebiten owns the main thread and calls Update at its own rate; the game
// itself is ticked by a worker.Runner on another goroutine. Update only
// forwards key presses and Draw only reads the latest frame.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/snakearcade/snake/render"
	"github.com/snakearcade/snake/rules"
	"github.com/snakearcade/snake/worker"
)

// basicfont.Face7x13 glyph metrics.
const (
	glyphWidth  = 7
	glyphHeight = 13
)

// Controller receives player actions.
type Controller interface {
	Handle(worker.Action)
	Done() <-chan struct{}
}

// FrameSource provides the frame to draw.
type FrameSource interface {
	Frame() rules.Frame
}

var keys = map[ebiten.Key]worker.Action{
	ebiten.KeyArrowUp:    worker.ActionUp,
	ebiten.KeyArrowDown:  worker.ActionDown,
	ebiten.KeyArrowLeft:  worker.ActionLeft,
	ebiten.KeyArrowRight: worker.ActionRight,
	ebiten.KeyR:          worker.ActionRestart,
	ebiten.KeyEscape:     worker.ActionQuit,
}

// Game implements ebiten.Game.
type Game struct {
	controller Controller
	frames     FrameSource
	labels     *render.Labels[*ebiten.Image]
}

// New returns a window game steering controller and drawing frames.
func New(controller Controller, frames FrameSource) *Game {
	return &Game{
		controller: controller,
		frames:     frames,
		labels:     render.NewLabels(newLabel, (*ebiten.Image).Dispose),
	}
}

// Run opens the window and blocks until it is closed or the game quits.
func Run(g *Game) error {
	ebiten.SetWindowTitle(render.Title)
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(rules.ScreenWidth, rules.ScreenHeight)
	return ebiten.RunGame(g)
}

// Update forwards key presses to the controller.
func (g *Game) Update() error {
	select {
	case <-g.controller.Done():
		return ebiten.Termination
	default:
	}

	for key, action := range keys {
		if inpututil.IsKeyJustPressed(key) {
			g.controller.Handle(action)
		}
	}
	return nil
}

// Draw renders the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundColor)
	frame := g.frames.Frame()

	if frame.GameOver() {
		g.drawGameOver(screen, frame)
		return
	}

	ax, ay := frame.Apple.Pixels()
	half := float32(rules.CellSize) / 2
	vector.DrawFilledCircle(screen, float32(ax)+half, float32(ay)+half, half, render.AppleColor, true)

	for i := len(frame.Snake) - 1; i >= 0; i-- {
		c := render.BodyColor
		if i == 0 {
			c = render.HeadColor
		}
		x, y := frame.Snake[i].Pixels()
		vector.DrawFilledRect(screen, float32(x), float32(y), rules.CellSize, rules.CellSize, c, false)
	}

	g.drawLabel(screen, "score", render.ScoreText(frame.Score), 2, 4)
}

func (g *Game) drawGameOver(screen *ebiten.Image, frame rules.Frame) {
	g.drawLabel(screen, "score", render.ScoreText(frame.Score), 2, 4)
	g.drawLabel(screen, "game-over", render.GameOverText, 5, rules.ScreenHeight/2-glyphHeight*5)
	g.drawLabel(screen, "restart", render.RestartText, 2, rules.ScreenHeight/2+50)
}

// drawLabel draws msg centred horizontally at y, scaled up from the 7x13
// bitmap font. Each slot keeps its last rendered label.
func (g *Game) drawLabel(screen *ebiten.Image, slot, msg string, scale, y int) {
	img := g.labels.Get(slot, msg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(render.Center(rules.ScreenWidth, len(msg)*glyphWidth*scale)), float64(y))
	op.ColorScale.ScaleWithColor(render.TextColor)
	screen.DrawImage(img, op)
}

func newLabel(msg string) *ebiten.Image {
	img := ebiten.NewImage(len(msg)*glyphWidth, glyphHeight)
	text.Draw(img, msg, basicfont.Face7x13, 0, basicfont.Face7x13.Ascent, color.White)
	return img
}

// Layout keeps the logical screen at the board size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return rules.ScreenWidth, rules.ScreenHeight
}
