// Package term draws the game in a terminal with termbox.
package term

import (
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"github.com/snakearcade/snake/render"
	"github.com/snakearcade/snake/rules"
	"github.com/snakearcade/snake/worker"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	appleColor   = termbox.ColorRed
	textColor    = termbox.ColorRed

	// cellWidth is the number of terminal columns per board cell, which
	// keeps cells roughly square.
	cellWidth = 2
)

// Renderer draws frames into the terminal. Init must be called first.
type Renderer struct {
	layout layout
	// Caption is drawn under the board when set.
	Caption string
}

// NewRenderer returns a renderer with the board at the top left of the
// screen.
func NewRenderer() *Renderer {
	return &Renderer{layout: layout{left: 2, top: 3}}
}

// Init takes over the terminal.
func Init() error {
	return errors.Wrap(termbox.Init(), "termbox init")
}

// Close gives the terminal back.
func Close() {
	termbox.Close()
}

// Render draws a single frame.
func (r *Renderer) Render(frame rules.Frame) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	l := r.layout
	renderBoard(l)
	renderApple(l, frame.Apple)
	renderSnake(l, frame.Snake)

	score := render.ScoreText(frame.Score)
	tbprint(l.center(score), l.top-2, textColor|termbox.AttrBold, bgColor, score)

	if frame.GameOver() {
		renderGameOver(l, frame)
	}
	if r.Caption != "" {
		tbprint(l.left, l.bottom()+1, defaultColor, bgColor, r.Caption)
	}

	return termbox.Flush()
}

func renderBoard(l layout) {
	right := l.right()
	bottom := l.bottom()
	for y := l.top; y < bottom; y++ {
		termbox.SetCell(l.left-1, y, '│', defaultColor, bgColor)
		termbox.SetCell(right, y, '│', defaultColor, bgColor)
	}

	termbox.SetCell(l.left-1, l.top-1, '┌', defaultColor, bgColor)
	termbox.SetCell(l.left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, l.top-1, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(l.left, l.top-1, right-l.left, 1, termbox.Cell{Ch: '─'})
	fill(l.left, bottom, right-l.left, 1, termbox.Cell{Ch: '─'})
}

func renderApple(l layout, apple rules.Point) {
	x, y, ok := l.cell(apple)
	if !ok {
		return
	}
	termbox.SetCell(x, y, '●', appleColor, bgColor)
}

func renderSnake(l layout, body []rules.Point) {
	// draw tail first so the head stays on top of stacked segments
	for i := len(body) - 1; i >= 0; i-- {
		x, y, ok := l.cell(body[i])
		if !ok {
			continue
		}
		ch, fg := '▓', snakeColor
		if i == 0 {
			ch, fg = '█', snakeColor|termbox.AttrBold
		}
		for dx := 0; dx < cellWidth; dx++ {
			termbox.SetCell(x+dx, y, ch, fg, bgColor)
		}
	}
}

func renderGameOver(l layout, frame rules.Frame) {
	mid := l.top + rules.GridHeight/2
	lines := []string{
		render.GameOverText,
		render.ScoreText(frame.Score),
		"",
		render.RestartText,
	}
	for i, line := range lines {
		tbprint(l.center(line), mid-2+i, textColor|termbox.AttrBold, bgColor, line)
	}
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

// layout maps board cells to terminal cells.
type layout struct {
	left, top int
}

func (l layout) cell(p rules.Point) (int, int, bool) {
	if p.X < 0 || p.X >= rules.GridWidth || p.Y < 0 || p.Y >= rules.GridHeight {
		return 0, 0, false
	}
	return l.left + p.X*cellWidth, l.top + p.Y, true
}

func (l layout) right() int {
	return l.left + rules.GridWidth*cellWidth
}

func (l layout) bottom() int {
	return l.top + rules.GridHeight
}

// center returns the column that centres msg over the board.
func (l layout) center(msg string) int {
	return l.left + render.Center(rules.GridWidth*cellWidth, runewidth.StringWidth(msg))
}

// ActionForEvent maps a termbox key event to a player action.
func ActionForEvent(ev termbox.Event) worker.Action {
	if ev.Type != termbox.EventKey {
		return worker.ActionNone
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return worker.ActionUp
	case termbox.KeyArrowDown:
		return worker.ActionDown
	case termbox.KeyArrowLeft:
		return worker.ActionLeft
	case termbox.KeyArrowRight:
		return worker.ActionRight
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return worker.ActionQuit
	}
	switch ev.Ch {
	case 'r', 'R':
		return worker.ActionRestart
	case 'q', 'Q':
		return worker.ActionQuit
	}
	return worker.ActionNone
}

// Events polls termbox for events on its own goroutine.
func Events() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
