package rules

import "time"

// Board geometry and pacing. These are fixed for every game.
const (
	// CellSize is the edge of a grid cell in pixels.
	CellSize = 25
	// ScreenWidth is the width of the play field in pixels.
	ScreenWidth = 600
	// ScreenHeight is the height of the play field in pixels.
	ScreenHeight = 600
	// GridWidth is the number of cells across the board.
	GridWidth = ScreenWidth / CellSize
	// GridHeight is the number of cells down the board.
	GridHeight = ScreenHeight / CellSize

	// InitialLength is the number of body segments a new snake starts with.
	InitialLength = 15

	// TickInterval is how often the game advances.
	TickInterval = 100 * time.Millisecond
)

// StartPoint is the cell the snake's head starts on.
func StartPoint() Point {
	return Point{X: GridWidth / 2, Y: GridHeight / 2}
}

// InitialSnake returns the body a new game starts with: InitialLength
// segments stacked on the start point. The trailing segments unfold as the
// snake moves out of the start cell.
//
// Every game, the first included, starts on the centre cell. Starting the
// first game at the origin and only restarts at the centre is deliberately
// not done, so a fresh game never opens running along the top wall.
func InitialSnake() []Point {
	start := StartPoint()
	body := make([]Point, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		body = append(body, start)
	}
	return body
}

func inBounds(p Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}
