package rules

import "fmt"

// Point is a single cell on the board, in grid units.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PointAt returns the cell whose top left corner sits at the given pixel
// position.
func PointAt(px, py int) Point {
	return Point{X: px / CellSize, Y: py / CellSize}
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Pixels returns the top left pixel of the cell.
func (p Point) Pixels() (int, int) {
	return p.X * CellSize, p.Y * CellSize
}

// Add returns p shifted by dx, dy cells.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
