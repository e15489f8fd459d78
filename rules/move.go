package rules

// Direction is the heading of the snake.
type Direction string

// The four headings a snake can take.
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Opposite returns the reverse heading. Unknown directions have no
// opposite and return themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Delta returns the cell offset of one step in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

// move puts a new head one space in the given direction in front of the
// body. It does not remove the tail, that is done after the snake has had a
// chance to eat.
func move(body []Point, d Direction) []Point {
	if len(body) == 0 {
		return body
	}
	dx, dy := d.Delta()
	return append([]Point{body[0].Add(dx, dy)}, body...)
}
