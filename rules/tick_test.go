package rules

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// horizontalSnake builds a body of the given length with its head at head,
// trailing off to the left and wrapping down a row when it reaches x = 0.
func horizontalSnake(head Point, length int) []Point {
	body := make([]Point, 0, length)
	p := head
	dx := -1
	for len(body) < length {
		body = append(body, p)
		next := p.Add(dx, 0)
		if next.X < 0 || next.X >= GridWidth {
			dx = -dx
			next = p.Add(0, 1)
		}
		p = next
	}
	return body
}

func TestTickMovesSnake(t *testing.T) {
	e := newTestEngine(WithSnake(DirectionRight,
		Point{X: 5, Y: 5},
		Point{X: 4, Y: 5},
		Point{X: 3, Y: 5},
	))
	e.apple = Point{X: 0, Y: 0}

	require.True(t, e.Tick())
	f := e.Frame()
	require.Equal(t, 1, f.Turn)
	require.Equal(t, []Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, f.Snake)
	require.Equal(t, 0, f.Score)
	require.Equal(t, StateRunning, f.State)
}

func TestTickSnakeEats(t *testing.T) {
	head := PointAt(200, 200)
	e := newTestEngine(WithSnake(DirectionRight, horizontalSnake(head, 15)...))
	e.apple = PointAt(225, 200)

	require.Equal(t, Point{X: 8, Y: 8}, head)
	require.True(t, e.Tick())

	f := e.Frame()
	require.Equal(t, PointAt(225, 200), f.Snake[0])
	require.Equal(t, 1, f.Score)
	require.Len(t, f.Snake, 16)
	require.NotEqual(t, PointAt(225, 200), f.Apple)
	require.False(t, f.Occupied(f.Apple), "apple placed on the snake")
	require.Equal(t, StateRunning, f.State)
}

func TestTickWallCollision(t *testing.T) {
	e := newTestEngine(WithSnake(DirectionLeft, PointAt(0, 200)))
	e.apple = Point{X: 5, Y: 5}

	require.True(t, e.Tick())

	f := e.Frame()
	x, y := f.Snake[0].Pixels()
	require.Equal(t, -25, x)
	require.Equal(t, 200, y)
	require.Equal(t, StateGameOver, f.State)
	require.NotNil(t, f.Death)
	require.Equal(t, DeathCauseWallCollision, f.Death.Cause)
	require.Equal(t, 1, f.Death.Turn)
}

func TestTickSelfCollision(t *testing.T) {
	e := newTestEngine(WithSnake(DirectionLeft,
		Point{X: 5, Y: 5},
		Point{X: 6, Y: 5},
		Point{X: 6, Y: 6},
		Point{X: 5, Y: 6},
		Point{X: 4, Y: 6},
	))
	e.apple = Point{X: 0, Y: 0}

	require.True(t, e.SetDirection(DirectionDown))
	require.True(t, e.Tick())

	f := e.Frame()
	require.Equal(t, StateGameOver, f.State)
	require.Equal(t, DeathCauseSnakeSelfCollision, f.Death.Cause)
}

func TestTickChasingTailIsSafe(t *testing.T) {
	e := newTestEngine(WithSnake(DirectionUp,
		Point{X: 5, Y: 5},
		Point{X: 5, Y: 6},
		Point{X: 6, Y: 6},
		Point{X: 6, Y: 5},
	))
	e.apple = Point{X: 0, Y: 0}

	require.True(t, e.SetDirection(DirectionRight))
	require.True(t, e.Tick())

	require.Equal(t, StateRunning, e.State())
	require.Equal(t, Point{X: 6, Y: 5}, e.Head())
	require.Equal(t, 4, e.Len())
}

func TestTickDoesNothingAfterGameOver(t *testing.T) {
	e := newTestEngine(WithSnake(DirectionUp, Point{X: 3, Y: 0}))
	e.apple = Point{X: 10, Y: 10}

	require.True(t, e.Tick())
	require.Equal(t, StateGameOver, e.State())
	before := e.Frame()

	require.False(t, e.Tick())
	require.True(t, e.SetDirection(DirectionLeft))
	require.False(t, e.Tick())
	require.Equal(t, before, e.Frame())
}

func TestRestart(t *testing.T) {
	e := newTestEngine(WithSnake(DirectionUp, Point{X: 3, Y: 0}, Point{X: 3, Y: 1}))
	e.apple = Point{X: 3, Y: 5}

	require.False(t, e.Restart(), "restart must be ignored while running")

	require.True(t, e.Tick())
	require.Equal(t, StateGameOver, e.State())

	require.True(t, e.Restart())
	f := e.Frame()
	require.Equal(t, StateRunning, f.State)
	require.Equal(t, 0, f.Score)
	require.Equal(t, 0, f.Turn)
	require.Equal(t, DirectionRight, f.Direction)
	require.Equal(t, InitialSnake(), f.Snake)
	require.Nil(t, f.Death)
	require.False(t, f.Occupied(f.Apple))

	require.False(t, e.Restart())
}

func TestRestartResetsScore(t *testing.T) {
	e := newTestEngine(WithSnake(DirectionRight, Point{X: 22, Y: 3}))
	e.apple = Point{X: 23, Y: 3}

	require.True(t, e.Tick())
	require.Equal(t, 1, e.Score())
	require.True(t, e.Tick())
	require.Equal(t, StateGameOver, e.State())
	require.Equal(t, 1, e.Score(), "score survives game over")

	require.True(t, e.Restart())
	require.Equal(t, 0, e.Score())
}

func TestFrameIsACopy(t *testing.T) {
	e := newTestEngine()
	f := e.Frame()
	f.Snake[0] = Point{X: -5, Y: -5}
	require.Equal(t, StartPoint(), e.Head())
}

func TestRandomGamesFollowTheRules(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	directions := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

	for game := 0; game < 20; game++ {
		e := New(WithRand(rand.New(rand.NewSource(int64(game)))))
		for turn := 0; turn < 500 && e.State() == StateRunning; turn++ {
			before := e.Frame()

			d := directions[rng.Intn(len(directions))]
			accepted := e.SetDirection(d)
			require.Equal(t, d != before.Direction.Opposite(), accepted)

			require.True(t, e.Tick())
			after := e.Frame()

			require.NotEqual(t, before.Direction.Opposite(), after.Direction, spew.Sdump(before, after))

			ate := after.Snake[0].Equal(before.Apple)
			if ate {
				require.Len(t, after.Snake, len(before.Snake)+1, spew.Sdump(before, after))
				require.Equal(t, before.Score+1, after.Score)
			} else {
				require.Len(t, after.Snake, len(before.Snake), spew.Sdump(before, after))
				require.Equal(t, before.Score, after.Score)
			}

			if after.State == StateRunning {
				require.False(t, after.Occupied(after.Apple), spew.Sdump(after))
			} else {
				require.NotNil(t, after.Death)
				require.False(t, e.Tick())
				require.Equal(t, StateGameOver, e.State())
			}
		}
	}
}

func TestGetUnoccupiedPoints(t *testing.T) {
	points := getUnoccupiedPoints(2, 2, []Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.ElementsMatch(t, []Point{{X: 0, Y: 1}, {X: 1, Y: 0}}, points)

	_, ok := getUnoccupiedPoint(rand.New(rand.NewSource(1)), 1, 1, []Point{{X: 0, Y: 0}})
	require.False(t, ok)

	p, ok := getUnoccupiedPoint(rand.New(rand.NewSource(1)), 2, 1, []Point{{X: 0, Y: 0}})
	require.True(t, ok)
	require.Equal(t, Point{X: 1, Y: 0}, p)
}
