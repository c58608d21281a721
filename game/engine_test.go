package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// countCells returns how many cells on the grid hold the given value.
func countCells(t *testing.T, e *Engine, want Cell) int {
	t.Helper()

	count := 0
	for y := 0; y < e.Height(); y++ {
		for x := 0; x < e.Width(); x++ {
			c, err := e.At(Point{X: x, Y: y})
			require.NoError(t, err)
			if c == want {
				count++
			}
		}
	}
	return count
}

func snapshot(t *testing.T, e *Engine) []Cell {
	t.Helper()

	cells := make([]Cell, 0, e.Width()*e.Height())
	for y := 0; y < e.Height(); y++ {
		for x := 0; x < e.Width(); x++ {
			c, err := e.At(Point{X: x, Y: y})
			require.NoError(t, err)
			cells = append(cells, c)
		}
	}
	return cells
}

func TestNewEngine(t *testing.T) {
	e := NewEngine(30, 30)

	require.Equal(t, Point{X: 15, Y: 15}, e.Head())
	require.Equal(t, e.Head(), e.Tail())
	require.Equal(t, 1, e.Length())
	require.Equal(t, 0, e.Score())

	head, err := e.At(e.Head())
	require.NoError(t, err)
	require.Equal(t, CellNoDirection, head)

	food, ok := e.Food()
	require.True(t, ok)
	c, err := e.At(food)
	require.NoError(t, err)
	require.Equal(t, CellFood, c)
	require.Equal(t, 1, countCells(t, e, CellFood))
}

func TestAtOutOfBounds(t *testing.T) {
	e := NewEngine(10, 10)

	for _, p := range []Point{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 10, Y: 0},
		{X: 0, Y: 10},
	} {
		_, err := e.At(p)
		require.Error(t, err)

		var oob *OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		require.Equal(t, p, oob.Point)
	}
}

func TestCheckCollision(t *testing.T) {
	e := NewEngine(10, 10)
	food, _ := e.Food()

	require.True(t, e.CheckCollision(Point{X: -1, Y: 5}))
	require.True(t, e.CheckCollision(Point{X: 5, Y: 10}))
	require.True(t, e.CheckCollision(e.Head()), "head cell is occupied")
	require.False(t, e.CheckCollision(food), "food is not a collision")
}

func TestMoveIntoWall(t *testing.T) {
	e := NewEngine(5, 5)
	require.NoError(t, e.SetFood(Point{X: 4, Y: 4}))

	// Head starts at (2, 2): two west moves are fine, the third leaves
	// the board at x = -1.
	require.Empty(t, e.Move(West))
	require.Empty(t, e.Move(West))

	before := snapshot(t, e)
	events := e.Move(West)
	require.Equal(t, []Event{EventDie}, events)
	require.Equal(t, before, snapshot(t, e), "dying move must not mutate the grid")
	require.Equal(t, Point{X: 0, Y: 2}, e.Head())
	require.Equal(t, 1, e.Length())
}

func TestMoveEats(t *testing.T) {
	e := NewEngine(10, 10)
	oldFood := Point{X: 5, Y: 4} // One cell north of the head.
	require.NoError(t, e.SetFood(oldFood))

	events := e.Move(North)
	require.Equal(t, []Event{EventEat}, events)
	require.Equal(t, 2, e.Length())
	require.Equal(t, 1, e.Score())
	require.Equal(t, oldFood, e.Head(), "head occupies the eaten cell")

	// A new food appeared somewhere else.
	newFood, ok := e.Food()
	require.True(t, ok)
	require.NotEqual(t, oldFood, newFood)
	require.Equal(t, 1, countCells(t, e, CellFood))
}

func TestLengthMatchesOccupiedCells(t *testing.T) {
	e := NewEngine(10, 10)
	require.NoError(t, e.SetFood(Point{X: 5, Y: 4}))

	require.Equal(t, []Event{EventEat}, e.Move(North))
	require.NoError(t, e.SetFood(Point{X: 5, Y: 3}))
	require.Equal(t, []Event{EventEat}, e.Move(North))

	occupied := e.Width()*e.Height() - countCells(t, e, CellEmpty) - countCells(t, e, CellFood)
	require.Equal(t, e.Length(), occupied)

	// A plain move keeps the count stable.
	require.NoError(t, e.SetFood(Point{X: 0, Y: 9})) // Out of the way.
	require.Empty(t, e.Move(East))
	occupied = e.Width()*e.Height() - countCells(t, e, CellEmpty) - countCells(t, e, CellFood)
	require.Equal(t, e.Length(), occupied)
}

func TestSelfCollision(t *testing.T) {
	e := NewEngine(10, 10)

	// Grow to length 4 going north up the (5, y) column.
	for _, food := range []Point{{X: 5, Y: 4}, {X: 5, Y: 3}, {X: 5, Y: 2}} {
		require.NoError(t, e.SetFood(food))
		require.Equal(t, []Event{EventEat}, e.Move(North))
	}
	require.Equal(t, 4, e.Length())

	// Reversing runs straight into the body.
	events := e.Move(South)
	require.Equal(t, []Event{EventDie}, events)
	require.Equal(t, 4, e.Length())
	require.Equal(t, Point{X: 5, Y: 2}, e.Head())
}

func TestCorridorRun(t *testing.T) {
	e := NewEngine(30, 30)
	require.NoError(t, e.SetFood(Point{X: 0, Y: 29})) // Far from the path north.

	for i := 0; i < 14; i++ {
		require.Empty(t, e.Move(North))
		require.Equal(t, 1, e.Length())
		require.Equal(t, e.Head(), e.Tail())
	}
	require.Equal(t, Point{X: 15, Y: 1}, e.Head())
	require.Equal(t, 0, e.Score())
}

func TestTailFollowsPath(t *testing.T) {
	e := NewEngine(10, 10)
	require.NoError(t, e.SetFood(Point{X: 5, Y: 4}))
	require.Equal(t, []Event{EventEat}, e.Move(North))
	require.NoError(t, e.SetFood(Point{X: 6, Y: 4}))
	require.Equal(t, []Event{EventEat}, e.Move(East))

	// Body is length 3: tail at start, a turn, head at the east cell.
	body := e.Body()
	require.Len(t, body, e.Length())
	require.Equal(t, e.Tail(), body[0])
	require.Equal(t, e.Head(), body[len(body)-1])
	require.Equal(t, []Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}}, body)

	// Two plain moves pull the tail along the recorded path.
	require.NoError(t, e.SetFood(Point{X: 0, Y: 9})) // Out of the way.
	require.Empty(t, e.Move(East))
	require.Equal(t, Point{X: 5, Y: 4}, e.Tail())
	require.Empty(t, e.Move(East))
	require.Equal(t, Point{X: 6, Y: 4}, e.Tail())
}

func TestMoveNoDirectionDies(t *testing.T) {
	e := NewEngine(10, 10)

	// Standing still lands the head on its own occupied cell.
	require.Equal(t, []Event{EventDie}, e.Move(NoDirection))
}

func TestSetFood(t *testing.T) {
	e := NewEngine(10, 10)

	target := Point{X: 0, Y: 0}
	require.NoError(t, e.SetFood(target))
	food, ok := e.Food()
	require.True(t, ok)
	require.Equal(t, target, food)
	require.Equal(t, 1, countCells(t, e, CellFood))

	require.Error(t, e.SetFood(e.Head()), "cannot place food on the snake")
	require.Error(t, e.SetFood(Point{X: -1, Y: 0}))
}

func TestWinOnFullGrid(t *testing.T) {
	e := NewEngine(1, 2)

	// The only empty cell holds the food.
	food, ok := e.Food()
	require.True(t, ok)
	require.Equal(t, Point{X: 0, Y: 0}, food)

	events := e.Move(North)
	require.Equal(t, []Event{EventEat, EventWin}, events)
	require.Equal(t, 2, e.Length())

	_, ok = e.Food()
	require.False(t, ok, "no food left to place on a full grid")
	require.Equal(t, 0, countCells(t, e, CellFood))
}
