package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearFullRowsNeedsEveryCell(t *testing.T) {
	g := NewGrid(10, 20, 2)
	lockRow(g, 0, 7)
	g.Fill(Point{X: 2, Y: 1}, 3)
	g.Lock(Point{X: 2, Y: 1})

	before := g.Snapshot()
	assert.Equal(t, 0, ClearFullRows(g))
	assert.Equal(t, before, g.Snapshot())

	g.Fill(Point{X: 7, Y: 0}, 3)
	g.Lock(Point{X: 7, Y: 0})
	assert.Equal(t, 1, ClearFullRows(g))

	// Row 1 moved down into row 0, row 1 is now empty.
	assert.True(t, g.IsLocked(Point{X: 2, Y: 0}))
	for x := 0; x < g.Width(); x++ {
		if x != 2 {
			assert.True(t, g.IsEmpty(Point{X: x, Y: 0}), "x=%d", x)
		}
		assert.True(t, g.IsEmpty(Point{X: x, Y: 1}), "x=%d", x)
	}
}

func TestClearFullRowsShiftsEverythingAboveByOne(t *testing.T) {
	g := NewGrid(4, 6, 2)
	lockRow(g, 2)
	// Distinct markers above the full row.
	for y := 3; y < 6; y++ {
		p := Point{X: y % 4, Y: y}
		g.Fill(p, ColorID(y))
		g.Lock(p)
	}
	before := g.Snapshot()

	require.Equal(t, 1, ClearFullRows(g))
	after := g.Snapshot()
	for y := 2; y < 5; y++ {
		assert.Equal(t, before[y+1], after[y], "row %d", y)
	}
	assert.Equal(t, make([]Cell, 4), after[5], "top visible row empties")
}

func TestClearFullRowsMultiple(t *testing.T) {
	g := NewGrid(5, 10, 2)
	lockRow(g, 0)
	lockRow(g, 1, 3)
	lockRow(g, 2)
	lockRow(g, 3)
	lockRow(g, 4, 0)

	assert.Equal(t, 3, ClearFullRows(g))

	// Remaining partial rows compacted to the bottom in order.
	assert.True(t, g.IsEmpty(Point{X: 3, Y: 0}))
	assert.True(t, g.IsLocked(Point{X: 0, Y: 0}))
	assert.True(t, g.IsEmpty(Point{X: 0, Y: 1}))
	assert.True(t, g.IsLocked(Point{X: 3, Y: 1}))
	for y := 2; y < 10; y++ {
		for x := 0; x < 5; x++ {
			assert.True(t, g.IsEmpty(Point{X: x, Y: y}))
		}
	}
}

func TestClearFullRowsHasNoUpperBound(t *testing.T) {
	g := NewGrid(3, 8, 0)
	for y := 0; y < 6; y++ {
		lockRow(g, y)
	}
	assert.Equal(t, 6, ClearFullRows(g))
}

func TestClearFullRowsIgnoresActiveCells(t *testing.T) {
	g := NewGrid(4, 4, 0)
	for x := 0; x < 4; x++ {
		g.Fill(Point{X: x, Y: 0}, 1)
	}
	assert.Equal(t, 0, ClearFullRows(g), "active cells are not settled content")
}

func TestClearFullRowsLeavesBufferAlone(t *testing.T) {
	g := NewGrid(4, 4, 2)
	lockRow(g, 0)
	g.Fill(Point{X: 1, Y: 4}, 5)
	g.Lock(Point{X: 1, Y: 4})

	assert.Equal(t, 1, ClearFullRows(g))
	assert.True(t, g.IsLocked(Point{X: 1, Y: 4}))
	assert.True(t, g.IsEmpty(Point{X: 1, Y: 3}))
}
