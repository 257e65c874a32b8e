package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridFillLockClear(t *testing.T) {
	g := NewGrid(10, 20, 2)
	p := Point{X: 3, Y: 21}

	require.True(t, g.IsEmpty(p))

	g.Fill(p, 4)
	assert.False(t, g.IsEmpty(p))
	assert.False(t, g.IsLocked(p), "filled cells are active until locked")
	assert.Equal(t, Cell{State: CellActive, Color: 4}, g.At(p))

	g.Lock(p)
	assert.True(t, g.IsLocked(p))
	assert.Equal(t, ColorID(4), g.At(p).Color)

	g.Clear(p)
	assert.True(t, g.IsEmpty(p))
}

func TestGridLockIgnoresEmptyCells(t *testing.T) {
	g := NewGrid(4, 4, 0)
	g.Lock(Point{X: 1, Y: 1})
	assert.True(t, g.IsEmpty(Point{X: 1, Y: 1}))
}

func TestGridCopyCell(t *testing.T) {
	g := NewGrid(4, 4, 0)
	src := Point{X: 0, Y: 3}
	dst := Point{X: 0, Y: 2}
	g.Fill(src, 7)
	g.Lock(src)

	g.CopyCell(src, dst)
	assert.Equal(t, g.At(src), g.At(dst))
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(10, 20, 2)

	tests := []struct {
		name string
		p    Point
	}{
		{"left of board", Point{X: -1, Y: 0}},
		{"right of board", Point{X: 10, Y: 0}},
		{"below floor", Point{X: 0, Y: -1}},
		{"above buffer", Point{X: 0, Y: 22}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, g.Contains(tc.p))
			assert.Panics(t, func() { g.IsEmpty(tc.p) })
			assert.Panics(t, func() { g.Fill(tc.p, 1) })
			assert.Panics(t, func() { g.Clear(tc.p) })
		})
	}
}

func TestGridSnapshotIsCopy(t *testing.T) {
	g := NewGrid(3, 2, 1)
	snap := g.Snapshot()
	require.Len(t, snap, 3)
	require.Len(t, snap[0], 3)

	snap[0][0] = Cell{State: CellLocked}
	assert.True(t, g.IsEmpty(Point{X: 0, Y: 0}), "mutating a snapshot must not touch the grid")
}

func TestGridReset(t *testing.T) {
	g := NewGrid(3, 3, 0)
	lockRow(g, 1)
	g.Reset()
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Width(); x++ {
			assert.True(t, g.IsEmpty(Point{X: x, Y: y}))
		}
	}
}
