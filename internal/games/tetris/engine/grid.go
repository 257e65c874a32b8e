// Package engine implements the falling-block simulation: the grid, the
// active piece, line clearing, scoring, the piece bag and the tick clock.
// It has no dependencies on the terminal, storage or configuration formats;
// every state change happens synchronously inside a handler call.
package engine

import "fmt"

// Point is a cell coordinate. Y grows upward; row 0 is the floor.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// ColorID indexes an external palette. The engine never interprets it.
type ColorID int

// CellState distinguishes free cells from the falling piece and settled blocks.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellActive
	CellLocked
)

// Cell is a single grid square.
type Cell struct {
	State CellState
	Color ColorID
}

// Occupied reports whether anything fills the cell.
func (c Cell) Occupied() bool {
	return c.State != CellEmpty
}

// Grid stores width x (height+buffer) cells.
// Callers must only pass coordinates for which Contains is true;
// anything else is a programming error and panics.
type Grid struct {
	width  int
	height int
	buffer int
	cells  [][]Cell // indexed [y][x]
}

// NewGrid allocates an empty grid.
func NewGrid(width, height, buffer int) *Grid {
	if width <= 0 || height <= 0 || buffer < 0 {
		panic(fmt.Sprintf("engine: invalid grid size %dx%d+%d", width, height, buffer))
	}
	g := &Grid{width: width, height: height, buffer: buffer}
	g.cells = make([][]Cell, height+buffer)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of visible rows.
func (g *Grid) Height() int { return g.height }

// Buffer returns the number of hidden rows above the visible area.
func (g *Grid) Buffer() int { return g.buffer }

// Rows returns the total row count including the buffer.
func (g *Grid) Rows() int { return g.height + g.buffer }

// Contains reports whether p addresses a real cell.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height+g.buffer
}

func (g *Grid) mustContain(p Point) {
	if !g.Contains(p) {
		panic(fmt.Sprintf("engine: cell (%d,%d) outside %dx%d grid", p.X, p.Y, g.width, g.height+g.buffer))
	}
}

// At returns the cell at p.
func (g *Grid) At(p Point) Cell {
	g.mustContain(p)
	return g.cells[p.Y][p.X]
}

// IsEmpty reports whether nothing occupies p.
func (g *Grid) IsEmpty(p Point) bool {
	return g.At(p).State == CellEmpty
}

// IsLocked reports whether p holds a settled block.
func (g *Grid) IsLocked(p Point) bool {
	return g.At(p).State == CellLocked
}

// Fill marks p as part of the active piece.
func (g *Grid) Fill(p Point, color ColorID) {
	g.mustContain(p)
	g.cells[p.Y][p.X] = Cell{State: CellActive, Color: color}
}

// Lock turns an occupied cell into settled content. Empty cells stay empty.
func (g *Grid) Lock(p Point) {
	g.mustContain(p)
	if g.cells[p.Y][p.X].State == CellActive {
		g.cells[p.Y][p.X].State = CellLocked
	}
}

// Clear empties p.
func (g *Grid) Clear(p Point) {
	g.mustContain(p)
	g.cells[p.Y][p.X] = Cell{}
}

// CopyCell overwrites dst with the contents of src.
func (g *Grid) CopyCell(src, dst Point) {
	g.mustContain(src)
	g.mustContain(dst)
	g.cells[dst.Y][dst.X] = g.cells[src.Y][src.X]
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}

// Snapshot returns a copy of all rows, indexed [y][x].
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, len(g.cells))
	for y, row := range g.cells {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}
