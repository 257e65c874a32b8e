package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyCatalog is returned when a piece set has no shapes.
var ErrEmptyCatalog = errors.New("engine: piece catalog is empty")

// Shape is an immutable piece definition: cell offsets relative to an anchor
// plus the palette entry used to draw it.
type Shape struct {
	Name    string
	Offsets []Point
	Color   ColorID
}

// Cells returns the absolute cells of the shape placed at anchor.
func (s Shape) Cells(anchor Point) []Point {
	cells := make([]Point, len(s.Offsets))
	for i, o := range s.Offsets {
		cells[i] = anchor.Add(o.X, o.Y)
	}
	return cells
}

// Catalog is the ordered, read-only list of shapes a game draws from.
type Catalog struct {
	shapes []Shape
}

// NewCatalog validates and copies shapes.
func NewCatalog(shapes []Shape) (*Catalog, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{shapes: make([]Shape, len(shapes))}
	for i, s := range shapes {
		if len(s.Offsets) == 0 {
			return nil, fmt.Errorf("engine: shape %q has no cells", s.Name)
		}
		seen := make(map[Point]bool, len(s.Offsets))
		for _, o := range s.Offsets {
			if seen[o] {
				return nil, fmt.Errorf("engine: shape %q repeats offset (%d,%d)", s.Name, o.X, o.Y)
			}
			seen[o] = true
		}
		s.Offsets = append([]Point(nil), s.Offsets...)
		c.shapes[i] = s
	}
	return c, nil
}

// Len returns the number of shapes.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// Shape returns the i-th shape.
func (c *Catalog) Shape(i int) Shape {
	return c.shapes[i]
}

// Shapes returns a copy of the shape list.
func (c *Catalog) Shapes() []Shape {
	return append([]Shape(nil), c.shapes...)
}

// FitsBoard checks that every shape can be placed at the spawn anchor of a
// width x height+buffer board and at the display anchor of a displayW x
// displayH preview. Spawning never bounds-checks, so this must hold.
func (c *Catalog) FitsBoard(width, height, buffer, displayW, displayH int) error {
	board := NewGrid(width, height, buffer)
	display := NewGrid(displayW, displayH, 0)
	for _, s := range c.shapes {
		for _, p := range s.Cells(SpawnAnchor(width, height)) {
			if !board.Contains(p) {
				return fmt.Errorf("engine: shape %q leaves the board at spawn (%d,%d)", s.Name, p.X, p.Y)
			}
		}
		for _, p := range s.Cells(DisplayAnchor(displayW, displayH)) {
			if !display.Contains(p) {
				return fmt.Errorf("engine: shape %q does not fit the %dx%d display", s.Name, displayW, displayH)
			}
		}
	}
	return nil
}

// SpawnAnchor is the horizontal center of the top visible row.
func SpawnAnchor(width, height int) Point {
	return Point{X: width / 2, Y: height - 1}
}

// DisplayAnchor is the center of a preview grid.
func DisplayAnchor(width, height int) Point {
	return Point{X: width / 2, Y: height / 2}
}
