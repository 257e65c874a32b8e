package engine

// Display is a small read-only board that shows a single shape centered,
// used for the next-piece preview and the hold box. It never moves pieces.
type Display struct {
	grid    *Grid
	current Shape
	has     bool
}

// NewDisplay creates an empty width x height display.
func NewDisplay(width, height int) *Display {
	return &Display{grid: NewGrid(width, height, 0)}
}

// Show replaces the displayed shape.
func (d *Display) Show(shape Shape) {
	d.grid.Reset()
	for _, p := range shape.Cells(DisplayAnchor(d.grid.Width(), d.grid.Height())) {
		d.grid.Fill(p, shape.Color)
	}
	d.current = shape
	d.has = true
}

// Clear empties the display.
func (d *Display) Clear() {
	d.grid.Reset()
	d.current = Shape{}
	d.has = false
}

// Current returns the displayed shape, if any.
func (d *Display) Current() (Shape, bool) {
	return d.current, d.has
}

// Snapshot returns a copy of the display cells.
func (d *Display) Snapshot() [][]Cell { return d.grid.Snapshot() }

// Width returns the number of columns.
func (d *Display) Width() int { return d.grid.Width() }

// Rows returns the number of rows.
func (d *Display) Rows() int { return d.grid.Rows() }
