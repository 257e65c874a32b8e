package engine

import "math"

// Phase is the lifecycle stage of the board's active piece.
type Phase int

const (
	PhaseEmpty    Phase = iota // no active piece
	PhaseFalling               // active piece under player control
	PhaseLocking               // piece settled, rows being evaluated
	PhaseGameOver              // a spawn was blocked; terminal until reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DisplayBoard is the read-only view shared by the playfield and the
// preview/hold boxes.
type DisplayBoard interface {
	Snapshot() [][]Cell
	Width() int
	Rows() int
}

// MutableBoard is the full piece-control capability, used only by Session.
type MutableBoard interface {
	DisplayBoard
	Spawn(shape Shape) bool
	TryTranslate(dx, dy int) bool
	TryRotate(clockwise bool) bool
	Lock() []Point
	Remove()
}

// Board owns the playfield grid, the active piece and its ghost projection.
type Board struct {
	grid  *Grid
	phase Phase

	active []Point // ordered cells of the falling piece
	shape  Shape   // shape the active piece was spawned from
	ghost  []Point
}

var (
	_ MutableBoard = (*Board)(nil)
	_ DisplayBoard = (*Display)(nil)
)

// NewBoard creates an empty playfield.
func NewBoard(width, height, buffer int) *Board {
	return &Board{grid: NewGrid(width, height, buffer)}
}

// Grid exposes the underlying cells for line clearing and tests.
func (b *Board) Grid() *Grid { return b.grid }

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.Width() }

// Rows returns the number of rows including the buffer.
func (b *Board) Rows() int { return b.grid.Rows() }

// Phase returns the current lifecycle stage.
func (b *Board) Phase() Phase { return b.phase }

// Snapshot returns a copy of the grid. The ghost is not included.
func (b *Board) Snapshot() [][]Cell { return b.grid.Snapshot() }

// Active returns a copy of the falling piece's cells.
func (b *Board) Active() []Point {
	return append([]Point(nil), b.active...)
}

// ActiveShape returns the shape of the falling piece, if any.
func (b *Board) ActiveShape() (Shape, bool) {
	if len(b.active) == 0 {
		return Shape{}, false
	}
	return b.shape, true
}

// Ghost returns a copy of the projected landing cells.
func (b *Board) Ghost() []Point {
	return append([]Point(nil), b.ghost...)
}

// Reset clears every cell and leaves the board ready for a new game.
func (b *Board) Reset() {
	b.grid.Reset()
	b.phase = PhaseEmpty
	b.active = nil
	b.ghost = nil
}

// Spawn places shape at the spawn anchor. It returns false and enters
// PhaseGameOver if any target cell already holds settled content.
func (b *Board) Spawn(shape Shape) bool {
	if b.phase == PhaseGameOver {
		return false
	}

	cells := shape.Cells(SpawnAnchor(b.grid.Width(), b.grid.Height()))
	for _, p := range cells {
		if b.grid.IsLocked(p) {
			b.phase = PhaseGameOver
			return false
		}
	}

	for _, p := range cells {
		b.grid.Fill(p, shape.Color)
	}
	b.active = cells
	b.shape = shape
	b.phase = PhaseFalling
	b.updateGhost()
	return true
}

// TryTranslate shifts the active piece by (dx, dy). Nothing changes unless
// every target cell is in bounds and free of settled content.
func (b *Board) TryTranslate(dx, dy int) bool {
	if len(b.active) == 0 {
		return false
	}

	targets := make([]Point, len(b.active))
	for i, p := range b.active {
		t := p.Add(dx, dy)
		if !b.open(t) {
			return false
		}
		targets[i] = t
	}

	b.moveTo(targets)
	return true
}

// TryRotate turns the active piece a quarter turn about the rounded mean of
// its cells. The mean is rounded with math.Round (half away from zero, which
// is half-up for the non-negative board coordinates). Because that center is
// recomputed from the cells each time, pieces whose mean falls on a half
// coordinate (the I and O shapes) creep by one row every two turns.
func (b *Board) TryRotate(clockwise bool) bool {
	if len(b.active) == 0 {
		return false
	}

	center := centroid(b.active)
	targets := make([]Point, len(b.active))
	for i, p := range b.active {
		diff := Point{X: center.X - p.X, Y: center.Y - p.Y}
		r := Point{X: diff.Y, Y: diff.X}
		if clockwise {
			r.X = -r.X
		} else {
			r.Y = -r.Y
		}
		t := Point{X: center.X + r.X, Y: center.Y + r.Y}
		if !b.open(t) {
			return false
		}
		targets[i] = t
	}

	b.moveTo(targets)
	return true
}

// Lock settles the active piece into the grid and returns its cells.
// The board is left in PhaseLocking until the caller evaluates rows and
// spawns the next piece.
func (b *Board) Lock() []Point {
	if len(b.active) == 0 {
		return nil
	}

	locked := b.active
	for _, p := range locked {
		b.grid.Lock(p)
	}
	b.active = nil
	b.ghost = nil
	b.phase = PhaseLocking
	return locked
}

// Remove takes the active piece off the board without settling it.
func (b *Board) Remove() {
	for _, p := range b.active {
		b.grid.Clear(p)
	}
	b.active = nil
	b.ghost = nil
	if b.phase != PhaseGameOver {
		b.phase = PhaseEmpty
	}
}

// open reports whether the active piece may occupy p.
func (b *Board) open(p Point) bool {
	return b.grid.Contains(p) && !b.grid.IsLocked(p)
}

// moveTo writes every target before clearing vacated sources, so cells
// shared by both sets are never observed empty.
func (b *Board) moveTo(targets []Point) {
	inTargets := make(map[Point]bool, len(targets))
	for _, t := range targets {
		b.grid.Fill(t, b.shape.Color)
		inTargets[t] = true
	}
	for _, p := range b.active {
		if !inTargets[p] {
			b.grid.Clear(p)
		}
	}
	b.active = targets
	b.updateGhost()
}

func centroid(cells []Point) Point {
	var sx, sy float64
	for _, p := range cells {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(cells))
	return Point{X: int(math.Round(sx / n)), Y: int(math.Round(sy / n))}
}
