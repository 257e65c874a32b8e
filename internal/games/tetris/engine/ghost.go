package engine

// updateGhost recomputes the landing projection of the active piece.
func (b *Board) updateGhost() {
	b.ghost = project(b.grid, b.active)
}

// project drops cells one row at a time, using the same legality rule as a
// downward translate, until the next step would be blocked. The cells
// themselves never block the projection since they are active, not locked.
// The grid is not modified.
func project(grid *Grid, cells []Point) []Point {
	if len(cells) == 0 {
		return nil
	}

	landing := append([]Point(nil), cells...)
	next := make([]Point, len(cells))
	for {
		for i, p := range landing {
			t := p.Add(0, -1)
			if !grid.Contains(t) || grid.IsLocked(t) {
				return landing
			}
			next[i] = t
		}
		copy(landing, next)
	}
}

// DropDistance returns how many rows the active piece can fall.
func (b *Board) DropDistance() int {
	if len(b.active) == 0 || len(b.ghost) == 0 {
		return 0
	}
	return b.active[0].Y - b.ghost[0].Y
}
