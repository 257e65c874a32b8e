package engine

// ClearFullRows removes every visible row made entirely of settled blocks and
// returns how many were removed. Rows are checked from the top visible row
// down; each full row is compacted away by pulling every row above it down by
// one, leaving the top visible row empty. Buffer rows are never scanned or
// shifted.
func ClearFullRows(grid *Grid) int {
	cleared := 0
	for y := grid.Height() - 1; y >= 0; y-- {
		if rowFull(grid, y) {
			collapseRow(grid, y)
			cleared++
		}
	}
	return cleared
}

func rowFull(grid *Grid, y int) bool {
	for x := 0; x < grid.Width(); x++ {
		if !grid.IsLocked(Point{X: x, Y: y}) {
			return false
		}
	}
	return true
}

// collapseRow shifts rows row+1..top down by one over row.
func collapseRow(grid *Grid, row int) {
	top := grid.Height() - 1
	for y := row; y <= top; y++ {
		for x := 0; x < grid.Width(); x++ {
			dst := Point{X: x, Y: y}
			if y < top {
				grid.CopyCell(Point{X: x, Y: y + 1}, dst)
			} else {
				grid.Clear(dst)
			}
		}
	}
}
