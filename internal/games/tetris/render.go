package tetris

import (
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Every board cell is drawn two characters wide so blocks look square.
const cellW = 2

const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'

	panelGap = 1
)

// layout positions the three columns: hold+stats, playfield, next.
type layout struct {
	hold  core.Rect
	stats core.Rect
	board core.Rect
	next  core.Rect
}

func (g *Game) layout(screen core.Rect) (layout, bool) {
	b := g.cfg.Board
	boardW := b.Width*cellW + 2
	boardH := b.Height + 2
	sideW := max(b.PreviewWidth*cellW+2, 16)
	sideH := b.PreviewHeight + 2
	statsH := 8

	totalW := sideW + panelGap + boardW + panelGap + sideW
	totalH := max(boardH, sideH+statsH)
	if totalW > screen.W || totalH > screen.H {
		return layout{}, false
	}

	area := core.CenteredIn(screen, totalW, totalH)
	var l layout
	l.hold = core.NewRect(area.X, area.Y, sideW, sideH)
	l.stats = core.NewRect(area.X, l.hold.Bottom(), sideW, statsH)
	l.board = core.NewRect(l.hold.Right()+panelGap, area.Y, boardW, boardH)
	l.next = core.NewRect(l.board.Right()+panelGap, area.Y, sideW, sideH)
	return l, true
}

// Render draws the playfield, preview and hold boxes, and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	l, ok := g.layout(dst.Bounds())
	if !ok {
		g.drawCenteredMessage(dst, "Terminal too small", "Enlarge the window to play")
		return
	}

	g.drawBoard(dst, l.board)
	g.drawDisplay(dst, l.hold, "HOLD", g.session.HoldBoard(), g.session.HoldSpent())
	g.drawDisplay(dst, l.next, "NEXT", g.session.PreviewBoard(), false)
	g.drawStats(dst, l.stats)

	switch {
	case g.session.GameOver():
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %s  |  Press R to restart", humanize.Comma(int64(g.session.Score()))))
	case g.session.Paused():
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawBoard(dst *core.Screen, r core.Rect) {
	dst.DrawBoxColor(r, core.ColorGray)
	title := " " + g.title + " "
	dst.DrawText(r.X+(r.W-len(title))/2, r.Y, title)

	inner := r.Inner()
	snap := g.session.Snapshot()
	ghost := g.session.GhostCells()
	visible := g.cfg.Board.Height

	for y := 0; y < visible; y++ {
		row := inner.Y + visible - 1 - y
		for x := 0; x < g.cfg.Board.Width; x++ {
			col := inner.X + x*cellW
			cell := snap[y][x]
			switch {
			case cell.Occupied():
				g.drawBlock(dst, col, row, blockRune, g.color(cell.Color))
			case slices.Contains(ghost, engine.Point{X: x, Y: y}):
				g.drawBlock(dst, col, row, ghostRune, core.ColorGray)
			default:
				dst.SetCell(col+1, row, emptyRune, core.ColorGray)
			}
		}
	}
}

// drawDisplay renders a preview-style box. A spent hold box is dimmed.
func (g *Game) drawDisplay(dst *core.Screen, r core.Rect, title string, board engine.DisplayBoard, dim bool) {
	dst.DrawBoxColor(r, core.ColorGray)
	dst.DrawText(r.X+2, r.Y, " "+title+" ")

	inner := r.Inner()
	snap := board.Snapshot()
	rows := board.Rows()
	offsetX := inner.X + (inner.W-board.Width()*cellW)/2

	for y := 0; y < rows; y++ {
		for x := 0; x < board.Width(); x++ {
			cell := snap[y][x]
			if !cell.Occupied() {
				continue
			}
			c := g.color(cell.Color)
			if dim {
				c = core.ColorGray
			}
			g.drawBlock(dst, offsetX+x*cellW, inner.Y+rows-1-y, blockRune, c)
		}
	}
}

func (g *Game) drawStats(dst *core.Screen, r core.Rect) {
	s := g.session
	lines := []struct {
		label string
		value string
	}{
		{"Score", humanize.Comma(int64(s.Score()))},
		{"Level", humanize.Comma(int64(s.Level()))},
		{"Lines", humanize.Comma(int64(s.LinesClearedTotal()))},
	}
	for i, l := range lines {
		y := r.Y + 1 + i*2
		dst.DrawTextColor(r.X+1, y, l.label, core.ColorGray)
		dst.DrawTextColor(r.X+1, y+1, l.value, core.ColorBrightWhite)
	}
}

func (g *Game) drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := 0; i < cellW; i++ {
		dst.SetCell(x+i, y, r, c)
	}
}

// color maps a piece color index to a palette entry.
func (g *Game) color(id engine.ColorID) core.Color {
	if int(id) < 0 || int(id) >= len(g.colors) {
		return core.ColorWhite
	}
	return g.colors[id]
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	box := core.CenteredIn(dst.Bounds(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
