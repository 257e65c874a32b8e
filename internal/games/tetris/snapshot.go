package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Snapshot is a flat copy of the visible game state for replay checks and
// determinism tests.
type Snapshot struct {
	Tick   uint64
	Score  int
	Level  int
	Lines  int
	Phase  string
	Paused bool

	Next string // name of the preview shape, "" if none
	Held string // name of the held shape, "" if none

	// Active holds the falling piece as x,y pairs.
	Active []int

	// Board is row-major over every row including the buffer.
	// Each cell is 0 when empty, otherwise 1 + its color index.
	Board []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:   g.ticks,
		Score:  s.Score(),
		Level:  s.Level(),
		Lines:  s.LinesClearedTotal(),
		Phase:  s.Phase().String(),
		Paused: s.Paused(),
	}
	if shape, ok := s.NextPreviewShape(); ok {
		snap.Next = shape.Name
	}
	if shape, ok := s.HeldShape(); ok {
		snap.Held = shape.Name
	}

	for _, p := range s.ActiveCells() {
		snap.Active = append(snap.Active, p.X, p.Y)
	}

	for _, row := range s.Snapshot() {
		for _, cell := range row {
			snap.Board = append(snap.Board, encodeCell(cell))
		}
	}
	return snap
}

func encodeCell(c engine.Cell) int {
	if !c.Occupied() {
		return 0
	}
	return 1 + int(c.Color)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines) //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.Phase)
	h = h*31 + hashString(snap.Next)
	h = h*31 + hashString(snap.Held)
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.Active {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Board {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*131 + uint64(s[i])
	}
	return h
}
