package engine

import (
	"math/rand"
	"time"
)

// Settings configures a Session.
type Settings struct {
	Width  int // board columns
	Height int // visible rows
	Buffer int // hidden rows above the visible area

	DisplayWidth  int // preview/hold box columns
	DisplayHeight int // preview/hold box rows

	LinesPerLevel int
	Timing        Timing

	// GravityForLevel returns the gravity period for a level. When nil the
	// period stays at Timing.Gravity for the whole game.
	GravityForLevel func(level int) time.Duration
}

// TickReport describes what one Tick call did.
type TickReport struct {
	Locked       bool
	LinesCleared int
	Spawned      bool
	GameOver     bool
}

// Session ties the board, bag, scorer and scheduler into one game and exposes
// the input handlers and read accessors used by drivers.
type Session struct {
	settings Settings

	board   *Board
	bag     *Bag
	scorer  *Scorer
	sched   *Scheduler
	preview *Display
	hold    *Display

	holdSpent bool
	paused    bool
}

// NewSession creates a session and starts its first game.
func NewSession(s Settings, catalog *Catalog, rng *rand.Rand) *Session {
	sess := &Session{
		settings: s,
		board:    NewBoard(s.Width, s.Height, s.Buffer),
		bag:      NewBag(catalog, rng),
		scorer:   NewScorer(s.LinesPerLevel),
		sched:    NewScheduler(s.Timing),
		preview:  NewDisplay(s.DisplayWidth, s.DisplayHeight),
		hold:     NewDisplay(s.DisplayWidth, s.DisplayHeight),
	}
	sess.NewGame()
	return sess
}

// NewGame clears the board, bag, score and hold and spawns the first piece.
func (s *Session) NewGame() {
	s.board.Reset()
	s.bag.Reset()
	s.scorer.Reset()
	s.sched.Reset()
	s.hold.Clear()
	s.holdSpent = false
	s.paused = false
	s.applyLevelSpeed()

	s.spawn(s.bag.Next())
	s.preview.Show(s.bag.Next())
}

// Tick advances the clock by elapsed and applies whatever came due.
func (s *Session) Tick(elapsed time.Duration) TickReport {
	var r TickReport
	if !s.accepting() {
		return r
	}

	f := s.sched.Advance(elapsed)
	if f.Gravity {
		s.gravity(&r)
	}
	if f.Move != 0 && s.board.Phase() == PhaseFalling {
		s.board.TryTranslate(f.Move, 0)
	}
	if f.Drop && s.board.Phase() == PhaseFalling {
		if s.board.TryTranslate(0, -1) {
			s.sched.PostponeGravity()
		}
	}

	r.GameOver = s.GameOver()
	return r
}

// MoveAxis handles the horizontal input axis: -1 left, 1 right, 0 released.
// A press moves immediately and arms auto-repeat.
func (s *Session) MoveAxis(value int) {
	if !s.accepting() {
		return
	}
	if value == 0 {
		s.sched.ReleaseMove()
		return
	}

	dir := 1
	if value < 0 {
		dir = -1
	}
	s.sched.PressMove(dir)
	s.board.TryTranslate(dir, 0)
}

// Rotate turns the active piece; a blocked rotation is ignored.
func (s *Session) Rotate(clockwise bool) {
	if !s.accepting() {
		return
	}
	s.board.TryRotate(clockwise)
}

// SoftDrop starts or stops soft dropping. Starting steps down once
// immediately; each successful step pushes back the next gravity step.
func (s *Session) SoftDrop(active bool) {
	if !s.accepting() {
		return
	}
	if !active {
		s.sched.ReleaseSoftDrop()
		return
	}

	if s.board.TryTranslate(0, -1) {
		s.sched.PostponeGravity()
	}
	s.sched.PressSoftDrop()
}

// HardDrop drops the piece as far as it goes. The lock happens on the next
// Tick, which is forced to fire gravity with zero delay.
func (s *Session) HardDrop() {
	if !s.accepting() {
		return
	}
	for s.board.TryTranslate(0, -1) {
	}
	s.sched.ForceGravity()
}

// Hold stashes the active piece, swapping in the held one or, when nothing is
// held yet, the preview piece. Allowed once per spawned piece.
func (s *Session) Hold() {
	if !s.accepting() || s.holdSpent {
		return
	}
	current, ok := s.board.ActiveShape()
	if !ok {
		return
	}

	held, hadHeld := s.hold.Current()
	s.hold.Show(current)
	s.board.Remove()

	if hadHeld {
		s.spawn(held)
	} else {
		s.spawnNext()
	}
	s.holdSpent = true
}

// PauseToggle freezes or resumes the game. Ignored after game over.
func (s *Session) PauseToggle() {
	if s.GameOver() {
		return
	}
	s.paused = !s.paused
	s.sched.SetPaused(s.paused)
}

// Snapshot returns a copy of the playfield cells.
func (s *Session) Snapshot() [][]Cell { return s.board.Snapshot() }

// GhostCells returns the projected landing cells of the active piece.
func (s *Session) GhostCells() []Point { return s.board.Ghost() }

// ActiveCells returns the cells of the falling piece.
func (s *Session) ActiveCells() []Point { return s.board.Active() }

// Score returns the current score.
func (s *Session) Score() int { return s.scorer.Score() }

// Level returns the current level.
func (s *Session) Level() int { return s.scorer.Level() }

// LinesClearedTotal returns the rows cleared this game.
func (s *Session) LinesClearedTotal() int { return s.scorer.LinesTotal() }

// HeldShape returns the shape in the hold box, if any.
func (s *Session) HeldShape() (Shape, bool) { return s.hold.Current() }

// NextPreviewShape returns the shape that will spawn next.
func (s *Session) NextPreviewShape() (Shape, bool) { return s.preview.Current() }

// HoldSpent reports whether hold was already used for the current piece.
func (s *Session) HoldSpent() bool { return s.holdSpent }

// Phase returns the board lifecycle stage.
func (s *Session) Phase() Phase { return s.board.Phase() }

// Paused reports whether the game is paused.
func (s *Session) Paused() bool { return s.paused }

// GameOver reports whether a spawn has been blocked.
func (s *Session) GameOver() bool { return s.board.Phase() == PhaseGameOver }

// Board returns a read-only view of the playfield.
func (s *Session) Board() DisplayBoard { return s.board }

// PreviewBoard returns a read-only view of the next-piece box.
func (s *Session) PreviewBoard() DisplayBoard { return s.preview }

// HoldBoard returns a read-only view of the hold box.
func (s *Session) HoldBoard() DisplayBoard { return s.hold }

// GravityPeriod returns the current time between gravity steps.
func (s *Session) GravityPeriod() time.Duration { return s.sched.GravityPeriod() }

func (s *Session) accepting() bool {
	return !s.paused && !s.GameOver()
}

// gravity steps the piece down or, when it cannot move, locks it, clears
// rows, scores and spawns the next piece.
func (s *Session) gravity(r *TickReport) {
	if s.board.Phase() != PhaseFalling {
		return
	}
	if s.board.TryTranslate(0, -1) {
		return
	}

	s.board.Lock()
	r.Locked = true

	n := ClearFullRows(s.board.Grid())
	s.scorer.Apply(n)
	r.LinesCleared = n
	s.applyLevelSpeed()

	r.Spawned = s.spawnNext()
}

// spawnNext spawns the preview piece and refills the preview from the bag.
func (s *Session) spawnNext() bool {
	next, ok := s.preview.Current()
	if !ok {
		next = s.bag.Next()
	}
	if !s.spawn(next) {
		return false
	}
	s.preview.Show(s.bag.Next())
	return true
}

func (s *Session) spawn(shape Shape) bool {
	if !s.board.Spawn(shape) {
		s.sched.ReleaseMove()
		s.sched.ReleaseSoftDrop()
		return false
	}
	s.holdSpent = false
	return true
}

func (s *Session) applyLevelSpeed() {
	if s.settings.GravityForLevel == nil {
		return
	}
	s.sched.SetGravityPeriod(s.settings.GravityForLevel(s.scorer.Level()))
}
