package engine

import "time"

// Timing holds the scheduler periods.
type Timing struct {
	Gravity    time.Duration // time between gravity steps
	MoveDelay  time.Duration // hold time before horizontal auto-repeat starts
	MoveRepeat time.Duration // horizontal auto-repeat period
	DropRepeat time.Duration // soft-drop repeat period
}

// Fired lists the timers that came due during one Advance call.
type Fired struct {
	Gravity bool
	Move    int // -1 or 1 when a horizontal repeat fired, else 0
	Drop    bool
}

// Scheduler converts elapsed wall time into discrete game events.
// It keeps its own game clock that only advances while unpaused, so a pause
// freezes every timer in place and resuming never produces a burst of
// overdue firings. Each timer fires at most once per Advance.
type Scheduler struct {
	timing Timing
	now    time.Duration // game time, excludes paused intervals
	paused bool

	nextGravity time.Duration

	moveDir  int
	moveHeld bool
	nextMove time.Duration

	dropHeld bool
	nextDrop time.Duration
}

// NewScheduler creates a scheduler whose first gravity step is one full
// period away.
func NewScheduler(t Timing) *Scheduler {
	s := &Scheduler{timing: t}
	s.Reset()
	return s
}

// Reset rewinds the clock and releases all held inputs.
func (s *Scheduler) Reset() {
	s.now = 0
	s.paused = false
	s.nextGravity = s.timing.Gravity
	s.moveHeld = false
	s.moveDir = 0
	s.dropHeld = false
}

// Now returns the current game time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Paused reports whether the clock is frozen.
func (s *Scheduler) Paused() bool { return s.paused }

// SetPaused freezes or resumes the clock.
func (s *Scheduler) SetPaused(paused bool) { s.paused = paused }

// Advance moves game time forward by elapsed and reports due timers.
func (s *Scheduler) Advance(elapsed time.Duration) Fired {
	var f Fired
	if s.paused || elapsed < 0 {
		return f
	}
	s.now += elapsed

	if s.now >= s.nextGravity {
		s.nextGravity = s.now + s.timing.Gravity
		f.Gravity = true
	}

	if s.moveHeld && s.now >= s.nextMove {
		f.Move = s.moveDir
		s.nextMove = s.now + s.timing.MoveRepeat
	}

	if s.dropHeld && s.now >= s.nextDrop {
		f.Drop = true
		s.nextDrop = s.now + s.timing.DropRepeat
	}

	return f
}

// PressMove starts horizontal auto-repeat in dir after the initial delay.
func (s *Scheduler) PressMove(dir int) {
	s.moveHeld = true
	s.moveDir = dir
	s.nextMove = s.now + s.timing.MoveDelay
}

// ReleaseMove stops horizontal auto-repeat.
func (s *Scheduler) ReleaseMove() {
	s.moveHeld = false
	s.moveDir = 0
}

// PressSoftDrop starts soft-drop repeat.
func (s *Scheduler) PressSoftDrop() {
	s.dropHeld = true
	s.nextDrop = s.now + s.timing.DropRepeat
}

// ReleaseSoftDrop stops soft-drop repeat.
func (s *Scheduler) ReleaseSoftDrop() {
	s.dropHeld = false
}

// PostponeGravity pushes the next gravity step a full period out.
func (s *Scheduler) PostponeGravity() {
	s.nextGravity = s.now + s.timing.Gravity
}

// ForceGravity makes the next Advance fire gravity regardless of elapsed time.
func (s *Scheduler) ForceGravity() {
	s.nextGravity = s.now
}

// SetGravityPeriod changes the gravity period for subsequent steps.
// The step already scheduled is left alone.
func (s *Scheduler) SetGravityPeriod(d time.Duration) {
	if d > 0 {
		s.timing.Gravity = d
	}
}

// GravityPeriod returns the current gravity period.
func (s *Scheduler) GravityPeriod() time.Duration { return s.timing.Gravity }
