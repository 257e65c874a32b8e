package engine

// lineScores holds the base points per lock, indexed by rows cleared.
// Clears outside the table (0 or more than 4 rows) score nothing.
var lineScores = [...]int{0, 100, 300, 500, 800}

// LineScore returns the base points for clearing n rows with one lock.
func LineScore(n int) int {
	if n < 0 || n >= len(lineScores) {
		return 0
	}
	return lineScores[n]
}

// Scorer turns line clears into score and level progression.
type Scorer struct {
	linesPerLevel int

	score         int
	level         int
	linesTotal    int
	linesLastLock int
}

// NewScorer creates a scorer starting at level 1.
// linesPerLevel values below 1 are treated as 1.
func NewScorer(linesPerLevel int) *Scorer {
	s := &Scorer{linesPerLevel: max(1, linesPerLevel)}
	s.Reset()
	return s
}

// Apply records the rows cleared by one lock. The score uses the level in
// effect before the clear; the level is then recomputed from the total.
func (s *Scorer) Apply(n int) {
	s.linesLastLock = n
	s.score += LineScore(n) * s.level
	if n > 0 {
		s.linesTotal += n
	}
	s.level = s.linesTotal/s.linesPerLevel + 1
}

// Reset starts a new game's tally.
func (s *Scorer) Reset() {
	s.score = 0
	s.level = 1
	s.linesTotal = 0
	s.linesLastLock = 0
}

// Score returns the accumulated points.
func (s *Scorer) Score() int { return s.score }

// Level returns the current level, starting at 1 and never capped.
func (s *Scorer) Level() int { return s.level }

// LinesTotal returns rows cleared this game.
func (s *Scorer) LinesTotal() int { return s.linesTotal }

// LinesLastLock returns rows cleared by the most recent lock.
func (s *Scorer) LinesLastLock() int { return s.linesLastLock }
