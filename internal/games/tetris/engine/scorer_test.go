package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineScoreTable(t *testing.T) {
	tests := []struct {
		lines    int
		expected int
	}{
		{-1, 0},
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
		{5, 0},
		{6, 0},
	}

	for _, tc := range tests {
		if got := LineScore(tc.lines); got != tc.expected {
			t.Errorf("LineScore(%d) = %d, expected %d", tc.lines, got, tc.expected)
		}
	}
}

func TestScorerUsesLevelBeforeClear(t *testing.T) {
	s := NewScorer(10)
	// Reach level 3: 20 lines.
	for _i := 0; _i < 5; _i++ {
		s.Apply(4)
	}
	assert.Equal(t, 3, s.Level())
	before := s.Score()

	s.Apply(4)
	assert.Equal(t, before+2400, s.Score())
	assert.Equal(t, 4, s.LinesLastLock())
}

func TestScorerZeroLinesNoChange(t *testing.T) {
	s := NewScorer(10)
	s.Apply(2)
	score, lines, level := s.Score(), s.LinesTotal(), s.Level()

	s.Apply(0)
	assert.Equal(t, score, s.Score())
	assert.Equal(t, lines, s.LinesTotal())
	assert.Equal(t, level, s.Level())
	assert.Equal(t, 0, s.LinesLastLock())
}

func TestScorerLevelFormula(t *testing.T) {
	s := NewScorer(10)
	for _i := 0; _i < 6; _i++ {
		s.Apply(4)
	}
	s.Apply(1)

	assert.Equal(t, 25, s.LinesTotal())
	assert.Equal(t, 3, s.Level())
}

func TestScorerOversizedClearCountsLinesOnly(t *testing.T) {
	s := NewScorer(10)
	s.Apply(5)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 5, s.LinesTotal())
}

func TestScorerReset(t *testing.T) {
	s := NewScorer(0)
	s.Apply(3)
	assert.Equal(t, 4, s.Level(), "linesPerLevel below 1 behaves as 1")

	s.Reset()
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.LinesTotal())
}
