package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModelForwardsKeysOnNextTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime(), nil)
	require.Equal(t, 1, g.resets)

	m, _ = update(t, m, keyOf(tea.KeyLeft))
	m, _ = update(t, m, keyOf(tea.KeySpace))
	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "tick loop continues")

	require.Len(t, g.frames, 1)
	assert.True(t, g.frames[0].Has(core.ActionLeft))
	assert.True(t, g.frames[0].Has(core.ActionHardDrop))

	update(t, m, TickMsg{})
	require.Len(t, g.frames, 2)
	assert.True(t, g.frames[1].Empty(), "input is cleared after each step")
}

func TestModelRecordsResultOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testRuntime(), nil)

	m, _ = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 1200, Level: 2, Lines: 11, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 1200, scores[0].Score)
	assert.Equal(t, 2, scores[0].Level)
	assert.Equal(t, 11, scores[0].Lines)
	assert.Greater(t, scores[0].Duration, time.Duration(0))
	assert.Contains(t, m.Status(), "New high score")
	assert.Contains(t, m.View(), "New high score")
}

func TestModelReportsRankBelowBest(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore("fake", 5000)
	require.NoError(t, err)

	g := &fakeGame{}
	m := NewModel(g, store, testRuntime(), nil)
	g.state = core.GameState{Score: 100, Level: 1, GameOver: true}
	m, _ = update(t, m, TickMsg{})

	assert.Equal(t, "2nd place, best 5,000", m.Status())
}

func TestModelSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testRuntime(), nil)

	g.state = core.GameState{Level: 1, GameOver: true}
	m, _ = update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
	assert.Equal(t, "Press r to play again", m.Status())
}

func TestModelRestartStartsNewGame(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testRuntime(), nil)
	firstSeed := g.last.Seed

	g.state = core.GameState{Score: 300, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	require.NotEmpty(t, m.Status())

	m, _ = update(t, m, runes("r"))
	assert.Equal(t, 2, g.resets)
	assert.NotEqual(t, firstSeed, g.last.Seed)
	assert.Empty(t, m.Status())
	assert.False(t, m.State().GameOver)

	// The next game over is recorded again.
	g.state = core.GameState{Score: 400, GameOver: true}
	update(t, m, TickMsg{})
	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime(), nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height(), "one row is left for the help line")
}

func TestModelHelpToggleShrinksGameArea(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testRuntime(), nil)
	short := m.screen.Height()

	m, _ = update(t, m, runes("?"))
	assert.Less(t, m.screen.Height(), short)

	m, _ = update(t, m, runes("?"))
	assert.Equal(t, short, m.screen.Height())
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testRuntime(), nil)
	assert.True(t, strings.HasPrefix(m.View(), "FAKE"))

	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelDefaultsSeedAndTickRate(t *testing.T) {
	g := &fakeGame{}
	NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
	assert.NotZero(t, g.last.Seed)
	assert.Equal(t, 60, g.last.TickRate)
}
