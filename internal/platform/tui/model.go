package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model that runs one game variant.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     GameKeyMap
	help     help.Model
	frame    core.InputFrame
	state    core.GameState
	ticks    int    // simulated ticks of the current game, pauses excluded
	saved    bool   // result of the current game over already recorded
	status   string // shown above the help line
	quitting bool
}

// NewModel creates a model and starts a game. A nil logger discards output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		frame:  core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(max(cfg.ScreenW, 1), m.gameHeight())
	m.game.Reset(m.config)
	m.state = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
	case core.ActionNone:
	default:
		m.frame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame)
	m.frame.Clear()

	if !result.State.Paused && !m.state.GameOver {
		m.ticks++
	}
	m.state = result.State

	if m.state.GameOver && !m.saved {
		m.recordResult()
	}
	return m, tickCmd(m.config.TickRate)
}

// restart begins a fresh game with a new seed. An unfinished game is dropped.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.frame.Clear()
	m.ticks = 0
	m.saved = false
	m.status = ""
	m.fitScreen()
}

// elapsed is the played time of the current game.
func (m *Model) elapsed() time.Duration {
	return time.Duration(m.ticks) * (time.Second / time.Duration(m.config.TickRate))
}

// recordResult stores a finished game once and reports its standing.
// Storage errors are logged and never interrupt play.
func (m *Model) recordResult() {
	m.saved = true
	defer m.fitScreen()

	id := m.game.ID()
	score := m.state.Score
	if m.store == nil || score == 0 {
		m.status = "Press r to play again"
		return
	}

	entry, err := m.store.SaveResult(storage.Result{
		GameID:   id,
		Score:    score,
		Level:    m.state.Level,
		Lines:    m.state.Lines,
		Duration: m.elapsed(),
	})
	if err != nil {
		m.logger.Warn("cannot save score", "game", id, "error", err)
		m.status = "Score not saved"
		return
	}

	rank, err := m.store.Rank(id, score)
	if err != nil {
		m.logger.Warn("cannot rank score", "game", id, "error", err)
		m.status = "Score saved"
		return
	}
	best, err := m.store.HighScore(id)
	if err != nil {
		m.logger.Warn("cannot read high score", "game", id, "error", err)
		best = score
	}

	m.logger.Info("score saved", "game", id, "run", entry.RunID, "score", score, "rank", rank)
	if rank == 1 {
		m.status = fmt.Sprintf("New high score: %s!", humanize.Comma(int64(score)))
	} else {
		m.status = fmt.Sprintf("%s place, best %s", humanize.Ordinal(rank), humanize.Comma(int64(best)))
	}
}

// footer renders the status and help lines under the game area.
func (m Model) footer() string {
	lines := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		lines = statusStyle.Render(m.status) + "\n" + lines
	}
	return lines
}

func (m Model) gameHeight() int {
	return max(m.config.ScreenH-lipgloss.Height(m.footer()), 1)
}

// fitScreen keeps the game area sized to the window minus the footer.
// The running game is kept; only the drawing area changes.
func (m *Model) fitScreen() {
	m.screen.Resize(max(m.config.ScreenW, 1), m.gameHeight())
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.status = "Screenshot saved to " + path
	m.fitScreen()
}

// View renders the game area and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteByte('\n')
	b.WriteString(m.footer())
	return b.String()
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.state
}

// Status returns the current status message.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program for one game and blocks until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(game, store, cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
