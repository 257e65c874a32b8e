// Package tetris adapts the falling-block engine to the arcade game interface.
// It registers two variants: "tetris" with the seven tetrominoes and
// "pentris" with the eighteen one-sided pentominoes.
package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Variant identifiers.
const (
	IDTetris  = "tetris"
	IDPentris = "pentris"
)

// Game implements registry.Game on top of an engine.Session.
type Game struct {
	id    string
	title string
	set   string

	cfg        config.TetrisConfig
	colors     []core.Color
	difficulty *config.DifficultyManager
	session    *engine.Session

	runtime core.RuntimeConfig
	step    time.Duration // simulated time per Step
	ticks   uint64
	level   int
	over    bool
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config's own difficulty settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates the classic seven-piece variant.
func New() *Game {
	return &Game{id: IDTetris, title: "Tetris", set: config.SetTetromino}
}

// NewPentris creates the pentomino variant.
func NewPentris() *Game {
	return &Game{id: IDPentris, title: "Pentris", set: config.SetPentomino}
}

func init() {
	registry.Register(IDTetris, func() registry.Game { return New() })
	registry.Register(IDPentris, func() registry.Game { return NewPentris() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a new game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rc
	g.step = time.Second / time.Duration(rc.TickRate)
	g.ticks = 0
	g.over = false

	g.cfg = loadConfig()
	catalog, err := g.cfg.Catalog(g.set)
	if err != nil {
		logger.Warn("piece set unavailable, using defaults", "set", g.set, "error", err)
		g.cfg = config.DefaultTetrisConfig()
		catalog, _ = g.cfg.Catalog(config.SetTetromino)
	}
	g.colors, _ = g.cfg.Colors()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Timing.TicksPerSecond)

	b := g.cfg.Board
	settings := engine.Settings{
		Width:         b.Width,
		Height:        b.Height,
		Buffer:        b.Buffer,
		DisplayWidth:  b.PreviewWidth,
		DisplayHeight: b.PreviewHeight,
		LinesPerLevel: g.cfg.Scoring.LinesPerLevel,
		Timing: engine.Timing{
			Gravity:    g.difficulty.GravityPeriod(1),
			MoveDelay:  g.cfg.Timing.MoveDelay(),
			MoveRepeat: g.cfg.Timing.MoveRepeat(),
			DropRepeat: g.cfg.Timing.DropRepeat(),
		},
		GravityForLevel: g.difficulty.GravityPeriod,
	}
	g.session = engine.NewSession(settings, catalog, rand.New(rand.NewSource(rc.Seed))) //nolint:gosec // gameplay RNG
	g.level = g.session.Level()

	logger.Info("game started",
		"game", g.id,
		"seed", rc.Seed,
		"difficulty", string(difficultyPreset),
		"board", b.Width, "rows", b.Height,
	)
}

// loadConfig resolves the config file and applies the difficulty preset.
// A broken custom file falls back to the embedded default.
func loadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("config rejected, using defaults", "path", configPath, "error", err)
		cfg, _ = config.LoadTetris("")
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)
	return cfg
}

// Step applies this tick's input and advances the simulation by one tick.
//
// Terminals report key presses but not releases, so each movement action is
// applied as a press immediately followed by a release. Held keys arrive as
// repeated presses from the terminal's own auto-repeat.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	if in.Has(core.ActionPause) {
		s.PauseToggle()
	}
	if in.Has(core.ActionHold) {
		s.Hold()
	}

	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		s.MoveAxis(-1)
		s.MoveAxis(0)
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		s.MoveAxis(1)
		s.MoveAxis(0)
	}

	if in.Has(core.ActionRotateCW) {
		s.Rotate(true)
	}
	if in.Has(core.ActionRotateCCW) {
		s.Rotate(false)
	}
	if in.Has(core.ActionSoftDrop) {
		s.SoftDrop(true)
		s.SoftDrop(false)
	}
	if in.Has(core.ActionHardDrop) {
		s.HardDrop()
	}

	report := s.Tick(g.step)
	if !s.Paused() && !g.over {
		g.ticks++
	}
	g.observe(report)

	return core.StepResult{
		State:        g.State(),
		LinesCleared: report.LinesCleared,
		Locked:       report.Locked,
	}
}

// observe logs notable events from one tick.
func (g *Game) observe(r engine.TickReport) {
	s := g.session
	if r.LinesCleared > 0 {
		logger.Debug("lines cleared", "game", g.id, "lines", r.LinesCleared, "score", s.Score())
	}
	if lvl := s.Level(); lvl != g.level {
		g.level = lvl
		logger.Info("level up", "game", g.id, "level", lvl, "gravity", s.GravityPeriod())
	}
	if r.GameOver && !g.over {
		g.over = true
		logger.Info("game over",
			"game", g.id,
			"score", s.Score(),
			"level", s.Level(),
			"lines", s.LinesClearedTotal(),
			"duration", time.Duration(g.ticks)*g.step, //nolint:gosec // tick count fits
		)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.LinesClearedTotal(),
		GameOver: g.session.GameOver(),
		Paused:   g.session.Paused(),
	}
}

// Session exposes the underlying engine session.
func (g *Game) Session() *engine.Session {
	return g.session
}
