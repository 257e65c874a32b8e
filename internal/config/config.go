// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Piece set names.
const (
	SetTetromino = "tetromino"
	SetPentomino = "pentomino"
)

// TetrisConfig contains all configuration for the falling-block games.
type TetrisConfig struct {
	Board      BoardConfig              `yaml:"board"`
	Timing     TimingConfig             `yaml:"timing"`
	Scoring    ScoringConfig            `yaml:"scoring"`
	Difficulty DifficultyConfig         `yaml:"difficulty"`
	Palette    []string                 `yaml:"palette"`
	PieceSets  map[string][]PieceConfig `yaml:"piece_sets"`
}

// BoardConfig defines the playfield and the preview/hold boxes.
type BoardConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	Buffer        int `yaml:"buffer"`
	PreviewWidth  int `yaml:"preview_width"`
	PreviewHeight int `yaml:"preview_height"`
}

// TimingConfig defines gravity and input repeat timing.
type TimingConfig struct {
	TicksPerSecond float64 `yaml:"ticks_per_second"`
	MoveDelayMS    int     `yaml:"move_delay_ms"`
	MoveRepeatMS   int     `yaml:"move_repeat_ms"`
	DropRepeatMS   int     `yaml:"drop_repeat_ms"`
}

// MoveDelay returns the auto-repeat delay as a duration.
func (t TimingConfig) MoveDelay() time.Duration {
	return time.Duration(t.MoveDelayMS) * time.Millisecond
}

// MoveRepeat returns the auto-repeat period as a duration.
func (t TimingConfig) MoveRepeat() time.Duration {
	return time.Duration(t.MoveRepeatMS) * time.Millisecond
}

// DropRepeat returns the soft drop period as a duration.
func (t TimingConfig) DropRepeat() time.Duration {
	return time.Duration(t.DropRepeatMS) * time.Millisecond
}

// ScoringConfig defines level progression.
type ScoringConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
}

// DifficultyConfig defines how gravity speeds up.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	InitialLevel      float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	SpeedupPerLevel   float64 `yaml:"speedup_per_level"`
	MaxTicksPerSecond float64 `yaml:"max_ticks_per_second"`
}

// PieceConfig describes one shape of a piece set.
type PieceConfig struct {
	Name  string  `yaml:"name"`
	Color int     `yaml:"color"` // index into the palette
	Cells [][]int `yaml:"cells"` // [x, y] offsets from the anchor
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "" which
// means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
