package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisYAML returns the embedded default configuration file.
func DefaultTetrisYAML() []byte {
	return append([]byte(nil), defaultTetrisYAML...)
}

// DefaultTetrisConfig returns the built-in configuration used when the
// embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:         10,
			Height:        20,
			Buffer:        4,
			PreviewWidth:  6,
			PreviewHeight: 6,
		},
		Timing: TimingConfig{
			TicksPerSecond: 1.0,
			MoveDelayMS:    170,
			MoveRepeatMS:   50,
			DropRepeatMS:   50,
		},
		Scoring: ScoringConfig{
			LinesPerLevel: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			InitialLevel:      0.0,
			SpeedupPerLevel:   0.25,
			MaxTicksPerSecond: 20,
		},
		Palette: []string{"cyan", "yellow", "magenta", "green", "red", "blue", "orange"},
		PieceSets: map[string][]PieceConfig{
			SetTetromino: {
				{Name: "I", Color: 0, Cells: [][]int{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}}},
				{Name: "O", Color: 1, Cells: [][]int{{-1, 0}, {0, 0}, {-1, 1}, {0, 1}}},
				{Name: "T", Color: 2, Cells: [][]int{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}},
				{Name: "S", Color: 3, Cells: [][]int{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}},
				{Name: "Z", Color: 4, Cells: [][]int{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}},
				{Name: "J", Color: 5, Cells: [][]int{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}},
				{Name: "L", Color: 6, Cells: [][]int{{-1, 0}, {0, 0}, {1, 0}, {1, 1}}},
			},
		},
	}
}
