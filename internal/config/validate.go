package config

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate checks the whole configuration, including that every piece set
// fits the board and the preview boxes.
func (c TetrisConfig) Validate() error {
	b := c.Board
	if b.Width < 1 || b.Height < 1 {
		return invalid("board size %dx%d", b.Width, b.Height)
	}
	if b.Buffer < 0 {
		return invalid("negative buffer %d", b.Buffer)
	}
	if b.PreviewWidth < 1 || b.PreviewHeight < 1 {
		return invalid("preview size %dx%d", b.PreviewWidth, b.PreviewHeight)
	}

	t := c.Timing
	if t.TicksPerSecond <= 0 {
		return invalid("ticks_per_second must be positive, got %v", t.TicksPerSecond)
	}
	if t.MoveDelayMS < 0 || t.MoveRepeatMS <= 0 || t.DropRepeatMS <= 0 {
		return invalid("repeat timings %d/%d/%d ms", t.MoveDelayMS, t.MoveRepeatMS, t.DropRepeatMS)
	}

	if c.Scoring.LinesPerLevel < 1 {
		return invalid("lines_per_level must be at least 1, got %d", c.Scoring.LinesPerLevel)
	}

	d := c.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return invalid("initial_level %v outside [0, 1]", d.InitialLevel)
	}
	if d.SpeedupPerLevel < 0 || d.MaxTicksPerSecond < 0 {
		return invalid("negative difficulty scaling")
	}

	if _, err := c.Colors(); err != nil {
		return err
	}
	if len(c.PieceSets) == 0 {
		return invalid("no piece sets")
	}
	for _, name := range c.SetNames() {
		cat, err := c.Catalog(name)
		if err != nil {
			return err
		}
		if err := cat.FitsBoard(b.Width, b.Height, b.Buffer, b.PreviewWidth, b.PreviewHeight); err != nil {
			return invalid("piece set %q: %v", name, err)
		}
	}
	return nil
}

// Colors resolves the palette names.
func (c TetrisConfig) Colors() ([]core.Color, error) {
	if len(c.Palette) == 0 {
		return nil, invalid("empty palette")
	}
	out := make([]core.Color, len(c.Palette))
	for i, name := range c.Palette {
		col, ok := core.ParseColor(name)
		if !ok {
			return nil, invalid("unknown palette color %q", name)
		}
		out[i] = col
	}
	return out, nil
}

// SetNames returns the configured piece set names in sorted order.
func (c TetrisConfig) SetNames() []string {
	names := make([]string, 0, len(c.PieceSets))
	for name := range c.PieceSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog builds the engine catalog for a piece set.
func (c TetrisConfig) Catalog(set string) (*engine.Catalog, error) {
	pieces, ok := c.PieceSets[set]
	if !ok {
		return nil, invalid("unknown piece set %q", set)
	}

	shapes := make([]engine.Shape, 0, len(pieces))
	for _, p := range pieces {
		if p.Color < 0 || p.Color >= len(c.Palette) {
			return nil, invalid("piece %q: color %d outside palette", p.Name, p.Color)
		}
		offsets := make([]engine.Point, 0, len(p.Cells))
		for _, xy := range p.Cells {
			if len(xy) != 2 {
				return nil, invalid("piece %q: cell %v is not [x, y]", p.Name, xy)
			}
			offsets = append(offsets, engine.Point{X: xy[0], Y: xy[1]})
		}
		shapes = append(shapes, engine.Shape{Name: p.Name, Offsets: offsets, Color: engine.ColorID(p.Color)})
	}

	cat, err := engine.NewCatalog(shapes)
	if err != nil {
		return nil, invalid("piece set %q: %v", set, err)
	}
	return cat, nil
}
