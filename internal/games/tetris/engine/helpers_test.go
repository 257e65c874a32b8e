package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func pts(xy ...int) []Point {
	out := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

var (
	shapeI = Shape{Name: "I", Color: 0, Offsets: pts(-2, 0, -1, 0, 0, 0, 1, 0)}
	shapeO = Shape{Name: "O", Color: 1, Offsets: pts(-1, 0, 0, 0, -1, 1, 0, 1)}
	shapeT = Shape{Name: "T", Color: 2, Offsets: pts(-1, 0, 0, 0, 1, 0, 0, 1)}
	shapeS = Shape{Name: "S", Color: 3, Offsets: pts(-1, 0, 0, 0, 0, 1, 1, 1)}
	shapeZ = Shape{Name: "Z", Color: 4, Offsets: pts(-1, 1, 0, 1, 0, 0, 1, 0)}
	shapeJ = Shape{Name: "J", Color: 5, Offsets: pts(-1, 1, -1, 0, 0, 0, 1, 0)}
	shapeL = Shape{Name: "L", Color: 6, Offsets: pts(-1, 0, 0, 0, 1, 0, 1, 1)}

	tetrominoes = []Shape{shapeI, shapeO, shapeT, shapeS, shapeZ, shapeJ, shapeL}
)

func newCatalog(t *testing.T, shapes ...Shape) *Catalog {
	t.Helper()
	if len(shapes) == 0 {
		shapes = tetrominoes
	}
	c, err := NewCatalog(shapes)
	require.NoError(t, err)
	return c
}

func testSettings() Settings {
	return Settings{
		Width:         10,
		Height:        20,
		Buffer:        2,
		DisplayWidth:  6,
		DisplayHeight: 4,
		LinesPerLevel: 10,
		Timing: Timing{
			Gravity:    time.Second,
			MoveDelay:  200 * time.Millisecond,
			MoveRepeat: 100 * time.Millisecond,
			DropRepeat: 100 * time.Millisecond,
		},
	}
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func newSession(t *testing.T, seed int64, shapes ...Shape) *Session {
	t.Helper()
	return NewSession(testSettings(), newCatalog(t, shapes...), newRNG(seed))
}

// lockRow fills row y with settled blocks except the listed columns.
func lockRow(g *Grid, y int, skip ...int) {
	holes := make(map[int]bool, len(skip))
	for _, x := range skip {
		holes[x] = true
	}
	for x := 0; x < g.Width(); x++ {
		if holes[x] {
			continue
		}
		p := Point{X: x, Y: y}
		g.Fill(p, 9)
		g.Lock(p)
	}
}
