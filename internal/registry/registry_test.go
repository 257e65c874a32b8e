package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	assert.True(t, Exists("zz-stub"))
	assert.False(t, Exists("nope"))

	g, err := Create("aa-stub")
	require.NoError(t, err)
	assert.Equal(t, "aa-stub", g.ID())

	_, err = Create("nope")
	assert.ErrorIs(t, err, ErrUnknownGame)

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	assert.Contains(t, ids, "aa-stub")
	assert.Less(t, indexOf(ids, "aa-stub"), indexOf(ids, "zz-stub"), "List is sorted by ID")
	assert.Equal(t, "Stub zz-stub", list[indexOf(ids, "zz-stub")].Title)

	assert.Panics(t, func() {
		Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })
	})
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
