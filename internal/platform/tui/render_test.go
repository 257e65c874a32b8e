package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	if got, want := RenderScreen(s), "ab  \n cd "; got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestRenderScreenColoredRunsKeepText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColor(0, 0, "RR", core.ColorRed)
	s.DrawTextColor(2, 0, "GG", core.ColorGreen)
	s.DrawTextColor(4, 0, "OO", core.Color(200))

	out := RenderScreen(s)
	for _, want := range []string{"RR", "GG", "OO"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}
