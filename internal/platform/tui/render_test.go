package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.Set(5, 1, 'z')

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	// Styles may add escape codes; the visible width must not change.
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "z") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
