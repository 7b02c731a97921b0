package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"r", runeKey('r'), core.ActionStart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected snake.Direction
	}{
		{core.ActionUp, snake.DirUp},
		{core.ActionDown, snake.DirDown},
		{core.ActionLeft, snake.DirLeft},
		{core.ActionRight, snake.DirRight},
	}
	for _, tc := range tests {
		if d, ok := ActionDirection(tc.action); !ok || d != tc.expected {
			t.Errorf("ActionDirection(%v) = %v, %v", tc.action, d, ok)
		}
	}

	if _, ok := ActionDirection(core.ActionPause); ok {
		t.Error("pause is not a direction")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
