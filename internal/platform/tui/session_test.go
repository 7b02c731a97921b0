package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(testOptions(t))

	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame || m.game == nil {
		t.Fatal("selecting a board should start a game")
	}
	if cmd == nil {
		t.Error("game should schedule its first tick")
	}
	if m.lastID != "classic" {
		t.Errorf("lastID = %q, expected the first board", m.lastID)
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu || m.game != nil {
		t.Fatal("back from an idle game should return to the menu")
	}
	if m.quitting {
		t.Error("returning to the menu must not quit")
	}

	// A pending tick from the closed game is harmless.
	m, _ = sessionStep(t, m, TickMsg{Model: "stale"})
	if m.current != screenMenu {
		t.Error("stale tick changed the screen")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(testOptions(t))

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScoreboard {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard view is empty")
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu || m.quitting {
		t.Error("back from the scoreboard should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testOptions(t))

	m, cmd := sessionStep(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit from the menu")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
