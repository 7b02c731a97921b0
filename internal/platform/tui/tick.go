// Package tui provides the Bubble Tea integration for the snake game.
// It drives the simulation clock, maps keys to session commands and hosts
// the menu, scoreboard and SSH front ends.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Model identifies the
// game that scheduled it so a closed game's pending tick is dropped.
type TickMsg struct {
	Time  time.Time
	Model string
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
// The handler reschedules it, so exactly one chain runs per game model.
func tickCmd(interval time.Duration, model string) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Model: model}
	})
}
