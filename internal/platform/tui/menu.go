package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []registry.Variant
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *registry.Variant // Set when user selects a variant
	openScoreboard bool              // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a menu over all registered variants.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:     registry.List(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)

	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionNone:
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("S N A K E"))
	b.WriteString("\n\n")
	b.WriteString(menuDimStyle.Render("Select a board"))
	b.WriteString("\n\n")

	for i, v := range m.items {
		cfg := v.Config
		info := fmt.Sprintf("%dx%d  %s", cfg.Width, cfg.Height, cfg.TickInterval)
		if cfg.FoodSize > 1 {
			info += fmt.Sprintf("  food %dx%d", cfg.FoodSize, cfg.FoodSize)
		}

		line := fmt.Sprintf("  %-12s %s", v.Title, menuDimStyle.Render(info))
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %-12s", v.Title)) + " " + menuDimStyle.Render(info)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(menuDimStyle.Render(m.items[m.cursor].Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render("↑/↓: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the selected variant, or nil if none selected.
func (m MenuModel) Selected() *registry.Variant {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
