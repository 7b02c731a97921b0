package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show variant sidebar
	sidebarWidth       = 20  // Width of variant sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next board"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	variants    []registry.Variant
	cursor      int
	store       *storage.Store
	scores      []storage.ScoreEntry
	stats       *storage.VariantStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard starting at the given variant,
// or the first one when startID is unknown.
func NewScoreboardModel(store *storage.Store, startID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants:    registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, v := range m.variants {
		if v.ID == startID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 6},
		{Title: "Length", Width: 7},
		{Title: "Outcome", Width: 14},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 54; extra > 0 {
		columns[4].Width += min(extra, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads scores and stats for the current variant.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.stats = nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.cursor].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetVariantStats(id, snake.OutcomeWin.String()); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		outcome := strings.ReplaceAll(s.Outcome, "_", " ")
		if snake.ParseOutcome(s.Outcome).IsWin() {
			outcome = "★ " + outcome
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Length),
			outcome,
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor + 1) % len(m.variants)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor - 1 + len(m.variants)) % len(m.variants)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	title := "HIGH SCORES"
	if len(m.variants) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.variants[m.cursor].Title)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", m.renderTable())
	} else {
		body = m.renderTable()
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		"",
		body,
		m.renderStats(),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) renderSidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("Boards\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")

	for i, v := range m.variants {
		line := "  " + v.Title
		if i == m.cursor {
			line = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("> " + v.Title)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return style.Render(b.String())
}

func (m ScoreboardModel) renderTable() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.scores) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return style.Render(empty.Render("No scores recorded yet.\nPlay a game to set a high score!"))
	}
	return style.Render(m.table.View())
}

func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(fmt.Sprintf(
		"%d games  %d wins  best %d  avg %.1f",
		m.stats.GamesCount, m.stats.Wins, m.stats.HighScore, m.stats.AvgScore,
	))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen standalone.
func RunScoreboard(store *storage.Store, startID string, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, startID, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
