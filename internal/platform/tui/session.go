package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for `snake menu` and for every SSH connection.
type SessionModel struct {
	opts       Options
	current    screenKind
	menu       MenuModel
	game       *GameModel
	scoreboard *ScoreboardModel
	lastID     string // last variant played, preselected in the scoreboard
	quitting   bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(opts Options) SessionModel {
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Screen.ScreenW, opts.Screen.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Screen.ScreenW = wsm.Width
		m.opts.Screen.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks from a game that just closed are dropped here.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.opts.Store, m.lastID, m.opts.Screen.ScreenW, m.opts.Screen.ScreenH)
		m.scoreboard = &sb
		m.current = screenScoreboard
		return m, sb.Init()

	case m.menu.Selected() != nil:
		v := *m.menu.Selected()
		game, err := NewGameModel(v, m.opts)
		if err != nil {
			m.opts.logger().Error("could not start variant", "variant", v.ID, "err", err)
			m.menu = NewMenuModel(m.opts.Screen.ScreenW, m.opts.Screen.ScreenH)
			return m, nil
		}
		game.embedded = true
		m.game = &game
		m.lastID = v.ID
		m.current = screenGame
		return m, game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = &game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

func (m *SessionModel) toMenu() {
	m.menu = NewMenuModel(m.opts.Screen.ScreenW, m.opts.Screen.ScreenH)
	m.current = screenMenu
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session locally.
func RunSession(opts Options) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
