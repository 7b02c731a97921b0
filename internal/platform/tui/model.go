package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/render"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Options carries the collaborators shared by every model.
type Options struct {
	Store  *storage.Store // optional; scores are not kept without it
	Logger *log.Logger    // optional; discards when nil
	Screen core.RuntimeConfig

	// Difficulty scales the tick interval of every variant started.
	Difficulty config.DifficultyPreset

	// ScreenshotDir overrides ~/.snake/screenshots.
	ScreenshotDir string
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// GameModel runs one variant: it ticks the session, forwards input and
// persists the score once per finished game.
type GameModel struct {
	id       string // tags this model's ticks
	variant  registry.Variant
	session  *snake.Session
	screen   *core.Screen
	renderer *render.TextRenderer
	opts     Options
	logger   *log.Logger
	keys     *KeyMapper
	help     help.Model

	runID    string
	best     int
	saved    bool
	status   string
	embedded bool // hosted by SessionModel; back returns to the menu
	width    int
	height   int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for the variant with the difficulty
// preset applied. A zero seed in opts.Screen picks a time-based one.
func NewGameModel(v registry.Variant, opts Options) (GameModel, error) {
	cfg := v.Config
	config.ApplyPreset(&cfg, opts.Difficulty)
	cfg.Seed = opts.Screen.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	session, err := snake.NewSession(cfg)
	if err != nil {
		return GameModel{}, fmt.Errorf("variant %s: %w", v.ID, err)
	}

	w, h := opts.Screen.ScreenW, opts.Screen.ScreenH
	screen := core.NewScreen(w, max(h-1, 0))

	m := GameModel{
		id:       uuid.NewString(),
		variant:  v,
		session:  session,
		screen:   screen,
		renderer: render.NewTextRenderer(screen, nil),
		opts:     opts,
		logger:   opts.logger().With("variant", v.ID),
		keys:     NewKeyMapper(),
		help:     help.New(),
		width:    w,
		height:   h,
	}
	m.help.Width = w

	if opts.Store != nil {
		best, err := opts.Store.HighScore(v.ID)
		if err != nil {
			m.logger.Warn("could not load high score", "err", err)
		}
		m.best = best
	}
	return m, nil
}

// Init starts the tick loop. The game itself waits for the start key.
func (m GameModel) Init() tea.Cmd {
	m.logger.Debug("game ready",
		"grid", fmt.Sprintf("%dx%d", m.variant.Config.Width, m.variant.Config.Height),
		"tick", m.session.Config().TickInterval,
		"seed", m.session.Config().Seed,
	)
	return tickCmd(m.session.Config().TickInterval, m.id)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Model != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies commands to the session immediately; the next tick
// picks up the latched direction.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Game.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action.IsDirectional() {
		d, _ := ActionDirection(action)
		m.session.SetIntendedDirection(d)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()

	case core.ActionPause:
		m.session.TogglePause()
		m.logger.Debug("pause toggled", "state", m.session.State())

	case core.ActionStart:
		m.startGame()

	case core.ActionBack:
		switch {
		case m.session.State() == snake.StateRunning:
			m.session.TogglePause()
		case m.embedded:
			m.backToMenu = true
		default:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// startGame begins a new run when the session is idle or over.
func (m *GameModel) startGame() {
	switch m.session.State() {
	case snake.StateNotStarted, snake.StateGameOver:
	default:
		return
	}

	m.runID = uuid.NewString()
	m.saved = false
	m.status = ""
	m.session.Start()

	cfg := m.session.Config()
	m.logger.Info("game started",
		"run", m.runID,
		"grid", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"seed", cfg.Seed,
	)

	// Placement can fail on the very first food.
	if m.session.State() == snake.StateGameOver {
		m.finishGame()
	}
}

// handleTick advances the simulation and reschedules the next tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Tick()
	if res.Ate {
		m.logger.Debug("food eaten", "score", m.session.Score(), "eaten", m.session.Eaten())
	}
	if res.Outcome != snake.OutcomeNone {
		m.finishGame()
	}

	return m, tickCmd(m.session.Config().TickInterval, m.id)
}

// finishGame logs the result and saves the score once per run.
func (m *GameModel) finishGame() {
	if m.saved {
		return
	}
	m.saved = true

	snap := m.session.Snapshot()
	m.best = max(m.best, snap.Score)
	m.logger.Info("game over",
		"run", m.runID,
		"outcome", snap.Outcome,
		"score", snap.Score,
		"length", len(snap.Body),
		"ticks", snap.Ticks,
	)

	if m.opts.Store == nil {
		return
	}
	_, saved, err := m.opts.Store.SaveScore(storage.Record{
		RunID:   m.runID,
		Variant: m.variant.ID,
		Score:   snap.Score,
		Outcome: snap.Outcome.String(),
		Length:  len(snap.Body),
		Ticks:   snap.Ticks,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Error("could not save score", "run", m.runID, "err", err)
		return
	}
	if saved {
		m.logger.Debug("score saved", "run", m.runID)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = "screenshot failed: no home directory"
			return
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("could not create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.variant.ID, timestamp))
	frame := render.Plain(m.session.Snapshot(), m.hud())
	if err := os.WriteFile(path, []byte(frame+"\n"), 0o600); err != nil {
		m.status = "screenshot failed"
		m.logger.Warn("could not write screenshot", "path", path, "err", err)
		return
	}

	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

func (m GameModel) hud() render.HUD {
	return render.HUD{Variant: m.variant.ID, Best: m.best}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	footer := footerStyle.Render(m.help.View(m.keys.Game))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}

	// The board gets whatever the footer leaves.
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(footer), 0))
	m.renderer.Draw(m.session.Snapshot(), m.hud())

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer)
}

// Session exposes the running session.
func (m GameModel) Session() *snake.Session {
	return m.session
}

// RunID returns the id of the current or last run, empty before the first start.
func (m GameModel) RunID() string {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game with the alternate screen.
func Run(v registry.Variant, opts Options) error {
	model, err := NewGameModel(v, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
