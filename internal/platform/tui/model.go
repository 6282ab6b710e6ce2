package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// helpRows is the number of terminal rows below the playfield.
const helpRows = 1

// Model is the Bubble Tea model running Alien Invasion.
type Model struct {
	game       *invasion.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	theme      Theme
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       heldKeys
	gameState  core.GameState

	scoreboard     ScoreboardModel
	showScoreboard bool
	pointerOn      bool // Whether mouse reporting is enabled
	quitting       bool
}

// NewModel creates a model for the game and resets it. store and logger may be nil.
func NewModel(game *invasion.Game, store *storage.Store, logger *log.Logger, theme Theme, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)
	if store != nil {
		if high, err := store.HighScore(); err != nil {
			logger.Warn("could not read high score", "error", err)
		} else {
			game.SetHighScore(high)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		store:      store,
		logger:     logger,
		theme:      theme,
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		held:       newHeldKeys(cfg.TickRate),
		gameState:  game.State(),
		pointerOn:  true,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showScoreboard {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.showScoreboard {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.held.press(core.ActionLeft)
	case key.Matches(msg, m.keys.Right):
		m.held.press(core.ActionRight)
	case key.Matches(msg, m.keys.Stop):
		m.held.stop()
	case key.Matches(msg, m.keys.Fire):
		m.inputFrame.Set(core.ActionFire)
	case key.Matches(msg, m.keys.Start):
		m.inputFrame.Set(core.ActionStart)
	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)
	case key.Matches(msg, m.keys.Scores):
		if !m.gameState.Active {
			m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.showScoreboard = true
		}
	}
	return m, nil
}

// updateScoreboard forwards a message to the scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)
	if m.scoreboard.Closed() {
		m.showScoreboard = false
	}
	return m, cmd
}

// handleMouse turns a left click into a pointer click in world units.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showScoreboard || !m.gameState.PointerVisible {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	vp := invasion.NewViewport(m.game.Settings().World(), m.screen.Width(), m.screen.Height())
	x, y := vp.ToWorld(msg.X, msg.Y)
	m.inputFrame.Click(x, y)
	return m, nil
}

// handleResize processes window resize events. The game keeps running; only
// the drawing scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width

	if m.showScoreboard {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// playable reports whether the terminal is big enough to draw the playfield.
func (m Model) playable() bool {
	return m.screen.Width() >= invasion.MinScreenW && m.screen.Height() >= invasion.MinScreenH
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showScoreboard || !m.playable() {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.held.apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.GameOver {
		m.recordResult()
		m.held.stop()
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.gameState.PointerVisible != m.pointerOn {
		m.pointerOn = m.gameState.PointerVisible
		if m.pointerOn {
			cmds = append(cmds, tea.EnableMouseCellMotion)
		} else {
			cmds = append(cmds, tea.DisableMouse)
		}
	}

	return m, tea.Batch(cmds...)
}

// recordResult saves the finished game to the session store.
func (m Model) recordResult() {
	stats := m.game.Stats()
	m.logger.Info("game finished", "score", stats.Score, "wave", stats.Level, "high_score", stats.HighScore)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(stats.Score, stats.Level); err != nil {
		m.logger.Warn("could not record result", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScoreboard {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.theme.RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(game *invasion.Game, store *storage.Store, logger *log.Logger, theme Theme, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, theme, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the Play button
	)

	_, err := p.Run()
	return err
}
