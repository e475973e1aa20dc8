package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/core"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/registry"
)

// footerHeight is the number of rows reserved below the game for key help.
const footerHeight = 2

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one game on the tick loop, with key help and a way back to the menu.
// It is used both for local play and inside SSH sessions.
type GameModel struct {
	game       registry.Game
	loop       uint64
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	exitOnBack bool // Quit the program instead of handing control back to a parent model
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		loop:       newLoopID(),
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  core.GameState{Idle: true},
		keys:       DefaultGameKeyMap(),
		help:       h,
	}
}

// gameConfig returns the runtime config as the game sees it, minus the footer.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 0)
	return cfg
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back) && m.gameState.Idle:
		// Nothing to abandon; leave the game
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveScreenshot saves the current screen as plain text under ~/.eyespy/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".eyespy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game and the key help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the user quits or backs out.
// It reports whether the user asked to go back rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewGameModel(game, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
