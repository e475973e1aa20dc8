package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/core"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/registry"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.eyespy/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server that gives every connection its own game session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "eyespy-ssh",
	})

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".eyespy", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	return NewSessionModel(cfg, sshSession.User()), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until an interrupt.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionStage is where a session is in the menu -> difficulty -> game flow.
type sessionStage int

const (
	stageMenu sessionStage = iota
	stageDifficulty
	stageGame
)

// difficultySetter is implemented by games with per-instance difficulty.
type difficultySetter interface {
	SetDifficulty(preset config.DifficultyPreset)
}

// SessionModel manages one SSH user's flow: menu -> difficulty -> game -> menu.
type SessionModel struct {
	config     core.RuntimeConfig
	username   string
	stage      sessionStage
	menu       MenuModel
	difficulty DifficultyModel
	gameID     string
	gameModel  *GameModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		config:   cfg,
		username: username,
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stageGame:
		return m.updateGame(msg)
	case stageDifficulty:
		return m.updateDifficulty(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		m.gameID = selected.GameID
		m.config = m.menu.Config()
		m.difficulty = NewDifficultyModel(selected.Title, config.DifficultyNormal, m.config.ScreenW, m.config.ScreenH)
		m.stage = stageDifficulty
		return m, m.difficulty.Init()
	}

	return m, cmd
}

// updateDifficulty handles updates when picking a difficulty.
func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.difficulty.Update(msg)
	if d, ok := next.(DifficultyModel); ok {
		m.difficulty = d
	}

	switch {
	case m.difficulty.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.difficulty.WantsBack():
		return m.returnToMenu()
	}

	preset := m.difficulty.Selected()
	if preset == nil {
		return m, cmd
	}

	game, err := registry.Create(m.gameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		return m.returnToMenu()
	}
	if d, ok := game.(difficultySetter); ok {
		d.SetDifficulty(*preset)
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	gameModel := NewGameModel(game, cfg)
	m.gameModel = &gameModel
	m.stage = stageGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		return m.returnToMenu()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) returnToMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.gameModel = nil
	m.gameID = ""
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageGame:
		return m.gameModel.View()
	case stageDifficulty:
		return m.difficulty.View()
	default:
		return m.menu.View()
	}
}
