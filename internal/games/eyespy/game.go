package eyespy

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/core"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/registry"
)

// Mode selects whether the countdown is forced on.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeTimed   Mode = "timed"
)

// gridCols is the width of the card grid; slots are numbered row by row.
const gridCols = 3

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           *log.Logger
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to new rounds.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a Round to the fixed-tick platform loop.
type Game struct {
	mode   Mode
	preset config.DifficultyPreset // Overrides the package-level preset when set
	round  *Round
	view   *view

	tick    uint64
	tickDur time.Duration
	cursor  int // Grid slot under the cursor, 0-8
	lastErr error

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates an EyeSpy game whose countdown follows the config.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTimed creates an EyeSpy game with the countdown always on.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

func init() {
	registry.Register("eyespy", func() registry.Game {
		return New()
	})
	registry.Register("eyespy_timed", func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "eyespy_timed"
	}
	return "eyespy"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "EyeSpy (Timed)"
	}
	return "EyeSpy"
}

// Reset loads the config and leaves a fresh round waiting to be started.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadEyeSpy(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		gameCfg = config.DefaultEyeSpyConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyEyeSpyPreset(&gameCfg, preset)
	}

	settings := SettingsFromConfig(gameCfg)
	if g.mode == ModeTimed {
		settings.TimerEnabled = true
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.view = &view{}
	opts := []Option{WithRand(rand.New(rand.NewSource(cfg.Seed)))}
	if logger != nil {
		opts = append(opts, WithLogger(logger.With("game", g.ID())))
	}
	g.round = NewRound(settings, g.view, opts...)

	g.tick = 0
	g.tickDur = time.Second / time.Duration(tickRate)
	g.cursor = 0
	g.lastErr = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// SetDifficulty sets the difficulty preset for this game only, applied on the next reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// Resize follows a terminal resize without touching the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Time stands still while the window is too small
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.round.Phase() {
	case PhaseIdle:
		if in.Has(core.ActionConfirm) {
			g.start()
		}
	case PhaseGameOver:
		switch {
		case in.Has(core.ActionConfirm):
			g.start()
		case in.Has(core.ActionRestart), in.Has(core.ActionBack):
			g.round.Restart()
		}
	default:
		switch {
		case in.Has(core.ActionRestart):
			g.round.Restart()
		case in.Has(core.ActionBack):
			g.round.Quit()
		default:
			g.handlePlay(in)
		}
	}

	g.round.Advance(g.tickDur)
	return core.StepResult{State: g.State()}
}

func (g *Game) start() {
	g.cursor = 0
	g.lastErr = nil
	g.round.Start()
}

// handlePlay moves the cursor and picks cards.
func (g *Game) handlePlay(in core.InputFrame) {
	row, col := g.cursor/gridCols, g.cursor%gridCols
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	rows := (DeckSize + gridCols - 1) / gridCols
	g.cursor = core.Clamp(row, 0, rows-1)*gridCols + core.Clamp(col, 0, gridCols-1)

	slot := -1
	switch {
	case in.Has(core.ActionPick) && in.Pick >= 1 && in.Pick <= DeckSize:
		slot = in.Pick - 1
		g.cursor = slot
	case in.Has(core.ActionConfirm):
		slot = g.cursor
	}
	if slot >= 0 {
		g.pick(slot)
	}
}

func (g *Game) pick(slot int) {
	snap := g.round.Snapshot()
	if slot >= len(snap.Cards) {
		return
	}
	err := g.round.SelectCard(snap.Cards[slot].ID)
	if errors.Is(err, ErrNotSelectable) || errors.Is(err, ErrSelectionFull) {
		// Picks during memorize or a pause are expected; not worth surfacing
		return
	}
	g.lastErr = err
}

// Snapshot returns the round state for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return g.round.Snapshot()
}

// Cursor returns the grid slot under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// LastError returns the rejection from the most recent pick, if any.
func (g *Game) LastError() error {
	return g.lastErr
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.round.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Level:    snap.Level + 1,
		GameOver: snap.Phase == PhaseGameOver,
		Idle:     snap.Phase == PhaseIdle,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter: Pick | 1-9: Pick slot | R: Restart | B: Back | Q: Quit"
}

// view is the Game's Presenter. Drawing pulls from the round directly;
// the view keeps what the round pushed that a snapshot does not carry.
type view struct {
	finalScore int
	maxScore   int
}

func (v *view) Render(Snapshot, *TimerState) {}

func (v *view) ShowMessage(string) {}

func (v *view) ShowFinalScore(score, maxScore int) {
	v.finalScore = score
	v.maxScore = maxScore
}
