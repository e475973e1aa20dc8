package eyespy

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
)

// Rejections returned by SelectCard. The round is left unchanged.
var (
	ErrNotSelectable  = errors.New("cards cannot be picked right now")
	ErrUnknownCard    = errors.New("no such card")
	ErrAlreadyFlipped = errors.New("card already flipped")
	ErrWrongColor     = errors.New("card is not the target color")
	ErrSelectionFull  = errors.New("three cards already picked")
)

// Presenter receives the round's state after every change.
type Presenter interface {
	// Render is called after every state change. timer is nil when the countdown is disabled.
	Render(snap Snapshot, timer *TimerState)
	ShowMessage(text string)
	ShowFinalScore(score, maxScore int)
}

type nopPresenter struct{}

func (nopPresenter) Render(Snapshot, *TimerState) {}
func (nopPresenter) ShowMessage(string) {}
func (nopPresenter) ShowFinalScore(int, int) {}

// Settings parameterize a round.
type Settings struct {
	Colors       []Color // One level per color, in order
	Symbols      []Symbol
	Timing       config.TimingConfig
	TimerEnabled bool
}

// SettingsFromConfig converts a validated config into round settings.
func SettingsFromConfig(cfg config.EyeSpyConfig) Settings {
	s := Settings{
		Colors:       make([]Color, len(cfg.Palette.Colors)),
		Symbols:      make([]Symbol, len(cfg.Palette.Symbols)),
		Timing:       cfg.Timing,
		TimerEnabled: cfg.Timer.Enabled,
	}
	for i, c := range cfg.Palette.Colors {
		s.Colors[i] = Color(c)
	}
	for i, sym := range cfg.Palette.Symbols {
		s.Symbols[i] = Symbol(sym)
	}
	return s
}

// Option configures a Round.
type Option func(*Round)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(r *Round) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRand sets the random source used to shuffle decks.
func WithRand(rng *rand.Rand) Option {
	return func(r *Round) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// WithDeck replaces the deck generator.
func WithDeck(deal DeckFunc) Option {
	return func(r *Round) {
		if deal != nil {
			r.deal = deal
		}
	}
}

// Round is the level state machine. It is not safe for concurrent use;
// every method, Advance included, must be called from one goroutine.
type Round struct {
	settings  Settings
	presenter Presenter
	sched     *RevealScheduler
	log       *log.Logger
	rng       *rand.Rand
	deal      DeckFunc

	level    int
	score    int
	phase    Phase
	cards    []Card
	selected []int // Indexes into cards, in pick order
	message  string
}

// NewRound creates an idle round. A nil presenter discards all output.
func NewRound(settings Settings, presenter Presenter, opts ...Option) *Round {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	r := &Round{
		settings:  settings,
		presenter: presenter,
		sched:     NewRevealScheduler(settings.Timing),
		log:       log.New(io.Discard),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		deal:      Generate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins a new game at the first level. A game in progress is abandoned.
func (r *Round) Start() {
	r.reset()
	r.log.Debug("game started", "levels", len(r.settings.Colors), "timer", r.settings.TimerEnabled)
	r.startLevel()
}

// Restart abandons the game and returns to idle.
func (r *Round) Restart() {
	r.reset()
	r.log.Debug("game restarted")
	r.render()
}

// Quit abandons the game and returns to idle.
func (r *Round) Quit() {
	r.reset()
	r.log.Debug("game quit")
	r.render()
}

// SelectCard flips a hidden target-color card and adds it to the selection.
// The third pick starts the verdict pause; picks after it get ErrSelectionFull.
func (r *Round) SelectCard(id string) error {
	if len(r.selected) >= targetCount {
		return ErrSelectionFull
	}
	if r.phase != PhaseHidden {
		return ErrNotSelectable
	}
	idx := r.indexOf(id)
	if idx < 0 {
		return ErrUnknownCard
	}
	card := r.cards[idx]
	if card.Flipped {
		r.say("That card is already flipped")
		r.render()
		return ErrAlreadyFlipped
	}
	if card.Color != r.target() {
		r.say(fmt.Sprintf("Please select %s cards for this level", r.target()))
		r.render()
		return ErrWrongColor
	}

	r.cards[idx].Flipped = true
	r.selected = append(r.selected, idx)
	r.log.Debug("card picked", "level", r.level, "card", id, "picked", len(r.selected))

	if len(r.selected) == targetCount {
		r.setPhase(PhaseEvaluating)
		r.sched.ScheduleEvaluation(r.evaluate)
	}
	r.render()
	return nil
}

// Advance moves the round's clock forward by dt, firing any due transitions.
func (r *Round) Advance(dt time.Duration) {
	r.sched.Advance(dt)
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Settings returns the round's settings.
func (r *Round) Settings() Settings {
	return r.settings
}

// Timer returns the countdown state, or nil when the countdown is disabled.
func (r *Round) Timer() *TimerState {
	if !r.settings.TimerEnabled {
		return nil
	}
	t := r.sched.Timer()
	return &t
}

// Snapshot returns a copy of the round state.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		Level:    r.level,
		Score:    r.score,
		MaxScore: len(r.settings.Colors),
		Phase:    r.phase,
		Cards:    append([]Card(nil), r.cards...),
		Message:  r.message,
	}
	if r.phase != PhaseIdle {
		snap.TargetColor = r.target()
	}
	for _, idx := range r.selected {
		snap.Selected = append(snap.Selected, r.cards[idx])
	}
	if r.phase == PhaseMemorize {
		snap.MemorizeRemaining = r.sched.MemorizeRemaining()
	}
	return snap
}

func (r *Round) reset() {
	r.sched.CancelAll()
	r.level = 0
	r.score = 0
	r.cards = nil
	r.selected = nil
	r.message = ""
	r.setPhase(PhaseIdle)
}

func (r *Round) startLevel() {
	r.cards = r.deal(r.level, r.settings.Colors, r.settings.Symbols, r.rng)
	r.selected = nil
	r.setPhase(PhaseMemorize)
	r.sched.BeginMemorize(r.level, r.onRevealExpired)
	r.log.Debug("level started", "level", r.level, "target", r.target(),
		"memorize", r.settings.Timing.MemorizeDuration(r.level))
	r.say(fmt.Sprintf("Level %d: Find 3 matching %s cards", r.level+1, r.target()))
	r.render()
}

func (r *Round) onRevealExpired() {
	for i := range r.cards {
		r.cards[i].Flipped = false
	}
	r.setPhase(PhaseHidden)
	if r.settings.TimerEnabled {
		r.sched.StartCountdown(r.level, r.render, r.onCountdownExpired)
	}
	r.render()
}

func (r *Round) evaluate() {
	picked := make([]Card, len(r.selected))
	for i, idx := range r.selected {
		picked[i] = r.cards[idx]
	}
	verdict := Evaluate(picked, r.target())
	r.log.Debug("selection judged", "level", r.level, "verdict", verdict)

	if verdict == NoMatch {
		for _, idx := range r.selected {
			r.cards[idx].Flipped = false
		}
		r.selected = nil
		r.setPhase(PhaseHidden)
		r.say(fmt.Sprintf("Try again! Find 3 matching %s cards", r.target()))
		r.render()
		return
	}

	r.sched.StopCountdown()
	r.score++
	r.selected = nil
	if !r.hasNextLevel() {
		r.finish()
		return
	}
	r.setPhase(PhaseLevelComplete)
	r.say("Great job! Starting next level...")
	r.sched.ScheduleTransition(r.nextLevel)
	r.render()
}

func (r *Round) onCountdownExpired() {
	r.log.Debug("countdown expired", "level", r.level)
	r.sched.CancelEvaluation()
	r.selected = nil
	if !r.hasNextLevel() {
		r.finish()
		return
	}
	r.setPhase(PhaseLevelComplete)
	r.say("Time's up! Moving to the next level...")
	r.sched.ScheduleTransition(r.nextLevel)
	r.render()
}

func (r *Round) nextLevel() {
	r.level++
	r.startLevel()
}

func (r *Round) finish() {
	r.sched.CancelAll()
	r.setPhase(PhaseGameOver)
	r.log.Debug("game over", "score", r.score, "max", len(r.settings.Colors))
	r.say(fmt.Sprintf("Final Score: %d/%d", r.score, len(r.settings.Colors)))
	r.presenter.ShowFinalScore(r.score, len(r.settings.Colors))
	r.render()
}

func (r *Round) hasNextLevel() bool {
	return r.level+1 < len(r.settings.Colors)
}

func (r *Round) target() Color {
	return r.settings.Colors[r.level]
}

func (r *Round) indexOf(id string) int {
	for i, c := range r.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *Round) setPhase(p Phase) {
	if r.phase != p {
		r.log.Debug("phase", "from", r.phase, "to", p)
	}
	r.phase = p
}

func (r *Round) say(text string) {
	r.message = text
	r.presenter.ShowMessage(text)
}

func (r *Round) render() {
	r.presenter.Render(r.Snapshot(), r.Timer())
}
