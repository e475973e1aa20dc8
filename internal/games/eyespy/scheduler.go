package eyespy

import (
	"time"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
)

// RevealScheduler drives the timed parts of a level: the memorize window, the
// countdown, the pause before a verdict and the pause between levels.
// It owns the countdown's TimerState.
type RevealScheduler struct {
	clock  Clock
	timing config.TimingConfig
	timer  TimerState
}

// NewRevealScheduler creates a scheduler using the given durations.
func NewRevealScheduler(timing config.TimingConfig) *RevealScheduler {
	return &RevealScheduler{timing: timing}
}

// BeginMemorize starts the memorize window for a level and resets the countdown.
func (s *RevealScheduler) BeginMemorize(level int, onExpire func()) {
	s.StopCountdown()
	s.timer = TimerState{}
	s.clock.After(SlotMemorize, s.timing.MemorizeDuration(level), onExpire)
}

// StartCountdown starts the once-a-second countdown for a level.
// onTick runs after each second that does not end the countdown; onExpire runs
// exactly once when it reaches zero.
func (s *RevealScheduler) StartCountdown(level int, onTick, onExpire func()) {
	s.timer = TimerState{Remaining: s.timing.CountdownSeconds(level), Active: true}
	s.clock.Every(SlotCountdown, time.Second, func() {
		s.timer.Remaining--
		if s.timer.Remaining > 0 {
			onTick()
			return
		}
		s.timer = TimerState{}
		s.clock.Cancel(SlotCountdown)
		onExpire()
	})
}

// StopCountdown halts the countdown, keeping the seconds it had left.
func (s *RevealScheduler) StopCountdown() {
	s.clock.Cancel(SlotCountdown)
	s.timer.Active = false
}

// ScheduleEvaluation runs fn after the verdict pause.
func (s *RevealScheduler) ScheduleEvaluation(fn func()) {
	s.clock.After(SlotEvaluation, s.timing.EvaluationDelay(), fn)
}

// CancelEvaluation drops a pending verdict.
func (s *RevealScheduler) CancelEvaluation() {
	s.clock.Cancel(SlotEvaluation)
}

// ScheduleTransition runs fn after the between-levels pause.
func (s *RevealScheduler) ScheduleTransition(fn func()) {
	s.clock.After(SlotTransition, s.timing.TransitionDelay(), fn)
}

// CancelAll drops every pending callback and resets the countdown.
func (s *RevealScheduler) CancelAll() {
	s.clock.CancelAll()
	s.timer = TimerState{}
}

// Timer returns the countdown state.
func (s *RevealScheduler) Timer() TimerState {
	return s.timer
}

// MemorizeRemaining returns the time left in the memorize window.
func (s *RevealScheduler) MemorizeRemaining() time.Duration {
	return s.clock.Remaining(SlotMemorize)
}

// Pending reports whether a callback is waiting in the slot.
func (s *RevealScheduler) Pending(slot Slot) bool {
	return s.clock.Pending(slot)
}

// Advance moves the scheduler's clock forward.
func (s *RevealScheduler) Advance(dt time.Duration) {
	s.clock.Advance(dt)
}
