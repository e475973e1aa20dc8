// Package eyespy implements a memory-matching puzzle: each level deals nine cards,
// shows them for a short memorize window, hides them, and asks the player to pick
// the three cards sharing the level's color and symbol.
package eyespy

import "time"

// Color is a palette color name, such as "red".
type Color string

// Symbol is a single-character card face, such as "★".
type Symbol string

// Card is one card on the table.
// Color and Symbol never change; Flipped is only changed by the Round.
type Card struct {
	ID      string
	Color   Color
	Symbol  Symbol
	Flipped bool
}

// Phase is the round's position in the level state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMemorize
	PhaseHidden
	PhaseEvaluating
	PhaseLevelComplete
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMemorize:
		return "memorize"
	case PhaseHidden:
		return "hidden"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TimerState is the countdown display state.
type TimerState struct {
	Remaining int // Seconds left
	Active    bool
}

// Snapshot is a read-only copy of the round state handed to presenters.
type Snapshot struct {
	Level       int // 0-indexed
	Score       int
	MaxScore    int // Number of levels
	Phase       Phase
	TargetColor Color
	Cards       []Card
	Selected    []Card
	Message     string

	// MemorizeRemaining is the time left before cards hide; zero outside the memorize phase.
	MemorizeRemaining time.Duration
}

// Card returns the card with the given ID.
func (s Snapshot) Card(id string) (Card, bool) {
	for _, c := range s.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}
