package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move the card cursor up
	ActionDown           // S, J, Down arrow - move the card cursor down
	ActionLeft           // A, H, Left arrow - move the card cursor left
	ActionRight          // D, L, Right arrow - move the card cursor right
	ActionConfirm        // Enter, Space - start the game or pick the card under the cursor
	ActionPick           // 1-9 - pick a card directly by grid position (see InputFrame.Pick)
	ActionRestart        // R - restart the game
	ActionBack           // B, Esc - abandon the current game
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPick:
		return "Pick"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pick is the 1-based grid slot chosen with a digit key, 0 if none.
	Pick int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPick records a direct slot pick (1-based) for this frame.
func (f *InputFrame) SetPick(slot int) {
	f.Set(ActionPick)
	f.Pick = slot
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pick = 0
}
