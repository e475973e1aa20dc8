package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMap(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"digit", runeKey('7'), core.ActionPick, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
		{"zero is not a slot", runeKey('0'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := keys.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v/%v, want %v/%v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameDigits(t *testing.T) {
	keys := DefaultGameKeyMap()

	for slot := 1; slot <= 9; slot++ {
		frame := core.NewInputFrame()
		if keys.MapKeyToFrame(runeKey(rune('0'+slot)), &frame) {
			t.Fatalf("digit %d reported quit", slot)
		}
		if !frame.Has(core.ActionPick) || frame.Pick != slot {
			t.Errorf("digit %d: pick=%v slot=%d", slot, frame.Has(core.ActionPick), frame.Pick)
		}
	}

	frame := core.NewInputFrame()
	if !keys.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q did not report quit")
	}
	if len(frame.Actions) != 0 {
		t.Errorf("quit key set actions: %v", frame.Actions)
	}
}

func TestMenuKeyMap(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := keys.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
