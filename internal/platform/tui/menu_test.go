package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/registry"
)

var testGame = &fakeGame{}

func init() {
	registry.Register("fake", func() registry.Game {
		return testGame
	})
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testConfig())
	if !strings.Contains(m.View(), "Fake") {
		t.Fatalf("menu does not list registered games:\n%s", m.View())
	}

	var idx int
	for i, item := range m.items {
		if item.GameID == "fake" {
			idx = i
		}
	}
	for i := 0; i < idx; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil || m.Selected() == nil || m.Selected().GameID != "fake" {
		t.Fatalf("selection = %+v", m.Selected())
	}
}

func TestMenuBackQuits(t *testing.T) {
	m := NewMenuModel(testConfig())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(MenuModel).IsQuitting() || cmd == nil {
		t.Error("back from the top menu did not quit")
	}
}

func TestDifficultyModel(t *testing.T) {
	m := NewDifficultyModel("EyeSpy", config.DifficultyNormal, 80, 24)
	if m.Selected() != nil {
		t.Fatal("selected before choosing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(DifficultyModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DifficultyModel)

	if got := m.Selected(); got == nil || *got != config.DifficultyHard {
		t.Errorf("selected = %v, want hard", got)
	}
	if cmd != nil {
		t.Error("embedded picker should not quit the program")
	}

	m = NewDifficultyModel("EyeSpy", "", 80, 24)
	m.exitOnDone = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(DifficultyModel).WantsBack() || cmd == nil {
		t.Error("standalone picker did not quit on back")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(testConfig(), "tester")
	send := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	for s.menu.items[s.menu.cursor].GameID != "fake" {
		send(tea.KeyMsg{Type: tea.KeyDown})
	}
	send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.stage != stageDifficulty {
		t.Fatalf("stage = %v after picking a game", s.stage)
	}

	send(tea.KeyMsg{Type: tea.KeyUp})
	if cmd := send(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Error("starting the game did not start the tick loop")
	}
	if s.stage != stageGame {
		t.Fatalf("stage = %v after picking difficulty", s.stage)
	}
	if testGame.preset != config.DifficultyEasy {
		t.Errorf("preset = %q, want easy", testGame.preset)
	}

	send(TickMsg{Loop: s.gameModel.loop})
	send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.stage != stageMenu {
		t.Errorf("stage = %v after backing out of an idle game", s.stage)
	}
	if s.View() == "" {
		t.Error("session view empty")
	}

	send(runeKey('q'))
	if !s.quitting {
		t.Error("q in the menu did not end the session")
	}
}
