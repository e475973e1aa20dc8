package registry

import (
	"testing"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Fatal("Exists reported wrong membership")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("Create returned %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create of unknown id should fail")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" && info.Title != "Stub zz_stub_a" {
			t.Errorf("title = %q", info.Title)
		}
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}
