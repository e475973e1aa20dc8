package eyespy

import "testing"

func TestEvaluate(t *testing.T) {
	red := func(sym Symbol) Card { return Card{Color: "red", Symbol: sym} }

	tests := []struct {
		name     string
		selected []Card
		target   Color
		want     Verdict
	}{
		{"three matching", []Card{red("★"), red("★"), red("★")}, "red", Match},
		{"symbol differs", []Card{red("★"), red("★"), red("■")}, "red", NoMatch},
		{"color differs", []Card{red("★"), {Color: "blue", Symbol: "★"}, red("★")}, "red", NoMatch},
		{"wrong target", []Card{red("★"), red("★"), red("★")}, "blue", NoMatch},
		{"two cards", []Card{red("★"), red("★")}, "red", NoMatch},
		{"four cards", []Card{red("★"), red("★"), red("★"), red("★")}, "red", NoMatch},
		{"empty", nil, "red", NoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.selected, tt.target); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	selected := []Card{
		{ID: "a", Color: "red", Symbol: "★", Flipped: true},
		{ID: "b", Color: "red", Symbol: "★", Flipped: true},
		{ID: "c", Color: "red", Symbol: "■", Flipped: true},
	}
	before := append([]Card(nil), selected...)

	Evaluate(selected, "red")

	for i := range selected {
		if selected[i] != before[i] {
			t.Errorf("card %d changed: %v -> %v", i, before[i], selected[i])
		}
	}
}
