package eyespy

// Verdict is the outcome of judging a completed selection.
type Verdict int

const (
	NoMatch Verdict = iota
	Match
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	if v == Match {
		return "match"
	}
	return "no-match"
}

// Evaluate reports Match when exactly three cards were picked, all of the target
// color and all showing the first card's symbol.
func Evaluate(selected []Card, target Color) Verdict {
	if len(selected) != targetCount {
		return NoMatch
	}
	symbol := selected[0].Symbol
	for _, c := range selected {
		if c.Color != target || c.Symbol != symbol {
			return NoMatch
		}
	}
	return Match
}
