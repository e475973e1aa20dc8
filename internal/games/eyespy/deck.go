package eyespy

import (
	"fmt"
	"math/rand"
)

const (
	// targetCount is the size of the matching set on every level.
	targetCount = 3
	// distractorCount is the number of non-matching cards on every level.
	distractorCount = 6
	// DeckSize is the number of cards dealt per level.
	DeckSize = targetCount + distractorCount
)

// DeckFunc deals the cards for a level.
type DeckFunc func(level int, colors []Color, symbols []Symbol, rng *rand.Rand) []Card

// Generate deals the nine cards for a level in random order.
//
// The target set is three cards of colors[level] with symbols[level%len(symbols)].
// Distractor i takes the next non-target color in rotation and the symbol
// symbols[(level+i+1)%len(symbols)]. If that pair is already held by two distractors,
// the symbol moves along the pool so no second triple can form.
//
// Generate panics if level is outside the palette or the pools are too small to
// deal a table without a second triple.
func Generate(level int, colors []Color, symbols []Symbol, rng *rand.Rand) []Card {
	if level < 0 || level >= len(colors) {
		panic(fmt.Sprintf("eyespy: level %d outside palette of %d colors", level, len(colors)))
	}
	if len(symbols) == 0 {
		panic("eyespy: empty symbol pool")
	}

	target := colors[level]
	targetSymbol := symbols[level%len(symbols)]

	others := make([]Color, 0, len(colors)-1)
	for _, c := range colors {
		if c != target {
			others = append(others, c)
		}
	}
	if len(others)*len(symbols)*2 < distractorCount {
		panic(fmt.Sprintf("eyespy: %d colors x %d symbols cannot deal %d distractors",
			len(colors), len(symbols), distractorCount))
	}

	cards := make([]Card, 0, DeckSize)
	for i := 0; i < targetCount; i++ {
		cards = append(cards, Card{
			ID:     fmt.Sprintf("%s-%d", target, i),
			Color:  target,
			Symbol: targetSymbol,
		})
	}

	type pair struct {
		color  Color
		symbol Symbol
	}
	held := make(map[pair]int, distractorCount)

	for i := 0; i < distractorCount; i++ {
		color := others[i%len(others)]
		offset := level + i + 1
		p := pair{color, symbols[offset%len(symbols)]}
		for held[p] >= targetCount-1 {
			offset++
			p.symbol = symbols[offset%len(symbols)]
		}
		held[p]++

		cards = append(cards, Card{
			ID:     fmt.Sprintf("distractor-%d", i),
			Color:  p.color,
			Symbol: p.symbol,
		})
	}

	shuffle(cards, rng)
	return cards
}

// shuffle permutes cards uniformly in place (Fisher-Yates).
func shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
