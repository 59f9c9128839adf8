package game

import "github.com/minaorangina/suits/deck"

// HandMetrics summarises a hand by suit
type HandMetrics struct {
	SuitCounts   map[deck.Suit]int
	LeadingSuit  deck.Suit
	LeadingCount int
}

// Evaluate counts the cards of each suit in hand and finds the leading suit.
// Ties go to the suit declared first. It panics on an empty hand.
func Evaluate(hand []deck.Card) HandMetrics {
	if len(hand) == 0 {
		panic("game: evaluate called with an empty hand")
	}

	counts := map[deck.Suit]int{}
	for _, c := range hand {
		counts[c.Suit]++
	}

	m := HandMetrics{SuitCounts: counts, LeadingSuit: -1}
	for _, suit := range deck.Suits() {
		if n := counts[suit]; n > m.LeadingCount {
			m.LeadingSuit, m.LeadingCount = suit, n
		}
	}

	return m
}

// hasTarget reports whether the leading suit of hand reaches target
func hasTarget(hand []deck.Card, target int) bool {
	return Evaluate(hand).LeadingCount >= target
}
