package game

import "github.com/minaorangina/suits/deck"

// WinProbability estimates the chance of completing target cards of the leading suit
// before the deck runs out.
//
// This is a coarse heuristic, not a hypergeometric probability: the share of the
// remaining deck per suit (remaining/13) divided by the cards still needed, clamped
// to [0, 1]. The easy heuristic thresholds on it, so it must not be "corrected".
func WinProbability(hand []deck.Card, remaining, target int) float64 {
	needed := target - Evaluate(hand).LeadingCount
	if needed <= 0 {
		return 1.0
	}

	p := (float64(remaining) / deck.CardsPerSuit) / float64(needed)
	return clamp(p, 0, 1)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
