package game

import (
	"log"
	"math"

	"github.com/minaorangina/suits/deck"
)

// Weights for the hard heuristic. The hand weight grows with progress in the
// suit and as the deck empties; the deck weight is what is left of 1.
const (
	baseHandWeight     = 0.5
	progressWeight     = 0.3
	deckProgressWeight = 0.2
	strongSuitCount    = 4
	scorePrecision     = 10000
)

// SuitScore is the viability of collecting one suit
type SuitScore struct {
	Suit       deck.Suit
	InHand     int
	InDiscard  int
	InOpponent int
	Remaining  int
	Need       int
	HandWeight float64
	Score      float64
}

// HardStrategy ranks every suit in the candidate set by how reachable it still is,
// using public discards and the other side's visible hand, then discards the
// highest value card of the weakest suit.
type HardStrategy struct{}

func (HardStrategy) ChooseDiscard(v View) Decision {
	candidates := v.Candidates()
	probability := WinProbability(candidates, v.DeckSize, v.Target)

	scores := ScoreSuits(v)
	weakest := map[deck.Suit]bool{}
	lowest := math.Inf(1)
	for _, s := range scores {
		lowest = math.Min(lowest, s.Score)
	}
	for _, s := range scores {
		if s.Score == lowest {
			weakest[s.Suit] = true
		}
	}

	toDiscard := []deck.Card{}
	for _, c := range candidates {
		if weakest[c.Suit] {
			toDiscard = append(toDiscard, c)
		}
	}

	if len(toDiscard) == 0 {
		fallback := highestValue(candidates, v.Values)
		log.Printf("hard heuristic: no weakest-suit candidates among %v, discarding %s", candidates, fallback)
		return Decision{Discard: fallback, Probability: probability, Scores: scores, Degenerate: true}
	}

	return Decision{
		Discard:     highestValue(toDiscard, v.Values),
		Probability: probability,
		Scores:      scores,
	}
}

// ScoreSuits scores every suit present in the view's candidate set, in suit order
func ScoreSuits(v View) []SuitScore {
	inHand := countSuits(v.Candidates())
	inDiscard := countSuits(v.Discards)
	inOpponent := countSuits(v.OpponentHand)

	scores := []SuitScore{}
	for _, suit := range deck.Suits() {
		if inHand[suit] == 0 {
			continue
		}

		s := SuitScore{
			Suit:       suit,
			InHand:     inHand[suit],
			InDiscard:  inDiscard[suit],
			InOpponent: inOpponent[suit],
			Need:       v.Target - inHand[suit],
		}
		s.Remaining = deck.CardsPerSuit - s.InHand - s.InDiscard - s.InOpponent
		s.HandWeight = clamp(
			baseHandWeight+
				progressWeight*(float64(s.InHand)/float64(v.Target))+
				deckProgressWeight*(1-float64(v.DeckSize)/deck.Size),
			0, 1)
		s.Score = round(suitScore(s, v.DeckSize, v.Target))

		scores = append(scores, s)
	}

	return scores
}

// A suit already strong or complete is never abandoned, even when it can no
// longer grow: discarding from it could only weaken a winning hand.
func suitScore(s SuitScore, deckSize, target int) float64 {
	if s.InHand >= strongSuitCount || s.Need <= 0 {
		return 1.0
	}
	if s.Remaining <= 0 || s.Need > deckSize {
		return 0.0
	}

	deckWeight := 1 - s.HandWeight
	return s.HandWeight*(float64(s.InHand)/float64(target)) +
		deckWeight*(float64(s.Remaining)/float64(deckSize))
}

func countSuits(cards []deck.Card) map[deck.Suit]int {
	counts := map[deck.Suit]int{}
	for _, c := range cards {
		counts[c.Suit]++
	}
	return counts
}

func round(x float64) float64 {
	return math.Round(x*scorePrecision) / scorePrecision
}
