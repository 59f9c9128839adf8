package game

import "github.com/minaorangina/suits/deck"

// View is everything one side may look at when choosing a discard.
// Opponent is always the other side relative to whoever is choosing.
type View struct {
	Hand         []deck.Card
	Drawn        deck.Card
	DeckSize     int
	Discards     []deck.Card
	OpponentHand []deck.Card
	Target       int
	Values       deck.FaceValues
}

// Candidates returns the hand followed by the drawn card
func (v View) Candidates() []deck.Card {
	return candidateSet(v.Hand, v.Drawn)
}

// Decision is a chosen discard together with what informed it
type Decision struct {
	Discard     deck.Card
	Probability float64
	Scores      []SuitScore
	// Degenerate is set when no weakest-suit candidate existed and the
	// highest value card was discarded instead
	Degenerate bool
}

// Strategy chooses which card to discard from a candidate set
type Strategy interface {
	ChooseDiscard(v View) Decision
}

// StrategyFor returns the opponent's heuristic for a difficulty
func StrategyFor(d Difficulty) Strategy {
	if d == Hard {
		return HardStrategy{}
	}
	return EasyStrategy{}
}

func candidateSet(hand []deck.Card, drawn deck.Card) []deck.Card {
	cards := make([]deck.Card, 0, len(hand)+1)
	cards = append(cards, hand...)
	return append(cards, drawn)
}

// highestValue returns the first card with the highest value
func highestValue(cards []deck.Card, values deck.FaceValues) deck.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if values.Value(c) > values.Value(best) {
			best = c
		}
	}
	return best
}
