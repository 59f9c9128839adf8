package game

import "github.com/minaorangina/suits/deck"

const easyProbabilityThreshold = 0.3

// EasyStrategy dumps the highest value card when the game looks lost,
// otherwise the highest value card outside the leading suit.
type EasyStrategy struct{}

func (EasyStrategy) ChooseDiscard(v View) Decision {
	candidates := v.Candidates()
	probability := WinProbability(candidates, v.DeckSize, v.Target)

	if probability < easyProbabilityThreshold {
		return Decision{Discard: highestValue(candidates, v.Values), Probability: probability}
	}

	leading := Evaluate(candidates).LeadingSuit
	offSuit := []deck.Card{}
	for _, c := range candidates {
		if c.Suit != leading {
			offSuit = append(offSuit, c)
		}
	}

	if len(offSuit) == 0 {
		return Decision{Discard: highestValue(candidates, v.Values), Probability: probability}
	}

	return Decision{Discard: highestValue(offSuit, v.Values), Probability: probability}
}
