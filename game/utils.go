package game

import "github.com/minaorangina/suits/deck"

func copyCards(cards []deck.Card) []deck.Card {
	return append([]deck.Card{}, cards...)
}

func cardsUnique(cards []deck.Card) bool {
	seen := map[deck.Card]struct{}{}
	for _, c := range cards {
		if _, ok := seen[c]; ok {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}
