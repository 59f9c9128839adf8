package deck

import (
	"errors"
	"fmt"
	"math/rand"
)

// Size is the number of cards in a full deck
const Size = NumSuits * CardsPerSuit

var ErrNotEnoughCards = errors.New("not enough cards in deck")

// Deck represents a deck of cards. Cards are dealt and drawn from the front.
type Deck []Card

// New creates a deck of cards in base order: suit by suit, Two to Ace
func New() Deck {
	cards := make(Deck, 0, Size)
	for _, suit := range Suits() {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Build creates a deck and shuffles it with rng
func Build(rng *rand.Rand) Deck {
	d := New()
	d.Shuffle(rng)
	return d
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Draw removes and returns the front card
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	c := (*d)[0]
	*d = (*d)[1:]
	return c, true
}

// DealHands deals the first n cards to the player and the next n to the opponent.
// The remainder stays in the deck.
func (d *Deck) DealHands(n int) (player, opponent []Card, err error) {
	if n < 0 || len(*d) < 2*n {
		return nil, nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughCards, 2*n, len(*d))
	}

	player = append([]Card{}, (*d)[:n]...)
	opponent = append([]Card{}, (*d)[n:2*n]...)
	*d = append(Deck{}, (*d)[2*n:]...)

	return player, opponent, nil
}
