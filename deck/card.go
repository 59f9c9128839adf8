package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Rank represents a rank in a deck of cards
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = []string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

var rankCodes = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Code is the short form used on the command line, e.g. "10" or "Q"
func (r Rank) Code() string {
	return rankCodes[r]
}

// Suit represents a suit in a deck of cards.
// The declaration order is also the tie-break order wherever suits are compared.
type Suit int

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

// CardsPerSuit is the number of ranks in each suit
const CardsPerSuit = 13

var suitNames = []string{"Hearts", "Spades", "Clubs", "Diamonds"}

var suitCodes = []string{"H", "S", "C", "D"}

var suitSymbols = []string{"♥", "♠", "♣", "♦"}

func (s Suit) String() string {
	if s < Hearts || s > Diamonds {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Code is the single letter form used on the command line
func (s Suit) Code() string {
	return suitCodes[s]
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Suits returns every suit in declaration order
func Suits() []Suit {
	return []Suit{Hearts, Spades, Clubs, Diamonds}
}

// Card represents a playing card. Two cards are equal iff rank and suit match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

var ErrUnknownCard = errors.New("unknown card")

// NewCard constructs a card. It panics if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) Card {
	if rank < Two || rank > Ace || suit < Hearts || suit > Diamonds {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Code returns the short form of the card, e.g. "QS" or "10H"
func (c Card) Code() string {
	return c.Rank.Code() + c.Suit.Code()
}

// ParseCard parses the short form returned by Code. Case is ignored.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, s)
	}

	rankCode, suitCode := s[:len(s)-1], s[len(s)-1:]

	rank, suit := Rank(-1), Suit(-1)
	for i, code := range rankCodes {
		if code == rankCode {
			rank = Rank(i)
		}
	}
	for i, code := range suitCodes {
		if code == suitCode {
			suit = Suit(i)
		}
	}

	if rank < 0 || suit < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}
