package game

import (
	"testing"

	"github.com/minaorangina/suits/deck"
	"github.com/stretchr/testify/require"
)

func card(t *testing.T, code string) deck.Card {
	t.Helper()
	c, err := deck.ParseCard(code)
	require.NoError(t, err)
	return c
}

func cards(t *testing.T, codes ...string) []deck.Card {
	t.Helper()
	cs := make([]deck.Card, 0, len(codes))
	for _, code := range codes {
		cs = append(cs, card(t, code))
	}
	return cs
}

// presetGame deals player and opponent from the front of a fixed deck
func presetGame(t *testing.T, d Difficulty, player, opponent, rest []deck.Card) State {
	t.Helper()
	preset := deck.Deck{}
	preset = append(preset, player...)
	preset = append(preset, opponent...)
	preset = append(preset, rest...)

	s, err := NewGame(Opts{Difficulty: d, Deck: preset})
	require.NoError(t, err)
	return s
}

// allCards gathers every card the state accounts for
func allCards(s State) []deck.Card {
	all := []deck.Card{}
	all = append(all, s.Deck()...)
	all = append(all, s.PlayerHand()...)
	all = append(all, s.OpponentHand()...)
	all = append(all, s.Discards()...)
	if c, ok := s.PlayerDrawn(); ok {
		all = append(all, c)
	}
	if c, ok := s.OpponentDrawn(); ok {
		all = append(all, c)
	}
	return all
}
