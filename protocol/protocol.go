package protocol

import (
	"fmt"

	"github.com/minaorangina/suits/deck"
)

// InboundMessage is a message from the human player to the game
type InboundMessage struct {
	Command Cmd       `json:"command"`
	Card    deck.Card `json:"card"`
}

// OutboundMessage is a message from the game to the human player
type OutboundMessage struct {
	GameID              string      `json:"gameID,omitempty"`
	Command             Cmd         `json:"command"`
	Difficulty          string      `json:"difficulty,omitempty"`
	Message             string      `json:"message,omitempty"`
	Hand                []deck.Card `json:"hand"`
	NewCard             *deck.Card  `json:"newCard,omitempty"`
	OpponentHand        []deck.Card `json:"opponentHand"`
	OpponentNewCard     *deck.Card  `json:"opponentNewCard,omitempty"`
	OpponentDiscard     *deck.Card  `json:"opponentDiscard,omitempty"`
	Pile                []deck.Card `json:"pile"`
	DeckCount           int         `json:"deckCount"`
	OpponentProbability float64     `json:"opponentProbability"`
	ShouldRespond       bool        `json:"shouldRespond"`
	Outcome             string      `json:"outcome,omitempty"`
	Reason              string      `json:"reason,omitempty"`
	PlayerScore         int         `json:"playerScore,omitempty"`
	OpponentScore       int         `json:"opponentScore,omitempty"`
	Error               string      `json:"error,omitempty"`
}

type Cmd int

const (
	Null Cmd = iota
	Start
	Turn          // a new card has been drawn; the player must discard
	Discard       // the player's chosen discard
	OpponentMoved // the opponent has discarded
	GameOver
	Error
)

var CmdNames = map[Cmd]string{
	Null:          "Null",
	Start:         "Start",
	Turn:          "Turn",
	Discard:       "Discard",
	OpponentMoved: "OpponentMoved",
	GameOver:      "GameOver",
	Error:         "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":          Null,
	"Start":         Start,
	"Turn":          Turn,
	"Discard":       Discard,
	"OpponentMoved": OpponentMoved,
	"GameOver":      GameOver,
	"Error":         Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

func (c Cmd) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("unknown command %q", text)
	}
	*c = cmd
	return nil
}
