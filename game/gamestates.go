package game

import (
	"fmt"

	"github.com/minaorangina/suits/deck"
)

// Difficulty selects the target suit count and the opponent's heuristic
type Difficulty int

const (
	Easy Difficulty = iota
	Hard
)

const (
	easyTarget = 3
	hardTarget = 6
)

var difficultyNames = map[Difficulty]string{
	Easy: "easy",
	Hard: "hard",
}

func (d Difficulty) String() string {
	return difficultyNames[d]
}

// Target is the leading-suit count needed to win. It is also the hand width.
func (d Difficulty) Target() int {
	if d == Hard {
		return hardTarget
	}
	return easyTarget
}

// ParseDifficulty parses "easy" or "hard"
func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range difficultyNames {
		if name == s {
			return d, nil
		}
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Phase represents where a game is within a turn
//
// Dealt -> AwaitingPlayerDiscard -> AwaitingOpponentDiscard -> Dealt ... -> Resolved
type Phase int

const (
	Dealt Phase = iota
	AwaitingPlayerDiscard
	AwaitingOpponentDiscard
	Resolved
)

var phaseNames = []string{"Dealt", "AwaitingPlayerDiscard", "AwaitingOpponentDiscard", "Resolved"}

func (p Phase) String() string {
	return phaseNames[p]
}

// Outcome is the result of a game
type Outcome int

const (
	NoOutcome Outcome = iota
	PlayerWon
	OpponentWon
	Tie
)

var outcomeNames = []string{"None", "PlayerWon", "OpponentWon", "Tie"}

func (o Outcome) String() string {
	return outcomeNames[o]
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Reason explains how a game was resolved
type Reason int

const (
	NotResolved Reason = iota
	SuitTarget
	DeckExhausted
)

var reasonNames = []string{"NotResolved", "SuitTarget", "DeckExhausted"}

func (r Reason) String() string {
	return reasonNames[r]
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// DrawResult is what Draw hands to the presentation layer
type DrawResult struct {
	PlayerCard   deck.Card
	OpponentCard deck.Card
	EndOfGame    bool
}
