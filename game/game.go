package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/minaorangina/suits/deck"
)

var (
	ErrInvalidDiscard  = errors.New("card is not in the candidate set")
	ErrUnexpectedPhase = errors.New("transition not allowed in this phase")
	ErrGameOver        = errors.New("game is already over")
	ErrInvalidDeck     = errors.New("deck must hold distinct cards")
)

// Opts configures a new game. The zero value is an easy game with flat face
// values, shuffled with a time-seeded source.
type Opts struct {
	Difficulty Difficulty
	Values     deck.FaceValues
	Rand       *rand.Rand
	// Deck, if set, is used as is instead of a shuffled deck
	Deck deck.Deck
	// Strategy, if set, replaces the difficulty's heuristic for the opponent
	Strategy Strategy
}

// State is one game session. Transitions never modify the receiver: each
// returns a new State, so a partially applied turn is never observable.
type State struct {
	difficulty    Difficulty
	values        deck.FaceValues
	strategy      Strategy
	deck          deck.Deck
	playerHand    []deck.Card
	opponentHand  []deck.Card
	discards      []deck.Card
	playerDrawn   deck.Card
	opponentDrawn deck.Card
	phase         Phase
	outcome       Outcome
	reason        Reason
}

// NewGame shuffles a deck and deals both hands
func NewGame(opts Opts) (State, error) {
	d := opts.Deck
	if d == nil {
		rng := opts.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		d = deck.Build(rng)
	} else {
		d = append(deck.Deck{}, d...)
		if !cardsUnique(d) {
			return State{}, ErrInvalidDeck
		}
	}

	player, opponent, err := d.DealHands(opts.Difficulty.Target())
	if err != nil {
		return State{}, fmt.Errorf("could not deal: %w", err)
	}

	strategy := opts.Strategy
	if strategy == nil {
		strategy = StrategyFor(opts.Difficulty)
	}

	return State{
		difficulty:   opts.Difficulty,
		values:       opts.Values,
		strategy:     strategy,
		deck:         d,
		playerHand:   player,
		opponentHand: opponent,
		discards:     []deck.Card{},
		phase:        Dealt,
	}, nil
}

func (s State) Difficulty() Difficulty {
	return s.difficulty
}

func (s State) Values() deck.FaceValues {
	return s.values
}

func (s State) Phase() Phase {
	return s.phase
}

// Outcome is NoOutcome until the game is Resolved
func (s State) Outcome() Outcome {
	return s.outcome
}

func (s State) Reason() Reason {
	return s.reason
}

func (s State) GameOver() bool {
	return s.phase == Resolved
}

func (s State) DeckSize() int {
	return len(s.deck)
}

// Deck returns a copy of the live deck
func (s State) Deck() deck.Deck {
	return append(deck.Deck{}, s.deck...)
}

func (s State) PlayerHand() []deck.Card {
	return copyCards(s.playerHand)
}

func (s State) OpponentHand() []deck.Card {
	return copyCards(s.opponentHand)
}

func (s State) Discards() []deck.Card {
	return copyCards(s.discards)
}

// PlayerDrawn returns the player's new card while their discard is pending
func (s State) PlayerDrawn() (deck.Card, bool) {
	return s.playerDrawn, s.phase == AwaitingPlayerDiscard
}

// OpponentDrawn returns the opponent's new card while its discard is pending
func (s State) OpponentDrawn() (deck.Card, bool) {
	return s.opponentDrawn, s.awaitingDiscard()
}

func (s State) awaitingDiscard() bool {
	return s.phase == AwaitingPlayerDiscard || s.phase == AwaitingOpponentDiscard
}

// PlayerCandidates is the set the human must discard from: hand then new card
func (s State) PlayerCandidates() []deck.Card {
	if s.phase != AwaitingPlayerDiscard {
		return nil
	}
	return candidateSet(s.playerHand, s.playerDrawn)
}

// PlayerView is the player's side of the table, as a Strategy sees it
func (s State) PlayerView() View {
	return View{
		Hand:         s.PlayerHand(),
		Drawn:        s.playerDrawn,
		DeckSize:     len(s.deck),
		Discards:     s.Discards(),
		OpponentHand: s.OpponentHand(),
		Target:       s.difficulty.Target(),
		Values:       s.values,
	}
}

// OpponentView is the opponent's side of the table, as a Strategy sees it
func (s State) OpponentView() View {
	return View{
		Hand:         s.OpponentHand(),
		Drawn:        s.opponentDrawn,
		DeckSize:     len(s.deck),
		Discards:     s.Discards(),
		OpponentHand: s.PlayerHand(),
		Target:       s.difficulty.Target(),
		Values:       s.values,
	}
}

// OpponentProbability is the opponent's current win estimate over its hand
// and, mid-turn, its new card
func (s State) OpponentProbability() float64 {
	cards := s.opponentHand
	if s.awaitingDiscard() {
		cards = candidateSet(s.opponentHand, s.opponentDrawn)
	}
	return WinProbability(cards, len(s.deck), s.difficulty.Target())
}

// Draw starts a turn by drawing one card each for the player and the opponent.
// With fewer than two cards left the game is resolved on score instead.
func (s State) Draw() (State, DrawResult, error) {
	if s.phase == Resolved {
		return s, DrawResult{}, ErrGameOver
	}
	if s.phase != Dealt {
		return s, DrawResult{}, fmt.Errorf("%w: cannot draw while %s", ErrUnexpectedPhase, s.phase)
	}

	next := s.clone()
	if len(next.deck) < 2 {
		next.resolveOnScore()
		return next, DrawResult{EndOfGame: true}, nil
	}

	next.playerDrawn, _ = next.deck.Draw()
	next.opponentDrawn, _ = next.deck.Draw()
	next.phase = AwaitingPlayerDiscard

	return next, DrawResult{PlayerCard: next.playerDrawn, OpponentCard: next.opponentDrawn}, nil
}

// ApplyPlayerDiscard discards the player's chosen card. Discarding the new card
// leaves the hand untouched; otherwise the new card takes the chosen card's place.
func (s State) ApplyPlayerDiscard(chosen deck.Card) (State, error) {
	if s.phase == Resolved {
		return s, ErrGameOver
	}
	if s.phase != AwaitingPlayerDiscard {
		return s, fmt.Errorf("%w: cannot discard while %s", ErrUnexpectedPhase, s.phase)
	}

	next := s.clone()
	hand, err := discard(next.playerHand, next.playerDrawn, chosen)
	if err != nil {
		return s, err
	}

	next.playerHand = hand
	next.discards = append(next.discards, chosen)
	next.playerDrawn = deck.Card{}
	next.phase = AwaitingOpponentDiscard

	return next, nil
}

// ResolveOpponentTurn lets the opponent's strategy discard, then checks for a
// winner and for an empty deck.
func (s State) ResolveOpponentTurn() (State, Decision, error) {
	if s.phase == Resolved {
		return s, Decision{}, ErrGameOver
	}
	if s.phase != AwaitingOpponentDiscard {
		return s, Decision{}, fmt.Errorf("%w: opponent cannot discard while %s", ErrUnexpectedPhase, s.phase)
	}

	next := s.clone()
	decision := next.strategy.ChooseDiscard(next.OpponentView())

	hand, err := discard(next.opponentHand, next.opponentDrawn, decision.Discard)
	if err != nil {
		fallback := highestValue(candidateSet(next.opponentHand, next.opponentDrawn), next.values)
		log.Printf("opponent strategy chose %s (%v), discarding %s instead", decision.Discard, err, fallback)
		decision.Discard, decision.Degenerate = fallback, true
		hand, _ = discard(next.opponentHand, next.opponentDrawn, fallback)
	}

	next.opponentHand = hand
	next.discards = append(next.discards, decision.Discard)
	next.opponentDrawn = deck.Card{}
	next.phase = Dealt

	if winner := next.CheckWinner(); winner != NoOutcome {
		next.phase = Resolved
		next.outcome = winner
		next.reason = SuitTarget
	} else if len(next.deck) == 0 {
		next.resolveOnScore()
	}

	return next, decision, nil
}

// CheckWinner reports which hand, if any, has reached the target. The player is checked first.
func (s State) CheckWinner() Outcome {
	target := s.difficulty.Target()
	if hasTarget(s.playerHand, target) {
		return PlayerWon
	}
	if hasTarget(s.opponentHand, target) {
		return OpponentWon
	}
	return NoOutcome
}

// FinalScores sums the values of each hand
func (s State) FinalScores() (player, opponent int) {
	return s.values.Total(s.playerHand), s.values.Total(s.opponentHand)
}

// resolveOnScore ends the game on hand totals. The lower total wins.
func (s *State) resolveOnScore() {
	player, opponent := s.FinalScores()

	s.phase = Resolved
	s.reason = DeckExhausted
	switch {
	case player < opponent:
		s.outcome = PlayerWon
	case opponent < player:
		s.outcome = OpponentWon
	default:
		s.outcome = Tie
	}
}

func (s State) clone() State {
	next := s
	next.deck = append(deck.Deck{}, s.deck...)
	next.playerHand = copyCards(s.playerHand)
	next.opponentHand = copyCards(s.opponentHand)
	next.discards = copyCards(s.discards)
	return next
}

// discard removes chosen from hand+drawn and returns the resulting hand
func discard(hand []deck.Card, drawn, chosen deck.Card) ([]deck.Card, error) {
	if chosen == drawn {
		return hand, nil
	}

	for i, c := range hand {
		if c == chosen {
			kept := make([]deck.Card, 0, len(hand))
			kept = append(kept, hand[:i]...)
			kept = append(kept, hand[i+1:]...)
			return append(kept, drawn), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidDiscard, chosen)
}
