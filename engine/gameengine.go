package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/minaorangina/suits/game"
	"github.com/minaorangina/suits/protocol"
)

// PlayState represents the state of the session
// Idle -> no player connected yet
// InProgress -> turns are being played
// Finished -> the game has been resolved
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Finished
)

func (ps PlayState) String() string {
	switch ps {
	case Idle:
		return "idle"
	case InProgress:
		return "inProgress"
	case Finished:
		return "finished"
	}
	return ""
}

var (
	ErrNoPlayer        = errors.New("game has no player")
	ErrPlayerConnected = errors.New("game already has a player")
	ErrAlreadyStarted  = errors.New("game has already started")

	// ErrMalformedMessage is returned by a Player that received something it
	// could not read as a message. The game asks again.
	ErrMalformedMessage = errors.New("malformed message")
)

// Player is the human side of a game, wherever they are
type Player interface {
	Send(msg protocol.OutboundMessage) error
	// Receive blocks until the player responds
	Receive() (protocol.InboundMessage, error)
}

// GameEngine drives one game for one human player. It owns the game state;
// State may be read from other goroutines while Play runs.
type GameEngine struct {
	id        string
	mu        sync.Mutex
	state     game.State
	player    Player
	playState PlayState
}

type GameEngineOpts struct {
	GameID string
	Game   game.State
	Player Player
}

// NewGameEngine constructs a GameEngine around a dealt game
func NewGameEngine(opts GameEngineOpts) (*GameEngine, error) {
	if opts.Game.Phase() != game.Dealt {
		return nil, fmt.Errorf("%w: game is %s", ErrAlreadyStarted, opts.Game.Phase())
	}

	return &GameEngine{
		id:     opts.GameID,
		state:  opts.Game,
		player: opts.Player,
	}, nil
}

func (ge *GameEngine) ID() string {
	return ge.id
}

// State returns a snapshot of the game
func (ge *GameEngine) State() game.State {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.state
}

func (ge *GameEngine) PlayState() PlayState {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.playState
}

// AddPlayer connects the human player. A game has exactly one.
func (ge *GameEngine) AddPlayer(p Player) error {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	if ge.player != nil {
		return ErrPlayerConnected
	}
	ge.player = p
	return nil
}

// Play runs turns until the game is resolved or the player goes away.
// It blocks while waiting for the player's discard.
func (ge *GameEngine) Play() (game.State, error) {
	ge.mu.Lock()
	if ge.player == nil {
		ge.mu.Unlock()
		return ge.state, ErrNoPlayer
	}
	if ge.playState != Idle {
		ge.mu.Unlock()
		return ge.state, ErrAlreadyStarted
	}
	ge.playState = InProgress
	state, player := ge.state, ge.player
	ge.mu.Unlock()

	if err := player.Send(buildStartMessage(ge.id, state)); err != nil {
		return state, err
	}

	for !state.GameOver() {
		next, draw, err := state.Draw()
		if err != nil {
			return state, err
		}
		ge.commit(next)
		state = next

		if draw.EndOfGame {
			break
		}

		if state, err = ge.awaitDiscard(player, state); err != nil {
			return state, err
		}

		next, decision, err := state.ResolveOpponentTurn()
		if err != nil {
			return state, err
		}
		ge.commit(next)
		state = next

		if err := player.Send(buildOpponentMovedMessage(ge.id, state, decision)); err != nil {
			return state, err
		}
	}

	ge.mu.Lock()
	ge.playState = Finished
	ge.mu.Unlock()

	log.Printf("game %s over: %s (%s)", ge.id, state.Outcome(), state.Reason())
	return state, player.Send(buildGameOverMessage(ge.id, state))
}

// awaitDiscard prompts until the player names a card from the candidate set
func (ge *GameEngine) awaitDiscard(player Player, state game.State) (game.State, error) {
	if err := player.Send(buildTurnMessage(ge.id, state)); err != nil {
		return state, err
	}

	for {
		msg, err := player.Receive()
		switch {
		case errors.Is(err, ErrMalformedMessage):
		case err != nil:
			return state, err
		case msg.Command != protocol.Discard:
			err = fmt.Errorf("unexpected command - got %s, want %s", msg.Command, protocol.Discard)
		default:
			var next game.State
			if next, err = state.ApplyPlayerDiscard(msg.Card); err == nil {
				ge.commit(next)
				return next, nil
			}
			if !errors.Is(err, game.ErrInvalidDiscard) {
				return state, err
			}
		}

		if err := player.Send(buildErrorMessage(ge.id, state, err)); err != nil {
			return state, err
		}
	}
}

func (ge *GameEngine) commit(s game.State) {
	ge.mu.Lock()
	ge.state = s
	ge.mu.Unlock()
}
