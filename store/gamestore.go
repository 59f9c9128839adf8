package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/suits/engine"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrDuplicateGameID = errors.New("game ID already in use")
)

type GameStore interface {
	FindGame(gameID string) (*engine.GameEngine, error)
	FindInactiveGame(gameID string) (*engine.GameEngine, error)
	AddGame(game *engine.GameEngine) error
	RemoveGame(gameID string) error
	AddPlayerToGame(gameID string, player engine.Player) error
}

// NewID returns a fresh game ID
func NewID() string {
	return uuid.NewV4().String()
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) (*engine.GameEngine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	return game, nil
}

// FindInactiveGame finds a game nobody has started playing yet
func (s *InMemoryGameStore) FindInactiveGame(gameID string) (*engine.GameEngine, error) {
	game, err := s.FindGame(gameID)
	if err != nil {
		return nil, err
	}
	if game.PlayState() != engine.Idle {
		return nil, fmt.Errorf("%w: %q", engine.ErrAlreadyStarted, gameID)
	}
	return game, nil
}

func (s *InMemoryGameStore) AddGame(game *engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateGameID, game.ID())
	}
	s.games[game.ID()] = game
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[gameID]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	delete(s.games, gameID)
	return nil
}

// AddPlayerToGame connects the human player to a game that has not started
func (s *InMemoryGameStore) AddPlayerToGame(gameID string, player engine.Player) error {
	game, err := s.FindInactiveGame(gameID)
	if err != nil {
		return err
	}

	return game.AddPlayer(player)
}

// Len is the number of stored games
func (s *InMemoryGameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
