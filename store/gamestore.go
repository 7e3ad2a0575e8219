package store

import (
	"errors"
	"sync"

	"github.com/fablegame/fable/game"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrGameExists    = errors.New("a game with this ID already exists")
)

// GameStore is the persistence boundary the engine's callers work through.
// Update runs its mutation under the store's write lock, which is what
// serializes dealing and scoring for a game.
type GameStore interface {
	FindGame(gameID string) *game.Game
	AddGame(g *game.Game) error
	UpdateGame(gameID string, mutate func(*game.Game) error) error
}

// InMemoryGameStore maps game id to game
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*game.Game{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) *game.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[gameID]
}

func (s *InMemoryGameStore) AddGame(g *game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[g.ID]; exists {
		return ErrGameExists
	}

	s.games[g.ID] = g
	return nil
}

// UpdateGame applies mutate to the stored game while holding the write
// lock. Mutations of a game's deck, rounds and scores must all go through
// here so two requests can never race over the same cards or points.
func (s *InMemoryGameStore) UpdateGame(gameID string, mutate func(*game.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return ErrUnknownGameID
	}

	return mutate(g)
}
