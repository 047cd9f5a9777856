package game

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// memoryRepository implements the Repository interface in process memory.
// Stored games are private copies; callers never share pointers with the store.
type memoryRepository struct {
	mu       sync.Mutex
	games    map[string]*models.Game
	channels map[string]string
}

// NewMemory creates an in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games:    make(map[string]*models.Game),
		channels: make(map[string]string),
	}
}

// SaveGame persists a copy of the game and claims its channel, failing with
// ErrChannelInUse while another active game holds it
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}
	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	game := input.Game
	if game.ChannelID != "" {
		if boundID, ok := r.channels[game.ChannelID]; ok && boundID != game.ID {
			if bound, ok := r.games[boundID]; ok && bound.IsActive() {
				return ErrChannelInUse
			}
		}
		r.channels[game.ChannelID] = game.ID
	}
	r.games[game.ID] = game.Clone()
	return nil
}

// GetGame retrieves a copy of a game by ID
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return game.Clone(), nil
}

// GetGameByChannel retrieves a copy of the game bound to a channel
func (r *memoryRepository) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	gameID, ok := r.channels[input.ChannelID]
	if !ok {
		return nil, ErrGameNotFound
	}
	game, ok := r.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return game.Clone(), nil
}

// DeleteGame removes a game and its channel binding
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[input.GameID]
	if !ok {
		return ErrGameNotFound
	}
	delete(r.games, input.GameID)
	if game.ChannelID != "" && r.channels[game.ChannelID] == input.GameID {
		delete(r.channels, game.ChannelID)
	}
	return nil
}

// GetActiveGames retrieves copies of all active games
func (r *memoryRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	games := make([]*models.Game, 0, len(r.games))
	for _, game := range r.games {
		if game.IsActive() {
			games = append(games, game.Clone())
		}
	}
	return &GetActiveGamesOutput{Games: games}, nil
}

// UpdateGame applies input.Update while holding the store lock
func (r *memoryRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}
	if input.Update == nil {
		return nil, errors.New("update function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	game := stored.Clone()
	if err := input.Update(game); err != nil {
		return nil, err
	}

	r.games[game.ID] = game.Clone()
	return game.Clone(), nil
}
