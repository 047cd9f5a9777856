package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/yahtzee/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveGame persists a game. A game bound to a channel fails with
	// ErrChannelInUse while a different active game holds that channel.
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByChannel retrieves the game bound to a channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves all active games
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)

	// UpdateGame applies a mutation to a stored game atomically.
	// Concurrent updates to the same game never interleave; if the mutation
	// returns an error nothing is written.
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error)
}
