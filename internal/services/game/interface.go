package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/yahtzee/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// CreateGame starts a scorekeeping game for one to four players
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetGameByChannel retrieves the game bound to a Discord channel
	GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*GetGameByChannelOutput, error)

	// CalculateScore scores dice in one category without touching any game
	CalculateScore(ctx context.Context, input *CalculateScoreInput) (*CalculateScoreOutput, error)

	// CalculateAll scores dice in every category without touching any game
	CalculateAll(ctx context.Context, input *CalculateAllInput) (*CalculateAllOutput, error)

	// RollDice rolls a fresh hand, keeping any held dice
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// PreviewScore reports what committing dice would score for a player
	PreviewScore(ctx context.Context, input *PreviewScoreInput) (*PreviewScoreOutput, error)

	// CommitScore records dice in a category of a player's scorecard
	CommitScore(ctx context.Context, input *CommitScoreInput) (*CommitScoreOutput, error)

	// ScratchScore records a zero in a category of a player's scorecard
	ScratchScore(ctx context.Context, input *ScratchScoreInput) (*CommitScoreOutput, error)

	// ClearScore empties a category of a player's scorecard
	ClearScore(ctx context.Context, input *ClearScoreInput) (*ClearScoreOutput, error)

	// GetLeaderboard returns the current standings for a game
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetHistory returns the score events of a game, oldest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// AbandonGame deletes a game and its history
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)
}
