package game

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	gameRepo "github.com/KirkDiggler/yahtzee/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/yahtzee/internal/repositories/score_history"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// DefaultMaxPlayers is the largest table a game supports
const DefaultMaxPlayers = 4

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per game, at most DefaultMaxPlayers
	MaxPlayers int

	// Repository dependencies
	GameRepo    gameRepo.Repository
	HistoryRepo historyRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional
	Logger *zap.Logger
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// PlayerNames in turn order
	PlayerNames []string `validate:"min=1,max=4,dive,required"`

	// ChannelID is the Discord channel the game is played in, if any
	ChannelID string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string `validate:"required"`
}

// GetGameOutput contains the requested game
type GetGameOutput struct {
	Game *models.Game
}

// GetGameByChannelInput contains parameters for finding a channel's game
type GetGameByChannelInput struct {
	ChannelID string `validate:"required"`
}

// GetGameByChannelOutput contains the channel's game
type GetGameByChannelOutput struct {
	Game *models.Game
}

// CalculateScoreInput contains the dice and category to score
type CalculateScoreInput struct {
	Category scoring.Category
	Dice     []int
}

// CalculateScoreOutput contains the category score
type CalculateScoreOutput struct {
	Category scoring.Category
	Score    int
}

// CalculateAllInput contains the dice to score
type CalculateAllInput struct {
	Dice []int
}

// CalculateAllOutput contains a score for each of the 13 categories
type CalculateAllOutput struct {
	Scores map[scoring.Category]int
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	// Held are the dice kept from the previous roll
	Held []int
}

// RollDiceOutput contains the new hand and what it would score
type RollDiceOutput struct {
	Roll *models.Roll
}

// PreviewScoreInput contains parameters for previewing a commit
type PreviewScoreInput struct {
	GameID     string `validate:"required"`
	PlayerName string `validate:"required"`
	Category   scoring.Category
	Dice       []int
}

// PreviewScoreOutput contains the score a commit would record
type PreviewScoreOutput struct {
	Category scoring.Category
	Score    int

	// BonusYahtzee is set when the commit would earn a bonus Yahtzee
	BonusYahtzee bool
}

// CommitScoreInput contains parameters for committing dice
type CommitScoreInput struct {
	GameID     string `validate:"required"`
	PlayerName string `validate:"required"`
	Category   scoring.Category
	Dice       []int
}

// ScratchScoreInput contains parameters for recording a zero
type ScratchScoreInput struct {
	GameID     string `validate:"required"`
	PlayerName string `validate:"required"`
	Category   scoring.Category
}

// CommitScoreOutput contains the result of a commit or scratch
type CommitScoreOutput struct {
	Game   *models.Game
	Player *models.Player

	Category     scoring.Category
	Score        int
	BonusAwarded bool
	UsedAsJoker  bool
	BonusPoints  int
	FinalScore   scorecard.FinalScore

	// UpperBonusEarned is set when this commit crossed the upper bonus threshold
	UpperBonusEarned bool

	// GameCompleted is set when this commit filled the last open box of the game
	GameCompleted bool
}

// ClearScoreInput contains parameters for clearing a category
type ClearScoreInput struct {
	GameID     string `validate:"required"`
	PlayerName string `validate:"required"`
	Category   scoring.Category
}

// ClearScoreOutput contains the result of clearing a category
type ClearScoreOutput struct {
	Game       *models.Game
	Player     *models.Player
	Category   scoring.Category
	FinalScore scorecard.FinalScore
}

// GetLeaderboardInput contains parameters for retrieving standings
type GetLeaderboardInput struct {
	GameID string `validate:"required"`
}

// GetLeaderboardOutput contains the ranked standings
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetHistoryInput contains parameters for retrieving score events
type GetHistoryInput struct {
	GameID string `validate:"required"`

	// PlayerName narrows the history to one player
	PlayerName string
}

// GetHistoryOutput contains the score events, oldest first
type GetHistoryOutput struct {
	Events []*models.ScoreEvent
}

// AbandonGameInput contains parameters for abandoning a game
type AbandonGameInput struct {
	GameID string `validate:"required"`
}

// AbandonGameOutput contains the result of abandoning a game
type AbandonGameOutput struct {
	GameID string
}
