package messaging

import (
	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType buckets errors into message pools
type ErrorType string

const (
	ErrorTypeInvalidHand     ErrorType = "invalid_hand"
	ErrorTypeInvalidCategory ErrorType = "invalid_category"
	ErrorTypeAlreadyScored   ErrorType = "already_scored"
	ErrorTypeNotScored       ErrorType = "not_scored"
	ErrorTypeGameNotFound    ErrorType = "game_not_found"
	ErrorTypePlayerNotFound  ErrorType = "player_not_found"
	ErrorTypeGameExists      ErrorType = "game_exists"
	ErrorTypeGameCompleted   ErrorType = "game_completed"
	ErrorTypeBadPlayers      ErrorType = "bad_players"
	ErrorTypeInvalidInput    ErrorType = "invalid_input"
	ErrorTypeUnknown         ErrorType = "unknown"
)

// GetScoreMessageInput describes a scorecard change
type GetScoreMessageInput struct {
	PlayerName string
	EventType  models.ScoreEventType
	Category   scoring.Category
	Score      int
	TotalScore int

	BonusAwarded     bool
	UsedAsJoker      bool
	UpperBonusEarned bool
	GameCompleted    bool
}

// GetScoreMessageOutput contains the announcement
type GetScoreMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetLeaderboardMessageInput contains the standings to describe
type GetLeaderboardMessageInput struct {
	Entries       []models.LeaderboardEntry
	GameCompleted bool
}

// GetLeaderboardMessageOutput contains the headline
type GetLeaderboardMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the game service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title     string
	Message   string
	ErrorType ErrorType
	Tone      MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed makes message selection repeatable; zero seeds from the clock
	Seed int64
}
