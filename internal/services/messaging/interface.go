package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetScoreMessage returns a message announcing a commit, scratch or clear
	GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error)

	// GetLeaderboardMessage returns a headline for the current standings
	GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
