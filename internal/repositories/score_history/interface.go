package score_history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/yahtzee/internal/repositories/score_history Repository

import (
	"context"
)

// Repository defines the interface for score event persistence
type Repository interface {
	// AddEvent appends an event to a game's history
	AddEvent(ctx context.Context, input *AddEventInput) error

	// ListEvents retrieves a game's events, oldest first
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// DeleteEvents deletes all events for a game
	DeleteEvents(ctx context.Context, input *DeleteEventsInput) error
}
