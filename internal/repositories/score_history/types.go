package score_history

import "github.com/KirkDiggler/yahtzee/internal/models"

// AddEventInput contains parameters for adding a score event
type AddEventInput struct {
	Event *models.ScoreEvent
}

// ListEventsInput contains parameters for retrieving score events.
// PlayerName narrows the result to one player when set.
type ListEventsInput struct {
	GameID     string
	PlayerName string
}

// ListEventsOutput contains the result of retrieving score events
type ListEventsOutput struct {
	Events []*models.ScoreEvent
}

// DeleteEventsInput contains parameters for deleting a game's events
type DeleteEventsInput struct {
	GameID string
}
