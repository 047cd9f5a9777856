package score_history

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// memoryRepository implements the Repository interface in process memory
type memoryRepository struct {
	mu     sync.Mutex
	events map[string][]models.ScoreEvent
}

// NewMemory creates an in-memory score history repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		events: make(map[string][]models.ScoreEvent),
	}
}

func copyEvent(event models.ScoreEvent) *models.ScoreEvent {
	event.Dice = append([]int(nil), event.Dice...)
	return &event
}

// AddEvent appends a copy of the event to its game's history
func (r *memoryRepository) AddEvent(ctx context.Context, input *AddEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}
	if input.Event.ID == "" {
		return errors.New("event ID cannot be empty")
	}
	if input.Event.GameID == "" {
		return errors.New("event game ID cannot be empty")
	}
	if input.Event.Timestamp.IsZero() {
		return errors.New("event timestamp cannot be zero")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	gameID := input.Event.GameID
	r.events[gameID] = append(r.events[gameID], *copyEvent(*input.Event))

	// keep timestamp order when events arrive out of order
	sort.SliceStable(r.events[gameID], func(i, j int) bool {
		return r.events[gameID][i].Timestamp.Before(r.events[gameID][j].Timestamp)
	})
	return nil
}

// ListEvents retrieves copies of a game's events, oldest first
func (r *memoryRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]*models.ScoreEvent, 0, len(r.events[input.GameID]))
	for _, event := range r.events[input.GameID] {
		if input.PlayerName != "" && event.PlayerName != input.PlayerName {
			continue
		}
		events = append(events, copyEvent(event))
	}

	return &ListEventsOutput{Events: events}, nil
}

// DeleteEvents forgets a game's history
func (r *memoryRepository) DeleteEvents(ctx context.Context, input *DeleteEventsInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.events, input.GameID)
	return nil
}
