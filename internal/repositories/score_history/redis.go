package score_history

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

const (
	// Key prefixes for Redis
	eventKeyPrefix        = "score_event:"
	gameEventsKeyPrefix   = "game_events:"
	playerEventsKeyPrefix = "player_events:"
)

// Config holds configuration for the Redis score history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func eventKey(eventID string) string {
	return eventKeyPrefix + eventID
}

func gameEventsKey(gameID string) string {
	return gameEventsKeyPrefix + gameID
}

func playerEventsKey(gameID, playerName string) string {
	return fmt.Sprintf("%s%s:%s", playerEventsKeyPrefix, gameID, playerName)
}

// AddEvent stores the event and indexes it by game and player
func (r *redisRepository) AddEvent(ctx context.Context, input *AddEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	event := input.Event
	if event.ID == "" {
		return errors.New("event ID cannot be empty")
	}
	if event.GameID == "" {
		return errors.New("event game ID cannot be empty")
	}
	if event.Timestamp.IsZero() {
		return errors.New("event timestamp cannot be zero")
	}

	payload, err := sonic.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal score event: %w", err)
	}

	member := redis.Z{
		Score:  float64(event.Timestamp.UnixMicro()),
		Member: event.ID,
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, eventKey(event.ID), payload, 0)
	pipe.ZAdd(ctx, gameEventsKey(event.GameID), member)
	if event.PlayerName != "" {
		pipe.ZAdd(ctx, playerEventsKey(event.GameID, event.PlayerName), member)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add score event: %w", err)
	}

	return nil
}

// ListEvents retrieves a game's events in timestamp order
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	indexKey := gameEventsKey(input.GameID)
	if input.PlayerName != "" {
		indexKey = playerEventsKey(input.GameID, input.PlayerName)
	}

	eventIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event IDs: %w", err)
	}

	if len(eventIDs) == 0 {
		return &ListEventsOutput{
			Events: []*models.ScoreEvent{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(eventIDs))
	for i, eventID := range eventIDs {
		commands[i] = pipe.Get(ctx, eventKey(eventID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get score events: %w", err)
	}

	events := make([]*models.ScoreEvent, 0, len(eventIDs))
	for i, cmd := range commands {
		raw, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Event was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get score event %s: %w", eventIDs[i], err)
		}

		var event models.ScoreEvent
		if err := sonic.Unmarshal(raw, &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score event %s: %w", eventIDs[i], err)
		}
		events = append(events, &event)
	}

	return &ListEventsOutput{
		Events: events,
	}, nil
}

// DeleteEvents removes every event of a game along with its indexes
func (r *redisRepository) DeleteEvents(ctx context.Context, input *DeleteEventsInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	output, err := r.ListEvents(ctx, &ListEventsInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	keys := []string{gameEventsKey(input.GameID)}
	players := make(map[string]struct{})
	for _, event := range output.Events {
		keys = append(keys, eventKey(event.ID))
		if _, seen := players[event.PlayerName]; !seen && event.PlayerName != "" {
			players[event.PlayerName] = struct{}{}
			keys = append(keys, playerEventsKey(input.GameID, event.PlayerName))
		}
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete score events: %w", err)
	}

	return nil
}
