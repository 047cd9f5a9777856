package game

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
	gameKeyPrefix    = "game:"
	channelKeyPrefix = "channel:"
	activeGamesKey   = "active_games"

	defaultMaxUpdateRetries = 10
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxUpdateRetries bounds optimistic transaction retries in UpdateGame
	MaxUpdateRetries int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxRetries int
}

// NewRedis creates a new Redis-backed game repository
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

	maxRetries := cfg.MaxUpdateRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxUpdateRetries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxRetries: maxRetries,
	}, nil
}

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}

func channelKey(channelID string) string {
	return channelKeyPrefix + channelID
}

// queueSave adds the writes that persist a game and its indexes to pipe.
// The channel binding is only written when bindChannel is set.
func queueSave(ctx context.Context, pipe redis.Pipeliner, game *models.Game, payload []byte, bindChannel bool) {
	pipe.Set(ctx, gameKey(game.ID), payload, 0)

	if bindChannel && game.ChannelID != "" {
		pipe.Set(ctx, channelKey(game.ChannelID), game.ID, 0)
	}

	if game.IsActive() {
		pipe.SAdd(ctx, activeGamesKey, game.ID)
	} else {
		pipe.SRem(ctx, activeGamesKey, game.ID)
	}
}

func decodeGame(raw []byte) (*models.Game, error) {
	var game models.Game
	if err := sonic.Unmarshal(raw, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}
	return &game, nil
}

// SaveGame persists a game to Redis. A game with a channel claims the
// channel binding, failing with ErrChannelInUse while another active game
// holds it.
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}
	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	payload, err := sonic.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	if input.Game.ChannelID == "" {
		pipe := r.client.TxPipeline()
		queueSave(ctx, pipe, input.Game, payload, false)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}
		return nil
	}

	key := channelKey(input.Game.ChannelID)
	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			if err := r.checkChannelFree(ctx, tx, key, input.Game.ID); err != nil {
				return err
			}

			_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				queueSave(ctx, pipe, input.Game, payload, true)
				return nil
			})
			return err
		}, key)

		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrChannelInUse) {
			return err
		}
		return fmt.Errorf("failed to save game: %w", err)
	}

	return ErrConcurrentUpdate
}

// checkChannelFree fails with ErrChannelInUse when the channel is bound to a
// different game that is still active. The bound game is watched too, so a
// concurrent status change aborts the transaction.
func (r *redisRepository) checkChannelFree(ctx context.Context, tx *redis.Tx, key, gameID string) error {
	boundID, err := tx.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get game ID for channel: %w", err)
	}
	if boundID == gameID {
		return nil
	}

	if err := tx.Watch(ctx, gameKey(boundID)).Err(); err != nil {
		return fmt.Errorf("failed to watch bound game: %w", err)
	}
	raw, err := tx.Get(ctx, gameKey(boundID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get bound game: %w", err)
	}

	bound, err := decodeGame(raw)
	if err != nil {
		return err
	}
	if bound.IsActive() {
		return ErrChannelInUse
	}
	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, gameKey(input.GameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return decodeGame(raw)
}

// GetGameByChannel retrieves the game bound to a channel from Redis
func (r *redisRepository) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (*models.Game, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	gameID, err := r.client.Get(ctx, channelKey(input.ChannelID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for channel: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{
		GameID: gameID,
	})
}

// DeleteGame removes a game and its indexes from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	// Get the game first to find its channel binding
	game, err := r.GetGame(ctx, &GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	// only drop the channel binding if it still points at this game
	dropChannel := false
	if game.ChannelID != "" {
		boundID, err := r.client.Get(ctx, channelKey(game.ChannelID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get game ID for channel: %w", err)
		}
		dropChannel = boundID == input.GameID
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameKey(input.GameID))
	if dropChannel {
		pipe.Del(ctx, channelKey(game.ChannelID))
	}
	pipe.SRem(ctx, activeGamesKey, input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetActiveGames retrieves all active games from Redis
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetActiveGamesOutput{
			Games: []*models.Game{},
		}, nil
	}

	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd, len(gameIDs))
	for _, gameID := range gameIDs {
		gameCommands[gameID] = pipe.Get(ctx, gameKey(gameID))
	}

	// Exec reports redis.Nil when any game vanished; those are skipped below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for gameID, cmd := range gameCommands {
		raw, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		game, err := decodeGame(raw)
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", gameID, err)
		}
		games = append(games, game)
	}

	return &GetActiveGamesOutput{
		Games: games,
	}, nil
}

// UpdateGame applies input.Update inside a WATCH/MULTI transaction, retrying
// when another writer changed the game first
func (r *redisRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}
	if input.Update == nil {
		return nil, errors.New("update function cannot be nil")
	}

	key := gameKey(input.GameID)

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		var updated *models.Game

		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			raw, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					return ErrGameNotFound
				}
				return fmt.Errorf("failed to get game: %w", err)
			}

			game, err := decodeGame(raw)
			if err != nil {
				return err
			}

			if err := input.Update(game); err != nil {
				return err
			}

			payload, err := sonic.Marshal(game)
			if err != nil {
				return fmt.Errorf("failed to marshal game: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				queueSave(ctx, pipe, game, payload, false)
				return nil
			})
			if err != nil {
				return err
			}

			updated = game
			return nil
		}, key)

		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrConcurrentUpdate
}
