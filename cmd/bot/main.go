package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/logging"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/config"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/handlers/discord"
	"github.com/KirkDiggler/yahtzee/internal/repositories/game"
	"github.com/KirkDiggler/yahtzee/internal/repositories/score_history"
	gameService "github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/services/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.DiscordToken == "" {
		logger.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize repositories
	var (
		gameRepo    game.Repository
		historyRepo score_history.Repository
	)
	switch cfg.Store {
	case config.StoreMemory:
		logger.Warn("using in-memory store, games are lost on restart")
		gameRepo = game.NewMemory()
		historyRepo = score_history.NewMemory()
	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		gameRepo, err = game.NewRedis(&game.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			logger.Fatal("failed to create game repository", zap.String("redis_addr", cfg.RedisAddr), zap.Error(err))
		}

		historyRepo, err = score_history.NewRedis(&score_history.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			logger.Fatal("failed to create score history repository", zap.Error(err))
		}
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		MaxPlayers:    cfg.MaxPlayers,
		GameRepo:      gameRepo,
		HistoryRepo:   historyRepo,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger.Named("game"),
	})
	if err != nil {
		logger.Fatal("failed to create game service", zap.Error(err))
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatal("failed to create messaging service", zap.Error(err))
	}

	// Report games left open by a previous run
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	active, err := gameRepo.GetActiveGames(ctx, &game.GetActiveGamesInput{})
	cancel()
	if err != nil {
		logger.Warn("failed to list active games", zap.Error(err))
	} else {
		logger.Info("resuming active games", zap.Int("count", len(active.Games)))
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Logger:           logger.Named("discord"),
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		logger.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", zap.Error(err))
	}

	logger.Info("bot has been shut down")
}
