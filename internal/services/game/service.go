package game

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/logging"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/leaderboard"
	"github.com/KirkDiggler/yahtzee/internal/models"
	gameRepo "github.com/KirkDiggler/yahtzee/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/yahtzee/internal/repositories/score_history"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// service implements the Service interface
type service struct {
	maxPlayers    int
	gameRepo      gameRepo.Repository
	historyRepo   historyRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 || maxPlayers > DefaultMaxPlayers {
		maxPlayers = DefaultMaxPlayers
	}

	return &service{
		maxPlayers:    maxPlayers,
		gameRepo:      cfg.GameRepo,
		historyRepo:   cfg.HistoryRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logging.OrNop(cfg.Logger),
	}, nil
}

// repoError translates repository errors into service errors
func repoError(err error) error {
	if errors.Is(err, gameRepo.ErrGameNotFound) {
		return ErrGameNotFound
	}
	return err
}

// CreateGame starts a scorekeeping game for one to four players
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (_ *CreateGameOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.CreateGame")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	if len(input.PlayerNames) > s.maxPlayers {
		return nil, errors.Wrapf(ErrGameFull, "%d players requested, at most %d allowed", len(input.PlayerNames), s.maxPlayers)
	}

	players := make([]*models.Player, 0, len(input.PlayerNames))
	seen := make(map[string]struct{}, len(input.PlayerNames))
	for _, raw := range input.PlayerNames {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, errors.Wrap(ErrInvalidInput, "player name cannot be blank")
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, errors.Wrapf(ErrDuplicatePlayer, "%q appears more than once", name)
		}
		seen[key] = struct{}{}
		players = append(players, models.NewPlayer(name))
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuidGenerator.NewUUID(),
		ChannelID: input.ChannelID,
		Status:    models.GameStatusActive,
		Players:   players,
		CreatedAt: now,
		UpdatedAt: now,
	}
	span.SetAttributes(attribute.String("game.id", game.ID))

	// the repository refuses a channel that still has an active game
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		if errors.Is(err, gameRepo.ErrChannelInUse) {
			return nil, ErrGameAlreadyExists
		}
		return nil, err
	}

	logging.WithTrace(ctx, s.logger).Info("game created",
		zap.String("game_id", game.ID),
		zap.String("channel_id", game.ChannelID),
		zap.Int("players", len(players)),
	)

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// GetGame retrieves a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (_ *GetGameOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.GetGame")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, repoError(err)
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// GetGameByChannel retrieves the game bound to a Discord channel
func (s *service) GetGameByChannel(ctx context.Context, input *GetGameByChannelInput) (_ *GetGameByChannelOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.GetGameByChannel")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetGameByChannel(ctx, &gameRepo.GetGameByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, repoError(err)
	}

	return &GetGameByChannelOutput{
		Game: game,
	}, nil
}

// CalculateScore scores dice in one category without touching any game
func (s *service) CalculateScore(ctx context.Context, input *CalculateScoreInput) (*CalculateScoreOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	score, err := scoring.ScoreCategory(input.Category, input.Dice)
	if err != nil {
		return nil, err
	}

	return &CalculateScoreOutput{
		Category: input.Category,
		Score:    score,
	}, nil
}

// CalculateAll scores dice in every category without touching any game
func (s *service) CalculateAll(ctx context.Context, input *CalculateAllInput) (*CalculateAllOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	scores, err := scoring.ScoreAll(input.Dice)
	if err != nil {
		return nil, err
	}

	return &CalculateAllOutput{
		Scores: scores,
	}, nil
}

// RollDice rolls a fresh hand, keeping any held dice
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		input = &RollDiceInput{}
	}

	hand, err := dice.RollHand(s.diceRoller, input.Held)
	if err != nil {
		return nil, err
	}

	scores, err := scoring.ScoreAll(hand)
	if err != nil {
		return nil, err
	}

	return &RollDiceOutput{
		Roll: &models.Roll{
			Dice:      hand,
			Held:      append([]int(nil), input.Held...),
			Scores:    scores,
			Timestamp: s.clock.Now(),
		},
	}, nil
}

// PreviewScore reports what committing dice would score for a player
func (s *service) PreviewScore(ctx context.Context, input *PreviewScoreInput) (_ *PreviewScoreOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.PreviewScore")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, repoError(err)
	}

	if !game.IsActive() {
		return nil, ErrGameCompleted
	}
	player := game.FindPlayer(input.PlayerName)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	// Commit never mutates the stored card, so it doubles as a dry run
	result, err := scorecard.Commit(player.Scorecard, input.Category, input.Dice)
	if err != nil {
		return nil, err
	}

	return &PreviewScoreOutput{
		Category:     input.Category,
		Score:        result.Score,
		BonusYahtzee: result.BonusAwarded,
	}, nil
}

// CommitScore records dice in a category of a player's scorecard
func (s *service) CommitScore(ctx context.Context, input *CommitScoreInput) (_ *CommitScoreOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.CommitScore")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("game.id", input.GameID),
		attribute.String("category", string(input.Category)),
	)

	return s.applyScore(ctx, input.GameID, input.PlayerName, models.ScoreEventCommit, input.Dice,
		func(card *scorecard.Scorecard) (*scorecard.CommitResult, error) {
			return scorecard.Commit(card, input.Category, input.Dice)
		})
}

// ScratchScore records a zero in a category of a player's scorecard
func (s *service) ScratchScore(ctx context.Context, input *ScratchScoreInput) (_ *CommitScoreOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.ScratchScore")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("game.id", input.GameID),
		attribute.String("category", string(input.Category)),
	)

	return s.applyScore(ctx, input.GameID, input.PlayerName, models.ScoreEventScratch, nil,
		func(card *scorecard.Scorecard) (*scorecard.CommitResult, error) {
			return scorecard.Scratch(card, input.Category)
		})
}

// applyScore runs a scorecard transition inside a single game update and
// records the outcome in the history
func (s *service) applyScore(
	ctx context.Context,
	gameID, playerName string,
	eventType models.ScoreEventType,
	hand []int,
	transition func(card *scorecard.Scorecard) (*scorecard.CommitResult, error),
) (*CommitScoreOutput, error) {
	var (
		result           *scorecard.CommitResult
		upperBonusBefore int
	)

	game, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: gameID,
		Update: func(game *models.Game) error {
			if !game.IsActive() {
				return ErrGameCompleted
			}
			player := game.FindPlayer(playerName)
			if player == nil {
				return ErrPlayerNotFound
			}

			// UpdateGame may retry, so everything captured here is reset each pass
			upperBonusBefore = 0
			if player.FinalScore != nil {
				upperBonusBefore = player.FinalScore.UpperBonus
			}

			res, err := transition(player.Scorecard)
			if err != nil {
				return err
			}
			result = res

			player.SetScorecard(res.Scorecard)
			game.Status = gameStatus(game)
			game.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, repoError(err)
	}

	player := game.FindPlayer(playerName)
	output := &CommitScoreOutput{
		Game:             game,
		Player:           player,
		Category:         result.Category,
		Score:            result.Score,
		BonusAwarded:     result.BonusAwarded,
		UsedAsJoker:      result.UsedAsJoker,
		BonusPoints:      result.BonusPoints,
		FinalScore:       result.FinalScore,
		UpperBonusEarned: upperBonusBefore == 0 && result.FinalScore.UpperBonus > 0,
		GameCompleted:    !game.IsActive(),
	}

	s.recordEvent(ctx, &models.ScoreEvent{
		GameID:       game.ID,
		PlayerName:   player.Name,
		Type:         eventType,
		Category:     result.Category,
		Dice:         append([]int(nil), hand...),
		Score:        result.Score,
		BonusAwarded: result.BonusAwarded,
		UsedAsJoker:  result.UsedAsJoker,
		TotalScore:   result.FinalScore.TotalScore,
	})

	logging.WithTrace(ctx, s.logger).Info("score recorded",
		zap.String("game_id", game.ID),
		zap.String("player", player.Name),
		zap.String("type", string(eventType)),
		zap.String("category", string(result.Category)),
		zap.Int("score", result.Score),
		zap.Bool("bonus_yahtzee", result.BonusAwarded),
		zap.Int("total", result.FinalScore.TotalScore),
	)

	return output, nil
}

// ClearScore empties a category of a player's scorecard
func (s *service) ClearScore(ctx context.Context, input *ClearScoreInput) (_ *ClearScoreOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.ClearScore")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("game.id", input.GameID),
		attribute.String("category", string(input.Category)),
	)

	game, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: input.GameID,
		Update: func(game *models.Game) error {
			player := game.FindPlayer(input.PlayerName)
			if player == nil {
				return ErrPlayerNotFound
			}

			card, err := scorecard.Clear(player.Scorecard, input.Category)
			if err != nil {
				return err
			}

			player.SetScorecard(card)
			game.Status = gameStatus(game)
			game.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, repoError(err)
	}

	player := game.FindPlayer(input.PlayerName)
	s.recordEvent(ctx, &models.ScoreEvent{
		GameID:     game.ID,
		PlayerName: player.Name,
		Type:       models.ScoreEventClear,
		Category:   input.Category,
		TotalScore: player.FinalScore.TotalScore,
	})

	logging.WithTrace(ctx, s.logger).Info("score cleared",
		zap.String("game_id", game.ID),
		zap.String("player", player.Name),
		zap.String("category", string(input.Category)),
		zap.Int("total", player.FinalScore.TotalScore),
	)

	return &ClearScoreOutput{
		Game:       game,
		Player:     player,
		Category:   input.Category,
		FinalScore: *player.FinalScore,
	}, nil
}

// gameStatus is completed once every player's card is full
func gameStatus(game *models.Game) models.GameStatus {
	for _, p := range game.Players {
		if !scorecard.Complete(p.Scorecard) {
			return models.GameStatusActive
		}
	}
	return models.GameStatusCompleted
}

// recordEvent appends to the score history. The game update has already
// been stored, so a history failure is logged rather than returned.
func (s *service) recordEvent(ctx context.Context, event *models.ScoreEvent) {
	event.ID = s.uuidGenerator.NewUUID()
	event.Timestamp = s.clock.Now()

	if err := s.historyRepo.AddEvent(ctx, &historyRepo.AddEventInput{
		Event: event,
	}); err != nil {
		logging.WithTrace(ctx, s.logger).Warn("failed to record score event",
			zap.String("game_id", event.GameID),
			zap.String("player", event.PlayerName),
			zap.Error(err),
		)
	}
}

// GetLeaderboard returns the current standings for a game
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (_ *GetLeaderboardOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.GetLeaderboard")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, repoError(err)
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			GameID:  game.ID,
			Entries: leaderboard.RankPlayers(game.Players),
		},
	}, nil
}

// GetHistory returns the score events of a game, oldest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (_ *GetHistoryOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.GetHistory")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, repoError(err)
	}

	playerName := ""
	if input.PlayerName != "" {
		player := game.FindPlayer(input.PlayerName)
		if player == nil {
			return nil, ErrPlayerNotFound
		}
		playerName = player.Name
	}

	output, err := s.historyRepo.ListEvents(ctx, &historyRepo.ListEventsInput{
		GameID:     game.ID,
		PlayerName: playerName,
	})
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{
		Events: output.Events,
	}, nil
}

// AbandonGame deletes a game and its history
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (_ *AbandonGameOutput, err error) {
	ctx, span := startSpan(ctx, "service.Game.AbandonGame")
	defer func() { endSpan(span, err) }()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	}); err != nil {
		return nil, repoError(err)
	}

	if err := s.historyRepo.DeleteEvents(ctx, &historyRepo.DeleteEventsInput{
		GameID: input.GameID,
	}); err != nil {
		return nil, err
	}

	logging.WithTrace(ctx, s.logger).Info("game abandoned", zap.String("game_id", input.GameID))

	return &AbandonGameOutput{
		GameID: input.GameID,
	}, nil
}
