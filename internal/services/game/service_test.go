package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/yahtzee/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/yahtzee/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/yahtzee/internal/dice/mocks"
	"github.com/KirkDiggler/yahtzee/internal/models"
	gameRepo "github.com/KirkDiggler/yahtzee/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/yahtzee/internal/repositories/game/mocks"
	historyRepo "github.com/KirkDiggler/yahtzee/internal/repositories/score_history"
	historyMocks "github.com/KirkDiggler/yahtzee/internal/repositories/score_history/mocks"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGameRepo    *gameMocks.MockRepository
	mockHistoryRepo *historyMocks.MockRepository
	mockDiceRoller  *diceMocks.MockRoller
	mockClock       *mocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	gameService     Service
	ctx             context.Context

	// Test data
	testTime      time.Time
	testGameID    string
	testChannelID string
	testUUID      string

	// Reusable test fixtures
	expectedGame *models.Game
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockHistoryRepo = historyMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testChannelID = "test-channel-id"
	s.testUUID = "test-uuid"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testUUID).AnyTimes()

	s.expectedGame = &models.Game{
		ID:        s.testGameID,
		ChannelID: s.testChannelID,
		Status:    models.GameStatusActive,
		Players: []*models.Player{
			models.NewPlayer("Alice"),
			models.NewPlayer("Bob"),
		},
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	svc, err := New(&Config{
		GameRepo:      s.mockGameRepo,
		HistoryRepo:   s.mockHistoryRepo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		MaxPlayers:    4,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// expectUpdate runs the service's mutation against a copy of stored, the way
// the repositories do
func (s *GameServiceTestSuite) expectUpdate(stored *models.Game) {
	s.mockGameRepo.EXPECT().
		UpdateGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.UpdateGameInput) (*models.Game, error) {
			s.Equal(stored.ID, input.GameID)
			game := stored.Clone()
			if err := input.Update(game); err != nil {
				return nil, err
			}
			return game, nil
		})
}

// expectEvent captures the next recorded score event
func (s *GameServiceTestSuite) expectEvent() *models.ScoreEvent {
	captured := &models.ScoreEvent{}
	s.mockHistoryRepo.EXPECT().
		AddEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *historyRepo.AddEventInput) error {
			*captured = *input.Event
			return nil
		})
	return captured
}

// fullCardExcept fills every category but the ones named
func fullCardExcept(open ...scoring.Category) *scorecard.Scorecard {
	card := scorecard.New()
	for _, cat := range scoring.Categories {
		card.Scores[cat] = 0
	}
	for _, cat := range open {
		delete(card.Scores, cat)
	}
	return card
}

func (s *GameServiceTestSuite) TestNew_RequiresDependencies() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilGameRepo, err)

	_, err = New(&Config{GameRepo: s.mockGameRepo})
	s.Equal(ErrNilHistoryRepo, err)

	_, err = New(&Config{GameRepo: s.mockGameRepo, HistoryRepo: s.mockHistoryRepo})
	s.Equal(ErrNilDiceRoller, err)

	_, err = New(&Config{GameRepo: s.mockGameRepo, HistoryRepo: s.mockHistoryRepo, DiceRoller: s.mockDiceRoller})
	s.Equal(ErrNilClock, err)

	_, err = New(&Config{GameRepo: s.mockGameRepo, HistoryRepo: s.mockHistoryRepo, DiceRoller: s.mockDiceRoller, Clock: s.mockClock})
	s.Equal(ErrNilUUIDGenerator, err)
}

func (s *GameServiceTestSuite) TestCreateGame_Success() {
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(s.testUUID, input.Game.ID)
			s.Equal(s.testChannelID, input.Game.ChannelID)
			s.Equal(models.GameStatusActive, input.Game.Status)
			s.Equal(s.testTime, input.Game.CreatedAt)
			return nil
		})

	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerNames: []string{" Alice ", "Bob"},
		ChannelID:   s.testChannelID,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Game.Players, 2)
	s.Equal("Alice", output.Game.Players[0].Name)
	s.Equal("Bob", output.Game.Players[1].Name)
	s.Empty(output.Game.Players[0].Scorecard.Scores)
	s.Nil(output.Game.Players[0].FinalScore)
}

func (s *GameServiceTestSuite) TestCreateGame_WithoutChannel() {
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerNames: []string{"Solo"},
	})
	s.Require().NoError(err)
	s.Len(output.Game.Players, 1)
}

func (s *GameServiceTestSuite) TestCreateGame_ChannelBusy() {
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(gameRepo.ErrChannelInUse)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerNames: []string{"Alice"},
		ChannelID:   s.testChannelID,
	})
	s.Equal(ErrGameAlreadyExists, err)
}

func (s *GameServiceTestSuite) TestCreateGame_SaveFailure() {
	boom := errors.New("redis down")
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(boom)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerNames: []string{"Alice"},
		ChannelID:   s.testChannelID,
	})
	s.True(errors.Is(err, boom))
}

func (s *GameServiceTestSuite) TestCreateGame_InvalidPlayers() {
	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{})
	s.True(errors.Is(err, ErrInvalidInput))

	_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerNames: []string{"a", "b", "c", "d", "e"},
	})
	s.True(errors.Is(err, ErrInvalidInput))

	_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerNames: []string{"Alice", ""},
	})
	s.True(errors.Is(err, ErrInvalidInput))

	_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerNames: []string{"Alice", "   "},
	})
	s.True(errors.Is(err, ErrInvalidInput))

	_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{
		PlayerNames: []string{"Alice", "alice"},
	})
	s.True(errors.Is(err, ErrDuplicatePlayer))

	_, err = s.gameService.CreateGame(s.ctx, nil)
	s.True(errors.Is(err, ErrInvalidInput))
}

func (s *GameServiceTestSuite) TestCreateGame_ConfiguredMaxPlayers() {
	svc, err := New(&Config{
		GameRepo:      s.mockGameRepo,
		HistoryRepo:   s.mockHistoryRepo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		MaxPlayers:    2,
	})
	s.Require().NoError(err)

	_, err = svc.CreateGame(s.ctx, &CreateGameInput{
		PlayerNames: []string{"a", "b", "c"},
	})
	s.True(errors.Is(err, ErrGameFull))
}

func (s *GameServiceTestSuite) TestGetGame() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(s.expectedGame, nil)

	output, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(s.expectedGame, output.Game)

	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: "missing"}).
		Return(nil, gameRepo.ErrGameNotFound)

	_, err = s.gameService.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.Equal(ErrGameNotFound, err)

	_, err = s.gameService.GetGame(s.ctx, &GetGameInput{})
	s.True(errors.Is(err, ErrInvalidInput))
}

func (s *GameServiceTestSuite) TestGetGameByChannel() {
	s.mockGameRepo.EXPECT().
		GetGameByChannel(gomock.Any(), &gameRepo.GetGameByChannelInput{ChannelID: s.testChannelID}).
		Return(s.expectedGame, nil)

	output, err := s.gameService.GetGameByChannel(s.ctx, &GetGameByChannelInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(s.testGameID, output.Game.ID)

	s.mockGameRepo.EXPECT().
		GetGameByChannel(gomock.Any(), gomock.Any()).
		Return(nil, gameRepo.ErrGameNotFound)

	_, err = s.gameService.GetGameByChannel(s.ctx, &GetGameByChannelInput{ChannelID: "elsewhere"})
	s.Equal(ErrGameNotFound, err)
}

func (s *GameServiceTestSuite) TestCalculateScore() {
	output, err := s.gameService.CalculateScore(s.ctx, &CalculateScoreInput{
		Category: scoring.CategoryFullHouse,
		Dice:     []int{2, 2, 5, 5, 5},
	})
	s.Require().NoError(err)
	s.Equal(25, output.Score)

	_, err = s.gameService.CalculateScore(s.ctx, &CalculateScoreInput{
		Category: scoring.CategoryFullHouse,
		Dice:     []int{2, 2, 5, 5},
	})
	s.True(errors.Is(err, scoring.ErrInvalidHand))

	_, err = s.gameService.CalculateScore(s.ctx, &CalculateScoreInput{
		Category: scoring.Category("fullHouses"),
		Dice:     []int{2, 2, 5, 5, 5},
	})
	s.True(errors.Is(err, scoring.ErrInvalidCategory))
}

func (s *GameServiceTestSuite) TestCalculateAll() {
	output, err := s.gameService.CalculateAll(s.ctx, &CalculateAllInput{
		Dice: []int{1, 2, 3, 4, 5},
	})
	s.Require().NoError(err)
	s.Len(output.Scores, 13)
	s.Equal(40, output.Scores[scoring.CategoryLargeStraight])
	s.Equal(30, output.Scores[scoring.CategorySmallStraight])
	s.Equal(15, output.Scores[scoring.CategoryChance])

	_, err = s.gameService.CalculateAll(s.ctx, &CalculateAllInput{Dice: []int{1, 2, 3, 4, 9}})
	s.True(errors.Is(err, scoring.ErrInvalidHand))
}

func (s *GameServiceTestSuite) TestRollDice() {
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(6).Return(6),
		s.mockDiceRoller.EXPECT().Roll(6).Return(6),
	)

	output, err := s.gameService.RollDice(s.ctx, &RollDiceInput{Held: []int{6, 6, 6}})
	s.Require().NoError(err)
	s.Equal([]int{6, 6, 6, 6, 6}, output.Roll.Dice)
	s.Equal([]int{6, 6, 6}, output.Roll.Held)
	s.Equal(50, output.Roll.Scores[scoring.CategoryYahtzee])
	s.Equal(s.testTime, output.Roll.Timestamp)

	_, err = s.gameService.RollDice(s.ctx, &RollDiceInput{Held: []int{1, 2, 3, 4, 5, 6}})
	s.True(errors.Is(err, scoring.ErrInvalidHand))
}

func (s *GameServiceTestSuite) TestPreviewScore() {
	stored := s.expectedGame.Clone()
	stored.Players[0].Scorecard.Scores[scoring.CategoryYahtzee] = 50

	s.mockGameRepo.EXPECT().GetGame(gomock.Any(), gomock.Any()).Return(stored, nil)

	output, err := s.gameService.PreviewScore(s.ctx, &PreviewScoreInput{
		GameID:     s.testGameID,
		PlayerName: "alice",
		Category:   scoring.CategoryFours,
		Dice:       []int{4, 4, 4, 4, 4},
	})
	s.Require().NoError(err)
	s.Equal(20, output.Score)
	s.True(output.BonusYahtzee)

	// nothing was written
	s.Equal(0, stored.Players[0].Scorecard.BonusYahtzees)
	s.Len(stored.Players[0].Scorecard.Scores, 1)
}

func (s *GameServiceTestSuite) TestPreviewScore_UnknownPlayer() {
	s.mockGameRepo.EXPECT().GetGame(gomock.Any(), gomock.Any()).Return(s.expectedGame, nil)

	_, err := s.gameService.PreviewScore(s.ctx, &PreviewScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Mallory",
		Category:   scoring.CategoryChance,
		Dice:       []int{1, 2, 3, 4, 5},
	})
	s.Equal(ErrPlayerNotFound, err)
}

func (s *GameServiceTestSuite) TestCommitScore_FirstYahtzee() {
	s.expectUpdate(s.expectedGame)
	event := s.expectEvent()

	output, err := s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategoryYahtzee,
		Dice:       []int{5, 5, 5, 5, 5},
	})
	s.Require().NoError(err)

	s.Equal(50, output.Score)
	s.False(output.BonusAwarded)
	s.Equal(50, output.FinalScore.TotalScore)
	s.Equal(50, output.Player.Scorecard.Scores[scoring.CategoryYahtzee])
	s.Require().NotNil(output.Player.FinalScore)
	s.Equal(50, output.Player.FinalScore.TotalScore)
	s.False(output.GameCompleted)
	s.Equal(models.GameStatusActive, output.Game.Status)

	s.Equal(s.testUUID, event.ID)
	s.Equal(s.testGameID, event.GameID)
	s.Equal("Alice", event.PlayerName)
	s.Equal(models.ScoreEventCommit, event.Type)
	s.Equal(scoring.CategoryYahtzee, event.Category)
	s.Equal([]int{5, 5, 5, 5, 5}, event.Dice)
	s.Equal(50, event.Score)
	s.Equal(50, event.TotalScore)
	s.Equal(s.testTime, event.Timestamp)
}

func (s *GameServiceTestSuite) TestCommitScore_BonusYahtzeeAsJoker() {
	stored := s.expectedGame.Clone()
	stored.Players[1].SetScorecard(&scorecard.Scorecard{
		Scores: map[scoring.Category]int{scoring.CategoryYahtzee: 50},
	})

	s.expectUpdate(stored)
	event := s.expectEvent()

	output, err := s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Bob",
		Category:   scoring.CategorySixes,
		Dice:       []int{6, 6, 6, 6, 6},
	})
	s.Require().NoError(err)

	s.Equal(30, output.Score)
	s.True(output.BonusAwarded)
	s.True(output.UsedAsJoker)
	s.Equal(100, output.BonusPoints)
	s.Equal(1, output.Player.Scorecard.BonusYahtzees)
	s.Equal(180, output.FinalScore.TotalScore)
	s.True(event.BonusAwarded)
	s.True(event.UsedAsJoker)
}

func (s *GameServiceTestSuite) TestCommitScore_UpperBonusEarned() {
	stored := s.expectedGame.Clone()
	stored.Players[0].SetScorecard(&scorecard.Scorecard{
		Scores: map[scoring.Category]int{
			scoring.CategoryOnes:   3,
			scoring.CategoryTwos:   6,
			scoring.CategoryThrees: 9,
			scoring.CategoryFours:  12,
			scoring.CategoryFives:  15,
		},
	})

	s.expectUpdate(stored)
	s.expectEvent()

	output, err := s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategorySixes,
		Dice:       []int{6, 6, 6, 1, 2},
	})
	s.Require().NoError(err)
	s.True(output.UpperBonusEarned)
	s.Equal(35, output.FinalScore.UpperBonus)
	s.Equal(98, output.FinalScore.TotalScore)
}

func (s *GameServiceTestSuite) TestCommitScore_CompletesGame() {
	stored := s.expectedGame.Clone()
	stored.Players[0].SetScorecard(fullCardExcept(scoring.CategoryChance))
	stored.Players[1].SetScorecard(fullCardExcept())

	s.expectUpdate(stored)
	s.expectEvent()

	output, err := s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategoryChance,
		Dice:       []int{6, 6, 5, 5, 4},
	})
	s.Require().NoError(err)
	s.True(output.GameCompleted)
	s.Equal(models.GameStatusCompleted, output.Game.Status)
}

func (s *GameServiceTestSuite) TestCommitScore_CompletedGameRejected() {
	stored := s.expectedGame.Clone()
	stored.Status = models.GameStatusCompleted
	full := fullCardExcept()
	full.Scores[scoring.CategoryYahtzee] = 50
	stored.Players[0].SetScorecard(full)
	stored.Players[1].SetScorecard(fullCardExcept())

	// no history event is expected
	s.expectUpdate(stored)
	_, err := s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategoryYahtzee,
		Dice:       []int{2, 2, 2, 2, 2},
	})
	s.Equal(ErrGameCompleted, err)
	s.Equal(0, stored.Players[0].Scorecard.BonusYahtzees)

	s.expectUpdate(stored)
	_, err = s.gameService.ScratchScore(s.ctx, &ScratchScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Bob",
		Category:   scoring.CategoryChance,
	})
	s.Equal(ErrGameCompleted, err)

	s.mockGameRepo.EXPECT().GetGame(gomock.Any(), gomock.Any()).Return(stored, nil)
	_, err = s.gameService.PreviewScore(s.ctx, &PreviewScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategoryYahtzee,
		Dice:       []int{2, 2, 2, 2, 2},
	})
	s.Equal(ErrGameCompleted, err)
}

func (s *GameServiceTestSuite) TestCommitScore_AlreadyScoredWritesNothing() {
	stored := s.expectedGame.Clone()
	stored.Players[0].SetScorecard(&scorecard.Scorecard{
		Scores: map[scoring.Category]int{scoring.CategoryChance: 20},
	})

	s.expectUpdate(stored)

	_, err := s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategoryChance,
		Dice:       []int{1, 2, 3, 4, 5},
	})
	s.Require().Error(err)
	s.True(errors.Is(err, scorecard.ErrAlreadyScored))
	s.Equal(20, stored.Players[0].Scorecard.Scores[scoring.CategoryChance])
}

func (s *GameServiceTestSuite) TestCommitScore_Errors() {
	s.expectUpdate(s.expectedGame)
	_, err := s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Mallory",
		Category:   scoring.CategoryChance,
		Dice:       []int{1, 2, 3, 4, 5},
	})
	s.Equal(ErrPlayerNotFound, err)

	s.expectUpdate(s.expectedGame)
	_, err = s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategoryChance,
		Dice:       []int{1, 2, 3, 4, 7},
	})
	s.True(errors.Is(err, scoring.ErrInvalidHand))

	s.mockGameRepo.EXPECT().
		UpdateGame(gomock.Any(), gomock.Any()).
		Return(nil, gameRepo.ErrGameNotFound)
	_, err = s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     "missing",
		PlayerName: "Alice",
		Category:   scoring.CategoryChance,
		Dice:       []int{1, 2, 3, 4, 5},
	})
	s.Equal(ErrGameNotFound, err)

	_, err = s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:   s.testGameID,
		Category: scoring.CategoryChance,
		Dice:     []int{1, 2, 3, 4, 5},
	})
	s.True(errors.Is(err, ErrInvalidInput))
}

func (s *GameServiceTestSuite) TestCommitScore_HistoryFailureIsNotFatal() {
	s.expectUpdate(s.expectedGame)
	s.mockHistoryRepo.EXPECT().
		AddEvent(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	output, err := s.gameService.CommitScore(s.ctx, &CommitScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategoryChance,
		Dice:       []int{1, 2, 3, 4, 5},
	})
	s.Require().NoError(err)
	s.Equal(15, output.Score)
}

func (s *GameServiceTestSuite) TestScratchScore() {
	s.expectUpdate(s.expectedGame)
	event := s.expectEvent()

	output, err := s.gameService.ScratchScore(s.ctx, &ScratchScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Bob",
		Category:   scoring.CategoryYahtzee,
	})
	s.Require().NoError(err)

	stored, used := output.Player.Scorecard.Score(scoring.CategoryYahtzee)
	s.True(used)
	s.Equal(0, stored)
	s.Equal(models.ScoreEventScratch, event.Type)
	s.Empty(event.Dice)
}

func (s *GameServiceTestSuite) TestClearScore_ReopensCompletedGame() {
	stored := s.expectedGame.Clone()
	stored.Status = models.GameStatusCompleted
	full := fullCardExcept()
	full.Scores[scoring.CategoryChance] = 22
	stored.Players[0].SetScorecard(full)
	stored.Players[1].SetScorecard(fullCardExcept())

	s.expectUpdate(stored)
	event := s.expectEvent()

	output, err := s.gameService.ClearScore(s.ctx, &ClearScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategoryChance,
	})
	s.Require().NoError(err)

	s.Equal(models.GameStatusActive, output.Game.Status)
	_, used := output.Player.Scorecard.Score(scoring.CategoryChance)
	s.False(used)
	s.Equal(0, output.FinalScore.TotalScore)
	s.Equal(models.ScoreEventClear, event.Type)
}

func (s *GameServiceTestSuite) TestClearScore_NotScored() {
	s.expectUpdate(s.expectedGame)

	_, err := s.gameService.ClearScore(s.ctx, &ClearScoreInput{
		GameID:     s.testGameID,
		PlayerName: "Alice",
		Category:   scoring.CategoryChance,
	})
	s.True(errors.Is(err, scorecard.ErrNotScored))
}

func (s *GameServiceTestSuite) TestGetLeaderboard() {
	stored := s.expectedGame.Clone()
	stored.Players[0].SetScorecard(&scorecard.Scorecard{
		Scores: map[scoring.Category]int{scoring.CategoryChance: 20},
	})
	stored.Players[1].SetScorecard(&scorecard.Scorecard{
		Scores: map[scoring.Category]int{scoring.CategoryYahtzee: 50},
	})

	s.mockGameRepo.EXPECT().GetGame(gomock.Any(), gomock.Any()).Return(stored, nil)

	output, err := s.gameService.GetLeaderboard(s.ctx, &GetLeaderboardInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(s.testGameID, output.Leaderboard.GameID)
	s.Require().Len(output.Leaderboard.Entries, 2)
	s.Equal("Bob", output.Leaderboard.Entries[0].Name)
	s.Equal(1, output.Leaderboard.Entries[0].Rank)
	s.Equal("Alice", output.Leaderboard.Entries[1].Name)
	s.Equal(2, output.Leaderboard.Entries[1].Rank)
}

func (s *GameServiceTestSuite) TestGetHistory() {
	s.mockGameRepo.EXPECT().GetGame(gomock.Any(), gomock.Any()).Return(s.expectedGame, nil)
	s.mockHistoryRepo.EXPECT().
		ListEvents(gomock.Any(), &historyRepo.ListEventsInput{
			GameID:     s.testGameID,
			PlayerName: "Bob",
		}).
		Return(&historyRepo.ListEventsOutput{
			Events: []*models.ScoreEvent{{ID: "e1", PlayerName: "Bob"}},
		}, nil)

	output, err := s.gameService.GetHistory(s.ctx, &GetHistoryInput{
		GameID:     s.testGameID,
		PlayerName: "BOB",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Events, 1)
	s.Equal("e1", output.Events[0].ID)

	s.mockGameRepo.EXPECT().GetGame(gomock.Any(), gomock.Any()).Return(s.expectedGame, nil)
	_, err = s.gameService.GetHistory(s.ctx, &GetHistoryInput{
		GameID:     s.testGameID,
		PlayerName: "Mallory",
	})
	s.Equal(ErrPlayerNotFound, err)
}

func (s *GameServiceTestSuite) TestAbandonGame() {
	s.mockGameRepo.EXPECT().
		DeleteGame(gomock.Any(), &gameRepo.DeleteGameInput{GameID: s.testGameID}).
		Return(nil)
	s.mockHistoryRepo.EXPECT().
		DeleteEvents(gomock.Any(), &historyRepo.DeleteEventsInput{GameID: s.testGameID}).
		Return(nil)

	output, err := s.gameService.AbandonGame(s.ctx, &AbandonGameInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(s.testGameID, output.GameID)

	s.mockGameRepo.EXPECT().
		DeleteGame(gomock.Any(), gomock.Any()).
		Return(gameRepo.ErrGameNotFound)

	_, err = s.gameService.AbandonGame(s.ctx, &AbandonGameInput{GameID: "missing"})
	s.Equal(ErrGameNotFound, err)
}
