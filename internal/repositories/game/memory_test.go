package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	testNow time.Time
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) newGame(id, channelID string) *models.Game {
	return &models.Game{
		ID:        id,
		ChannelID: channelID,
		Status:    models.GameStatusActive,
		Players:   []*models.Player{models.NewPlayer("Alice")},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *MemoryRepositoryTestSuite) TestSaveAndGetReturnCopies() {
	game := s.newGame("g1", "c1")
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game}))

	// mutating the caller's game after save does not reach the store
	game.Players[0].Scorecard.Scores[scoring.CategoryOnes] = 4

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "g1"})
	s.Require().NoError(err)
	s.Empty(retrieved.Players[0].Scorecard.Scores)

	retrieved.Players[0].Scorecard.Scores[scoring.CategoryTwos] = 4
	again, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "g1"})
	s.Require().NoError(err)
	s.Empty(again.Players[0].Scorecard.Scores)

	byChannel, err := s.repo.GetGameByChannel(context.Background(), &GetGameByChannelInput{ChannelID: "c1"})
	s.Require().NoError(err)
	s.Equal("g1", byChannel.ID)
}

func (s *MemoryRepositoryTestSuite) TestNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "nope"})
	s.Equal(ErrGameNotFound, err)

	_, err = s.repo.GetGameByChannel(context.Background(), &GetGameByChannelInput{ChannelID: "nope"})
	s.Equal(ErrGameNotFound, err)

	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{GameID: "nope"})
	s.Equal(ErrGameNotFound, err)

	_, err = s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "nope",
		Update: func(g *models.Game) error { return nil },
	})
	s.Equal(ErrGameNotFound, err)
}

func (s *MemoryRepositoryTestSuite) TestActiveGamesAndDelete() {
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: s.newGame("g1", "c1")}))
	done := s.newGame("g2", "")
	done.Status = models.GameStatusCompleted
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: done}))

	result, err := s.repo.GetActiveGames(context.Background(), &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(result.Games, 1)
	s.Equal("g1", result.Games[0].ID)

	s.Require().NoError(s.repo.DeleteGame(context.Background(), &DeleteGameInput{GameID: "g1"}))
	_, err = s.repo.GetGameByChannel(context.Background(), &GetGameByChannelInput{ChannelID: "c1"})
	s.Equal(ErrGameNotFound, err)
}

func (s *MemoryRepositoryTestSuite) TestUpdateGame_ErrorDiscardsChanges() {
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: s.newGame("g1", "")}))

	boom := errors.New("boom")
	_, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "g1",
		Update: func(g *models.Game) error {
			g.Status = models.GameStatusCompleted
			return boom
		},
	})
	s.True(errors.Is(err, boom))

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "g1"})
	s.Require().NoError(err)
	s.Equal(models.GameStatusActive, retrieved.Status)
}

func (s *MemoryRepositoryTestSuite) TestUpdateGame_ConcurrentUpdatesAreSerialized() {
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: s.newGame("g1", "")}))

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
				GameID: "g1",
				Update: func(g *models.Game) error {
					g.Players[0].Scorecard.BonusYahtzees++
					return nil
				},
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "g1"})
	s.Require().NoError(err)
	s.Equal(writers, retrieved.Players[0].Scorecard.BonusYahtzees)
}

func (s *MemoryRepositoryTestSuite) TestSaveGame_ChannelBinding() {
	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: s.newGame("g1", "c1")}))

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: s.newGame("g2", "c1")})
	s.Equal(ErrChannelInUse, err)

	_, err = s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "g1",
		Update: func(g *models.Game) error {
			g.Status = models.GameStatusCompleted
			return nil
		},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.SaveGame(context.Background(), &SaveGameInput{Game: s.newGame("g3", "c1")}))
	byChannel, err := s.repo.GetGameByChannel(context.Background(), &GetGameByChannelInput{ChannelID: "c1"})
	s.Require().NoError(err)
	s.Equal("g3", byChannel.ID)
}

func (s *MemoryRepositoryTestSuite) TestSaveGame_RacingSavesBindOneGame() {
	const racers = 20
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		saved int
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: s.newGame(id, "c1")}); err == nil {
				mu.Lock()
				saved++
				mu.Unlock()
			}
		}(fmt.Sprintf("g%d", i))
	}
	wg.Wait()

	s.Equal(1, saved)
}
