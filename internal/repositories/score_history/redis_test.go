package score_history

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) event(id, player string, offset time.Duration) *models.ScoreEvent {
	return &models.ScoreEvent{
		ID:         id,
		GameID:     "test-game-id",
		PlayerName: player,
		Type:       models.ScoreEventCommit,
		Category:   scoring.CategoryChance,
		Dice:       []int{1, 2, 3, 4, 5},
		Score:      15,
		TotalScore: 15,
		Timestamp:  s.testNow.Add(offset),
	}
}

func (s *RedisRepositoryTestSuite) TestAddAndListEvents() {
	// added out of order on purpose
	s.Require().NoError(s.repo.AddEvent(context.Background(), &AddEventInput{Event: s.event("e2", "Bob", 2*time.Second)}))
	s.Require().NoError(s.repo.AddEvent(context.Background(), &AddEventInput{Event: s.event("e1", "Alice", time.Second)}))
	s.Require().NoError(s.repo.AddEvent(context.Background(), &AddEventInput{Event: s.event("e3", "Alice", 3*time.Second)}))

	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Require().Len(output.Events, 3)
	s.Equal("e1", output.Events[0].ID)
	s.Equal("e2", output.Events[1].ID)
	s.Equal("e3", output.Events[2].ID)

	first := output.Events[0]
	s.Equal("Alice", first.PlayerName)
	s.Equal(models.ScoreEventCommit, first.Type)
	s.Equal(scoring.CategoryChance, first.Category)
	s.Equal([]int{1, 2, 3, 4, 5}, first.Dice)
	s.Equal(15, first.Score)
	s.True(s.testNow.Add(time.Second).Equal(first.Timestamp))
}

func (s *RedisRepositoryTestSuite) TestListEvents_ByPlayer() {
	s.Require().NoError(s.repo.AddEvent(context.Background(), &AddEventInput{Event: s.event("e1", "Alice", time.Second)}))
	s.Require().NoError(s.repo.AddEvent(context.Background(), &AddEventInput{Event: s.event("e2", "Bob", 2*time.Second)}))

	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{
		GameID:     "test-game-id",
		PlayerName: "Bob",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Events, 1)
	s.Equal("e2", output.Events[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListEvents_Empty() {
	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{GameID: "nothing-here"})
	s.Require().NoError(err)
	s.NotNil(output.Events)
	s.Len(output.Events, 0)
}

func (s *RedisRepositoryTestSuite) TestAddEvent_Validation() {
	s.Error(s.repo.AddEvent(context.Background(), nil))
	s.Error(s.repo.AddEvent(context.Background(), &AddEventInput{}))

	noID := s.event("", "Alice", 0)
	s.Error(s.repo.AddEvent(context.Background(), &AddEventInput{Event: noID}))

	noTime := s.event("e1", "Alice", 0)
	noTime.Timestamp = time.Time{}
	s.Error(s.repo.AddEvent(context.Background(), &AddEventInput{Event: noTime}))
}

func (s *RedisRepositoryTestSuite) TestDeleteEvents() {
	s.Require().NoError(s.repo.AddEvent(context.Background(), &AddEventInput{Event: s.event("e1", "Alice", time.Second)}))
	s.Require().NoError(s.repo.AddEvent(context.Background(), &AddEventInput{Event: s.event("e2", "Bob", 2*time.Second)}))

	s.Require().NoError(s.repo.DeleteEvents(context.Background(), &DeleteEventsInput{GameID: "test-game-id"}))

	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Len(output.Events, 0)

	s.False(s.mr.Exists(eventKey("e1")))
	s.False(s.mr.Exists(playerEventsKey("test-game-id", "Bob")))

	// deleting an empty history is fine
	s.NoError(s.repo.DeleteEvents(context.Background(), &DeleteEventsInput{GameID: "test-game-id"}))
}
