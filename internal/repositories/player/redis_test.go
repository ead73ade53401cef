package player

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/fkoehler/spielstand/internal/models"
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

	s.testNow = time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	player := &models.Player{
		ID:        "test-player-id",
		Name:      "Mara",
		CreatedAt: s.testNow,
	}

	err := s.repo.SavePlayer(context.Background(), &SavePlayerInput{
		Player: player,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
	s.True(player.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestGetPlayerNotFound() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "missing",
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestSavePlayerRename() {
	ctx := context.Background()

	player := &models.Player{ID: "test-player-id", Name: "Mara", CreatedAt: s.testNow}
	s.Require().NoError(s.repo.SavePlayer(ctx, &SavePlayerInput{Player: player}))

	player.Name = "Marta"
	s.Require().NoError(s.repo.SavePlayer(ctx, &SavePlayerInput{Player: player}))

	retrieved, err := s.repo.GetPlayer(ctx, &GetPlayerInput{PlayerID: "test-player-id"})
	s.Require().NoError(err)
	s.Equal("Marta", retrieved.Name)

	output, err := s.repo.ListPlayers(ctx, &ListPlayersInput{})
	s.Require().NoError(err)
	s.Len(output.Players, 1)
}

func (s *RedisRepositoryTestSuite) TestListPlayersSortedByName() {
	ctx := context.Background()

	for _, p := range []*models.Player{
		{ID: "p1", Name: "Zoe", CreatedAt: s.testNow},
		{ID: "p2", Name: "Anna", CreatedAt: s.testNow},
		{ID: "p3", Name: "Kim", CreatedAt: s.testNow},
	} {
		s.Require().NoError(s.repo.SavePlayer(ctx, &SavePlayerInput{Player: p}))
	}

	output, err := s.repo.ListPlayers(ctx, &ListPlayersInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Players, 3)

	names := []string{output.Players[0].Name, output.Players[1].Name, output.Players[2].Name}
	s.Equal([]string{"Anna", "Kim", "Zoe"}, names)
}
