package preset

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

func (s *RedisRepositoryTestSuite) TestSaveAndGetPreset() {
	preset := &models.Preset{
		Name:      "friday-round",
		PlayerIDs: []string{"p1", "p2", "p3"},
		CreatedAt: s.testNow,
	}

	err := s.repo.SavePreset(context.Background(), &SavePresetInput{
		Preset: preset,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPreset(context.Background(), &GetPresetInput{
		Name: "friday-round",
	})
	s.Require().NoError(err)
	s.Equal(preset.Name, retrieved.Name)
	s.Equal(preset.PlayerIDs, retrieved.PlayerIDs)
}

func (s *RedisRepositoryTestSuite) TestGetPresetNotFound() {
	_, err := s.repo.GetPreset(context.Background(), &GetPresetInput{
		Name: "missing",
	})
	s.ErrorIs(err, ErrPresetNotFound)
}

func (s *RedisRepositoryTestSuite) TestSavePresetOverwrite() {
	ctx := context.Background()

	preset := &models.Preset{Name: "friday-round", PlayerIDs: []string{"p1", "p2"}, CreatedAt: s.testNow}
	s.Require().NoError(s.repo.SavePreset(ctx, &SavePresetInput{Preset: preset}))

	preset.PlayerIDs = []string{"p1", "p2", "p3"}
	s.Require().NoError(s.repo.SavePreset(ctx, &SavePresetInput{Preset: preset}))

	retrieved, err := s.repo.GetPreset(ctx, &GetPresetInput{Name: "friday-round"})
	s.Require().NoError(err)
	s.Equal([]string{"p1", "p2", "p3"}, retrieved.PlayerIDs)
}

func (s *RedisRepositoryTestSuite) TestListPresetsSortedByName() {
	ctx := context.Background()

	for _, name := range []string{"weekend", "family", "office"} {
		s.Require().NoError(s.repo.SavePreset(ctx, &SavePresetInput{
			Preset: &models.Preset{Name: name, PlayerIDs: []string{"p1", "p2"}, CreatedAt: s.testNow},
		}))
	}

	output, err := s.repo.ListPresets(ctx, &ListPresetsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Presets, 3)

	names := []string{output.Presets[0].Name, output.Presets[1].Name, output.Presets[2].Name}
	s.Equal([]string{"family", "office", "weekend"}, names)
}

func (s *RedisRepositoryTestSuite) TestDeletePreset() {
	ctx := context.Background()

	preset := &models.Preset{Name: "friday-round", PlayerIDs: []string{"p1", "p2"}, CreatedAt: s.testNow}
	s.Require().NoError(s.repo.SavePreset(ctx, &SavePresetInput{Preset: preset}))

	s.Require().NoError(s.repo.DeletePreset(ctx, &DeletePresetInput{Name: "friday-round"}))

	_, err := s.repo.GetPreset(ctx, &GetPresetInput{Name: "friday-round"})
	s.ErrorIs(err, ErrPresetNotFound)

	output, err := s.repo.ListPresets(ctx, &ListPresetsInput{})
	s.Require().NoError(err)
	s.Empty(output.Presets)
}
