package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkoehler/spielstand/internal/models"
)

func TestFlip7ValidatePoints(t *testing.T) {
	f := &Flip7{}

	assert.NoError(t, f.ValidatePoints(0))
	assert.NoError(t, f.ValidatePoints(35))
	assert.Error(t, f.ValidatePoints(-1))
}

func TestFlip7CheckEnd(t *testing.T) {
	f := &Flip7{}
	cfg := models.GameConfig{PointsThreshold: 200}
	order := []string{"a", "b", "c"}

	entry := func(number int, dealer string, points map[string]int) *models.Round {
		round := models.NewRound(number, dealer)
		for id, p := range points {
			round.SetEntry(id, &models.PointsPayload{Points: p})
		}
		return round
	}

	t.Run("single crossing ends the game", func(t *testing.T) {
		rounds := []*models.Round{
			entry(1, "a", map[string]int{"a": 90, "b": 120, "c": 60}),
			entry(2, "b", map[string]int{"a": 50, "b": 85, "c": 70}),
		}

		totals := f.FoldTotals(rounds, order, cfg)
		result := f.CheckEnd(cfg, totals, rounds, order)
		require.True(t, result.Finished)
		// c holds the lowest total still under the threshold
		assert.Equal(t, []string{"c", "a", "b"}, result.Ranking)
	})

	t.Run("two crossings in one round leave the game running", func(t *testing.T) {
		rounds := []*models.Round{
			entry(1, "a", map[string]int{"a": 210, "b": 205, "c": 60}),
		}

		totals := f.FoldTotals(rounds, order, cfg)
		assert.False(t, f.CheckEnd(cfg, totals, rounds, order).Finished)
	})

	t.Run("nobody crossed", func(t *testing.T) {
		rounds := []*models.Round{
			entry(1, "a", map[string]int{"a": 10, "b": 20, "c": 30}),
		}

		totals := f.FoldTotals(rounds, order, cfg)
		assert.False(t, f.CheckEnd(cfg, totals, rounds, order).Finished)
	})
}
