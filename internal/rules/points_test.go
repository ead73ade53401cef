package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkoehler/spielstand/internal/models"
)

func TestPointsValidateConfig(t *testing.T) {
	tests := []struct {
		name string
		kind models.GameKind
		want int
	}{
		{name: "skyjo default", kind: models.GameKindSkyjo, want: 100},
		{name: "romme default", kind: models.GameKindRomme, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ForKind(tt.kind)
			require.NoError(t, err)

			cfg := models.GameConfig{}
			require.NoError(t, v.ValidateConfig(&cfg, 3))
			assert.Equal(t, tt.want, cfg.PointsThreshold)
		})
	}

	t.Run("negative threshold rejected", func(t *testing.T) {
		v, err := ForKind(models.GameKindSkyjo)
		require.NoError(t, err)

		cfg := models.GameConfig{PointsThreshold: -1}
		assert.Error(t, v.ValidateConfig(&cfg, 3))
	})
}

func TestPointsCheckEnd(t *testing.T) {
	v, err := ForKind(models.GameKindSkyjo)
	require.NoError(t, err)

	cfg := models.GameConfig{PointsThreshold: 100}
	order := []string{"a", "b", "c", "d"}

	round := models.NewRound(1, "a")
	round.SetEntry("a", &models.PointsPayload{Points: 40})
	round.SetEntry("b", &models.PointsPayload{Points: 55})
	round.SetEntry("c", &models.PointsPayload{Points: 99})
	round.SetEntry("d", &models.PointsPayload{Points: 80})
	rounds := []*models.Round{round}

	totals := v.FoldTotals(rounds, order, cfg)
	assert.False(t, v.CheckEnd(cfg, totals, rounds, order).Finished)

	r2 := models.NewRound(2, "b")
	r2.SetEntry("a", &models.PointsPayload{Points: 0})
	r2.SetEntry("b", &models.PointsPayload{Points: 0})
	r2.SetEntry("c", &models.PointsPayload{Points: 2})
	r2.SetEntry("d", &models.PointsPayload{Points: 0})
	rounds = append(rounds, r2)

	totals = v.FoldTotals(rounds, order, cfg)
	result := v.CheckEnd(cfg, totals, rounds, order)
	require.True(t, result.Finished)
	// Lowest total wins; c crossed and comes last
	assert.Equal(t, []string{"a", "b", "d", "c"}, result.Ranking)
}

// Folding the whole ledger must agree with accumulating round by round,
// so a running total kept by a caller can never drift from the refold.
func TestFoldTotalsMatchesRunningAccumulation(t *testing.T) {
	v, err := ForKind(models.GameKindSkyjo)
	require.NoError(t, err)

	cfg := models.GameConfig{PointsThreshold: 100}
	order := []string{"a", "b", "c"}
	scores := [][]int{
		{12, -5, 30},
		{0, 22, 7},
		{45, 3, -10},
	}

	running := map[string]int{"a": 0, "b": 0, "c": 0}
	var rounds []*models.Round
	for i, row := range scores {
		round := models.NewRound(i+1, order[i%len(order)])
		for j, id := range order {
			round.SetEntry(id, &models.PointsPayload{Points: row[j]})
			value, ok := v.ScoreContribution(round.Entry(id))
			require.True(t, ok)
			running[id] += value
		}
		rounds = append(rounds, round)

		assert.Equal(t, running, v.FoldTotals(rounds, order, cfg))
	}
}

func TestPointsNegativeRoundsAllowed(t *testing.T) {
	v, err := ForKind(models.GameKindRomme)
	require.NoError(t, err)

	round := models.NewRound(1, "a")
	round.SetEntry("a", &models.PointsPayload{Points: -30})
	round.SetEntry("b", &models.PointsPayload{Points: 120})

	totals := v.FoldTotals([]*models.Round{round}, []string{"a", "b"}, models.GameConfig{PointsThreshold: 500})
	assert.Equal(t, -30, totals["a"])
	assert.Equal(t, 120, totals["b"])
}
