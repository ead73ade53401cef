package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkoehler/spielstand/internal/models"
)

func intPtr(v int) *int { return &v }

func TestWizardRounds(t *testing.T) {
	tests := []struct {
		players int
		want    int
	}{
		{players: 3, want: 20},
		{players: 4, want: 15},
		{players: 5, want: 12},
		{players: 6, want: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WizardRounds(tt.players))
	}
}

func TestWizardValidateConfig(t *testing.T) {
	w := &Wizard{}

	cfg := models.GameConfig{}
	require.NoError(t, w.ValidateConfig(&cfg, 4))
	assert.Equal(t, 15, cfg.TotalRounds)

	assert.Error(t, w.ValidateConfig(&models.GameConfig{}, 7))
}

func TestWizardDelta(t *testing.T) {
	w := &Wizard{}

	tests := []struct {
		name   string
		bid    int
		tricks int
		want   int
	}{
		{name: "exact bid", bid: 3, tricks: 3, want: 50},
		{name: "exact zero bid", bid: 0, tricks: 0, want: 20},
		{name: "underbid by two", bid: 1, tricks: 3, want: -20},
		{name: "overbid by two", bid: 3, tricks: 1, want: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Delta(tt.bid, tt.tricks))
		})
	}
}

func TestWizardScoreContribution(t *testing.T) {
	w := &Wizard{}

	_, ok := w.ScoreContribution(&models.BidTrickPayload{Bid: intPtr(2)})
	assert.False(t, ok, "no contribution until tricks are entered")

	value, ok := w.ScoreContribution(&models.BidTrickPayload{Bid: intPtr(2), Tricks: intPtr(2)})
	require.True(t, ok)
	assert.Equal(t, 40, value)
}

func TestWizardIsRoundTerminal(t *testing.T) {
	w := &Wizard{}
	cfg := models.GameConfig{TotalRounds: 20}
	order := []string{"a", "b", "c"}

	round := models.NewRound(2, "a")
	round.SetEntry("a", &models.BidTrickPayload{Bid: intPtr(1), Tricks: intPtr(1)})
	round.SetEntry("b", &models.BidTrickPayload{Bid: intPtr(0), Tricks: intPtr(1)})
	round.SetEntry("c", &models.BidTrickPayload{Bid: intPtr(1), Tricks: intPtr(0)})

	assert.False(t, w.IsRoundTerminal(cfg, round, nil, order), "bids still open")

	round.BidsFinal = true
	assert.True(t, w.IsRoundTerminal(cfg, round, nil, order))

	// Tricks no longer summing to the round number keeps the round open
	round.SetEntry("c", &models.BidTrickPayload{Bid: intPtr(1), Tricks: intPtr(1)})
	assert.False(t, w.IsRoundTerminal(cfg, round, nil, order))
}

func TestWizardBidsComplete(t *testing.T) {
	w := &Wizard{}
	order := []string{"a", "b"}

	round := models.NewRound(1, "a")
	round.SetEntry("a", &models.BidTrickPayload{Bid: intPtr(0)})
	assert.False(t, w.BidsComplete(round, order))

	round.SetEntry("b", &models.BidTrickPayload{Bid: intPtr(1)})
	assert.True(t, w.BidsComplete(round, order))
}

func TestWizardCheckEnd(t *testing.T) {
	w := &Wizard{}
	cfg := models.GameConfig{TotalRounds: 2}
	order := []string{"a", "b"}

	r1 := models.NewRound(1, "a")
	r1.BidsFinal = true
	r1.SetEntry("a", &models.BidTrickPayload{Bid: intPtr(1), Tricks: intPtr(1)})
	r1.SetEntry("b", &models.BidTrickPayload{Bid: intPtr(0), Tricks: intPtr(0)})

	r2 := models.NewRound(2, "b")
	r2.BidsFinal = true
	r2.SetEntry("a", &models.BidTrickPayload{Bid: intPtr(0), Tricks: intPtr(1)})
	r2.SetEntry("b", &models.BidTrickPayload{Bid: intPtr(1), Tricks: intPtr(1)})

	rounds := []*models.Round{r1}
	totals := w.FoldTotals(rounds, order, cfg)
	assert.False(t, w.CheckEnd(cfg, totals, rounds, order).Finished, "rounds remaining")

	rounds = append(rounds, r2)
	totals = w.FoldTotals(rounds, order, cfg)
	result := w.CheckEnd(cfg, totals, rounds, order)
	require.True(t, result.Finished)
	// a: 30 - 10 = 20, b: 20 + 30 = 50; highest score wins
	assert.Equal(t, []string{"b", "a"}, result.Ranking)
}
