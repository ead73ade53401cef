package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkoehler/spielstand/internal/models"
)

func TestDartValidateThrow(t *testing.T) {
	d := &Dart{}

	tests := []struct {
		name    string
		throw   models.DartThrow
		wantErr bool
	}{
		{name: "single 20", throw: models.DartThrow{Face: 20, Multiplier: 1}},
		{name: "triple 20", throw: models.DartThrow{Face: 20, Multiplier: 3}},
		{name: "bullseye", throw: models.DartThrow{Face: 25, Multiplier: 2}},
		{name: "face zero", throw: models.DartThrow{Face: 0, Multiplier: 1}, wantErr: true},
		{name: "face 21", throw: models.DartThrow{Face: 21, Multiplier: 1}, wantErr: true},
		{name: "multiplier zero", throw: models.DartThrow{Face: 20, Multiplier: 0}, wantErr: true},
		{name: "multiplier four", throw: models.DartThrow{Face: 20, Multiplier: 4}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := d.ValidateThrow(tt.throw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidThrow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDartApplyThrow(t *testing.T) {
	d := &Dart{}

	t.Run("bust flags the whole turn", func(t *testing.T) {
		p := &models.DartPayload{}

		turnOver, finished := d.ApplyThrow(p, models.DartThrow{Face: 20, Multiplier: 1}, 40)
		require.False(t, turnOver)
		require.False(t, finished)

		turnOver, finished = d.ApplyThrow(p, models.DartThrow{Face: 20, Multiplier: 2}, 40)
		assert.True(t, turnOver)
		assert.False(t, finished)
		assert.True(t, p.Bust)
		assert.Len(t, p.Throws, 2)

		value, ok := d.ScoreContribution(p)
		require.True(t, ok)
		assert.Zero(t, value)
	})

	t.Run("exact zero finishes the player", func(t *testing.T) {
		p := &models.DartPayload{}

		turnOver, finished := d.ApplyThrow(p, models.DartThrow{Face: 20, Multiplier: 2}, 40)
		assert.True(t, turnOver)
		assert.True(t, finished)
		assert.False(t, p.Bust)
	})

	t.Run("third throw ends the turn", func(t *testing.T) {
		p := &models.DartPayload{}

		for i := 0; i < 2; i++ {
			turnOver, _ := d.ApplyThrow(p, models.DartThrow{Face: 1, Multiplier: 1}, 301)
			require.False(t, turnOver)
		}
		turnOver, finished := d.ApplyThrow(p, models.DartThrow{Face: 1, Multiplier: 1}, 301)
		assert.True(t, turnOver)
		assert.False(t, finished)

		value, ok := d.ScoreContribution(p)
		require.True(t, ok)
		assert.Equal(t, 3, value)
	})
}

func TestDartIsRoundTerminal(t *testing.T) {
	d := &Dart{}
	cfg := models.GameConfig{StartingScore: 301}
	order := []string{"a", "b"}

	round := models.NewRound(1, "a")
	totals := map[string]int{"a": 0, "b": 0}
	assert.False(t, d.IsRoundTerminal(cfg, round, totals, order))

	round.SetEntry("a", &models.DartPayload{Throws: []models.DartThrow{
		{Face: 20, Multiplier: 3}, {Face: 20, Multiplier: 3}, {Face: 20, Multiplier: 3},
	}})
	assert.False(t, d.IsRoundTerminal(cfg, round, totals, order))

	round.SetEntry("b", &models.DartPayload{Bust: true})
	assert.True(t, d.IsRoundTerminal(cfg, round, totals, order))
}

func TestDartCheckEnd(t *testing.T) {
	d := &Dart{}
	cfg := models.GameConfig{StartingScore: 40}
	order := []string{"a", "b", "c"}

	turn := func(value int) *models.DartPayload {
		return &models.DartPayload{Throws: []models.DartThrow{{Face: value, Multiplier: 1}}}
	}

	r1 := models.NewRound(1, "a")
	r1.SetEntry("a", turn(20))
	r1.SetEntry("b", turn(10))
	r1.SetEntry("c", turn(15))

	r2 := models.NewRound(2, "b")
	r2.SetEntry("a", turn(20)) // a checks out at 40
	r2.SetEntry("b", turn(10))
	r2.SetEntry("c", turn(15))

	rounds := []*models.Round{r1, r2}
	totals := d.FoldTotals(rounds, order, cfg)
	assert.False(t, d.CheckEnd(cfg, totals, rounds, order).Finished)

	r3 := models.NewRound(3, "b")
	r3.SetEntry("b", turn(20)) // b checks out at 40
	r3.SetEntry("c", turn(5))
	rounds = append(rounds, r3)

	totals = d.FoldTotals(rounds, order, cfg)
	result := d.CheckEnd(cfg, totals, rounds, order)
	require.True(t, result.Finished)
	assert.Equal(t, []string{"a", "b", "c"}, result.Ranking)
}
