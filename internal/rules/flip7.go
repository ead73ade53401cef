package rules

import (
	"fmt"

	"github.com/fkoehler/spielstand/internal/models"
)

// DefaultFlip7Threshold is the Flip 7 target score
const DefaultFlip7Threshold = 200

func init() {
	Register(&Flip7{})
}

// Flip7 implements the Flip 7 race: integer entries per round, dealer
// advancing every round. The game flags finished the moment exactly one
// player's total reaches the threshold; crossing it exits contention,
// so the winner is recomputed as the lowest total still below it.
//
// Two or more players crossing the threshold in the same round leaves
// the trigger unsatisfied and the game running; the upstream rule set
// leaves that case undefined.
type Flip7 struct{}

// Kind returns the game kind
func (f *Flip7) Kind() models.GameKind { return models.GameKindFlip7 }

// ValidateConfig fills the default threshold and rejects non-positive ones
func (f *Flip7) ValidateConfig(cfg *models.GameConfig, playerCount int) error {
	if cfg.PointsThreshold == 0 {
		cfg.PointsThreshold = DefaultFlip7Threshold
	}
	if cfg.PointsThreshold < 1 {
		return fmt.Errorf("points threshold must be positive, got %d", cfg.PointsThreshold)
	}
	return nil
}

// ValidatePoints rejects negative round scores; Flip 7 rounds score
// zero or more
func (f *Flip7) ValidatePoints(points int) error {
	if points < 0 {
		return fmt.Errorf("flip7 round score cannot be negative, got %d", points)
	}
	return nil
}

// ScoreContribution returns the round's points
func (f *Flip7) ScoreContribution(payload models.ScorePayload) (int, bool) {
	pp, ok := payload.(*models.PointsPayload)
	if !ok {
		return 0, false
	}
	return pp.Points, true
}

// FoldTotals recomputes point totals per player over all rounds
func (f *Flip7) FoldTotals(rounds []*models.Round, order []string, cfg models.GameConfig) map[string]int {
	return sumTotals(rounds, order, f.ScoreContribution)
}

// FinishedPlayers returns the empty set; everyone keeps playing until
// the trigger fires
func (f *Flip7) FinishedPlayers(totals map[string]int, cfg models.GameConfig) map[string]bool {
	return map[string]bool{}
}

// IsRoundTerminal reports whether every player has an entry
func (f *Flip7) IsRoundTerminal(cfg models.GameConfig, round *models.Round, totals map[string]int, order []string) bool {
	for _, id := range order {
		if round.Entry(id) == nil {
			return false
		}
	}
	return true
}

// CheckEnd fires when exactly one player has crossed the threshold.
// Ranking is the full ascending order, which places the lowest total
// still in contention first and the crossed player last.
func (f *Flip7) CheckEnd(cfg models.GameConfig, totals map[string]int, rounds []*models.Round, order []string) EndResult {
	crossed := 0
	for _, id := range order {
		if totals[id] >= cfg.PointsThreshold {
			crossed++
		}
	}
	if crossed != 1 {
		return EndResult{}
	}

	return EndResult{Finished: true, Ranking: rankAscending(totals, order)}
}
