package rules

import (
	"fmt"

	"github.com/fkoehler/spielstand/internal/models"
)

const (
	// DefaultSkyjoThreshold ends a Skyjo game at 100 points
	DefaultSkyjoThreshold = 100

	// DefaultRommeThreshold ends a Rommé game at 500 points
	DefaultRommeThreshold = 500
)

func init() {
	Register(&Points{kind: models.GameKindSkyjo, defaultThreshold: DefaultSkyjoThreshold})
	Register(&Points{kind: models.GameKindRomme, defaultThreshold: DefaultRommeThreshold})
}

// Points implements the upward-accumulating point games (Skyjo, Rommé):
// one integer entry per player per round, game over once any running
// total reaches the threshold, lowest total wins. The two games differ
// only in their default threshold.
type Points struct {
	kind             models.GameKind
	defaultThreshold int
}

// Kind returns the game kind
func (p *Points) Kind() models.GameKind { return p.kind }

// ValidateConfig fills the default threshold and rejects non-positive ones
func (p *Points) ValidateConfig(cfg *models.GameConfig, playerCount int) error {
	if cfg.PointsThreshold == 0 {
		cfg.PointsThreshold = p.defaultThreshold
	}
	if cfg.PointsThreshold < 1 {
		return fmt.Errorf("points threshold must be positive, got %d", cfg.PointsThreshold)
	}
	return nil
}

// ScoreContribution returns the round's points
func (p *Points) ScoreContribution(payload models.ScorePayload) (int, bool) {
	pp, ok := payload.(*models.PointsPayload)
	if !ok {
		return 0, false
	}
	return pp.Points, true
}

// FoldTotals recomputes point totals per player over all rounds
func (p *Points) FoldTotals(rounds []*models.Round, order []string, cfg models.GameConfig) map[string]int {
	return sumTotals(rounds, order, p.ScoreContribution)
}

// FinishedPlayers returns the empty set; nobody drops out mid-game
func (p *Points) FinishedPlayers(totals map[string]int, cfg models.GameConfig) map[string]bool {
	return map[string]bool{}
}

// IsRoundTerminal reports whether every player has an entry
func (p *Points) IsRoundTerminal(cfg models.GameConfig, round *models.Round, totals map[string]int, order []string) bool {
	for _, id := range order {
		if round.Entry(id) == nil {
			return false
		}
	}
	return true
}

// CheckEnd finishes the game once any total reaches the threshold.
// Ranking is the full total-ascending order, lowest (winner) first.
func (p *Points) CheckEnd(cfg models.GameConfig, totals map[string]int, rounds []*models.Round, order []string) EndResult {
	crossed := false
	for _, id := range order {
		if totals[id] >= cfg.PointsThreshold {
			crossed = true
			break
		}
	}
	if !crossed {
		return EndResult{}
	}

	return EndResult{Finished: true, Ranking: rankAscending(totals, order)}
}
