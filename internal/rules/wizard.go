package rules

import (
	"fmt"

	"github.com/fkoehler/spielstand/internal/models"
)

// Wizard scoring constants
const (
	// WizardExactBonus is awarded for matching the bid exactly
	WizardExactBonus = 20

	// WizardPerTrick is the per-trick reward (and per-miss penalty)
	WizardPerTrick = 10

	// MaxWizardPlayers caps the table; the deck does not stretch further
	MaxWizardPlayers = 6
)

func init() {
	Register(&Wizard{})
}

// Wizard implements the bid/trick game: each round collects one bid per
// player, bids are frozen, then tricks won are entered under the
// constraint that they sum to the round number. An exact bid scores
// +20+10*bid, a miss scores -10 per trick of difference. The round
// count is fixed by the player count at session start.
type Wizard struct{}

// Kind returns the game kind
func (w *Wizard) Kind() models.GameKind { return models.GameKindWizard }

// ValidateConfig derives the fixed round count from the player count
func (w *Wizard) ValidateConfig(cfg *models.GameConfig, playerCount int) error {
	if playerCount > MaxWizardPlayers {
		return fmt.Errorf("wizard supports at most %d players, got %d", MaxWizardPlayers, playerCount)
	}
	cfg.TotalRounds = WizardRounds(playerCount)
	return nil
}

// WizardRounds returns the number of rounds played for a player count:
// the 60-card deck dealt out completely on the last round.
func WizardRounds(playerCount int) int {
	switch {
	case playerCount <= 3:
		return 20
	case playerCount == 4:
		return 15
	case playerCount == 5:
		return 12
	default:
		return 10
	}
}

// ValidateBid rejects negative bids and bids above the round's tricks
func (w *Wizard) ValidateBid(bid, roundNumber int) error {
	if bid < 0 {
		return fmt.Errorf("bid cannot be negative, got %d", bid)
	}
	if bid > roundNumber {
		return fmt.Errorf("bid %d exceeds the %d tricks in the round", bid, roundNumber)
	}
	return nil
}

// ValidateTricks rejects negative or impossible trick counts
func (w *Wizard) ValidateTricks(tricks, roundNumber int) error {
	if tricks < 0 {
		return fmt.Errorf("tricks won cannot be negative, got %d", tricks)
	}
	if tricks > roundNumber {
		return fmt.Errorf("tricks won %d exceeds the %d tricks in the round", tricks, roundNumber)
	}
	return nil
}

// Delta computes one player's score change for a round
func (w *Wizard) Delta(bid, tricks int) int {
	if bid == tricks {
		return WizardExactBonus + WizardPerTrick*bid
	}
	diff := bid - tricks
	if diff < 0 {
		diff = -diff
	}
	return -WizardPerTrick * diff
}

// ScoreContribution returns the round delta once both bid and tricks
// are entered
func (w *Wizard) ScoreContribution(payload models.ScorePayload) (int, bool) {
	bp, ok := payload.(*models.BidTrickPayload)
	if !ok || bp.Bid == nil || bp.Tricks == nil {
		return 0, false
	}
	return w.Delta(*bp.Bid, *bp.Tricks), true
}

// FoldTotals recomputes score totals per player over all rounds
func (w *Wizard) FoldTotals(rounds []*models.Round, order []string, cfg models.GameConfig) map[string]int {
	return sumTotals(rounds, order, w.ScoreContribution)
}

// FinishedPlayers returns the empty set; every player plays every round
func (w *Wizard) FinishedPlayers(totals map[string]int, cfg models.GameConfig) map[string]bool {
	return map[string]bool{}
}

// IsRoundTerminal reports whether bidding is closed, every player has a
// trick count and the counts add up to the round number
func (w *Wizard) IsRoundTerminal(cfg models.GameConfig, round *models.Round, totals map[string]int, order []string) bool {
	if !round.BidsFinal {
		return false
	}

	sum := 0
	for _, id := range order {
		bp, ok := round.Entry(id).(*models.BidTrickPayload)
		if !ok || bp.Tricks == nil {
			return false
		}
		sum += *bp.Tricks
	}
	return sum == round.Number
}

// BidsComplete reports whether every player has entered a bid
func (w *Wizard) BidsComplete(round *models.Round, order []string) bool {
	for _, id := range order {
		bp, ok := round.Entry(id).(*models.BidTrickPayload)
		if !ok || bp.Bid == nil {
			return false
		}
	}
	return true
}

// CheckEnd finishes the game after the fixed number of rounds. Ranking
// is total-descending; the highest score wins at Wizard.
func (w *Wizard) CheckEnd(cfg models.GameConfig, totals map[string]int, rounds []*models.Round, order []string) EndResult {
	if cfg.TotalRounds < 1 || len(rounds) < cfg.TotalRounds {
		return EndResult{}
	}

	last := rounds[len(rounds)-1]
	if !w.IsRoundTerminal(cfg, last, totals, order) {
		return EndResult{}
	}

	return EndResult{Finished: true, Ranking: rankDescending(totals, order)}
}
