package rules

import (
	"errors"
	"fmt"

	"github.com/fkoehler/spielstand/internal/models"
)

const (
	// DefaultStartingScore is the classic 301 countdown
	DefaultStartingScore = 301

	// MaxThrowsPerTurn is the number of darts per turn
	MaxThrowsPerTurn = 3
)

// ErrInvalidThrow is returned for a throw outside the board's values
var ErrInvalidThrow = errors.New("invalid throw")

func init() {
	Register(&Dart{})
}

// Dart implements the countdown dart game. Each turn accumulates up to
// three throws; a turn whose running sum would take the player below
// zero busts the whole turn (all throws flagged, contributing zero).
// Hitting the remaining score exactly finishes the player. Finish order
// is the ranking; the last player left above zero is the loser.
type Dart struct{}

// Kind returns the game kind
func (d *Dart) Kind() models.GameKind { return models.GameKindDart }

// ValidateConfig fills the default starting score and rejects
// non-positive ones
func (d *Dart) ValidateConfig(cfg *models.GameConfig, playerCount int) error {
	if cfg.StartingScore == 0 {
		cfg.StartingScore = DefaultStartingScore
	}
	if cfg.StartingScore < 2 {
		return fmt.Errorf("starting score must be at least 2, got %d", cfg.StartingScore)
	}
	return nil
}

// ValidateThrow rejects throws that cannot exist on a dart board
func (d *Dart) ValidateThrow(t models.DartThrow) error {
	if t.Multiplier < 1 || t.Multiplier > 3 {
		return fmt.Errorf("%w: multiplier must be 1-3, got %d", ErrInvalidThrow, t.Multiplier)
	}
	if t.Face == 25 {
		return nil
	}
	if t.Face < 1 || t.Face > 20 {
		return fmt.Errorf("%w: face must be 1-20 or 25, got %d", ErrInvalidThrow, t.Face)
	}
	return nil
}

// ScoreContribution returns the turn's sum, or zero for a busted turn
func (d *Dart) ScoreContribution(p models.ScorePayload) (int, bool) {
	dp, ok := p.(*models.DartPayload)
	if !ok {
		return 0, false
	}
	if dp.Bust {
		return 0, true
	}

	sum := 0
	for _, t := range dp.Throws {
		sum += t.Value()
	}
	return sum, true
}

// FoldTotals recomputes scored points per player over all rounds
func (d *Dart) FoldTotals(rounds []*models.Round, order []string, cfg models.GameConfig) map[string]int {
	return sumTotals(rounds, order, d.ScoreContribution)
}

// FinishedPlayers returns the players whose remaining score is zero
func (d *Dart) FinishedPlayers(totals map[string]int, cfg models.GameConfig) map[string]bool {
	finished := make(map[string]bool)
	for id, total := range totals {
		if total == cfg.StartingScore {
			finished[id] = true
		}
	}
	return finished
}

// ApplyThrow appends a throw to the player's turn and evaluates it.
// remainingBefore is the player's remaining score at the start of the
// turn. A sum exceeding it busts the turn; hitting it exactly finishes
// the player. Either passes the turn immediately.
func (d *Dart) ApplyThrow(p *models.DartPayload, t models.DartThrow, remainingBefore int) (turnOver, playerFinished bool) {
	p.Throws = append(p.Throws, t)

	sum := 0
	for _, throw := range p.Throws {
		sum += throw.Value()
	}

	if sum > remainingBefore {
		p.Bust = true
		return true, false
	}
	if sum == remainingBefore {
		return true, true
	}
	return len(p.Throws) >= MaxThrowsPerTurn, false
}

// IsRoundTerminal reports whether every player still in the game has
// completed their turn: busted, thrown three darts, or finished.
func (d *Dart) IsRoundTerminal(cfg models.GameConfig, round *models.Round, totals map[string]int, order []string) bool {
	for _, id := range order {
		payload := round.Entry(id)
		if payload == nil {
			// No entry this round: fine if the player finished in an
			// earlier round, otherwise the turn is still pending.
			if totals[id] == cfg.StartingScore {
				continue
			}
			return false
		}

		dp, ok := payload.(*models.DartPayload)
		if !ok {
			return false
		}
		if dp.Bust || len(dp.Throws) >= MaxThrowsPerTurn || totals[id] == cfg.StartingScore {
			continue
		}
		return false
	}
	return true
}

// CheckEnd finishes the game once all but one player have checked out.
// Ranking is the finish order with the remaining player last.
func (d *Dart) CheckEnd(cfg models.GameConfig, totals map[string]int, rounds []*models.Round, order []string) EndResult {
	if len(order) < 2 {
		return EndResult{}
	}

	finished := d.FinishedPlayers(totals, cfg)
	if len(finished) < len(order)-1 {
		return EndResult{}
	}

	ranking := d.finishOrder(rounds, order, cfg)
	for _, id := range order {
		if !finished[id] {
			ranking = append(ranking, id)
		}
	}

	return EndResult{Finished: true, Ranking: ranking}
}

// finishOrder replays the ledger and records players in the order they
// reached exactly zero. Within a round, turns run in seating order
// starting from the round's opening player.
func (d *Dart) finishOrder(rounds []*models.Round, order []string, cfg models.GameConfig) []string {
	running := make(map[string]int, len(order))
	done := make(map[string]bool, len(order))
	var result []string

	for _, round := range rounds {
		start := 0
		for i, id := range order {
			if id == round.DealerID {
				start = i
				break
			}
		}

		for i := 0; i < len(order); i++ {
			id := order[(start+i)%len(order)]
			if done[id] {
				continue
			}
			payload := round.Entry(id)
			if payload == nil {
				continue
			}
			value, _ := d.ScoreContribution(payload)
			running[id] += value
			if running[id] == cfg.StartingScore {
				done[id] = true
				result = append(result, id)
			}
		}
	}

	return result
}
