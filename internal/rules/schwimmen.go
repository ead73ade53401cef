package rules

import (
	"fmt"

	"github.com/fkoehler/spielstand/internal/models"
)

// DefaultStartingLives is the classic three lives plus "swimming"
const DefaultStartingLives = 4

func init() {
	Register(&Schwimmen{})
}

// Schwimmen implements the life-elimination circle game: every player
// starts with a fixed life count, each round exactly one player loses a
// life, and a player at zero lives is out. The last player holding
// lives wins. The ledger stores lives-remaining snapshots per round, so
// the totals projection is the latest snapshot, not a sum.
type Schwimmen struct{}

// Kind returns the game kind
func (s *Schwimmen) Kind() models.GameKind { return models.GameKindSchwimmen }

// ValidateConfig fills the default life count and rejects non-positive ones
func (s *Schwimmen) ValidateConfig(cfg *models.GameConfig, playerCount int) error {
	if cfg.StartingLives == 0 {
		cfg.StartingLives = DefaultStartingLives
	}
	if cfg.StartingLives < 1 {
		return fmt.Errorf("starting lives must be positive, got %d", cfg.StartingLives)
	}
	return nil
}

// ScoreContribution returns the lives remaining in a snapshot
func (s *Schwimmen) ScoreContribution(payload models.ScorePayload) (int, bool) {
	lp, ok := payload.(*models.LivesPayload)
	if !ok {
		return 0, false
	}
	return lp.Lives, true
}

// FoldTotals projects each player's current life count: the latest
// snapshot that mentions them, or the starting count.
func (s *Schwimmen) FoldTotals(rounds []*models.Round, order []string, cfg models.GameConfig) map[string]int {
	totals := make(map[string]int, len(order))
	for _, id := range order {
		totals[id] = cfg.StartingLives
	}

	for _, round := range rounds {
		for _, id := range order {
			if lives, ok := s.ScoreContribution(round.Entry(id)); ok {
				totals[id] = lives
			}
		}
	}

	return totals
}

// ApplyLoser writes the round's lives snapshot: every player still
// holding lives is recorded, the loser one life down (floor zero).
func (s *Schwimmen) ApplyLoser(round *models.Round, loserID string, lives map[string]int, order []string) {
	for _, id := range order {
		current := lives[id]
		if current <= 0 {
			continue
		}
		if id == loserID {
			current--
			if current < 0 {
				current = 0
			}
		}
		round.SetEntry(id, &models.LivesPayload{Lives: current})
	}
}

// FinishedPlayers returns the players eliminated at zero lives
func (s *Schwimmen) FinishedPlayers(totals map[string]int, cfg models.GameConfig) map[string]bool {
	finished := make(map[string]bool)
	for id, lives := range totals {
		if lives <= 0 {
			finished[id] = true
		}
	}
	return finished
}

// IsRoundTerminal reports whether the round's snapshot has been taken;
// the whole snapshot lands in one commit
func (s *Schwimmen) IsRoundTerminal(cfg models.GameConfig, round *models.Round, totals map[string]int, order []string) bool {
	return len(round.Entries) > 0
}

// EliminationOrder returns eliminated players in the order they ran out
// of lives. At most one player can be eliminated per round.
func (s *Schwimmen) EliminationOrder(rounds []*models.Round, order []string) []string {
	eliminated := make(map[string]bool, len(order))
	var result []string

	for _, round := range rounds {
		for _, id := range order {
			lives, ok := s.ScoreContribution(round.Entry(id))
			if !ok || eliminated[id] {
				continue
			}
			if lives == 0 {
				eliminated[id] = true
				result = append(result, id)
			}
		}
	}

	return result
}

// CheckEnd finishes the game when exactly one player has lives left.
// Ranking is the winner followed by the losers in reverse elimination
// order: the last player out takes second place.
func (s *Schwimmen) CheckEnd(cfg models.GameConfig, totals map[string]int, rounds []*models.Round, order []string) EndResult {
	if len(order) < 2 {
		return EndResult{}
	}

	var winner string
	alive := 0
	for _, id := range order {
		if totals[id] > 0 {
			alive++
			winner = id
		}
	}
	if alive != 1 {
		return EndResult{}
	}

	ranking := []string{winner}
	elimination := s.EliminationOrder(rounds, order)
	for i := len(elimination) - 1; i >= 0; i-- {
		ranking = append(ranking, elimination[i])
	}

	return EndResult{Finished: true, Ranking: ranking}
}
