package rules

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fkoehler/spielstand/internal/models"
)

// EndResult is the outcome of an end-condition check
type EndResult struct {
	// Finished indicates the session's end condition has been reached
	Finished bool

	// Ranking is the final player order, winner first. Only set when
	// Finished is true.
	Ranking []string
}

// Variant is the pluggable scoring policy for one game kind. All
// methods are pure: they never mutate the rounds or totals they are
// given.
type Variant interface {
	// Kind returns the game kind this variant implements
	Kind() models.GameKind

	// ValidateConfig checks the session config at start time and fills
	// in variant defaults for zero fields
	ValidateConfig(cfg *models.GameConfig, playerCount int) error

	// ScoreContribution returns a player's score contribution from a
	// round payload. The second return is false when nothing has been
	// entered yet.
	ScoreContribution(p models.ScorePayload) (int, bool)

	// FoldTotals recomputes the totals projection from the full round
	// ledger. This is the authoritative totals computation; any
	// incrementally maintained total must agree with it.
	FoldTotals(rounds []*models.Round, order []string, cfg models.GameConfig) map[string]int

	// FinishedPlayers derives the set of players that no longer take
	// turns (finished dart players, eliminated Schwimmen players)
	FinishedPlayers(totals map[string]int, cfg models.GameConfig) map[string]bool

	// IsRoundTerminal reports whether no more input is expected for the
	// round. Totals include the round's own committed entries.
	IsRoundTerminal(cfg models.GameConfig, round *models.Round, totals map[string]int, order []string) bool

	// CheckEnd decides whether the session is finished and computes the
	// final ranking. Called after every committed mutation.
	CheckEnd(cfg models.GameConfig, totals map[string]int, rounds []*models.Round, order []string) EndResult
}

var (
	registryMu sync.RWMutex
	registry   = make(map[models.GameKind]Variant)
)

// Register adds a variant to the registry. Panics on duplicates; the
// variant set is closed and registered from init functions only.
func Register(v Variant) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[v.Kind()]; exists {
		panic(fmt.Sprintf("variant %q already registered", v.Kind()))
	}
	registry[v.Kind()] = v
}

// ForKind returns the variant for a game kind
func ForKind(kind models.GameKind) (Variant, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	v, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("no variant registered for game kind %q", kind)
	}
	return v, nil
}

// Kinds returns all registered game kinds, sorted for stable output
func Kinds() []models.GameKind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]models.GameKind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// sumTotals folds contribution sums over all rounds for every player
// in the order. Players without any entry map to zero.
func sumTotals(rounds []*models.Round, order []string, contribution func(models.ScorePayload) (int, bool)) map[string]int {
	totals := make(map[string]int, len(order))
	for _, id := range order {
		totals[id] = 0
	}

	for _, round := range rounds {
		for _, id := range order {
			payload := round.Entry(id)
			if payload == nil {
				continue
			}
			if value, ok := contribution(payload); ok {
				totals[id] += value
			}
		}
	}

	return totals
}

// rankAscending orders players by total, lowest first, seating order
// breaking ties
func rankAscending(totals map[string]int, order []string) []string {
	ranking := append([]string(nil), order...)
	sort.SliceStable(ranking, func(i, j int) bool {
		return totals[ranking[i]] < totals[ranking[j]]
	})
	return ranking
}

// rankDescending orders players by total, highest first, seating order
// breaking ties
func rankDescending(totals map[string]int, order []string) []string {
	ranking := append([]string(nil), order...)
	sort.SliceStable(ranking, func(i, j int) bool {
		return totals[ranking[i]] > totals[ranking[j]]
	})
	return ranking
}
