package ledger

import (
	"errors"
	"fmt"

	"github.com/fkoehler/spielstand/internal/models"
)

// ErrNoRounds is returned when an operation needs at least one round
var ErrNoRounds = errors.New("ledger has no rounds")

// Ledger is the append-only round sequence for one session. Round
// numbers are contiguous starting at 1; the only structural mutations
// are opening a round at the end and removing the last round (undo).
type Ledger struct {
	rounds []*models.Round
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{}
}

// FromRounds rebuilds a ledger from persisted rounds, validating that
// the numbers are exactly 1..n with no gaps
func FromRounds(rounds []*models.Round) (*Ledger, error) {
	for i, round := range rounds {
		if round.Number != i+1 {
			return nil, fmt.Errorf("round numbers not contiguous: position %d holds round %d", i+1, round.Number)
		}
	}
	return &Ledger{rounds: append([]*models.Round(nil), rounds...)}, nil
}

// OpenRound appends a new open round with the next number
func (l *Ledger) OpenRound(dealerID string) *models.Round {
	round := models.NewRound(len(l.rounds)+1, dealerID)
	l.rounds = append(l.rounds, round)
	return round
}

// Rounds returns the rounds in order. The slice is a copy; the rounds
// themselves are shared.
func (l *Ledger) Rounds() []*models.Round {
	return append([]*models.Round(nil), l.rounds...)
}

// Len returns the number of rounds
func (l *Ledger) Len() int {
	return len(l.rounds)
}

// Last returns the most recent round, nil when empty
func (l *Ledger) Last() *models.Round {
	if len(l.rounds) == 0 {
		return nil
	}
	return l.rounds[len(l.rounds)-1]
}

// Round returns the round with the given number, nil if out of range
func (l *Ledger) Round(number int) *models.Round {
	if number < 1 || number > len(l.rounds) {
		return nil
	}
	return l.rounds[number-1]
}

// RemoveLast drops and returns the most recent round
func (l *Ledger) RemoveLast() (*models.Round, error) {
	if len(l.rounds) == 0 {
		return nil, ErrNoRounds
	}
	last := l.rounds[len(l.rounds)-1]
	l.rounds = l.rounds[:len(l.rounds)-1]
	return last, nil
}
