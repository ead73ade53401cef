package ledger

import (
	"time"

	"github.com/fkoehler/spielstand/internal/models"
)

// UndoKind classifies what a committed mutation changed
type UndoKind string

const (
	// UndoKindScoreEntry reverses a single score entry
	UndoKindScoreEntry UndoKind = "score_entry"

	// UndoKindRoundBoundary reverses a score entry that also closed the
	// round and opened the next one
	UndoKindRoundBoundary UndoKind = "round_boundary"

	// UndoKindTurnAdvance reverses a turn/phase advance with no score
	// change (Wizard bid freeze)
	UndoKindTurnAdvance UndoKind = "turn_advance"
)

// UndoRecord holds the minimal data to exactly reverse one committed
// mutation. Records live only in memory; a resumed session starts with
// an empty stack.
type UndoRecord struct {
	// Kind classifies the mutation
	Kind UndoKind

	// RoundNumber is the round the mutation touched
	RoundNumber int

	// PlayerID is the player whose entry changed, empty for phase flips
	PlayerID string

	// PrevPayload is the entry's payload before the mutation; nil with
	// HadEntry false means the entry did not exist
	PrevPayload models.ScorePayload

	// HadEntry records whether the entry existed before the mutation
	HadEntry bool

	// PrevEntries snapshots the whole round's entries for mutations
	// that rewrite several of them at once (Schwimmen life snapshots)
	PrevEntries map[string]models.ScorePayload

	// PrevBidsFinal is the round's bid-freeze flag before the mutation
	PrevBidsFinal bool

	// PrevDealerID is the dealer/turn pointer before the mutation
	PrevDealerID string

	// OpenedRound records that the commit opened the next round, which
	// the undo removes again
	OpenedRound bool

	// PrevStatus is the session status before the mutation, so undoing
	// past a finish reopens the game
	PrevStatus models.SessionStatus

	// PrevRanking is the ranking before the mutation
	PrevRanking []string

	// PrevEndedAt is the finish timestamp before the mutation
	PrevEndedAt *time.Time
}

// UndoStack is a strict LIFO of undo records for one in-memory session
type UndoStack struct {
	records []*UndoRecord
}

// NewUndoStack creates an empty stack
func NewUndoStack() *UndoStack {
	return &UndoStack{}
}

// Push adds a record on top of the stack
func (s *UndoStack) Push(record *UndoRecord) {
	s.records = append(s.records, record)
}

// Pop removes and returns the most recent record, nil when empty
func (s *UndoStack) Pop() *UndoRecord {
	if len(s.records) == 0 {
		return nil
	}
	record := s.records[len(s.records)-1]
	s.records = s.records[:len(s.records)-1]
	return record
}

// Len returns the number of records on the stack
func (s *UndoStack) Len() int {
	return len(s.records)
}

// Clear drops all records, used on session reset and resume
func (s *UndoStack) Clear() {
	s.records = nil
}
