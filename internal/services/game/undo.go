package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/fkoehler/spielstand/internal/ledger"
	"github.com/fkoehler/spielstand/internal/models"
)

// UndoLast reverses the most recent committed mutation. Popping N
// times equals never having performed the last N commits: each record
// restores the touched entry, the dealer pointer and the session's
// finished state, and totals are refolded from the ledger rather than
// patched arithmetically.
func (s *service) UndoLast(ctx context.Context, input *UndoLastInput) (*UndoLastOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}
	if st.session.Status == models.SessionStatusPaused {
		return nil, ErrSessionNotActive
	}

	record := st.undo.Pop()
	if record == nil {
		// Empty stack: undo is a deliberate no-op
		return &UndoLastOutput{
			Undone:   false,
			Snapshot: s.snapshot(st),
		}, nil
	}

	// A commit that closed the round also opened the next one; drop it
	// again before touching the round the record points at.
	if record.OpenedRound {
		if _, err := st.ledger.RemoveLast(); err != nil {
			s.logger.Error("undo found no round to remove",
				zap.String("session_id", st.session.ID),
				zap.Int("round", record.RoundNumber))
			return &UndoLastOutput{Undone: false, Snapshot: s.snapshot(st)}, nil
		}
		s.persistRemoveLastRound(ctx, st)
	}

	round := st.ledger.Round(record.RoundNumber)
	if round == nil {
		// Corrupt record; degrade to a no-op rather than guess
		s.logger.Error("undo record points at missing round",
			zap.String("session_id", st.session.ID),
			zap.Int("round", record.RoundNumber))
		return &UndoLastOutput{Undone: false, Snapshot: s.snapshot(st)}, nil
	}

	switch record.Kind {
	case ledger.UndoKindTurnAdvance:
		round.BidsFinal = record.PrevBidsFinal
	default:
		if record.PrevEntries != nil {
			round.Entries = make(map[string]models.ScorePayload, len(record.PrevEntries))
			for id, payload := range record.PrevEntries {
				round.Entries[id] = payload
			}
		} else if record.HadEntry {
			round.SetEntry(record.PlayerID, record.PrevPayload)
		} else {
			delete(round.Entries, record.PlayerID)
		}
	}

	st.session.DealerID = record.PrevDealerID
	st.session.Status = record.PrevStatus
	st.session.Ranking = record.PrevRanking
	st.session.EndedAt = record.PrevEndedAt
	st.session.UpdatedAt = s.clock.Now()

	s.refoldTotals(st)

	s.persistSession(ctx, st)
	s.persistRound(ctx, st, round)

	snapshot := s.snapshot(st)
	s.publish(st, snapshot)

	return &UndoLastOutput{
		Undone:   true,
		Snapshot: snapshot,
	}, nil
}
