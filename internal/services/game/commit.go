package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/fkoehler/spielstand/internal/ledger"
	"github.com/fkoehler/spielstand/internal/models"
	"github.com/fkoehler/spielstand/internal/rotation"
	"github.com/fkoehler/spielstand/internal/rules"
)

// activeState returns the loaded state of a session that accepts
// mutations
func (s *service) activeState(sessionID string, kinds ...models.GameKind) (*sessionState, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	st, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}

	switch st.session.Status {
	case models.SessionStatusActive:
	case models.SessionStatusFinished:
		return nil, ErrSessionFinished
	default:
		return nil, ErrSessionNotActive
	}

	if len(kinds) > 0 {
		match := false
		for _, kind := range kinds {
			if st.session.Kind == kind {
				match = true
				break
			}
		}
		if !match {
			return nil, ErrWrongGameKind
		}
	}

	return st, nil
}

// isParticipant reports whether a player is part of the session
func (st *sessionState) isParticipant(playerID string) bool {
	for _, id := range st.session.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// baseRecord seeds an undo record with the session-level state before
// the mutation
func (st *sessionState) baseRecord(kind ledger.UndoKind, roundNumber int) *ledger.UndoRecord {
	return &ledger.UndoRecord{
		Kind:         kind,
		RoundNumber:  roundNumber,
		PrevDealerID: st.session.DealerID,
		PrevStatus:   st.session.Status,
		PrevRanking:  append([]string(nil), st.session.Ranking...),
		PrevEndedAt:  st.session.EndedAt,
	}
}

// captureEntry records a player's payload before the mutation
func captureEntry(record *ledger.UndoRecord, round *models.Round, playerID string) {
	record.PlayerID = playerID
	if existing := round.Entry(playerID); existing != nil {
		record.HadEntry = true
		record.PrevPayload = models.ClonePayload(existing)
	}
}

// settleRound checks the open round for terminality after a mutation.
// A terminal round either finishes the session or opens the next
// round, advancing the dealer from rotateFrom past finished players.
// The returned round is the newly opened one, nil if none.
func (s *service) settleRound(st *sessionState, record *ledger.UndoRecord, rotateFrom string) (*models.Round, bool) {
	session := st.session
	round := st.ledger.Last()

	if !st.variant.IsRoundTerminal(session.Config, round, st.totals, session.PlayerIDs) {
		return nil, false
	}

	end := st.variant.CheckEnd(session.Config, st.totals, st.ledger.Rounds(), session.PlayerIDs)
	if end.Finished {
		now := s.clock.Now()
		session.Status = models.SessionStatusFinished
		session.Ranking = end.Ranking
		session.EndedAt = &now

		s.logger.Info("game finished",
			zap.String("session_id", session.ID),
			zap.Strings("ranking", end.Ranking))
		return nil, true
	}

	finished := st.variant.FinishedPlayers(st.totals, session.Config)
	next, err := rotation.Next(session.PlayerIDs, rotateFrom, finished)
	if err != nil {
		// Unreachable for a started session; keep the pointer in place
		next = rotateFrom
	}
	session.DealerID = next

	record.Kind = ledger.UndoKindRoundBoundary
	record.OpenedRound = true

	return st.ledger.OpenRound(next), false
}

// commit finalizes a mutation: push the undo record, stamp the
// session, mirror the touched rounds to the store and publish a fresh
// snapshot
func (s *service) commit(ctx context.Context, st *sessionState, record *ledger.UndoRecord, mutated, opened *models.Round) *Snapshot {
	st.session.UpdatedAt = s.clock.Now()
	st.undo.Push(record)

	s.persistSession(ctx, st)
	s.persistRound(ctx, st, mutated)
	if opened != nil {
		s.persistRound(ctx, st, opened)
	}

	snapshot := s.snapshot(st)
	s.publish(st, snapshot)
	return snapshot
}

// RecordThrow commits one dart throw for the player on turn
func (s *service) RecordThrow(ctx context.Context, input *RecordThrowInput) (*RecordThrowOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	st, err := s.activeState(input.SessionID, models.GameKindDart)
	if err != nil {
		return nil, err
	}
	dart := st.variant.(*rules.Dart)

	throw := models.DartThrow{Face: input.Face, Multiplier: input.Multiplier}
	if err := dart.ValidateThrow(throw); err != nil {
		return nil, err
	}

	round := st.ledger.Last()
	playerID := st.session.DealerID

	record := st.baseRecord(ledger.UndoKindScoreEntry, round.Number)
	captureEntry(record, round, playerID)

	payload, _ := round.Entry(playerID).(*models.DartPayload)
	if payload == nil {
		payload = &models.DartPayload{}
	}

	turnSum := 0
	for _, t := range payload.Throws {
		turnSum += t.Value()
	}
	remainingBefore := st.session.Config.StartingScore - st.totals[playerID] + turnSum

	turnOver, playerFinished := dart.ApplyThrow(payload, throw, remainingBefore)
	round.SetEntry(playerID, payload)
	s.refoldTotals(st)

	opened, finished := s.settleRound(st, record, playerID)
	if opened == nil && !finished && turnOver {
		// Turn passes within the open round
		active := st.variant.FinishedPlayers(st.totals, st.session.Config)
		if next, err := rotation.Next(st.session.PlayerIDs, playerID, active); err == nil {
			st.session.DealerID = next
		}
	}

	snapshot := s.commit(ctx, st, record, round, opened)

	return &RecordThrowOutput{
		PlayerID:       playerID,
		Value:          throw.Value(),
		Busted:         payload.Bust,
		PlayerFinished: playerFinished,
		TurnOver:       turnOver,
		Snapshot:       snapshot,
	}, nil
}

// RecordPoints commits a round score for one player of a point game
func (s *service) RecordPoints(ctx context.Context, input *RecordPointsInput) (*RecordPointsOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	st, err := s.activeState(input.SessionID,
		models.GameKindSkyjo, models.GameKindRomme, models.GameKindFlip7)
	if err != nil {
		return nil, err
	}

	if !st.isParticipant(input.PlayerID) {
		return nil, ErrPlayerNotInSession
	}

	if flip7, ok := st.variant.(*rules.Flip7); ok {
		if err := flip7.ValidatePoints(input.Points); err != nil {
			return nil, err
		}
	}

	round := st.ledger.Last()

	record := st.baseRecord(ledger.UndoKindScoreEntry, round.Number)
	captureEntry(record, round, input.PlayerID)

	round.SetEntry(input.PlayerID, &models.PointsPayload{Points: input.Points})
	s.refoldTotals(st)

	opened, finished := s.settleRound(st, record, round.DealerID)
	snapshot := s.commit(ctx, st, record, round, opened)

	return &RecordPointsOutput{
		RoundComplete: opened != nil || finished,
		Snapshot:      snapshot,
	}, nil
}

// RecordBid commits a Wizard bid for one player. Bids can be revised
// until FinishBidding freezes them.
func (s *service) RecordBid(ctx context.Context, input *RecordBidInput) (*RecordBidOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	st, err := s.activeState(input.SessionID, models.GameKindWizard)
	if err != nil {
		return nil, err
	}
	wizard := st.variant.(*rules.Wizard)

	if !st.isParticipant(input.PlayerID) {
		return nil, ErrPlayerNotInSession
	}

	round := st.ledger.Last()
	if round.BidsFinal {
		return nil, ErrBiddingClosed
	}

	if err := wizard.ValidateBid(input.Bid, round.Number); err != nil {
		return nil, err
	}

	record := st.baseRecord(ledger.UndoKindScoreEntry, round.Number)
	captureEntry(record, round, input.PlayerID)

	payload, _ := round.Entry(input.PlayerID).(*models.BidTrickPayload)
	if payload == nil {
		payload = &models.BidTrickPayload{}
	}
	bid := input.Bid
	payload.Bid = &bid
	round.SetEntry(input.PlayerID, payload)
	s.refoldTotals(st)

	snapshot := s.commit(ctx, st, record, round, nil)

	return &RecordBidOutput{
		BidsComplete: wizard.BidsComplete(round, st.session.PlayerIDs),
		Snapshot:     snapshot,
	}, nil
}

// FinishBidding freezes the bids of the open Wizard round and unlocks
// the tricks phase
func (s *service) FinishBidding(ctx context.Context, input *FinishBiddingInput) (*FinishBiddingOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	st, err := s.activeState(input.SessionID, models.GameKindWizard)
	if err != nil {
		return nil, err
	}
	wizard := st.variant.(*rules.Wizard)

	round := st.ledger.Last()
	if round.BidsFinal {
		return nil, ErrBiddingClosed
	}
	if !wizard.BidsComplete(round, st.session.PlayerIDs) {
		return nil, ErrBidsIncomplete
	}

	record := st.baseRecord(ledger.UndoKindTurnAdvance, round.Number)
	record.PrevBidsFinal = round.BidsFinal

	round.BidsFinal = true

	snapshot := s.commit(ctx, st, record, round, nil)

	return &FinishBiddingOutput{Snapshot: snapshot}, nil
}

// RecordTricks commits the tricks won by one Wizard player. The round
// closes once every player has a count and the counts sum to the round
// number.
func (s *service) RecordTricks(ctx context.Context, input *RecordTricksInput) (*RecordTricksOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	st, err := s.activeState(input.SessionID, models.GameKindWizard)
	if err != nil {
		return nil, err
	}
	wizard := st.variant.(*rules.Wizard)

	if !st.isParticipant(input.PlayerID) {
		return nil, ErrPlayerNotInSession
	}

	round := st.ledger.Last()
	if !round.BidsFinal {
		return nil, ErrBiddingOpen
	}

	if err := wizard.ValidateTricks(input.Tricks, round.Number); err != nil {
		return nil, err
	}

	record := st.baseRecord(ledger.UndoKindScoreEntry, round.Number)
	captureEntry(record, round, input.PlayerID)

	payload, _ := round.Entry(input.PlayerID).(*models.BidTrickPayload)
	if payload == nil {
		payload = &models.BidTrickPayload{}
	}
	tricks := input.Tricks
	payload.Tricks = &tricks
	round.SetEntry(input.PlayerID, payload)
	s.refoldTotals(st)

	opened, finished := s.settleRound(st, record, round.DealerID)

	mismatch := false
	if opened == nil && !finished {
		sum := 0
		entered := 0
		for _, id := range st.session.PlayerIDs {
			if bp, ok := round.Entry(id).(*models.BidTrickPayload); ok && bp.Tricks != nil {
				sum += *bp.Tricks
				entered++
			}
		}
		mismatch = entered == len(st.session.PlayerIDs) && sum != round.Number
	}

	snapshot := s.commit(ctx, st, record, round, opened)

	return &RecordTricksOutput{
		RoundComplete:  opened != nil || finished,
		TricksMismatch: mismatch,
		Snapshot:       snapshot,
	}, nil
}

// RecordRoundLoser commits a Schwimmen round: the named player loses
// one life and the round's lives snapshot is taken in one step
func (s *service) RecordRoundLoser(ctx context.Context, input *RecordRoundLoserInput) (*RecordRoundLoserOutput, error) {
	if input == nil {
		return nil, ErrSessionNotFound
	}

	st, err := s.activeState(input.SessionID, models.GameKindSchwimmen)
	if err != nil {
		return nil, err
	}
	schwimmen := st.variant.(*rules.Schwimmen)

	if !st.isParticipant(input.LoserID) {
		return nil, ErrPlayerNotInSession
	}
	if st.totals[input.LoserID] <= 0 {
		return nil, ErrPlayerEliminated
	}

	round := st.ledger.Last()

	record := st.baseRecord(ledger.UndoKindScoreEntry, round.Number)
	record.PlayerID = input.LoserID
	record.PrevEntries = make(map[string]models.ScorePayload, len(round.Entries))
	for id, payload := range round.Entries {
		record.PrevEntries[id] = models.ClonePayload(payload)
	}

	schwimmen.ApplyLoser(round, input.LoserID, st.totals, st.session.PlayerIDs)
	s.refoldTotals(st)

	opened, _ := s.settleRound(st, record, round.DealerID)
	snapshot := s.commit(ctx, st, record, round, opened)

	return &RecordRoundLoserOutput{
		LivesLeft:  st.totals[input.LoserID],
		Eliminated: st.totals[input.LoserID] == 0,
		Snapshot:   snapshot,
	}, nil
}
