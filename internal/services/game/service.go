package game

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/fkoehler/spielstand/internal/common/clock"
	"github.com/fkoehler/spielstand/internal/common/uuid"
	"github.com/fkoehler/spielstand/internal/ledger"
	"github.com/fkoehler/spielstand/internal/models"
	gameRepo "github.com/fkoehler/spielstand/internal/repositories/game"
	playerRepo "github.com/fkoehler/spielstand/internal/repositories/player"
	presetRepo "github.com/fkoehler/spielstand/internal/repositories/preset"
	"github.com/fkoehler/spielstand/internal/rules"
)

// sessionState is the owned, observable in-memory state of one loaded
// session. The in-memory state is the source of truth for the current
// process; the persisted copy is a best-effort mirror.
type sessionState struct {
	session     *models.GameSession
	variant     rules.Variant
	ledger      *ledger.Ledger
	undo        *ledger.UndoStack
	totals      map[string]int
	watchers    map[int]chan *Snapshot
	nextWatcher int
}

// service implements the Service interface
type service struct {
	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	presetRepo presetRepo.Repository
	clock      clock.Clock
	uuidGen    uuid.UUID
	logger     *zap.Logger

	// mu guards the sessions map; each session itself is mutated by a
	// single logical actor and needs no locking of its own
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.PresetRepo == nil {
		return nil, ErrNilPresetRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		gameRepo:   cfg.GameRepo,
		playerRepo: cfg.PlayerRepo,
		presetRepo: cfg.PresetRepo,
		clock:      cfg.Clock,
		uuidGen:    cfg.UUIDGenerator,
		logger:     logger,
		sessions:   make(map[string]*sessionState),
	}, nil
}

// AddPlayer registers a new player in the player registry
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrEmptyPlayerName
	}

	player := &models.Player{
		ID:        s.uuidGen.NewUUID(),
		Name:      input.Name,
		CreatedAt: s.clock.Now(),
	}

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return nil, err
	}

	return &AddPlayerOutput{Player: player}, nil
}

// ListPlayers returns all registered players
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	out, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return nil, err
	}
	return &ListPlayersOutput{Players: out.Players}, nil
}

// SavePreset stores a named reusable participant list
func (s *service) SavePreset(ctx context.Context, input *SavePresetInput) (*SavePresetOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrEmptyPresetName
	}
	if err := s.validateParticipants(ctx, input.PlayerIDs); err != nil {
		return nil, err
	}

	preset := &models.Preset{
		Name:      input.Name,
		PlayerIDs: append([]string(nil), input.PlayerIDs...),
		CreatedAt: s.clock.Now(),
	}

	if err := s.presetRepo.SavePreset(ctx, &presetRepo.SavePresetInput{Preset: preset}); err != nil {
		return nil, err
	}

	return &SavePresetOutput{Preset: preset}, nil
}

// ListPresets returns all saved participant presets
func (s *service) ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error) {
	out, err := s.presetRepo.ListPresets(ctx, &presetRepo.ListPresetsInput{})
	if err != nil {
		return nil, err
	}
	return &ListPresetsOutput{Presets: out.Presets}, nil
}

// DeletePreset removes a participant preset
func (s *service) DeletePreset(ctx context.Context, input *DeletePresetInput) (*DeletePresetOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrEmptyPresetName
	}

	if err := s.presetRepo.DeletePreset(ctx, &presetRepo.DeletePresetInput{Name: input.Name}); err != nil {
		return nil, err
	}

	return &DeletePresetOutput{Success: true}, nil
}

// StartGame creates a session, opens round 1 and persists both
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	variant, err := rules.ForKind(input.Kind)
	if err != nil {
		return nil, err
	}

	if err := s.validateParticipants(ctx, input.PlayerIDs); err != nil {
		return nil, err
	}

	cfg := input.Config
	if err := variant.ValidateConfig(&cfg, len(input.PlayerIDs)); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &models.GameSession{
		ID:        s.uuidGen.NewUUID(),
		Kind:      input.Kind,
		PlayerIDs: append([]string(nil), input.PlayerIDs...),
		Config:    cfg,
		Status:    models.SessionStatusActive,
		DealerID:  input.PlayerIDs[0],
		CreatedAt: now,
		UpdatedAt: now,
	}

	st := &sessionState{
		session:  session,
		variant:  variant,
		ledger:   ledger.New(),
		undo:     ledger.NewUndoStack(),
		watchers: make(map[int]chan *Snapshot),
	}
	round := st.ledger.OpenRound(session.DealerID)
	s.refoldTotals(st)

	s.mu.Lock()
	s.sessions[session.ID] = st
	s.mu.Unlock()

	s.persistSession(ctx, st)
	s.persistRound(ctx, st, round)

	s.logger.Info("game started",
		zap.String("session_id", session.ID),
		zap.String("kind", string(session.Kind)),
		zap.Int("players", len(session.PlayerIDs)))

	snapshot := s.snapshot(st)
	s.publish(st, snapshot)

	return &StartGameOutput{
		SessionID: session.ID,
		Snapshot:  snapshot,
	}, nil
}

// PauseGame snapshots the session to the store and unloads it. The
// undo history is in-memory only and is lost with the unload.
func (s *service) PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}
	if st.session.Status != models.SessionStatusActive {
		return nil, ErrSessionNotActive
	}

	st.session.Status = models.SessionStatusPaused
	st.session.UpdatedAt = s.clock.Now()

	// Pause is the one write that must not be fire-and-forget: the
	// session is about to leave memory.
	if err := s.gameRepo.UpsertSession(ctx, &gameRepo.UpsertSessionInput{Session: st.session}); err != nil {
		st.session.Status = models.SessionStatusActive
		return nil, err
	}
	for _, round := range st.ledger.Rounds() {
		if err := s.gameRepo.UpsertRound(ctx, &gameRepo.UpsertRoundInput{
			SessionID: st.session.ID,
			Round:     round,
		}); err != nil {
			st.session.Status = models.SessionStatusActive
			return nil, err
		}
	}

	s.unload(st)

	s.logger.Info("game paused", zap.String("session_id", input.SessionID))

	return &PauseGameOutput{Success: true}, nil
}

// ResumeGame reloads a persisted session: rounds are re-read, totals
// refolded, the dealer pointer restored and the undo history cleared.
// Finished is terminal; a session that ended can only be reopened by
// an undo in the process that ended it, never by a resume.
func (s *service) ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	_, loaded := s.sessions[input.SessionID]
	s.mu.RUnlock()
	if loaded {
		return nil, ErrSessionNotActive
	}

	session, err := s.gameRepo.GetSession(ctx, &gameRepo.GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.Status == models.SessionStatusFinished {
		return nil, ErrSessionFinished
	}

	roundsOut, err := s.gameRepo.LoadRounds(ctx, &gameRepo.LoadRoundsInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	if len(roundsOut.Rounds) == 0 {
		// A session row without rounds cannot be reconstructed
		return nil, ErrSessionNotFound
	}

	variant, err := rules.ForKind(session.Kind)
	if err != nil {
		return nil, err
	}

	led, err := ledger.FromRounds(roundsOut.Rounds)
	if err != nil {
		return nil, err
	}

	session.Status = models.SessionStatusActive
	session.UpdatedAt = s.clock.Now()

	st := &sessionState{
		session:  session,
		variant:  variant,
		ledger:   led,
		undo:     ledger.NewUndoStack(),
		watchers: make(map[int]chan *Snapshot),
	}
	s.refoldTotals(st)

	s.mu.Lock()
	s.sessions[session.ID] = st
	s.mu.Unlock()

	s.persistSession(ctx, st)

	s.logger.Info("game resumed",
		zap.String("session_id", session.ID),
		zap.Int("rounds", st.ledger.Len()))

	snapshot := s.snapshot(st)
	s.publish(st, snapshot)

	return &ResumeGameOutput{Snapshot: snapshot}, nil
}

// DiscardGame deletes a session and all its rounds from the store and
// drops the in-memory state
func (s *service) DiscardGame(ctx context.Context, input *DiscardGameInput) (*DiscardGameOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	if err := s.gameRepo.DeleteSessionCompletely(ctx, &gameRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	st, ok := s.sessions[input.SessionID]
	s.mu.Unlock()
	if ok {
		s.unload(st)
	}

	s.logger.Info("game discarded", zap.String("session_id", input.SessionID))

	return &DiscardGameOutput{Success: true}, nil
}

// ListPausedGames returns summaries of sessions waiting for resume
func (s *service) ListPausedGames(ctx context.Context, input *ListPausedGamesInput) (*ListPausedGamesOutput, error) {
	out, err := s.gameRepo.ListPausedSessions(ctx, &gameRepo.ListPausedSessionsInput{})
	if err != nil {
		return nil, err
	}
	return &ListPausedGamesOutput{Summaries: out.Summaries}, nil
}

// GetSnapshot returns the immutable state snapshot of a loaded session
func (s *service) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSnapshotOutput{Snapshot: s.snapshot(st)}, nil
}

// WatchGame subscribes to snapshots published after every mutation
func (s *service) WatchGame(ctx context.Context, input *WatchGameInput) (*WatchGameOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	updates := make(chan *Snapshot, 8)
	id := st.nextWatcher
	st.nextWatcher++
	st.watchers[id] = updates

	cancel := func() {
		if ch, ok := st.watchers[id]; ok {
			delete(st.watchers, id)
			close(ch)
		}
	}

	return &WatchGameOutput{Updates: updates, Cancel: cancel}, nil
}

// validateParticipants checks the list for size, duplicates and
// registry membership
func (s *service) validateParticipants(ctx context.Context, playerIDs []string) error {
	if len(playerIDs) < 2 {
		return ErrNotEnoughPlayers
	}

	seen := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		if seen[id] {
			return ErrDuplicatePlayers
		}
		seen[id] = true

		if _, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: id}); err != nil {
			if errors.Is(err, playerRepo.ErrPlayerNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}
	}
	return nil
}

// state returns the in-memory state of a loaded session
func (s *service) state(sessionID string) (*sessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotLoaded
	}
	return st, nil
}

// unload removes a session from memory, closing its watchers and
// dropping the undo history
func (s *service) unload(st *sessionState) {
	s.mu.Lock()
	delete(s.sessions, st.session.ID)
	s.mu.Unlock()

	for id, ch := range st.watchers {
		delete(st.watchers, id)
		close(ch)
	}
	st.undo.Clear()
}

// refoldTotals recomputes the totals projection from the full ledger.
// Totals are never cached in a form that is not derivable this way, so
// they are correct immediately after any undo.
func (s *service) refoldTotals(st *sessionState) {
	st.totals = st.variant.FoldTotals(st.ledger.Rounds(), st.session.PlayerIDs, st.session.Config)
}

// snapshot builds an immutable copy of the session state
func (s *service) snapshot(st *sessionState) *Snapshot {
	rounds := st.ledger.Rounds()
	roundCopies := make([]*models.Round, len(rounds))
	for i, round := range rounds {
		roundCopies[i] = round.Clone()
	}

	totals := make(map[string]int, len(st.totals))
	for id, total := range st.totals {
		totals[id] = total
	}

	roundNumber := 0
	dealerID := st.session.DealerID
	if last := st.ledger.Last(); last != nil {
		roundNumber = last.Number
	}

	return &Snapshot{
		SessionID:   st.session.ID,
		Kind:        st.session.Kind,
		Status:      st.session.Status,
		PlayerIDs:   append([]string(nil), st.session.PlayerIDs...),
		Config:      st.session.Config,
		DealerID:    dealerID,
		RoundNumber: roundNumber,
		Rounds:      roundCopies,
		Totals:      totals,
		Finished:    st.variant.FinishedPlayers(st.totals, st.session.Config),
		Ranking:     append([]string(nil), st.session.Ranking...),
		CanUndo:     st.undo.Len() > 0,
		UpdatedAt:   st.session.UpdatedAt,
	}
}

// publish fans a snapshot out to the session's watchers. Slow watchers
// drop updates rather than block the mutation path.
func (s *service) publish(st *sessionState, snapshot *Snapshot) {
	for _, ch := range st.watchers {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// persistSession mirrors the session row to the store. The in-memory
// state stays authoritative: failures are logged, never surfaced, and
// not retried; the next successful write reconciles the store.
func (s *service) persistSession(ctx context.Context, st *sessionState) {
	if err := s.gameRepo.UpsertSession(ctx, &gameRepo.UpsertSessionInput{Session: st.session}); err != nil {
		s.logger.Error("failed to persist session",
			zap.String("session_id", st.session.ID),
			zap.Error(err))
	}
}

// persistRound mirrors one round to the store, same at-most-once
// semantics as persistSession
func (s *service) persistRound(ctx context.Context, st *sessionState, round *models.Round) {
	if err := s.gameRepo.UpsertRound(ctx, &gameRepo.UpsertRoundInput{
		SessionID: st.session.ID,
		Round:     round,
	}); err != nil {
		s.logger.Error("failed to persist round",
			zap.String("session_id", st.session.ID),
			zap.Int("round", round.Number),
			zap.Error(err))
	}
}

// persistRemoveLastRound mirrors an undo round removal to the store
func (s *service) persistRemoveLastRound(ctx context.Context, st *sessionState) {
	if err := s.gameRepo.RemoveLastRound(ctx, &gameRepo.RemoveLastRoundInput{
		SessionID: st.session.ID,
	}); err != nil {
		s.logger.Error("failed to remove persisted round",
			zap.String("session_id", st.session.ID),
			zap.Error(err))
	}
}
