package game

import "context"

// Service defines the interface for game session operations. It is the
// single mutation path into the engine: the UI submits intents, the
// service validates them, mutates the round ledger through the scoring
// rule variant and keeps the store synchronized.
type Service interface {
	// AddPlayer registers a new player in the player registry
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// ListPlayers returns all registered players
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// SavePreset stores a named reusable participant list
	SavePreset(ctx context.Context, input *SavePresetInput) (*SavePresetOutput, error)

	// ListPresets returns all saved participant presets
	ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error)

	// DeletePreset removes a participant preset
	DeletePreset(ctx context.Context, input *DeletePresetInput) (*DeletePresetOutput, error)

	// StartGame creates a session, opens round 1 and persists both
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RecordThrow commits one dart throw for the player on turn
	RecordThrow(ctx context.Context, input *RecordThrowInput) (*RecordThrowOutput, error)

	// RecordPoints commits a round score for one player (Skyjo, Rommé,
	// Flip 7)
	RecordPoints(ctx context.Context, input *RecordPointsInput) (*RecordPointsOutput, error)

	// RecordBid commits a Wizard bid for one player
	RecordBid(ctx context.Context, input *RecordBidInput) (*RecordBidOutput, error)

	// FinishBidding freezes the Wizard bids of the open round
	FinishBidding(ctx context.Context, input *FinishBiddingInput) (*FinishBiddingOutput, error)

	// RecordTricks commits the tricks won by one Wizard player
	RecordTricks(ctx context.Context, input *RecordTricksInput) (*RecordTricksOutput, error)

	// RecordRoundLoser commits a Schwimmen round: the named player
	// loses one life and the round's lives snapshot is taken
	RecordRoundLoser(ctx context.Context, input *RecordRoundLoserInput) (*RecordRoundLoserOutput, error)

	// UndoLast reverses the most recent committed mutation; a no-op
	// when the undo stack is empty
	UndoLast(ctx context.Context, input *UndoLastInput) (*UndoLastOutput, error)

	// PauseGame snapshots the session to the store and unloads it
	PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error)

	// ResumeGame reloads a persisted session into memory
	ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error)

	// DiscardGame deletes a session and all its rounds
	DiscardGame(ctx context.Context, input *DiscardGameInput) (*DiscardGameOutput, error)

	// ListPausedGames returns summaries of sessions waiting for resume
	ListPausedGames(ctx context.Context, input *ListPausedGamesInput) (*ListPausedGamesOutput, error)

	// GetSnapshot returns the immutable state snapshot of a session
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// WatchGame subscribes to state snapshots published after every
	// mutation of a session
	WatchGame(ctx context.Context, input *WatchGameInput) (*WatchGameOutput, error)
}
