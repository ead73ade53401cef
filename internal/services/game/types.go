package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/fkoehler/spielstand/internal/common/clock"
	"github.com/fkoehler/spielstand/internal/common/uuid"
	"github.com/fkoehler/spielstand/internal/models"
	gameRepo "github.com/fkoehler/spielstand/internal/repositories/game"
	playerRepo "github.com/fkoehler/spielstand/internal/repositories/player"
	presetRepo "github.com/fkoehler/spielstand/internal/repositories/preset"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	PresetRepo presetRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger receives persistence failures and lifecycle events; a nop
	// logger is used when nil
	Logger *zap.Logger
}

// Snapshot is the immutable per-session state exposed to the UI. Every
// mutation publishes a fresh snapshot; the contained rounds are deep
// copies and safe to hold.
type Snapshot struct {
	// SessionID identifies the session
	SessionID string

	// Kind is the scoring rule variant being played
	Kind models.GameKind

	// Status is the session lifecycle state
	Status models.SessionStatus

	// PlayerIDs are the participants in seating order
	PlayerIDs []string

	// Config holds the variant parameters fixed at start
	Config models.GameConfig

	// DealerID is the dealer (or, for dart, the player on turn) of the
	// open round
	DealerID string

	// RoundNumber is the number of the most recent round
	RoundNumber int

	// Rounds is the full round ledger, oldest first
	Rounds []*models.Round

	// Totals is the per-player totals projection refolded from the
	// ledger: points for the point games, scored darts for dart, lives
	// remaining for Schwimmen
	Totals map[string]int

	// Finished marks players that no longer take turns
	Finished map[string]bool

	// Ranking is the final order, winner first; nil while in progress
	Ranking []string

	// CanUndo indicates whether an undo record is available
	CanUndo bool

	// UpdatedAt is when the session was last mutated
	UpdatedAt time.Time
}

// AddPlayerInput contains parameters for registering a player
type AddPlayerInput struct {
	// Name is the display name of the new player
	Name string
}

// AddPlayerOutput contains the created player
type AddPlayerOutput struct {
	Player *models.Player
}

type ListPlayersInput struct {
}

type ListPlayersOutput struct {
	Players []*models.Player
}

// SavePresetInput contains a named participant list to store
type SavePresetInput struct {
	Name      string
	PlayerIDs []string
}

type SavePresetOutput struct {
	Preset *models.Preset
}

type ListPresetsInput struct {
}

type ListPresetsOutput struct {
	Presets []*models.Preset
}

type DeletePresetInput struct {
	Name string
}

type DeletePresetOutput struct {
	Success bool
}

// StartGameInput contains parameters for starting a session
type StartGameInput struct {
	// Kind selects the scoring rule variant
	Kind models.GameKind

	// PlayerIDs are the participants in seating order
	PlayerIDs []string

	// Config holds variant parameters; zero fields take variant
	// defaults
	Config models.GameConfig
}

// StartGameOutput contains the started session
type StartGameOutput struct {
	SessionID string
	Snapshot  *Snapshot
}

// RecordThrowInput contains one dart throw for the player on turn
type RecordThrowInput struct {
	SessionID string

	// Face is the segment hit: 1-20 or 25 for bull
	Face int

	// Multiplier is 1, 2 or 3
	Multiplier int
}

// RecordThrowOutput describes the committed throw
type RecordThrowOutput struct {
	// PlayerID is the player the throw was recorded for
	PlayerID string

	// Value is the points scored by the throw
	Value int

	// Busted indicates the throw busted the whole turn
	Busted bool

	// PlayerFinished indicates the player reached exactly zero
	PlayerFinished bool

	// TurnOver indicates the turn passed to the next player
	TurnOver bool

	Snapshot *Snapshot
}

// RecordPointsInput contains one player's round score
type RecordPointsInput struct {
	SessionID string
	PlayerID  string
	Points    int
}

// RecordPointsOutput describes the committed score
type RecordPointsOutput struct {
	// RoundComplete indicates the round closed and the next one opened
	RoundComplete bool

	Snapshot *Snapshot
}

// RecordBidInput contains one player's Wizard bid
type RecordBidInput struct {
	SessionID string
	PlayerID  string
	Bid       int
}

// RecordBidOutput describes the committed bid
type RecordBidOutput struct {
	// BidsComplete indicates every player has entered a bid
	BidsComplete bool

	Snapshot *Snapshot
}

type FinishBiddingInput struct {
	SessionID string
}

type FinishBiddingOutput struct {
	Snapshot *Snapshot
}

// RecordTricksInput contains the tricks won by one Wizard player
type RecordTricksInput struct {
	SessionID string
	PlayerID  string
	Tricks    int
}

// RecordTricksOutput describes the committed trick count
type RecordTricksOutput struct {
	// RoundComplete indicates the round closed and the next one opened
	RoundComplete bool

	// TricksMismatch indicates every player has a trick count but the
	// counts do not sum to the round number, so the round stays open
	TricksMismatch bool

	Snapshot *Snapshot
}

// RecordRoundLoserInput names the player losing a life this round
type RecordRoundLoserInput struct {
	SessionID string
	LoserID   string
}

// RecordRoundLoserOutput describes the committed round
type RecordRoundLoserOutput struct {
	// LivesLeft is the loser's life count after the round
	LivesLeft int

	// Eliminated indicates the loser dropped to zero lives
	Eliminated bool

	Snapshot *Snapshot
}

type UndoLastInput struct {
	SessionID string
}

// UndoLastOutput describes the undo result
type UndoLastOutput struct {
	// Undone is false when the undo stack was empty (no-op)
	Undone bool

	Snapshot *Snapshot
}

type PauseGameInput struct {
	SessionID string
}

type PauseGameOutput struct {
	Success bool
}

type ResumeGameInput struct {
	SessionID string
}

type ResumeGameOutput struct {
	Snapshot *Snapshot
}

type DiscardGameInput struct {
	SessionID string
}

type DiscardGameOutput struct {
	Success bool
}

type ListPausedGamesInput struct {
}

type ListPausedGamesOutput struct {
	Summaries []*gameRepo.SessionSummary
}

type GetSnapshotInput struct {
	SessionID string
}

type GetSnapshotOutput struct {
	Snapshot *Snapshot
}

type WatchGameInput struct {
	SessionID string
}

// WatchGameOutput carries the subscription channel. Cancel releases
// the watcher; the channel is closed when the session is discarded.
type WatchGameOutput struct {
	Updates <-chan *Snapshot
	Cancel  func()
}
