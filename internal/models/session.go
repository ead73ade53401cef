package models

import (
	"time"
)

// GameKind identifies which scoring rule variant a session plays
type GameKind string

const (
	// GameKindDart is the countdown dart game (301/501)
	GameKindDart GameKind = "dart"

	// GameKindSkyjo is the Skyjo points game (lowest total wins)
	GameKindSkyjo GameKind = "skyjo"

	// GameKindRomme is the Rommé points game (Skyjo rules, higher threshold)
	GameKindRomme GameKind = "romme"

	// GameKindWizard is the Wizard bid/trick game
	GameKindWizard GameKind = "wizard"

	// GameKindFlip7 is the Flip 7 race-to-200 game
	GameKindFlip7 GameKind = "flip7"

	// GameKindSchwimmen is the Schwimmen life-elimination game
	GameKindSchwimmen GameKind = "schwimmen"
)

// SessionStatus represents the current state of a game session
type SessionStatus string

const (
	// SessionStatusActive indicates a session is loaded and being played
	SessionStatusActive SessionStatus = "active"

	// SessionStatusPaused indicates a session is persisted but not loaded
	SessionStatusPaused SessionStatus = "paused"

	// SessionStatusFinished indicates the end condition has been reached
	SessionStatusFinished SessionStatus = "finished"
)

// GameConfig holds the game-specific parameters fixed at session start
type GameConfig struct {
	// StartingScore is the countdown start for dart (301 or 501)
	StartingScore int

	// PointsThreshold ends points games once any total reaches it
	PointsThreshold int

	// StartingLives is the life count each Schwimmen player begins with
	StartingLives int

	// TotalRounds is the fixed round count for Wizard, derived from the
	// player count at session start
	TotalRounds int
}

// GameSession represents one instance of a game being played
type GameSession struct {
	// ID is the unique identifier for the session
	ID string

	// Kind selects the scoring rule variant
	Kind GameKind

	// PlayerIDs contains the participants in seating/turn order
	PlayerIDs []string

	// Config holds the variant parameters fixed at start
	Config GameConfig

	// Status is the current lifecycle state of the session
	Status SessionStatus

	// DealerID is the player dealing (or on turn, for dart) in the
	// currently open round
	DealerID string

	// Ranking is the final player order, set once the session finishes
	Ranking []string

	// CreatedAt is when the session was started
	CreatedAt time.Time

	// UpdatedAt is when the session was last mutated
	UpdatedAt time.Time

	// EndedAt is when the session finished, nil while in progress
	EndedAt *time.Time
}
