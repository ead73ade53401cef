package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fkoehler/spielstand/internal/repositories/game Repository

import (
	"context"

	"github.com/fkoehler/spielstand/internal/models"
)

// Repository defines the interface for session and round persistence.
// The engine treats it as a document store keyed by session id with
// round sub-records ordered by round number.
type Repository interface {
	// UpsertSession persists a session row
	UpsertSession(ctx context.Context, input *UpsertSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error)

	// UpsertRound persists one round of a session
	UpsertRound(ctx context.Context, input *UpsertRoundInput) error

	// RemoveLastRound drops the most recent round of a session
	RemoveLastRound(ctx context.Context, input *RemoveLastRoundInput) error

	// LoadRounds retrieves all rounds of a session ordered by number
	LoadRounds(ctx context.Context, input *LoadRoundsInput) (*LoadRoundsOutput, error)

	// ListPausedSessions retrieves summaries of all paused sessions
	ListPausedSessions(ctx context.Context, input *ListPausedSessionsInput) (*ListPausedSessionsOutput, error)

	// DeleteSessionCompletely removes a session and all its rounds
	DeleteSessionCompletely(ctx context.Context, input *DeleteSessionInput) error
}
