package game

import (
	"time"

	"github.com/fkoehler/spielstand/internal/models"
)

type UpsertSessionInput struct {
	Session *models.GameSession
}

type GetSessionInput struct {
	SessionID string
}

type UpsertRoundInput struct {
	SessionID string
	Round     *models.Round
}

type RemoveLastRoundInput struct {
	SessionID string
}

type LoadRoundsInput struct {
	SessionID string
}

type LoadRoundsOutput struct {
	Rounds []*models.Round
}

type ListPausedSessionsInput struct {
}

// SessionSummary is the lightweight row shown in a resume picker
type SessionSummary struct {
	SessionID  string
	Kind       models.GameKind
	PlayerIDs  []string
	RoundCount int
	UpdatedAt  time.Time
}

type ListPausedSessionsOutput struct {
	Summaries []*SessionSummary
}

type DeleteSessionInput struct {
	SessionID string
}
