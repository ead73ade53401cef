package game

import "errors"

// Define errors
var (
	ErrSessionNotFound    = errors.New("game not found")
	ErrSessionNotLoaded   = errors.New("game is not loaded in memory")
	ErrSessionNotActive   = errors.New("game is not active")
	ErrSessionFinished    = errors.New("game is already finished")
	ErrWrongGameKind      = errors.New("operation does not apply to this game kind")
	ErrPlayerNotInSession = errors.New("player is not a participant of this game")
	ErrPlayerEliminated   = errors.New("player is already out of the game")
	ErrNotEnoughPlayers   = errors.New("at least two players are required")
	ErrDuplicatePlayers   = errors.New("duplicate player in participant list")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrBiddingOpen        = errors.New("bidding is still open")
	ErrBiddingClosed      = errors.New("bidding is already closed")
	ErrBidsIncomplete     = errors.New("not every player has entered a bid")
	ErrEmptyPlayerName    = errors.New("player name cannot be empty")
	ErrEmptyPresetName    = errors.New("preset name cannot be empty")

	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilGameRepo   = errors.New("game repository cannot be nil")
	ErrNilPlayerRepo = errors.New("player repository cannot be nil")
	ErrNilPresetRepo = errors.New("preset repository cannot be nil")
	ErrNilClock      = errors.New("clock cannot be nil")
	ErrNilUUID       = errors.New("UUID generator cannot be nil")
)
