package models

import (
	"encoding/json"
	"fmt"
)

// Round represents one discrete scoring unit within a session. Round
// numbers are strictly increasing and contiguous starting at 1.
type Round struct {
	// Number is the 1-based position of the round in the session
	Number int

	// DealerID is the player dealing this round (the player on turn,
	// for dart)
	DealerID string

	// BidsFinal marks the Wizard bidding phase as closed for this round
	BidsFinal bool

	// Entries maps player ID to that player's score payload. An absent
	// key means the player has not entered anything yet.
	Entries map[string]ScorePayload
}

// NewRound creates an open round with no entries
func NewRound(number int, dealerID string) *Round {
	return &Round{
		Number:   number,
		DealerID: dealerID,
		Entries:  make(map[string]ScorePayload),
	}
}

// SetEntry records a player's payload, overwriting any previous entry
func (r *Round) SetEntry(playerID string, p ScorePayload) {
	if r.Entries == nil {
		r.Entries = make(map[string]ScorePayload)
	}
	r.Entries[playerID] = p
}

// Entry returns the payload for a player, nil if not entered
func (r *Round) Entry(playerID string) ScorePayload {
	return r.Entries[playerID]
}

// Clone returns a deep copy of the round
func (r *Round) Clone() *Round {
	cp := &Round{
		Number:    r.Number,
		DealerID:  r.DealerID,
		BidsFinal: r.BidsFinal,
		Entries:   make(map[string]ScorePayload, len(r.Entries)),
	}
	for id, p := range r.Entries {
		cp.Entries[id] = ClonePayload(p)
	}
	return cp
}

// roundJSON is the persisted wire form of a round
type roundJSON struct {
	Number    int                        `json:"number"`
	DealerID  string                     `json:"dealer_id,omitempty"`
	BidsFinal bool                       `json:"bids_final,omitempty"`
	Entries   map[string]json.RawMessage `json:"entries"`
}

// MarshalJSON serializes the round with tagged payload envelopes
func (r *Round) MarshalJSON() ([]byte, error) {
	out := roundJSON{
		Number:    r.Number,
		DealerID:  r.DealerID,
		BidsFinal: r.BidsFinal,
		Entries:   make(map[string]json.RawMessage, len(r.Entries)),
	}

	for playerID, payload := range r.Entries {
		b, err := MarshalPayload(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal entry for player %s: %w", playerID, err)
		}
		out.Entries[playerID] = b
	}

	return json.Marshal(out)
}

// UnmarshalJSON deserializes the round, restoring concrete payload types
func (r *Round) UnmarshalJSON(b []byte) error {
	var in roundJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	r.Number = in.Number
	r.DealerID = in.DealerID
	r.BidsFinal = in.BidsFinal
	r.Entries = make(map[string]ScorePayload, len(in.Entries))

	for playerID, raw := range in.Entries {
		p, err := UnmarshalPayload(raw)
		if err != nil {
			return fmt.Errorf("failed to unmarshal entry for player %s: %w", playerID, err)
		}
		r.Entries[playerID] = p
	}

	return nil
}
