package models

import (
	"encoding/json"
	"fmt"
)

// PayloadKind discriminates the per-player score payload shapes
type PayloadKind string

const (
	// PayloadKindDart is a list of throws plus a bust flag
	PayloadKindDart PayloadKind = "dart"

	// PayloadKindPoints is a single integer round score
	PayloadKindPoints PayloadKind = "points"

	// PayloadKindBidTrick is a Wizard (bid, tricks won) pair
	PayloadKindBidTrick PayloadKind = "bid_trick"

	// PayloadKindLives is a Schwimmen lives-remaining snapshot
	PayloadKindLives PayloadKind = "lives"
)

// ScorePayload is the variant-specific per-player entry stored in a round.
// Concrete payloads form a closed set; callers dispatch on the kind tag.
type ScorePayload interface {
	PayloadKind() PayloadKind
}

// DartThrow represents a single dart
type DartThrow struct {
	// Face is the segment hit: 1-20 or 25 for bull
	Face int `json:"face"`

	// Multiplier is 1, 2 or 3 (bull allows 1 or 2)
	Multiplier int `json:"multiplier"`
}

// Value is the points scored by the throw
func (t DartThrow) Value() int {
	return t.Face * t.Multiplier
}

// DartPayload holds one player's throws for one round
type DartPayload struct {
	// Throws are the darts thrown this turn, in order, at most three
	Throws []DartThrow `json:"throws"`

	// Bust marks the whole turn as scoring zero
	Bust bool `json:"bust,omitempty"`
}

func (p *DartPayload) PayloadKind() PayloadKind { return PayloadKindDart }

// PointsPayload holds one player's integer score for one round
type PointsPayload struct {
	Points int `json:"points"`
}

func (p *PointsPayload) PayloadKind() PayloadKind { return PayloadKindPoints }

// BidTrickPayload holds one player's Wizard bid and tricks won for one
// round. Nil fields mean "not yet entered" for their phase.
type BidTrickPayload struct {
	Bid    *int `json:"bid,omitempty"`
	Tricks *int `json:"tricks,omitempty"`
}

func (p *BidTrickPayload) PayloadKind() PayloadKind { return PayloadKindBidTrick }

// LivesPayload holds one player's lives remaining after one round
type LivesPayload struct {
	Lives int `json:"lives"`
}

func (p *LivesPayload) PayloadKind() PayloadKind { return PayloadKindLives }

// payloadEnvelope is the persisted wire form of a ScorePayload
type payloadEnvelope struct {
	Kind PayloadKind     `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalPayload serializes a payload with its kind tag
func MarshalPayload(p ScorePayload) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload data: %w", err)
	}

	return json.Marshal(payloadEnvelope{
		Kind: p.PayloadKind(),
		Data: data,
	})
}

// UnmarshalPayload deserializes a tagged payload
func UnmarshalPayload(b []byte) (ScorePayload, error) {
	var env payloadEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload envelope: %w", err)
	}

	var p ScorePayload
	switch env.Kind {
	case PayloadKindDart:
		p = &DartPayload{}
	case PayloadKindPoints:
		p = &PointsPayload{}
	case PayloadKindBidTrick:
		p = &BidTrickPayload{}
	case PayloadKindLives:
		p = &LivesPayload{}
	default:
		return nil, fmt.Errorf("unknown payload kind %q", env.Kind)
	}

	if err := json.Unmarshal(env.Data, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Kind, err)
	}

	return p, nil
}

// ClonePayload returns a deep copy, used for undo records
func ClonePayload(p ScorePayload) ScorePayload {
	if p == nil {
		return nil
	}

	switch v := p.(type) {
	case *DartPayload:
		cp := &DartPayload{Bust: v.Bust}
		cp.Throws = append([]DartThrow(nil), v.Throws...)
		return cp
	case *PointsPayload:
		cp := *v
		return &cp
	case *BidTrickPayload:
		cp := &BidTrickPayload{}
		if v.Bid != nil {
			bid := *v.Bid
			cp.Bid = &bid
		}
		if v.Tricks != nil {
			tricks := *v.Tricks
			cp.Tricks = &tricks
		}
		return cp
	case *LivesPayload:
		cp := *v
		return &cp
	default:
		return nil
	}
}
