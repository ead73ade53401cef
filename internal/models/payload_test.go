package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadEnvelopeRoundTrip(t *testing.T) {
	bid, tricks := 2, 3

	payloads := []ScorePayload{
		&DartPayload{Throws: []DartThrow{{Face: 20, Multiplier: 3}, {Face: 5, Multiplier: 1}}, Bust: true},
		&PointsPayload{Points: -15},
		&BidTrickPayload{Bid: &bid, Tricks: &tricks},
		&BidTrickPayload{Bid: &bid},
		&LivesPayload{Lives: 2},
	}

	for _, p := range payloads {
		b, err := MarshalPayload(p)
		require.NoError(t, err)

		restored, err := UnmarshalPayload(b)
		require.NoError(t, err)
		assert.Equal(t, p, restored)
	}
}

func TestUnmarshalPayloadUnknownKind(t *testing.T) {
	_, err := UnmarshalPayload([]byte(`{"kind":"poker","data":{}}`))
	assert.Error(t, err)
}

func TestRoundJSONRoundTrip(t *testing.T) {
	round := NewRound(3, "p2")
	round.BidsFinal = true
	round.SetEntry("p1", &DartPayload{Throws: []DartThrow{{Face: 19, Multiplier: 2}}})
	round.SetEntry("p2", &PointsPayload{Points: 42})

	b, err := json.Marshal(round)
	require.NoError(t, err)

	var restored Round
	require.NoError(t, json.Unmarshal(b, &restored))

	assert.Equal(t, round.Number, restored.Number)
	assert.Equal(t, round.DealerID, restored.DealerID)
	assert.Equal(t, round.BidsFinal, restored.BidsFinal)
	assert.Equal(t, round.Entries, restored.Entries)
}

func TestClonePayloadIsDeep(t *testing.T) {
	bid := 1
	original := &BidTrickPayload{Bid: &bid}

	clone, ok := ClonePayload(original).(*BidTrickPayload)
	require.True(t, ok)

	*clone.Bid = 5
	assert.Equal(t, 1, *original.Bid)

	dart := &DartPayload{Throws: []DartThrow{{Face: 20, Multiplier: 1}}}
	dartClone, ok := ClonePayload(dart).(*DartPayload)
	require.True(t, ok)

	dartClone.Throws[0].Face = 5
	assert.Equal(t, 20, dart.Throws[0].Face)
}

func TestRoundCloneIsDeep(t *testing.T) {
	round := NewRound(1, "p1")
	round.SetEntry("p1", &PointsPayload{Points: 10})

	clone := round.Clone()
	clone.SetEntry("p1", &PointsPayload{Points: 99})

	points, ok := round.Entry("p1").(*PointsPayload)
	require.True(t, ok)
	assert.Equal(t, 10, points.Points)
}
