package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	order := []string{"a", "b", "c", "d"}

	tests := []struct {
		name     string
		current  string
		finished map[string]bool
		want     string
	}{
		{
			name:    "advances to next seat",
			current: "a",
			want:    "b",
		},
		{
			name:    "wraps around",
			current: "d",
			want:    "a",
		},
		{
			name:     "skips finished players",
			current:  "a",
			finished: map[string]bool{"b": true, "c": true},
			want:     "d",
		},
		{
			name:    "unknown current starts at first seat",
			current: "zz",
			want:    "a",
		},
		{
			name:    "empty current starts at first seat",
			current: "",
			want:    "a",
		},
		{
			name:     "all finished returns input unchanged",
			current:  "b",
			finished: map[string]bool{"a": true, "b": true, "c": true, "d": true},
			want:     "b",
		},
		{
			name:     "single remaining player keeps the turn",
			current:  "c",
			finished: map[string]bool{"a": true, "b": true, "d": true},
			want:     "c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(order, tt.current, tt.finished)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextEmptyOrder(t *testing.T) {
	_, err := Next(nil, "a", nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = Reverse(nil, "a", nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestReverse(t *testing.T) {
	order := []string{"a", "b", "c", "d"}

	got, err := Reverse(order, "a", nil)
	require.NoError(t, err)
	assert.Equal(t, "d", got)

	got, err = Reverse(order, "d", map[string]bool{"c": true, "b": true})
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

// Reverse must undo Next for every active starting player.
func TestRotationRoundTrips(t *testing.T) {
	order := []string{"a", "b", "c", "d", "e"}

	finishedSets := []map[string]bool{
		nil,
		{"b": true},
		{"b": true, "d": true},
		{"a": true, "e": true},
	}

	for _, finished := range finishedSets {
		for _, cur := range order {
			if finished[cur] {
				continue
			}

			next, err := Next(order, cur, finished)
			require.NoError(t, err)

			back, err := Reverse(order, next, finished)
			require.NoError(t, err)
			assert.Equal(t, cur, back, "finished=%v cur=%s", finished, cur)
		}
	}
}
