package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkoehler/spielstand/internal/models"
)

func TestLedgerOpenAndRemove(t *testing.T) {
	l := New()
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Last())

	r1 := l.OpenRound("a")
	assert.Equal(t, 1, r1.Number)
	assert.Equal(t, "a", r1.DealerID)

	r2 := l.OpenRound("b")
	assert.Equal(t, 2, r2.Number)
	assert.Same(t, r2, l.Last())
	assert.Same(t, r1, l.Round(1))
	assert.Nil(t, l.Round(3))

	removed, err := l.RemoveLast()
	require.NoError(t, err)
	assert.Same(t, r2, removed)
	assert.Equal(t, 1, l.Len())

	// Re-opening after a removal reuses the freed number
	r2b := l.OpenRound("b")
	assert.Equal(t, 2, r2b.Number)
}

func TestLedgerRemoveLastEmpty(t *testing.T) {
	l := New()
	_, err := l.RemoveLast()
	assert.ErrorIs(t, err, ErrNoRounds)
}

func TestFromRounds(t *testing.T) {
	t.Run("contiguous rounds accepted", func(t *testing.T) {
		l, err := FromRounds([]*models.Round{
			models.NewRound(1, "a"),
			models.NewRound(2, "b"),
			models.NewRound(3, "c"),
		})
		require.NoError(t, err)
		assert.Equal(t, 3, l.Len())
	})

	t.Run("gap rejected", func(t *testing.T) {
		_, err := FromRounds([]*models.Round{
			models.NewRound(1, "a"),
			models.NewRound(3, "c"),
		})
		assert.Error(t, err)
	})

	t.Run("not starting at one rejected", func(t *testing.T) {
		_, err := FromRounds([]*models.Round{models.NewRound(2, "b")})
		assert.Error(t, err)
	})
}

func TestLedgerRoundsIsACopy(t *testing.T) {
	l := New()
	l.OpenRound("a")

	rounds := l.Rounds()
	rounds[0] = nil

	assert.NotNil(t, l.Round(1))
}

func TestUndoStackLIFO(t *testing.T) {
	s := NewUndoStack()
	assert.Nil(t, s.Pop())

	first := &UndoRecord{Kind: UndoKindScoreEntry, RoundNumber: 1}
	second := &UndoRecord{Kind: UndoKindRoundBoundary, RoundNumber: 1}
	s.Push(first)
	s.Push(second)
	assert.Equal(t, 2, s.Len())

	assert.Same(t, second, s.Pop())
	assert.Same(t, first, s.Pop())
	assert.Nil(t, s.Pop())
}

func TestUndoStackClear(t *testing.T) {
	s := NewUndoStack()
	s.Push(&UndoRecord{Kind: UndoKindScoreEntry})
	s.Push(&UndoRecord{Kind: UndoKindTurnAdvance})

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Pop())
}
