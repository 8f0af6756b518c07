package device

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStateStoreLastWriteWins verifies that each update fully replaces the
// previous snapshot rather than merging with it.
func TestStateStoreLastWriteWins(t *testing.T) {
	t.Parallel()

	store := NewStateStore()

	first := Snapshot{{Channel: "A0", Value: "on"}, {Channel: "D1", Value: "LOW"}}
	second := Snapshot{{Channel: "D2", Value: "HIGH"}}

	require.NoError(t, store.Update(first))
	require.NoError(t, store.Update(second))
	require.Equal(t, second, store.Current())
}

// TestStateStoreRejectsEmptySnapshot verifies that an empty update is an
// error and leaves the stored snapshot untouched.
func TestStateStoreRejectsEmptySnapshot(t *testing.T) {
	t.Parallel()

	store := NewStateStore()
	existing := Snapshot{{Channel: "A0", Value: "on"}}
	require.NoError(t, store.Update(existing))

	require.ErrorIs(t, store.Update(nil), ErrEmptySnapshot)
	require.ErrorIs(t, store.Update(Snapshot{}), ErrEmptySnapshot)
	require.Equal(t, existing, store.Current())
}

// TestStateStoreEmptyBeforeFirstReport verifies the store starts empty.
func TestStateStoreEmptyBeforeFirstReport(t *testing.T) {
	t.Parallel()

	store := NewStateStore()
	require.Empty(t, store.Current())
}

// TestStateStoreCopiesOnReadAndWrite verifies that neither the caller's
// slice nor the returned slice aliases the stored snapshot.
func TestStateStoreCopiesOnReadAndWrite(t *testing.T) {
	t.Parallel()

	store := NewStateStore()
	input := Snapshot{{Channel: "A0", Value: "on"}}
	require.NoError(t, store.Update(input))

	input[0].Value = "off"
	got := store.Current()
	require.Equal(t, "on", got[0].Value)

	got[0].Value = "mutated"
	require.Equal(t, "on", store.Current()[0].Value)
}
