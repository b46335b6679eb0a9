package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "fairshare.db"))
	require.NoError(t, err)
	defer st.Close()

	want := testSnapshot()
	require.NoError(t, st.Save(want))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, want.NextParticipantID, got.NextParticipantID)
	assert.Equal(t, want.Participants, got.Participants)
	require.Len(t, got.Payments, 1)
	assert.True(t, got.Payments[0].Amount.Equal(want.Payments[0].Amount))
}

func TestSQLiteStore_EmptyDatabaseIsFreshStart(t *testing.T) {
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	defer st.Close()

	snap, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Participants)
	assert.Equal(t, 1, snap.NextParticipantID)
	assert.Equal(t, 1, snap.NextPaymentID)
}

func TestSQLiteStore_SaveReplaces(t *testing.T) {
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "replace.db"))
	require.NoError(t, err)
	defer st.Close()

	first := testSnapshot()
	require.NoError(t, st.Save(first))

	second := first
	second.NextPaymentID = 99
	require.NoError(t, st.Save(second))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 99, got.NextPaymentID)
}
