package snapshot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamchat/internal/snapshot"
	"teamchat/internal/store"
)

func TestRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	state := store.Seed(now)

	payload, err := snapshot.Encode(state, now)
	require.NoError(t, err)

	decoded, err := snapshot.Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestDecodeFailsClosed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Garbage", func(t *testing.T) {
		_, err := snapshot.Decode([]byte(`{not json`))
		assert.Error(t, err)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := snapshot.Decode([]byte(`{"version":1,"savedAt":"2026-03-01T12:00:00Z","state":null,"extra":true}`))
		assert.Error(t, err)
	})

	t.Run("WrongVersion", func(t *testing.T) {
		payload, err := snapshot.Encode(store.Seed(now), now)
		require.NoError(t, err)
		payload = append([]byte(`{"version":99,`), payload[len(`{"version":1,`):]...)

		_, err = snapshot.Decode(payload)
		assert.Error(t, err)
	})

	t.Run("MissingState", func(t *testing.T) {
		_, err := snapshot.Decode([]byte(`{"version":1,"savedAt":"2026-03-01T12:00:00Z","state":null}`))
		assert.Error(t, err)
	})

	t.Run("MissingCollections", func(t *testing.T) {
		_, err := snapshot.Decode([]byte(`{"version":1,"savedAt":"2026-03-01T12:00:00Z","state":{"currentUser":null,"users":null,"rooms":null,"activeRoomId":"","theme":"light","isTyping":{}}}`))
		assert.Error(t, err)
	})
}

func TestSQLiteSlot(t *testing.T) {
	dsn := t.TempDir() + "/snap.db"
	slot, err := snapshot.OpenSQLite(dsn, "chatApp")
	require.NoError(t, err)
	defer slot.Close()

	_, err = slot.Load()
	assert.ErrorIs(t, err, snapshot.ErrNoSnapshot)

	require.NoError(t, slot.Save([]byte("v1")))
	got, err := slot.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	// Save upserts in place.
	require.NoError(t, slot.Save([]byte("v2")))
	got, err = slot.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}
