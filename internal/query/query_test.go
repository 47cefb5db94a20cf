package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teamchat/internal/query"
	"teamchat/internal/snapshot"
	"teamchat/internal/store"
)

type memSlot struct {
	payload []byte
}

func (m *memSlot) Load() ([]byte, error) {
	if m.payload == nil {
		return nil, snapshot.ErrNoSnapshot
	}
	return m.payload, nil
}

func (m *memSlot) Save(payload []byte) error {
	m.payload = payload
	return nil
}

func (m *memSlot) Close() error { return nil }

var seedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) *query.Service {
	t.Helper()
	s := store.OpenAt(&memSlot{}, zap.NewNop(), func() time.Time { return seedTime })
	return query.NewService(s)
}

func TestListRooms(t *testing.T) {
	q := newService(t)

	rooms := q.ListRooms()
	require.Len(t, rooms, 3)
	assert.Equal(t, "General", rooms[0].Name)
	assert.Len(t, rooms[0].Messages, 3, "rooms come back with messages populated")
}

func TestGetRoom(t *testing.T) {
	q := newService(t)

	room, err := q.GetRoom("room_2")
	require.NoError(t, err)
	assert.Equal(t, "Development", room.Name)
	assert.Len(t, room.Messages, 1)

	_, err = q.GetRoom("room_404")
	assert.Error(t, err)
}

func TestListMessages(t *testing.T) {
	q := newService(t)

	t.Run("AscendingByTimestamp", func(t *testing.T) {
		msgs := q.ListMessages("room_1", 50, 0)
		require.Len(t, msgs, 3)
		assert.Equal(t, "msg_1", msgs[0].ID)
		assert.Equal(t, "msg_2", msgs[1].ID)
		assert.Equal(t, "msg_3", msgs[2].ID)
	})

	t.Run("LimitOneReturnsOldest", func(t *testing.T) {
		msgs := q.ListMessages("room_1", 1, 0)
		require.Len(t, msgs, 1)
		assert.Equal(t, "msg_1", msgs[0].ID)
	})

	t.Run("Offset", func(t *testing.T) {
		msgs := q.ListMessages("room_1", 50, 1)
		require.Len(t, msgs, 2)
		assert.Equal(t, "msg_2", msgs[0].ID)
	})

	t.Run("OffsetPastEnd", func(t *testing.T) {
		assert.Empty(t, q.ListMessages("room_1", 50, 10))
	})

	t.Run("UnknownRoom", func(t *testing.T) {
		assert.Empty(t, q.ListMessages("room_404", 50, 0))
	})

	t.Run("EqualTimestampsKeepInsertionOrder", func(t *testing.T) {
		s := store.OpenAt(&memSlot{}, zap.NewNop(), func() time.Time { return seedTime })
		first, err := s.PostMessage("room_3", "user_1", "first")
		require.NoError(t, err)
		second, err := s.PostMessage("room_3", "user_2", "second")
		require.NoError(t, err)

		msgs := query.NewService(s).ListMessages("room_3", 50, 1)
		require.Len(t, msgs, 2)
		assert.Equal(t, first.ID, msgs[0].ID)
		assert.Equal(t, second.ID, msgs[1].ID)
	})
}

func TestSearchMessages(t *testing.T) {
	q := newService(t)

	t.Run("SeedAuthQuery", func(t *testing.T) {
		msgs := q.SearchMessages("auth", "room_2")
		require.Len(t, msgs, 1)
		assert.Equal(t, "Just pushed the new authentication system. Ready for review! 🚀", msgs[0].Content)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		msgs := q.SearchMessages("WELCOME", "")
		require.Len(t, msgs, 1)
		assert.Equal(t, "msg_1", msgs[0].ID)
	})

	t.Run("NewestFirst", func(t *testing.T) {
		msgs := q.SearchMessages("the", "")
		require.True(t, len(msgs) >= 2)
		for i := 1; i < len(msgs); i++ {
			assert.False(t, msgs[i].Timestamp.After(msgs[i-1].Timestamp))
		}
	})

	t.Run("RoomFilter", func(t *testing.T) {
		assert.Empty(t, q.SearchMessages("auth", "room_1"))
	})

	t.Run("CapAtTwenty", func(t *testing.T) {
		s := store.OpenAt(&memSlot{}, zap.NewNop(), func() time.Time { return seedTime })
		for i := 0; i < 25; i++ {
			_, err := s.PostMessage("room_1", "user_1", "needle in a haystack")
			require.NoError(t, err)
		}
		assert.Len(t, query.NewService(s).SearchMessages("needle", ""), 20)
	})
}

func TestSearchUsers(t *testing.T) {
	q := newService(t)

	t.Run("SubstringMatch", func(t *testing.T) {
		users := q.SearchUsers("son")
		require.Len(t, users, 2)
		names := []string{users[0].Name, users[1].Name}
		assert.Contains(t, names, "Alex Johnson")
		assert.Contains(t, names, "Emma Wilson")
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		users := q.SearchUsers("SARAH")
		require.Len(t, users, 1)
		assert.Equal(t, "Sarah Chen", users[0].Name)
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.Empty(t, q.SearchUsers("zzz"))
	})
}

func TestGetUser(t *testing.T) {
	q := newService(t)

	u, err := q.GetUser("user_2")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", u.Name)

	_, err = q.GetUser("user_404")
	assert.Error(t, err)
}
