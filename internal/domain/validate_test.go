package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamchat/internal/domain"
)

func TestNewUser(t *testing.T) {
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		u, err := domain.NewUser("  Alex Johnson  ", "https://example.com/a.png", domain.StatusOnline, now)
		require.NoError(t, err)
		assert.Equal(t, "Alex Johnson", u.Name)
		assert.Equal(t, domain.StatusOnline, u.Status)
		assert.Equal(t, now, u.CreatedAt)
		assert.Equal(t, now, u.LastSeen)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("DefaultsToOnline", func(t *testing.T) {
		u, err := domain.NewUser("Sarah", "https://example.com/s.png", "", now)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusOnline, u.Status)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := domain.NewUser("   ", "https://example.com/a.png", domain.StatusOnline, now)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "name", verr.Fields[0].Field)
	})

	t.Run("BadAvatarURL", func(t *testing.T) {
		_, err := domain.NewUser("Alex", "not a url", domain.StatusOnline, now)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "avatar", verr.Fields[0].Field)
	})

	t.Run("BadStatus", func(t *testing.T) {
		_, err := domain.NewUser("Alex", "https://example.com/a.png", "busy", now)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "status", verr.Fields[0].Field)
	})
}

func TestNewRoom(t *testing.T) {
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		r, err := domain.NewRoom("Design", "UI reviews", []string{"user_1"}, domain.RoomPrivate, now)
		require.NoError(t, err)
		assert.Equal(t, domain.RoomPrivate, r.Type)
		assert.Empty(t, r.Messages)
		assert.Zero(t, r.UnreadCount)
	})

	t.Run("DefaultsToPublic", func(t *testing.T) {
		r, err := domain.NewRoom("Design", "", nil, "", now)
		require.NoError(t, err)
		assert.Equal(t, domain.RoomPublic, r.Type)
		assert.NotNil(t, r.Members)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := domain.NewRoom("  ", "", nil, domain.RoomPublic, now)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "name", verr.Fields[0].Field)
	})
}

func TestNewMessage(t *testing.T) {
	now := time.Now()

	t.Run("TrimsContent", func(t *testing.T) {
		m, err := domain.NewMessage("  hello  ", "user_1", "room_1", now)
		require.NoError(t, err)
		assert.Equal(t, "hello", m.Content)
		assert.Equal(t, domain.MessageText, m.Type)
		assert.Empty(t, m.Reactions)
		assert.NotNil(t, m.Reactions)
	})

	t.Run("EmptyAfterTrim", func(t *testing.T) {
		_, err := domain.NewMessage("   ", "user_1", "room_1", now)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "content", verr.Fields[0].Field)
	})

	t.Run("CollectsAllFieldErrors", func(t *testing.T) {
		_, err := domain.NewMessage("", "", "", now)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 3)
	})
}

func TestCloneIsDeep(t *testing.T) {
	now := time.Now()
	state := &domain.AppState{
		Users: []*domain.User{{ID: "u1", Name: "Alex"}},
		Rooms: []*domain.ChatRoom{{
			ID:      "r1",
			Name:    "General",
			Members: []string{"u1"},
			Messages: []*domain.Message{{
				ID:        "m1",
				Content:   "hi",
				Reactions: []domain.Reaction{{Emoji: "👍", UserID: "u1", Timestamp: now}},
			}},
		}},
		Theme:    domain.ThemeLight,
		IsTyping: map[string][]string{"r1": {"u1"}},
	}

	cp := state.Clone()
	cp.Users[0].Name = "changed"
	cp.Rooms[0].Messages[0].Content = "changed"
	cp.Rooms[0].Messages[0].Reactions[0].Emoji = "💥"
	cp.Rooms[0].Members[0] = "changed"
	cp.IsTyping["r1"][0] = "changed"

	assert.Equal(t, "Alex", state.Users[0].Name)
	assert.Equal(t, "hi", state.Rooms[0].Messages[0].Content)
	assert.Equal(t, "👍", state.Rooms[0].Messages[0].Reactions[0].Emoji)
	assert.Equal(t, "u1", state.Rooms[0].Members[0])
	assert.Equal(t, "u1", state.IsTyping["r1"][0])
}

func TestNewIDFormat(t *testing.T) {
	id := domain.NewID("msg")
	assert.Regexp(t, `^msg_\d+_\d+$`, id)
}
