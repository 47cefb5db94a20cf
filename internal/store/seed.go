package store

import (
	"time"

	"teamchat/internal/domain"
)

// Seed builds the fixed sample dataset used whenever no usable snapshot
// exists. Timestamps are offsets from now so message ordering is stable.
func Seed(now time.Time) *domain.AppState {
	users := []*domain.User{
		{
			ID:        "user_1",
			Name:      "Alex Johnson",
			Avatar:    "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg?auto=compress&cs=tinysrgb&w=64&h=64&fit=crop",
			Status:    domain.StatusOnline,
			LastSeen:  now,
			CreatedAt: now,
		},
		{
			ID:        "user_2",
			Name:      "Sarah Chen",
			Avatar:    "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg?auto=compress&cs=tinysrgb&w=64&h=64&fit=crop",
			Status:    domain.StatusOnline,
			LastSeen:  now,
			CreatedAt: now,
		},
		{
			ID:        "user_3",
			Name:      "Mike Rodriguez",
			Avatar:    "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=64&h=64&fit=crop",
			Status:    domain.StatusAway,
			LastSeen:  now.Add(-15 * time.Minute),
			CreatedAt: now,
		},
		{
			ID:        "user_4",
			Name:      "Emma Wilson",
			Avatar:    "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=64&h=64&fit=crop",
			Status:    domain.StatusOffline,
			LastSeen:  now.Add(-2 * time.Hour),
			CreatedAt: now,
		},
	}

	generalMessages := []*domain.Message{
		{
			ID:        "msg_1",
			Content:   "Hey everyone! Welcome to our team chat 🎉",
			UserID:    "user_2",
			RoomID:    "room_1",
			Timestamp: now.Add(-2 * time.Hour),
			Reactions: []domain.Reaction{
				{Emoji: "👋", UserID: "user_1", Timestamp: now.Add(-2 * time.Hour)},
				{Emoji: "🎉", UserID: "user_3", Timestamp: now.Add(-2 * time.Hour)},
			},
			Type: domain.MessageText,
		},
		{
			ID:        "msg_2",
			Content:   "Thanks Sarah! Excited to be working with this amazing team.",
			UserID:    "user_1",
			RoomID:    "room_1",
			Timestamp: now.Add(-90 * time.Minute),
			Reactions: []domain.Reaction{
				{Emoji: "❤️", UserID: "user_2", Timestamp: now.Add(-90 * time.Minute)},
			},
			Type: domain.MessageText,
		},
		{
			ID:        "msg_3",
			Content:   "Has anyone seen the latest project updates? The new features look incredible!",
			UserID:    "user_3",
			RoomID:    "room_1",
			Timestamp: now.Add(-1 * time.Hour),
			Reactions: []domain.Reaction{},
			Type:      domain.MessageText,
		},
	}

	devMessages := []*domain.Message{
		{
			ID:        "msg_4",
			Content:   "Just pushed the new authentication system. Ready for review! 🚀",
			UserID:    "user_1",
			RoomID:    "room_2",
			Timestamp: now.Add(-30 * time.Minute),
			Reactions: []domain.Reaction{
				{Emoji: "🔥", UserID: "user_2", Timestamp: now.Add(-25 * time.Minute)},
			},
			Type: domain.MessageText,
		},
	}

	randomMessages := []*domain.Message{
		{
			ID:        "msg_5",
			Content:   "Anyone else excited for the weekend? Planning to try that new restaurant downtown! 🍕",
			UserID:    "user_4",
			RoomID:    "room_3",
			Timestamp: now.Add(-45 * time.Minute),
			Reactions: []domain.Reaction{
				{Emoji: "🍕", UserID: "user_1", Timestamp: now.Add(-40 * time.Minute)},
				{Emoji: "😋", UserID: "user_2", Timestamp: now.Add(-35 * time.Minute)},
			},
			Type: domain.MessageText,
		},
	}

	rooms := []*domain.ChatRoom{
		{
			ID:           "room_1",
			Name:         "General",
			Description:  "Main team discussion",
			Members:      []string{"user_1", "user_2", "user_3", "user_4"},
			Messages:     generalMessages,
			UnreadCount:  0,
			LastActivity: now.Add(-1 * time.Hour),
			Type:         domain.RoomPublic,
			CreatedAt:    now,
		},
		{
			ID:           "room_2",
			Name:         "Development",
			Description:  "Technical discussions and code reviews",
			Members:      []string{"user_1", "user_2", "user_3"},
			Messages:     devMessages,
			UnreadCount:  2,
			LastActivity: now.Add(-30 * time.Minute),
			Type:         domain.RoomPublic,
			CreatedAt:    now,
		},
		{
			ID:           "room_3",
			Name:         "Random",
			Description:  "Off-topic conversations and fun stuff",
			Members:      []string{"user_1", "user_2", "user_3", "user_4"},
			Messages:     randomMessages,
			UnreadCount:  1,
			LastActivity: now.Add(-45 * time.Minute),
			Type:         domain.RoomPublic,
			CreatedAt:    now,
		},
	}

	return &domain.AppState{
		CurrentUser:  nil,
		Users:        users,
		Rooms:        rooms,
		ActiveRoomID: "room_1",
		Theme:        domain.ThemeLight,
		IsTyping:     map[string][]string{},
	}
}
