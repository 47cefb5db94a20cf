package domain

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"
)

// NewID generates an opaque id of the form <prefix>_<unixMillis>_<suffix>.
// Prefixes in use: "user", "room", "msg".
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}

func validStatus(s UserStatus) bool {
	switch s {
	case StatusOnline, StatusAway, StatusOffline:
		return true
	}
	return false
}

func validRoomType(t RoomType) bool {
	switch t {
	case RoomPublic, RoomPrivate, RoomDirect:
		return true
	}
	return false
}

func validMessageType(t MessageType) bool {
	switch t {
	case MessageText, MessageImage, MessageFile:
		return true
	}
	return false
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// NewUser constructs a validated user with a fresh id. The name is trimmed;
// an empty status defaults to online.
func NewUser(name, avatar string, status UserStatus, now time.Time) (*User, error) {
	if status == "" {
		status = StatusOnline
	}
	verr := &ValidationError{}
	name = strings.TrimSpace(name)
	if name == "" {
		verr.Add("name", "is required")
	}
	if !validURL(avatar) {
		verr.Add("avatar", "must be a valid URL")
	}
	if !validStatus(status) {
		verr.Add("status", "must be one of online, away, offline")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &User{
		ID:        NewID("user"),
		Name:      name,
		Avatar:    avatar,
		Status:    status,
		LastSeen:  now,
		CreatedAt: now,
	}, nil
}

// NewRoom constructs a validated room with a fresh id and no messages. An
// empty type defaults to public.
func NewRoom(name, description string, members []string, roomType RoomType, now time.Time) (*ChatRoom, error) {
	if roomType == "" {
		roomType = RoomPublic
	}
	verr := &ValidationError{}
	name = strings.TrimSpace(name)
	if name == "" {
		verr.Add("name", "is required")
	}
	if !validRoomType(roomType) {
		verr.Add("type", "must be one of public, private, direct")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	if members == nil {
		members = []string{}
	}
	return &ChatRoom{
		ID:           NewID("room"),
		Name:         name,
		Description:  description,
		Members:      members,
		Messages:     []*Message{},
		UnreadCount:  0,
		LastActivity: now,
		Type:         roomType,
		CreatedAt:    now,
	}, nil
}

// NewMessage constructs a validated text message with a fresh id and an
// empty reaction list. Content is trimmed and must be non-empty afterwards.
func NewMessage(content, userID, roomID string, now time.Time) (*Message, error) {
	verr := &ValidationError{}
	content = strings.TrimSpace(content)
	if content == "" {
		verr.Add("content", "is required")
	}
	if userID == "" {
		verr.Add("userId", "is required")
	}
	if roomID == "" {
		verr.Add("roomId", "is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &Message{
		ID:        NewID("msg"),
		Content:   content,
		UserID:    userID,
		RoomID:    roomID,
		Timestamp: now,
		Reactions: []Reaction{},
		Type:      MessageText,
	}, nil
}

// ValidateStatus checks that a raw status string names a known presence
// state and returns it typed.
func ValidateStatus(raw string) (UserStatus, error) {
	s := UserStatus(raw)
	if !validStatus(s) {
		verr := &ValidationError{}
		verr.Add("status", "must be one of online, away, offline")
		return "", verr
	}
	return s, nil
}
