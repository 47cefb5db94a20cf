package domain

import "time"

// UserStatus is a user's presence state.
type UserStatus string

const (
	StatusOnline  UserStatus = "online"
	StatusAway    UserStatus = "away"
	StatusOffline UserStatus = "offline"
)

// MessageType distinguishes plain text messages from attachments.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageFile  MessageType = "file"
)

// RoomType distinguishes public channels, private channels and DMs.
type RoomType string

const (
	RoomPublic  RoomType = "public"
	RoomPrivate RoomType = "private"
	RoomDirect  RoomType = "direct"
)

// Theme is the UI color scheme carried in the app state.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// User represents a chat participant.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Avatar    string     `json:"avatar"`
	Status    UserStatus `json:"status"`
	LastSeen  time.Time  `json:"lastSeen"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Reaction is a single emoji reaction on a message. A message holds at most
// one reaction per (userId, emoji) pair.
type Reaction struct {
	Emoji     string    `json:"emoji"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}

// Message represents a single chat message. Timestamp is set at creation and
// never changes; only the reaction list mutates after creation.
type Message struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	UserID    string      `json:"userId"`
	RoomID    string      `json:"roomId"`
	Timestamp time.Time   `json:"timestamp"`
	Edited    bool        `json:"edited,omitempty"`
	Reactions []Reaction  `json:"reactions"`
	Type      MessageType `json:"type"`
}

// ChatRoom owns its messages in chronological order.
type ChatRoom struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Members      []string   `json:"members"`
	Messages     []*Message `json:"messages"`
	UnreadCount  int        `json:"unreadCount"`
	LastActivity time.Time  `json:"lastActivity"`
	Type         RoomType   `json:"type"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// AppState is the full aggregate the store owns: the logged-in session
// identity, all known users and rooms, the active room and the UI theme.
type AppState struct {
	CurrentUser  *User               `json:"currentUser"`
	Users        []*User             `json:"users"`
	Rooms        []*ChatRoom         `json:"rooms"`
	ActiveRoomID string              `json:"activeRoomId"`
	Theme        Theme               `json:"theme"`
	IsTyping     map[string][]string `json:"isTyping"`
}

// FindUser returns the user with the given id, or nil.
func (s *AppState) FindUser(id string) *User {
	for _, u := range s.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// FindRoom returns the room with the given id, or nil.
func (s *AppState) FindRoom(id string) *ChatRoom {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// FindMessage scans every room for the message with the given id and returns
// it together with its owning room, or (nil, nil).
func (s *AppState) FindMessage(messageID string) (*ChatRoom, *Message) {
	for _, r := range s.Rooms {
		for _, m := range r.Messages {
			if m.ID == messageID {
				return r, m
			}
		}
	}
	return nil, nil
}

// HasReaction reports whether the message already carries a reaction for the
// (userID, emoji) pair.
func (m *Message) HasReaction(userID, emoji string) bool {
	for _, r := range m.Reactions {
		if r.UserID == userID && r.Emoji == emoji {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

// Clone returns a deep copy of the message including its reaction list.
func (m *Message) Clone() *Message {
	cp := *m
	cp.Reactions = make([]Reaction, len(m.Reactions))
	copy(cp.Reactions, m.Reactions)
	return &cp
}

// Clone returns a deep copy of the room including members and messages.
func (r *ChatRoom) Clone() *ChatRoom {
	cp := *r
	cp.Members = make([]string, len(r.Members))
	copy(cp.Members, r.Members)
	cp.Messages = make([]*Message, len(r.Messages))
	for i, m := range r.Messages {
		cp.Messages[i] = m.Clone()
	}
	return &cp
}

// Clone returns a deep copy of the whole aggregate so callers can read it
// without aliasing store-owned memory.
func (s *AppState) Clone() *AppState {
	cp := &AppState{
		CurrentUser:  s.CurrentUser.Clone(),
		Users:        make([]*User, len(s.Users)),
		Rooms:        make([]*ChatRoom, len(s.Rooms)),
		ActiveRoomID: s.ActiveRoomID,
		Theme:        s.Theme,
		IsTyping:     make(map[string][]string, len(s.IsTyping)),
	}
	for i, u := range s.Users {
		cp.Users[i] = u.Clone()
	}
	for i, r := range s.Rooms {
		cp.Rooms[i] = r.Clone()
	}
	for k, v := range s.IsTyping {
		ids := make([]string, len(v))
		copy(ids, v)
		cp.IsTyping[k] = ids
	}
	return cp
}
