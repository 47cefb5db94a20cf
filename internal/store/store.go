// Package store owns the application's chat state and all mutations on it.
package store

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"teamchat/internal/domain"
	"teamchat/internal/metrics"
	"teamchat/internal/snapshot"
)

// Store is the single source of truth for the AppState aggregate. All
// mutations run under one mutex and compute their result from the state at
// commit time, so a deferred simulator callback and a request handler can
// never lose each other's appends.
//
// Every successful mutation is followed by a write-through save of the full
// snapshot. A failed save is logged and counted but never surfaced: the
// in-memory effect is authoritative.
type Store struct {
	mu    sync.Mutex
	state *domain.AppState
	slot  snapshot.Slot
	log   *zap.Logger
	now   func() time.Time
}

// Open loads the persisted snapshot from the slot, falling back to the seed
// dataset when the slot is empty or the payload does not decode cleanly.
func Open(slot snapshot.Slot, log *zap.Logger) *Store {
	return OpenAt(slot, log, time.Now)
}

// OpenAt is Open with an injectable clock.
func OpenAt(slot snapshot.Slot, log *zap.Logger, now func() time.Time) *Store {
	s := &Store{slot: slot, log: log, now: now}

	payload, err := slot.Load()
	if err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			log.Error("loading snapshot failed, seeding fresh state", zap.Error(err))
		}
		s.state = Seed(now())
		return s
	}

	state, err := snapshot.Decode(payload)
	if err != nil {
		log.Error("decoding snapshot failed, seeding fresh state", zap.Error(err))
		s.state = Seed(now())
		return s
	}

	s.state = state
	return s
}

// Now reads the store's clock so callers stamp new entities consistently
// with the store's own mutations.
func (s *Store) Now() time.Time {
	return s.now()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// persist writes the current state through to the slot. Called with the
// lock held, after the in-memory mutation has already taken effect.
func (s *Store) persist() {
	payload, err := snapshot.Encode(s.state, s.now())
	if err != nil {
		metrics.SnapshotFailures.Inc()
		s.log.Error("encoding snapshot failed", zap.Error(err))
		return
	}
	if err := s.slot.Save(payload); err != nil {
		metrics.SnapshotFailures.Inc()
		s.log.Error("saving snapshot failed", zap.Error(err))
		return
	}
	metrics.SnapshotSaves.Inc()
}

// Login sets the session user and upserts it into the known users by id:
// replace when the id exists, append otherwise.
func (s *Store) Login(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user.Clone()
	s.state.CurrentUser = u

	replaced := false
	for i, existing := range s.state.Users {
		if existing.ID == u.ID {
			s.state.Users[i] = u
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.Users = append(s.state.Users, u)
	}
	s.persist()
}

// SendMessage appends a message authored by the session user to the room.
// It is a no-op when there is no session user or the room id is unknown,
// returning (nil, nil) with the state untouched. Empty content after trim
// is a validation error. This is the only path that creates user-authored
// session messages.
func (s *Store) SendMessage(roomID, content string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return nil, nil
	}
	room := s.state.FindRoom(roomID)
	if room == nil {
		return nil, nil
	}

	now := s.now()
	msg, err := domain.NewMessage(content, s.state.CurrentUser.ID, roomID, now)
	if err != nil {
		return nil, err
	}

	room.Messages = append(room.Messages, msg)
	room.LastActivity = now
	if room.ID == s.state.ActiveRoomID {
		room.UnreadCount = 0
	} else {
		room.UnreadCount++
	}

	metrics.MessagesCreated.Inc()
	s.persist()
	return msg.Clone(), nil
}

// PostMessage appends a message on behalf of an explicit user id, the
// request/response variant of SendMessage. Unknown rooms and users are
// ErrNotFound; the unread rule is the same as SendMessage.
func (s *Store) PostMessage(roomID, userID, content string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.state.FindRoom(roomID)
	if room == nil {
		return nil, domain.ErrNotFound
	}
	if s.state.FindUser(userID) == nil {
		return nil, domain.ErrNotFound
	}

	now := s.now()
	msg, err := domain.NewMessage(content, userID, roomID, now)
	if err != nil {
		return nil, err
	}

	room.Messages = append(room.Messages, msg)
	room.LastActivity = now
	if room.ID == s.state.ActiveRoomID {
		room.UnreadCount = 0
	} else {
		room.UnreadCount++
	}

	metrics.MessagesCreated.Inc()
	s.persist()
	return msg.Clone(), nil
}

// InjectReply appends a simulator-authored message: same append and
// activity restamp as SendMessage but it never touches the unread count.
func (s *Store) InjectReply(roomID, userID, content string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.state.FindRoom(roomID)
	if room == nil {
		return nil, domain.ErrNotFound
	}

	now := s.now()
	msg, err := domain.NewMessage(content, userID, roomID, now)
	if err != nil {
		return nil, err
	}

	room.Messages = append(room.Messages, msg)
	room.LastActivity = now

	metrics.MessagesCreated.Inc()
	metrics.SimulatedReplies.Inc()
	s.persist()
	return msg.Clone(), nil
}

// SetActiveRoom marks the room active and clears its unread count. The room
// id is accepted unconditionally; an unknown id simply matches no room.
func (s *Store) SetActiveRoom(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ActiveRoomID = roomID
	if room := s.state.FindRoom(roomID); room != nil {
		room.UnreadCount = 0
	}
	s.persist()
}

// ToggleTheme flips the theme and returns the new value.
func (s *Store) ToggleTheme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Theme == domain.ThemeLight {
		s.state.Theme = domain.ThemeDark
	} else {
		s.state.Theme = domain.ThemeLight
	}
	s.persist()
	return s.state.Theme
}

// AddReaction toggles the session user's (emoji) reaction on a message in
// the room: present pairs are removed, absent pairs appended. No-op when
// there is no session user or the room/message id is unknown.
func (s *Store) AddReaction(roomID, messageID, emoji string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return
	}
	room := s.state.FindRoom(roomID)
	if room == nil {
		return
	}
	var msg *domain.Message
	for _, m := range room.Messages {
		if m.ID == messageID {
			msg = m
			break
		}
	}
	if msg == nil {
		return
	}

	toggleReaction(msg, s.state.CurrentUser.ID, emoji, s.now())
	room.LastActivity = s.now()
	s.persist()
}

// ToggleReaction is the explicit-user variant of AddReaction, addressed by
// message id alone. Returns the updated message or ErrNotFound.
func (s *Store) ToggleReaction(messageID, userID, emoji string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, msg := s.state.FindMessage(messageID)
	if msg == nil {
		return nil, domain.ErrNotFound
	}

	toggleReaction(msg, userID, emoji, s.now())
	room.LastActivity = s.now()
	s.persist()
	return msg.Clone(), nil
}

// RemoveReaction removes the (userID, emoji) pair if present. Removing an
// absent pair is not an error; only an unknown message id is ErrNotFound.
func (s *Store) RemoveReaction(messageID, userID, emoji string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, msg := s.state.FindMessage(messageID)
	if msg == nil {
		return nil, domain.ErrNotFound
	}

	filtered := msg.Reactions[:0]
	for _, r := range msg.Reactions {
		if r.UserID == userID && r.Emoji == emoji {
			continue
		}
		filtered = append(filtered, r)
	}
	msg.Reactions = filtered
	room.LastActivity = s.now()
	s.persist()
	return msg.Clone(), nil
}

// UpdateUserStatus sets the user's presence and stamps lastSeen.
func (s *Store) UpdateUserStatus(id string, status domain.UserStatus) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.state.FindUser(id)
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Status = status
	user.LastSeen = s.now()
	s.persist()
	return user.Clone(), nil
}

// CreateRoom upserts a room by id: replace when the id exists, append
// otherwise.
func (s *Store) CreateRoom(room *domain.ChatRoom) *domain.ChatRoom {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := room.Clone()
	replaced := false
	for i, existing := range s.state.Rooms {
		if existing.ID == r.ID {
			s.state.Rooms[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.Rooms = append(s.state.Rooms, r)
	}
	s.persist()
	return r.Clone()
}

func toggleReaction(msg *domain.Message, userID, emoji string, now time.Time) {
	if msg.HasReaction(userID, emoji) {
		filtered := msg.Reactions[:0]
		for _, r := range msg.Reactions {
			if r.UserID == userID && r.Emoji == emoji {
				continue
			}
			filtered = append(filtered, r)
		}
		msg.Reactions = filtered
		return
	}
	msg.Reactions = append(msg.Reactions, domain.Reaction{
		Emoji:     emoji,
		UserID:    userID,
		Timestamp: now,
	})
}
