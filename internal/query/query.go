// Package query provides the read-side operations over the chat state.
package query

import (
	"sort"
	"strings"

	"teamchat/internal/domain"
	"teamchat/internal/store"
)

const (
	// DefaultPageSize is the message page size when the caller gives none.
	DefaultPageSize = 50
	// maxMessageResults caps substring search over messages.
	maxMessageResults = 20
	// maxUserResults caps substring search over users.
	maxUserResults = 10
)

// Service answers reads against snapshots of the store. Every call works on
// a fresh deep copy, so returned values never alias live state.
type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// ListRooms returns all rooms with their messages populated.
func (s *Service) ListRooms() []*domain.ChatRoom {
	return s.store.Snapshot().Rooms
}

// GetRoom returns the room with its messages, or ErrNotFound.
func (s *Service) GetRoom(id string) (*domain.ChatRoom, error) {
	room := s.store.Snapshot().FindRoom(id)
	if room == nil {
		return nil, domain.ErrNotFound
	}
	return room, nil
}

// ListUsers returns all known users.
func (s *Service) ListUsers() []*domain.User {
	return s.store.Snapshot().Users
}

// GetUser returns the user with the given id, or ErrNotFound.
func (s *Service) GetUser(id string) (*domain.User, error) {
	user := s.store.Snapshot().FindUser(id)
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// ListMessages returns one page of a room's messages sorted ascending by
// timestamp. The sort is stable, so messages with equal timestamps keep
// their insertion order. Unknown rooms page over nothing.
func (s *Service) ListMessages(roomID string, limit, offset int) []*domain.Message {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	room := s.store.Snapshot().FindRoom(roomID)
	if room == nil {
		return []*domain.Message{}
	}

	msgs := room.Messages
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})

	if offset >= len(msgs) {
		return []*domain.Message{}
	}
	end := offset + limit
	if end > len(msgs) {
		end = len(msgs)
	}
	return msgs[offset:end]
}

// SearchMessages matches content case-insensitively against the query,
// optionally restricted to one room, newest first, capped at 20 results.
func (s *Service) SearchMessages(q, roomID string) []*domain.Message {
	term := strings.ToLower(q)

	var matches []*domain.Message
	for _, room := range s.store.Snapshot().Rooms {
		if roomID != "" && room.ID != roomID {
			continue
		}
		for _, m := range room.Messages {
			if strings.Contains(strings.ToLower(m.Content), term) {
				matches = append(matches, m)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Timestamp.After(matches[j].Timestamp)
	})
	if len(matches) > maxMessageResults {
		matches = matches[:maxMessageResults]
	}
	if matches == nil {
		matches = []*domain.Message{}
	}
	return matches
}

// SearchUsers matches names case-insensitively against the query, capped at
// 10 results.
func (s *Service) SearchUsers(q string) []*domain.User {
	term := strings.ToLower(q)

	matches := []*domain.User{}
	for _, u := range s.store.Snapshot().Users {
		if strings.Contains(strings.ToLower(u.Name), term) {
			matches = append(matches, u)
			if len(matches) == maxUserResults {
				break
			}
		}
	}
	return matches
}
