package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"teamchat/internal/domain"
)

// Version is the current snapshot schema version. Decoding rejects any
// other value.
const Version = 1

// ErrNoSnapshot signals that the slot holds no previous snapshot.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Snapshot is the versioned on-disk envelope around the full AppState.
type Snapshot struct {
	Version int              `json:"version"`
	SavedAt time.Time        `json:"savedAt"`
	State   *domain.AppState `json:"state"`
}

// Slot is a durable single-value store for the serialized snapshot.
type Slot interface {
	Load() ([]byte, error)
	Save(payload []byte) error
	Close() error
}

// Encode serializes the state into a versioned snapshot payload.
func Encode(state *domain.AppState, savedAt time.Time) ([]byte, error) {
	snap := Snapshot{Version: Version, SavedAt: savedAt, State: state}
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

// Decode parses a snapshot payload, failing closed on any shape mismatch:
// unknown fields, wrong version, or missing collections all return an error
// so the caller falls back to seed data instead of trusting a partial parse.
func Decode(payload []byte) (*domain.AppState, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != Version {
		return nil, fmt.Errorf("decode snapshot: unsupported version %d", snap.Version)
	}
	if snap.State == nil || snap.State.Users == nil || snap.State.Rooms == nil {
		return nil, fmt.Errorf("decode snapshot: incomplete state")
	}
	if snap.State.IsTyping == nil {
		snap.State.IsTyping = map[string][]string{}
	}
	for _, r := range snap.State.Rooms {
		if r.Messages == nil {
			r.Messages = []*domain.Message{}
		}
		for _, m := range r.Messages {
			if m.Reactions == nil {
				m.Reactions = []domain.Reaction{}
			}
		}
	}
	return snap.State, nil
}
