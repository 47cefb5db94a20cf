// Package simulator injects deferred synthetic replies after user messages.
package simulator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"teamchat/internal/store"
)

// threshold splits the uniform draw: a reply fires only when the draw
// exceeds it, giving a 30% reply rate.
const threshold = 0.7

var phrases = []string{
	"That's a great point!",
	"I totally agree with that.",
	"Interesting perspective 🤔",
	"Thanks for sharing that!",
	"Let me think about this...",
	"Good question! 👍",
}

// Simulator schedules a delayed reply from another participant after a
// user message. Every scheduled reply owns a task handle; Close stops all
// outstanding timers, so a reply can never fire into a torn-down store.
type Simulator struct {
	store    *store.Store
	log      *zap.Logger
	minDelay time.Duration
	maxDelay time.Duration

	mu     sync.Mutex
	rng    *rand.Rand
	tasks  map[string]*time.Timer
	closed bool
}

// New builds a simulator drawing delays uniformly from [minDelay, maxDelay)
// and randomness from the given source.
func New(s *store.Store, log *zap.Logger, minDelay, maxDelay time.Duration, src rand.Source) *Simulator {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Simulator{
		store:    s,
		log:      log,
		minDelay: minDelay,
		maxDelay: maxDelay,
		rng:      rand.New(src),
		tasks:    make(map[string]*time.Timer),
	}
}

// MessageSent decides whether the just-sent message in roomID earns a
// simulated reply, and if so schedules one. It never blocks the caller.
func (s *Simulator) MessageSent(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.rng.Float64() <= threshold {
		return
	}

	phrase := phrases[s.rng.Intn(len(phrases))]
	delay := s.minDelay
	if span := s.maxDelay - s.minDelay; span > 0 {
		delay += time.Duration(s.rng.Int63n(int64(span)))
	}

	id := uuid.NewString()
	s.tasks[id] = time.AfterFunc(delay, func() {
		s.fire(id, roomID, phrase)
	})
}

func (s *Simulator) fire(id, roomID, phrase string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.tasks, id)
	s.mu.Unlock()

	userID := s.pickResponder()
	if userID == "" {
		return
	}
	if _, err := s.store.InjectReply(roomID, userID, phrase); err != nil {
		s.log.Warn("simulated reply dropped", zap.String("room", roomID), zap.Error(err))
	}
}

// pickResponder selects a random known user other than the session user.
func (s *Simulator) pickResponder() string {
	state := s.store.Snapshot()

	var candidates []string
	for _, u := range state.Users {
		if state.CurrentUser != nil && u.ID == state.CurrentUser.ID {
			continue
		}
		candidates = append(candidates, u.ID)
	}
	if len(candidates) == 0 {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rng.Intn(len(candidates))]
}

// Pending reports how many replies are scheduled but not yet fired.
func (s *Simulator) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Close cancels every outstanding reply and rejects new ones.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, t := range s.tasks {
		t.Stop()
		delete(s.tasks, id)
	}
}
