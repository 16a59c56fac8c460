package limbor

import (
	"sync"
	"time"
)

const defaultHistoryLimit = 20

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Role    string
	Content string
	At      time.Time
}

// Session is caller-owned conversation state with bounded history retention.
// The engine never stores sessions; callers pass one in when they want the
// exchange recorded.
type Session struct {
	ID string

	mu    sync.Mutex
	limit int
	turns []Turn
}

// NewSession creates a session retaining at most limit turns; limit <= 0
// selects the default of 20.
func NewSession(id string, limit int) *Session {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &Session{ID: id, limit: limit}
}

// Add appends a turn, discarding the oldest once the limit is exceeded.
func (s *Session) Add(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, Turn{Role: role, Content: content, At: time.Now()})
	if len(s.turns) > s.limit {
		s.turns = s.turns[len(s.turns)-s.limit:]
	}
}

// History returns a copy of the retained turns, oldest first.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len reports how many turns are retained.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}
