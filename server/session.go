package server

import (
	"time"

	"github.com/google/uuid"

	"github.com/agentbridge/relay/internal/collection"
)

// sessionHeader carries the opaque session identifier; bookkeeping only, it
// plays no part in call correlation.
const sessionHeader = "Mcp-Session-Id"

// Session records one remote caller's sequence of HTTP calls.
type Session struct {
	Id      string
	Created time.Time
}

// sessionStore keeps sessions until explicit teardown; there is no expiry.
type sessionStore struct {
	sessions *collection.SyncMap[string, *Session]
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: collection.NewSyncMap[string, *Session]()}
}

// Ensure returns the session for id, creating one with a generated id when id
// is empty or unknown.
func (s *sessionStore) Ensure(id string) *Session {
	if id != "" {
		if session, ok := s.sessions.Get(id); ok {
			return session
		}
	}
	if id == "" {
		id = uuid.New().String()
	}
	session := &Session{Id: id, Created: time.Now()}
	s.sessions.Put(id, session)
	return session
}

// Get returns the session registered under id.
func (s *sessionStore) Get(id string) (*Session, bool) {
	return s.sessions.Get(id)
}

// Delete removes the session registered under id.
func (s *sessionStore) Delete(id string) {
	s.sessions.Delete(id)
}

// Size returns the number of live sessions.
func (s *sessionStore) Size() int {
	ret := 0
	s.sessions.Range(func(string, *Session) bool {
		ret++
		return true
	})
	return ret
}
