package bridge

import (
	"context"
	"log"
	"sync"
)

// Conn abstracts the live agent transport so the bridge never depends on a
// concrete websocket type.
type Conn interface {
	// Write sends a single frame to the agent.
	Write(ctx context.Context, data []byte) error
	// Close tears the transport down.
	Close() error
}

// Slot owns the single live agent connection. Installing a new connection
// supersedes and closes the previous one; at most one connection is current
// at any instant.
type Slot struct {
	mux     sync.Mutex
	current Conn
}

// NewSlot creates an empty connection slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Install makes conn current, closing any previously installed connection.
// Close failure on the old connection is logged, not propagated.
func (s *Slot) Install(conn Conn) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.current != nil {
		if err := s.current.Close(); err != nil {
			log.Printf("[slot] failed to close superseded connection: %v", err)
		}
	}
	s.current = conn
}

// Current returns the installed connection or nil.
func (s *Slot) Current() Conn {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.current
}

// Clear removes conn only if it is still current. A stale connection clearing
// itself after having been superseded must not erase a newer one.
func (s *Slot) Clear(conn Conn) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.current == conn {
		s.current = nil
	}
}
