package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/agentbridge/relay/bridge"
)

// handleEvents streams queued agent events to one subscriber as server-sent
// events, emitting a comment frame whenever the queue stays idle past the
// keep-alive interval so the transport is not considered dead.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	queue := s.bridge.Events()
	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		event, err := queue.Pop(s.keepAlive)
		if err != nil {
			if !errors.Is(err, bridge.ErrEmpty) {
				log.Printf("[sse] pop failed: %v", err)
				return
			}
			if _, wErr := fmt.Fprint(w, ": keepalive\n\n"); wErr != nil {
				return
			}
			flusher.Flush()
			continue
		}
		if _, wErr := fmt.Fprintf(w, "data: %s\n\n", event.Payload); wErr != nil {
			return
		}
		flusher.Flush()
	}
}
