package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// Status reports relay availability; informational only.
type Status struct {
	Status         string    `json:"status"`
	AgentConnected bool      `json:"agent_connected"`
	QueueSize      int       `json:"queue_size"`
	PendingCalls   int       `json:"pending_calls"`
	Sessions       int       `json:"sessions"`
	Timestamp      time.Time `json:"timestamp"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	status := &Status{
		Status:         "Running",
		AgentConnected: s.bridge.Connected(),
		QueueSize:      s.bridge.QueueSize(),
		PendingCalls:   s.bridge.PendingSize(),
		Sessions:       s.sessions.Size(),
		Timestamp:      time.Now().UTC(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}
