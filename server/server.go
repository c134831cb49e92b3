// Package server exposes the relay over HTTP: a JSON-RPC message endpoint for
// remote callers, an SSE stream of agent events, and the websocket endpoint
// the local agent dials into.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/agentbridge/relay/bridge"
)

const (
	defaultAddr              = "127.0.0.1:5000"
	defaultMessageURI        = "/message"
	defaultEventsURI         = "/events"
	defaultAgentURI          = "/ws"
	defaultKeepAliveInterval = 25 * time.Second
)

// Server wires the bridge to its HTTP surface.
type Server struct {
	bridge   *bridge.Bridge
	sessions *sessionStore

	addr        string
	messageURI  string
	eventsURI   string
	agentURI    string
	keepAlive   time.Duration
	corsConfig  *Cors
	corsHandler Middleware
	upgrader    websocket.Upgrader
}

// New creates a server for the supplied bridge.
func New(b *bridge.Bridge, options ...Option) (*Server, error) {
	if b == nil {
		return nil, errors.New("no bridge specified")
	}
	s := &Server{
		bridge:     b,
		sessions:   newSessionStore(),
		messageURI: defaultMessageURI,
		eventsURI:  defaultEventsURI,
		agentURI:   defaultAgentURI,
		keepAlive:  defaultKeepAliveInterval,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.corsConfig == nil {
		s.corsConfig = defaultCors()
	}
	if s.corsHandler == nil {
		handler := &corsHandler{Cors: s.corsConfig}
		s.corsHandler = handler.Middleware
	}
	s.upgrader = websocket.Upgrader{
		// Origin is validated by middleware using the CORS allowlist.
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	return s, nil
}
