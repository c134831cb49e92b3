package server

import (
	"fmt"
	"time"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithAddr sets the default listen address.
func WithAddr(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithCORS adds a new CORS handler to the server.
func WithCORS(cors *Cors) Option {
	return func(s *Server) error {
		s.corsConfig = cors
		handler := &corsHandler{Cors: cors}
		s.corsHandler = handler.Middleware
		return nil
	}
}

// WithMessageURI sets the JSON-RPC call endpoint URI.
func WithMessageURI(uri string) Option {
	return func(s *Server) error {
		s.messageURI = uri
		return nil
	}
}

// WithEventsURI sets the SSE stream endpoint URI.
func WithEventsURI(uri string) Option {
	return func(s *Server) error {
		s.eventsURI = uri
		return nil
	}
}

// WithAgentURI sets the agent websocket endpoint URI.
func WithAgentURI(uri string) Option {
	return func(s *Server) error {
		s.agentURI = uri
		return nil
	}
}

// WithKeepAliveInterval sets the SSE idle period after which a keep-alive
// comment is emitted.
func WithKeepAliveInterval(interval time.Duration) Option {
	return func(s *Server) error {
		if interval <= 0 {
			return fmt.Errorf("invalid keep-alive interval: %v", interval)
		}
		s.keepAlive = interval
		return nil
	}
}
