package server

import (
	"context"
	"net/http"
)

// HTTP creates and returns an HTTP server exposing the relay endpoints.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = s.addr
	}
	if addr == "" {
		// Default bind only to localhost to reduce DNS rebinding risk
		addr = defaultAddr
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleStatus)
	mux.HandleFunc(s.messageURI, s.handleMessage)
	mux.HandleFunc(s.eventsURI, s.handleEvents)
	mux.HandleFunc(s.agentURI, s.handleAgent)

	var middlewareHandlers []Middleware
	middlewareHandlers = append(middlewareHandlers, s.corsHandler)
	// Validate Origin on all requests (uses configured CORS allowlist)
	middlewareHandlers = append(middlewareHandlers, originValidationMiddleware(s.corsConfig.AllowOrigins))
	chain := ChainMiddlewareHandlers(mux, middlewareHandlers...)

	server := &http.Server{
		Addr:    addr,
		Handler: chain,
	}
	return server
}
