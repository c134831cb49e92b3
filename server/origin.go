package server

import (
	"net/http"
)

// originValidationMiddleware validates the Origin header on every relay
// endpoint, the agent websocket included (the upgrader itself accepts any
// origin and relies on this check). A present Origin must match one of the
// allowed origins; a wildcard "*" allows any.
func originValidationMiddleware(allowed []string) Middleware {
	return func(next http.Handler) http.Handler {
		allowedMap := make(map[string]bool, len(allowed))
		for _, v := range allowed {
			allowedMap[v] = true
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// Non-browser requests typically omit Origin; allow.
				next.ServeHTTP(w, r)
				return
			}
			// Wildcard permits all origins
			if allowedMap["*"] || allowedMap[origin] {
				next.ServeHTTP(w, r)
				return
			}
			// Reject unknown origins
			http.Error(w, "origin not allowed", http.StatusForbidden)
		})
	}
}
