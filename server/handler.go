package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/viant/jsonrpc"
)

// handleMessage accepts JSON-RPC calls from remote callers and relays session
// teardown. The response is always a JSON-RPC envelope; relay failures travel
// inside it, not as bare HTTP errors.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.serveCall(w, r)
	case http.MethodDelete:
		s.closeSession(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) serveCall(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to read request: %v", err), http.StatusBadRequest)
		return
	}
	session := s.sessions.Ensure(r.Header.Get(sessionHeader))
	w.Header().Set(sessionHeader, session.Id)

	response := &jsonrpc.Response{Jsonrpc: jsonrpc.Version}
	request := &jsonrpc.Request{}
	if uErr := json.Unmarshal(data, request); uErr != nil {
		// Data must stay encodable; the raw body is not valid JSON here, so
		// attach a quoted copy of it instead of the bytes themselves.
		quoted, _ := json.Marshal(string(data))
		response.Error = jsonrpc.NewParsingError(fmt.Sprintf("failed to parse request: %v", uErr), quoted)
		s.writeResponse(w, response)
		return
	}
	if request.Id == nil && request.Method != "" {
		// Notification: no correlation id, nothing to await.
		s.bridge.OnNotification(r.Context(), &jsonrpc.Notification{Method: request.Method, Params: request.Params})
		w.WriteHeader(http.StatusAccepted)
		return
	}
	s.bridge.Dispatch(r.Context(), request, response)
	s.writeResponse(w, response)
}

func (s *Server) closeSession(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}
	s.sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeResponse(w http.ResponseWriter, response *jsonrpc.Response) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
	}
}
