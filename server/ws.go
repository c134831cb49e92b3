package server

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// wsConn adapts a websocket connection to the bridge transport contract.
// Gorilla permits at most one concurrent writer, hence the write mutex shared
// by forwarded calls and the catalogue sync.
type wsConn struct {
	mux  sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Write(_ context.Context, data []byte) error {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// handleAgent upgrades the local agent's connection and installs it as the
// single live downstream transport, superseding any previous one. The read
// loop feeds inbound frames to the bridge until the connection dies.
func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	agent := &wsConn{conn: conn}
	s.bridge.Attach(agent)
	log.Printf("[ws] local agent connected from %v", r.RemoteAddr)

	defer func() {
		s.bridge.Detach(agent)
		_ = conn.Close()
		log.Printf("[ws] local agent disconnected")
	}()
	for {
		_, data, rErr := conn.ReadMessage()
		if rErr != nil {
			if websocket.IsUnexpectedCloseError(rErr, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[ws] read failed: %v", rErr)
			}
			return
		}
		s.bridge.HandleFrame(data)
	}
}
