// Package ws broadcasts ride snapshots to connected UI clients over
// websockets so the tracker screen re-renders without polling.
package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"quickride/internal/observability"
)

// session wraps a connection with a write lock; gorilla connections allow
// only one concurrent writer.
type session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *session) send(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// Hub holds the connected client sessions.
type Hub struct {
	mu       sync.RWMutex
	sessions map[*session]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{sessions: make(map[*session]struct{})}
}

// Add registers a connection and returns the session's send func plus a
// remove func the handler defers. All writes to the connection, including
// the handler's own, must go through send; it holds the session write lock
// that keeps handler writes from interleaving with Broadcast.
func (h *Hub) Add(conn *websocket.Conn) (send func(v any) error, remove func()) {
	s := &session{conn: conn}

	h.mu.Lock()
	h.sessions[s] = struct{}{}
	observability.ConnectedClients.Set(float64(len(h.sessions)))
	h.mu.Unlock()

	remove = func() {
		h.mu.Lock()
		delete(h.sessions, s)
		observability.ConnectedClients.Set(float64(len(h.sessions)))
		h.mu.Unlock()
		_ = conn.Close()
	}
	return s.send, remove
}

// Broadcast sends v as JSON to every connected client. Dead connections are
// dropped.
func (h *Hub) Broadcast(v any) {
	h.mu.RLock()
	sessions := make([]*session, 0, len(h.sessions))
	for s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		if err := s.send(v); err != nil {
			log.Printf("ws send error: %v", err)
			h.mu.Lock()
			delete(h.sessions, s)
			observability.ConnectedClients.Set(float64(len(h.sessions)))
			h.mu.Unlock()
			_ = s.conn.Close()
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
