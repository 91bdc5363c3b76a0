package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"quickride/internal/service"
	"quickride/internal/ws"
)

// upgrader accepts any origin; this demo serves a local UI only.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamHandler upgrades tracker connections and feeds them ride snapshots.
type StreamHandler struct {
	hub         *ws.Hub
	rideService *service.RideService
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(hub *ws.Hub, rideService *service.RideService) *StreamHandler {
	return &StreamHandler{hub: hub, rideService: rideService}
}

// Stream handles GET /v1/rides/active/ws
func (h *StreamHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	send, remove := h.hub.Add(conn)
	defer remove()

	// Replay the current state so a client connecting mid-ride renders
	// immediately instead of waiting for the next transition. The session
	// is already registered, so the write must go through send or it
	// races a concurrent Broadcast on the same connection.
	if _, state, err := h.rideService.ActiveState(); err == nil {
		if err := send(state); err != nil {
			return
		}
	}

	// The client never sends data; the read loop only detects closure.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
