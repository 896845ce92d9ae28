package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/omxqn/api-application/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Subscribers are mobile clients without an Origin header to trust.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandlers handles live bus-location subscriptions
type WSHandlers struct {
	hub *ws.Hub
	log *zap.Logger
}

// NewWSHandlers creates new WebSocket handlers
func NewWSHandlers(hub *ws.Hub, log *zap.Logger) *WSHandlers {
	return &WSHandlers{hub: hub, log: log}
}

// StreamLocation upgrades the connection and streams every accepted
// position report for the requested bus until the peer disconnects.
func (h *WSHandlers) StreamLocation(c *gin.Context) {
	busID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus ID"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(uint(busID), conn)
	h.hub.AddClient(client)

	go client.WritePump()
	go client.ReadPump(func() { h.hub.RemoveClient(client) })
}
