package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var leaderboardUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleLeaderboardWs streams leaderboard snapshots to the admin UI. The
// broker delivers the current snapshot on subscribe and a fresh one after
// every accepted submission or deletion.
func (h *Handler) handleLeaderboardWs(c *gin.Context) {
	conn, err := leaderboardUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.S().Errorf("failed to upgrade leaderboard websocket: %v", err)
		return
	}
	defer conn.Close()

	msgChan, unsubscribe := h.broker.Subscribe(TopicLeaderboard)
	defer unsubscribe()

	// Make sure the new client sees the current standings even before the
	// next submission comes in.
	h.publishLeaderboard(c)

	// Detect client disconnect; the admin UI never sends data.
	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-msgChan:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				zap.S().Debugf("leaderboard websocket write failed: %v", err)
				return
			}
		case <-clientClosed:
			return
		}
	}
}
