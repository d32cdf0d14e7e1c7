package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"news-portal/internal/logger"
	"news-portal/internal/service"
)

const liveWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// LiveHandler streams listing states over WebSocket.
type LiveHandler struct {
	listing service.ListingServiceInterface
}

// NewLiveHandler creates a new LiveHandler.
func NewLiveHandler(listing service.ListingServiceInterface) *LiveHandler {
	return &LiveHandler{listing: listing}
}

// Stream handles GET /api/v1/news/live. The first message is the current
// state; every later message replaces the previous one.
func (h *LiveHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WarnContext(c.Request.Context(), "WebSocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()
	// The server read timeout still applies to the hijacked connection.
	_ = conn.SetReadDeadline(time.Time{})

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	view, err := h.listing.Watch(ctx)
	if err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "watch failed"),
			time.Now().Add(liveWriteWait))
		return
	}
	defer view.Close()

	// Incoming messages are ignored; reading detects the client leaving.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeState(conn, view.State()); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-view.Updates():
			if !ok {
				return
			}
			if err := writeState(conn, state); err != nil {
				logger.DebugContext(ctx, "Live stream closed", "error", err.Error())
				return
			}
		}
	}
}

func writeState(conn *websocket.Conn, state service.ListingState) error {
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	return conn.WriteJSON(state)
}
