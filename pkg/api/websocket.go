package api

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
)

// streamEvents upgrades to WebSocket and streams the run's events from the
// optional ?after= cursor. The stream replays persisted events first, follows
// live traffic, and closes after the terminal event.
func (s *Server) streamEvents(c *gin.Context) {
	runID := c.Param("id")
	if _, err := s.orch.GetRun(c.Request.Context(), runID); err != nil {
		abortWithError(c, err)
		return
	}

	after, _ := strconv.ParseInt(c.Query("after"), 10, 64)

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// TODO: replace with an origin allowlist from server config.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Warn("WebSocket accept failed", "run_id", runID, "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream aborted")

	// The request context dies when Accept hijacks the connection, so the
	// stream runs on a connection-scoped context instead. CloseRead also
	// discards incoming frames (the stream is write-only) and cancels the
	// context when the client goes away.
	ctx := conn.CloseRead(context.Background())
	err = s.streamer.Stream(ctx, runID, after, func(event models.RunEvent) error {
		return wsjson.Write(ctx, conn, event)
	})
	switch {
	case err == nil:
		conn.Close(websocket.StatusNormalClosure, "run finished")
	case errors.Is(err, context.Canceled):
		// Client went away.
	default:
		slog.Warn("Event stream ended with error", "run_id", runID, "error", err)
	}
}
