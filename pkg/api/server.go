// Package api exposes the HTTP surface: run CRUD, cancellation, the
// WebSocket event stream, health, and metrics.
package api

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dhiyaancnirmal/mintaborate/pkg/events"
	"github.com/dhiyaancnirmal/mintaborate/pkg/orchestrator"
)

// Server holds the handler dependencies.
type Server struct {
	orch     *orchestrator.Orchestrator
	streamer *events.Streamer
	db       *sql.DB // nil when running on the in-memory store
	gatherer prometheus.Gatherer
}

// NewServer creates a Server. db and gatherer may be nil; health then skips
// the database probe and /metrics serves the default registry.
func NewServer(orch *orchestrator.Orchestrator, streamer *events.Streamer, db *sql.DB, gatherer prometheus.Gatherer) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Server{orch: orch, streamer: streamer, db: db, gatherer: gatherer}
}

// Router assembles the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	runs := router.Group("/api/runs")
	{
		runs.POST("", s.createRun)
		runs.GET("", s.listRuns)
		runs.GET("/:id", s.getRun)
		runs.POST("/:id/cancel", s.cancelRun)
		runs.GET("/:id/events", s.streamEvents)
	}
	return router
}

// securityHeaders sets the standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
