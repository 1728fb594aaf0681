package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dhiyaancnirmal/mintaborate/pkg/config"
	"github.com/dhiyaancnirmal/mintaborate/pkg/database"
	"github.com/dhiyaancnirmal/mintaborate/pkg/version"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// createRun validates the request, persists a queued run, and starts its
// driver in the background.
func (s *Server) createRun(c *gin.Context) {
	var req config.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	run, err := s.orch.CreateRun(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	s.orch.StartRunInBackground(run.ID)
	c.JSON(http.StatusCreated, gin.H{"run": run})
}

// listRuns pages runs, newest first.
func (s *Server) listRuns(c *gin.Context) {
	limit := queryInt(c, "limit", defaultListLimit)
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	runs, err := s.orch.ListRuns(c.Request.Context(), limit, offset)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs, "limit": limit, "offset": offset})
}

// getRun returns the full run snapshot.
func (s *Server) getRun(c *gin.Context) {
	detail, err := s.orch.GetRunDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// cancelRun requests cancellation of a non-terminal run.
func (s *Server) cancelRun(c *gin.Context) {
	if err := s.orch.CancelRun(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "canceling"})
}

// health reports process and database health.
func (s *Server) health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "store": "memory", "version": version.Full()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	dbHealth, err := database.Health(ctx, s.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": dbHealth, "version": version.Full()})
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
