package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhiyaancnirmal/mintaborate/pkg/config"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
)

// abortWithError maps domain errors to HTTP responses.
func abortWithError(c *gin.Context, err error) {
	var validErr *config.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error(), "field": validErr.Field})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
	case errors.Is(err, store.ErrRunTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": "run is already terminal"})
	case errors.Is(err, store.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	default:
		slog.Error("Unexpected handler error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
