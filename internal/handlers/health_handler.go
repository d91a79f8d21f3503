package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db               Pinger
	courseCacheReady func() bool
}

func NewHealthHandler(db Pinger, courseCacheReady func() bool) *HealthHandler {
	return &HealthHandler{
		db:               db,
		courseCacheReady: courseCacheReady,
	}
}

// Root answers the plain liveness probe on GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Server is running...")
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		attachError(c, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "database unreachable",
		})
		return
	}

	if h.courseCacheReady != nil && !h.courseCacheReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "course cache not initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
