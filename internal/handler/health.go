package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/festops/scoreboard-service/internal/repository"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	repo repository.Pinger
}

func NewHealthHandler(repo repository.Pinger) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Liveness reports that the process is up; it never touches storage.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness pings the store with a short deadline.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.repo.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
