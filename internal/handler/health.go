package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of the liveness probe.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// HandleHealth is the liveness probe. It reports degraded rather than failing
// when the database is unreachable, so the process is not restarted for a
// dependency outage.
func (h *Handler) HandleHealth(c *gin.Context) {
	dbStatus := "ok"
	status := "ok"
	if err := h.store.Ping(); err != nil {
		dbStatus = "unreachable"
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  dbStatus,
	})
}

// HandleReadiness is the startup probe, stricter than health: the service is
// not ready to take traffic until the database answers.
func (h *Handler) HandleReadiness(c *gin.Context) {
	if err := h.store.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "database_unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
