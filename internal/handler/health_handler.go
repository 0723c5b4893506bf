package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"cotizador/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db      *sqlx.DB
	regions port.RegionDirectory
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, regions port.RegionDirectory) *HealthHandler {
	return &HealthHandler{db: db, regions: regions}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
// The region directory is reported but not gating: validation fails closed
// without it, so the service still serves journeys.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "regions_loaded": h.regions.Ready()})
}
