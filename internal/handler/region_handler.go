package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cotizador/internal/service"
)

// RegionHandler handles city autocomplete endpoints.
type RegionHandler struct {
	regionService service.RegionService
}

// NewRegionHandler creates a new RegionHandler.
func NewRegionHandler(regionService service.RegionService) *RegionHandler {
	return &RegionHandler{regionService: regionService}
}

// Search handles GET /api/v1/regions/search?q=...&limit=...
// @Summary Search municipalities
// @Description Returns "municipality - department" suggestions matching the query. An unavailable upstream directory degrades to an empty list.
// @Tags regions
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.LookupEntry}
// @Router /regions/search [get]
func (h *RegionHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "q query parameter is required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	entries := h.regionService.Search(c.Request.Context(), query, limit)

	RespondOK(c, entries)
}
