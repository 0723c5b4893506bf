package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cotizador/internal/domain"
	"cotizador/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	csvContentType  = "text/csv; charset=utf-8"
)

// ReportHandler handles the admin lead listing and export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ListLeads handles GET /api/v1/admin/leads?product=...&offset=...&limit=...
// @Summary List submitted leads
// @Tags admin
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.Lead}
// @Security BearerAuth
// @Router /admin/leads [get]
func (h *ReportHandler) ListLeads(c *gin.Context) {
	product := domain.ProductCode(c.Query("product"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	leads, total, err := h.reportService.ListLeads(c.Request.Context(), product, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, leads, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ExportLeads handles GET /api/v1/admin/leads/export?product=...&format=...
// @Summary Export leads as XLSX or CSV
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Router /admin/leads/export [get]
func (h *ReportHandler) ExportLeads(c *gin.Context) {
	product := domain.ProductCode(c.Query("product"))
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatXLSX)))

	data, filename, err := h.reportService.ExportLeads(c.Request.Context(), product, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	contentType := xlsxContentType
	if format == service.FormatCSV {
		contentType = csvContentType
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
