package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cotizador/internal/domain"
	"cotizador/internal/service"
)

// LeadHandler handles lead submission endpoints.
type LeadHandler struct {
	leadService service.LeadService
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// Submit handles POST /api/v1/leads
// @Summary Submit a finished journey as a lead
// @Description Re-validates the stored journey snapshot, computes the final quote, and forwards the lead to the CRM. Validation violations come back in the result body; a CRM rejection returns 502 so the widget can prompt a retry.
// @Tags leads
// @Accept json
// @Produce json
// @Success 201 {object} APIResponse{data=service.SubmitResult}
// @Failure 422 {object} APIResponse "Applicant is blocked"
// @Failure 502 {object} APIResponse "CRM rejected the lead"
// @Router /leads [post]
func (h *LeadHandler) Submit(c *gin.Context) {
	var input service.SubmitLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.leadService.Submit(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch {
	case result.Blocked:
		HandleError(c, domain.ErrLeadBlocked)
	case !result.Valid:
		RespondOK(c, result)
	case result.Lead != nil && result.Lead.Status == domain.LeadStatusFailed:
		HandleError(c, domain.ErrLeadRejected)
	default:
		RespondCreated(c, result)
	}
}
