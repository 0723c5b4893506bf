package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cotizador/internal/domain"
	"cotizador/internal/service"
)

// JourneyHandler handles quotation journey endpoints.
type JourneyHandler struct {
	journeyService service.JourneyService
}

// NewJourneyHandler creates a new JourneyHandler.
func NewJourneyHandler(journeyService service.JourneyService) *JourneyHandler {
	return &JourneyHandler{journeyService: journeyService}
}

// Start handles POST /api/v1/journeys
// @Summary Start a quotation journey
// @Description Creates a new widget journey for a product and returns the session id with the first step.
// @Tags journeys
// @Accept json
// @Produce json
// @Success 201 {object} APIResponse{data=service.JourneyView}
// @Failure 404 {object} APIResponse "Unknown product"
// @Router /journeys [post]
func (h *JourneyHandler) Start(c *gin.Context) {
	var input service.StartJourneyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.journeyService.Start(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, view)
}

// Get handles GET /api/v1/journeys/:id
func (h *JourneyHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.journeyService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// Advance handles POST /api/v1/journeys/:id/advance
// @Summary Advance a journey one step
// @Description Merges the submitted field values into the session snapshot, validates the current step, and moves forward when the step is valid. Violations come back as data, not errors.
// @Tags journeys
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=service.JourneyView}
// @Failure 409 {object} APIResponse "Journey already completed"
// @Router /journeys/{id}/advance [post]
func (h *JourneyHandler) Advance(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var fields domain.FormSnapshot
	if err := c.ShouldBindJSON(&fields); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.journeyService.Advance(c.Request.Context(), id, fields)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// Retreat handles POST /api/v1/journeys/:id/retreat
func (h *JourneyHandler) Retreat(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.journeyService.Retreat(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// Reset handles POST /api/v1/journeys/:id/reset
func (h *JourneyHandler) Reset(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.journeyService.Reset(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// parseUUIDParam reads a UUID path parameter, writing a 400 response when it
// does not parse.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
