package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cotizador/internal/service"
)

// QuoteHandler handles premium computation endpoints.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Compute handles POST /api/v1/quotes
// @Summary Compute a premium
// @Description Derives the premium for the given selections from the static rate tables. Incomplete selections return an unpriced quote, never an error.
// @Tags quotes
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=domain.Quote}
// @Failure 404 {object} APIResponse "Unknown product"
// @Router /quotes [post]
func (h *QuoteHandler) Compute(c *gin.Context) {
	var input service.ComputeQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	quote, err := h.quoteService.Compute(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, quote)
}

// Products handles GET /api/v1/products
func (h *QuoteHandler) Products(c *gin.Context) {
	RespondOK(c, h.quoteService.Products())
}
