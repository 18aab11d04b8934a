package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/reviewhub/internal/service"
	"github.com/utafrali/reviewhub/pkg/httputil"
)

// SummaryHandler handles HTTP requests for the product summary endpoint.
type SummaryHandler struct {
	service *service.SummaryService
	logger  *slog.Logger
}

// NewSummaryHandler creates a new summary HTTP handler.
func NewSummaryHandler(svc *service.SummaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		service: svc,
		logger:  logger,
	}
}

// GetProductSummary handles GET /api/v1/products/{productID}/summary
// @Summary Get an AI-generated summary of a product's approved reviews
// @Description Returns the cached summary when one exists, otherwise generates and stores a new one
// @Tags summaries
// @Produce json
// @Param productID path string true "Product UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/products/{productID}/summary [get]
func (h *SummaryHandler) GetProductSummary(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseUUID(w, chi.URLParam(r, "productID"))
	if !ok {
		return
	}

	result, err := h.service.GetSummary(r.Context(), productID.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}
