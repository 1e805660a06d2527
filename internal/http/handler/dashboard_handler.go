package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// StatusCounts godoc
// @Summary Dashboard status counts
// @Description Trip counts per status plus outstanding advance and balance payments
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.StatusCountsDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /dashboard/status-counts [get]
func (h *DashboardHandler) StatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.dashboardService.StatusCounts(r.Context())
	if err != nil {
		h.logger.Error("failed to load status counts", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, counts)
}
