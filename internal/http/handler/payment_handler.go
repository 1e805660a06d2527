package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	logger         *zap.Logger
}

func NewPaymentHandler(paymentService *service.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// AdvanceQueue godoc
// @Summary Advance payment queue
// @Description Trips waiting for their advance payment, oldest booking first
// @Tags Payments
// @Produce json
// @Success 200 {array} domain.QueueEntryDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /payments/queue/advance [get]
func (h *PaymentHandler) AdvanceQueue(w http.ResponseWriter, r *http.Request) {
	entries, err := h.paymentService.AdvanceQueue(r.Context())
	if err != nil {
		h.logger.Error("failed to load advance queue", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// BalanceQueue godoc
// @Summary Balance payment queue
// @Description Trips with an uploaded POD waiting for their balance payment, oldest POD first
// @Tags Payments
// @Produce json
// @Success 200 {array} domain.QueueEntryDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /payments/queue/balance [get]
func (h *PaymentHandler) BalanceQueue(w http.ResponseWriter, r *http.Request) {
	entries, err := h.paymentService.BalanceQueue(r.Context())
	if err != nil {
		h.logger.Error("failed to load balance queue", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// Stats godoc
// @Summary Payment statistics
// @Description Queue sizes plus counts of pending and fully settled trips
// @Tags Payments
// @Produce json
// @Success 200 {object} domain.PaymentStatsDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /payments/stats [get]
func (h *PaymentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.paymentService.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to load payment stats", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
