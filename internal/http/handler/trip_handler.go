package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/service"
)

type TripHandler struct {
	tripService *service.TripService
	logger      *zap.Logger
}

func NewTripHandler(tripService *service.TripService, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripService: tripService,
		logger:      logger,
	}
}

// Create godoc
// @Summary Book a new trip
// @Description Create a trip with derived financials and a generated order number
// @Tags Trips
// @Accept json
// @Produce json
// @Param trip body domain.CreateTripRequest true "Trip to book"
// @Success 201 {object} domain.TripDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips [post]
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	trip, err := h.tripService.CreateTrip(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create trip", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, trip)
}

// List godoc
// @Summary List trips
// @Description Get paginated list of trips with optional status and search filters
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 100)" default(20)
// @Param status query string false "Filter by status" Enums(Booked, In Transit, Delivered, Completed, Cancelled)
// @Param search query string false "Search by order number, client, supplier or vehicle"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.TripDTO}
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips [get]
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	status := domain.TripStatus(r.URL.Query().Get("status"))
	search := r.URL.Query().Get("search")

	result, err := h.tripService.ListTrips(r.Context(), page, pageSize, status, search)
	if err != nil {
		h.logger.Error("failed to list trips", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Get godoc
// @Summary Get a trip
// @Description Look a trip up by UUID or order number
// @Tags Trips
// @Produce json
// @Param ref path string true "Trip UUID or order number"
// @Success 200 {object} domain.TripDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref} [get]
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	trip, err := h.tripService.GetTrip(r.Context(), ref)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// Update godoc
// @Summary Update a trip
// @Description Partially update trip fields; payment state cannot be changed here
// @Tags Trips
// @Accept json
// @Produce json
// @Param ref path string true "Trip UUID or order number"
// @Param trip body domain.UpdateTripRequest true "Fields to update"
// @Success 200 {object} domain.TripDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref} [patch]
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var req domain.UpdateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	trip, err := h.tripService.UpdateTrip(r.Context(), ref, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// Delete godoc
// @Summary Delete a trip
// @Description Remove a trip and all of its child records
// @Tags Trips
// @Param ref path string true "Trip UUID or order number"
// @Success 204 "No Content"
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref} [delete]
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	if err := h.tripService.DeleteTrip(r.Context(), ref); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// UpdateStatus godoc
// @Summary Update trip status
// @Description Move a trip through its lifecycle; payment preconditions are enforced
// @Tags Trips
// @Accept json
// @Produce json
// @Param ref path string true "Trip UUID or order number"
// @Param status body domain.UpdateTripStatusRequest true "Target status"
// @Success 200 {object} domain.TripDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref}/status [patch]
func (h *TripHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var req domain.UpdateTripStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	trip, err := h.tripService.UpdateTripStatus(r.Context(), ref, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// UpdatePaymentStatus godoc
// @Summary Update payment status
// @Description Move either or both payment legs; writes one audit row per changed leg
// @Tags Payments
// @Accept json
// @Produce json
// @Param ref path string true "Trip UUID or order number"
// @Param payment body domain.UpdatePaymentStatusRequest true "Payment fields to move"
// @Success 200 {object} domain.TripDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref}/payment-status [patch]
func (h *TripHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var req domain.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	trip, err := h.tripService.UpdatePaymentStatus(r.Context(), ref, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// ProcessPayment godoc
// @Summary Process a payment
// @Description Move one payment leg to a target status; balance requires a paid advance and an uploaded POD
// @Tags Payments
// @Accept json
// @Produce json
// @Param ref path string true "Trip UUID or order number"
// @Param payment body domain.ProcessPaymentRequest true "Payment to process"
// @Success 200 {object} domain.TripDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref}/payments [post]
func (h *TripHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var req domain.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	trip, err := h.tripService.ProcessPayment(r.Context(), ref, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// UpdateCharges godoc
// @Summary Update trip charges
// @Description Replace the additional and deduction charge lists and recompute the balance
// @Tags Payments
// @Accept json
// @Produce json
// @Param ref path string true "Trip UUID or order number"
// @Param charges body domain.UpdateChargesRequest true "Replacement charge lists"
// @Success 200 {object} domain.TripDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /trips/{ref}/charges [put]
func (h *TripHandler) UpdateCharges(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var req domain.UpdateChargesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	trip, err := h.tripService.UpdateCharges(r.Context(), ref, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}
