package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/service"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	errs := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			fieldName := toJSONFieldName(fe.Field())
			errs[fieldName] = formatValidationError(fe)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: errs,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "url":
		return "Must be a valid URL"
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   errorTypeForStatus(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// respondServiceError maps service errors onto the HTTP error contract:
// missing resources are 404, lost write races are 409, violated lifecycle
// preconditions are 422, bad input is 400 and an unreachable store is 503.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTripNotFound),
		errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrDocumentNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrWriteConflict),
		errors.Is(err, service.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrPODRequired),
		errors.Is(err, service.ErrAdvanceNotPaid),
		errors.Is(err, service.ErrBalanceNotPaid),
		errors.Is(err, service.ErrPODAlreadyUploaded),
		errors.Is(err, service.ErrTripNotInTransit),
		errors.Is(err, service.ErrPaymentStatusUnchanged),
		errors.Is(err, service.ErrInvalidStatusTransition):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidPaymentStatus),
		errors.Is(err, service.ErrInvalidPaymentType),
		errors.Is(err, service.ErrInvalidAdvancePercentage),
		errors.Is(err, service.ErrNegativeFreight):
		respondWithError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrStoreUnavailable):
		respondWithError(w, http.StatusServiceUnavailable, err.Error())

	default:
		respondWithError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// errorTypeForStatus returns the problem type for an HTTP status code
func errorTypeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return domain.ErrorTypeUnauthorized
	case http.StatusForbidden:
		return domain.ErrorTypeForbidden
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	case http.StatusUnprocessableEntity:
		return domain.ErrorTypePrecondition
	case http.StatusServiceUnavailable:
		return domain.ErrorTypeUnavailable
	default:
		return domain.ErrorTypeInternal
	}
}
