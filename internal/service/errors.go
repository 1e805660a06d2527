package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrTripNotFound is returned when a trip cannot be resolved by id or order number
	ErrTripNotFound = errors.New("trip not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrWriteConflict is returned when a concurrent update won the write race;
	// the caller should reload the trip and retry
	ErrWriteConflict = errors.New("conflicting write, trip was modified concurrently")

	// ErrStoreUnavailable is returned when the store cannot be reached
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvalidPaymentStatus is returned when a payment status value is unknown
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidPaymentType is returned when a payment type is not advance or balance
	ErrInvalidPaymentType = errors.New("invalid payment type")

	// ErrPaymentStatusUnchanged is returned when a payment update targets the
	// status the leg already has
	ErrPaymentStatusUnchanged = errors.New("payment already has the requested status")

	// ErrPODRequired is returned when a balance payment is attempted before
	// proof of delivery has been uploaded
	ErrPODRequired = errors.New("proof of delivery must be uploaded before balance payment")

	// ErrAdvanceNotPaid is returned when an operation requires the advance
	// payment to be settled first
	ErrAdvanceNotPaid = errors.New("advance payment must be paid first")

	// ErrPODAlreadyUploaded is returned when a POD is uploaded twice
	ErrPODAlreadyUploaded = errors.New("proof of delivery already uploaded")

	// ErrInvalidStatusTransition is returned when a trip status change violates
	// the lifecycle rules
	ErrInvalidStatusTransition = errors.New("invalid trip status transition")

	// ErrBalanceNotPaid is returned when a trip is moved to Completed while the
	// balance payment is still outstanding
	ErrBalanceNotPaid = errors.New("balance payment must be paid before completing the trip")

	// ErrTripNotInTransit is returned when an operation requires the trip to be
	// in transit
	ErrTripNotInTransit = errors.New("trip must be in transit")

	// ErrInvalidAdvancePercentage is returned when the advance percentage is
	// outside 0-100
	ErrInvalidAdvancePercentage = errors.New("advance percentage must be between 0 and 100")

	// ErrNegativeFreight is returned when a freight amount is negative
	ErrNegativeFreight = errors.New("freight amounts must not be negative")

	// ErrClientNotFound is returned when a client is not found
	ErrClientNotFound = errors.New("client not found")

	// ErrSupplierNotFound is returned when a supplier is not found
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrVehicleNotFound is returned when a vehicle is not found
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrDocumentNotFound is returned when a trip document is not found
	ErrDocumentNotFound = errors.New("document not found")
)
