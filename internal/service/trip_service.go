package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/mapper"
	"github.com/freightflow/booking-api/internal/notifier"
	"github.com/freightflow/booking-api/internal/repository"
)

// DefaultAdvancePercentage is applied when a booking does not specify one
const DefaultAdvancePercentage = 30.0

// validStatusTransitions defines the allowed trip lifecycle moves. Guards on
// payment state are checked separately in UpdateTripStatus.
var validStatusTransitions = map[domain.TripStatus][]domain.TripStatus{
	domain.TripStatusBooked:    {domain.TripStatusInTransit, domain.TripStatusCancelled},
	domain.TripStatusInTransit: {domain.TripStatusDelivered, domain.TripStatusCompleted, domain.TripStatusCancelled},
	domain.TripStatusDelivered: {domain.TripStatusCompleted},
	domain.TripStatusCompleted: {},
	domain.TripStatusCancelled: {},
}

// TripService implements the trip booking and lifecycle workflow
type TripService struct {
	tripRepo *repository.TripRepository
	seqRepo  *repository.OrderSequenceRepository
	notifier notifier.Notifier
	logger   *zap.Logger
}

// NewTripService creates a new TripService
func NewTripService(
	tripRepo *repository.TripRepository,
	seqRepo *repository.OrderSequenceRepository,
	events notifier.Notifier,
	logger *zap.Logger,
) *TripService {
	return &TripService{
		tripRepo: tripRepo,
		seqRepo:  seqRepo,
		notifier: events,
		logger:   logger,
	}
}

// roundMoney rounds to the nearest whole unit; all supplier amounts are kept
// in whole currency units.
func roundMoney(v float64) float64 {
	return math.Round(v)
}

// CreateTrip books a new trip. Financials are derived here: the advance is a
// percentage of the supplier freight, the balance is the remainder, and the
// margin is client minus supplier freight unless explicitly supplied.
func (s *TripService) CreateTrip(ctx context.Context, req *domain.CreateTripRequest) (*domain.TripDTO, error) {
	if req.ClientFreight < 0 || req.SupplierFreight < 0 {
		return nil, ErrNegativeFreight
	}

	advancePercentage := DefaultAdvancePercentage
	if req.AdvancePercentage != nil {
		advancePercentage = *req.AdvancePercentage
	}
	if advancePercentage < 0 || advancePercentage > 100 {
		return nil, ErrInvalidAdvancePercentage
	}

	orderNumber, err := s.nextOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	advance := roundMoney(req.SupplierFreight * advancePercentage / 100)
	balance := req.SupplierFreight - advance

	margin := req.ClientFreight - req.SupplierFreight
	if req.Margin != nil {
		margin = *req.Margin
	}

	trip := &domain.Trip{
		OrderNumber: orderNumber,

		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		SupplierID:    req.SupplierID,
		SupplierName:  req.SupplierName,
		VehicleID:     req.VehicleID,
		VehicleNumber: req.VehicleNumber,

		Source:      req.Source,
		Destination: req.Destination,

		Materials:  req.Materials,
		PickupDate: req.PickupDate,
		PickupTime: req.PickupTime,
		Notes:      req.Notes,

		ClientFreight:          req.ClientFreight,
		SupplierFreight:        req.SupplierFreight,
		AdvancePercentage:      advancePercentage,
		Margin:                 margin,
		AdvanceSupplierFreight: advance,
		BalanceSupplierFreight: balance,

		Status:               domain.TripStatusBooked,
		AdvancePaymentStatus: domain.PaymentNotStarted,
		BalancePaymentStatus: domain.PaymentNotStarted,
		PaymentMethod:        "Bank Transfer",

		IsInAdvanceQueue: true,
	}
	if req.FieldOps != nil {
		trip.FieldOps = *req.FieldOps
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	s.logger.Info("Trip created",
		zap.String("trip_id", trip.ID.String()),
		zap.String("order_number", trip.OrderNumber),
		zap.Float64("supplier_freight", trip.SupplierFreight),
		zap.Float64("advance", trip.AdvanceSupplierFreight),
	)

	dto := mapper.ToTripDTO(trip)
	s.notifier.Publish(notifier.NewEvent(notifier.EventTripCreated, trip.ID.String(), trip.OrderNumber, dto))

	return &dto, nil
}

// nextOrderNumber builds the order number FTL-YYYY-NNNNN from the per-year
// sequence
func (s *TripService) nextOrderNumber(ctx context.Context) (string, error) {
	year := time.Now().UTC().Year()
	seq, err := s.seqRepo.NextNumber(ctx, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("FTL-%d-%05d", year, seq), nil
}

// GetTrip resolves a trip by UUID or order number
func (s *TripService) GetTrip(ctx context.Context, ref string) (*domain.TripDTO, error) {
	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToTripDTO(trip)
	return &dto, nil
}

func (s *TripService) resolve(ctx context.Context, ref string) (*domain.Trip, error) {
	trip, err := s.tripRepo.Resolve(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to resolve trip: %w", err)
	}
	return trip, nil
}

// ListTrips returns trips with pagination and optional status/search filters
func (s *TripService) ListTrips(ctx context.Context, page, pageSize int, status domain.TripStatus, search string) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if status != "" && !status.IsValid() {
		return nil, ErrInvalidStatusTransition
	}

	trips, total, err := s.tripRepo.List(ctx, page, pageSize, status, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	dtos := make([]domain.TripDTO, len(trips))
	for i := range trips {
		dtos[i] = mapper.ToTripDTO(&trips[i])
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateTrip applies a generic partial update. Payment state never moves
// here. The advance/balance split is re-derived only when the supplier
// freight or the advance percentage changes.
func (s *TripService) UpdateTrip(ctx context.Context, ref string, req *domain.UpdateTripRequest) (*domain.TripDTO, error) {
	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})

	if req.ClientID != nil {
		fields["client_id"] = *req.ClientID
	}
	if req.ClientName != nil {
		fields["client_name"] = *req.ClientName
	}
	if req.SupplierID != nil {
		fields["supplier_id"] = *req.SupplierID
	}
	if req.SupplierName != nil {
		fields["supplier_name"] = *req.SupplierName
	}
	if req.VehicleID != nil {
		fields["vehicle_id"] = *req.VehicleID
	}
	if req.VehicleNumber != nil {
		fields["vehicle_number"] = *req.VehicleNumber
	}
	if req.Source != nil {
		fields["source"] = *req.Source
	}
	if req.Destination != nil {
		fields["destination"] = *req.Destination
	}
	if req.PickupDate != nil {
		fields["pickup_date"] = *req.PickupDate
	}
	if req.PickupTime != nil {
		fields["pickup_time"] = *req.PickupTime
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Materials != nil {
		trip.Materials = req.Materials
		fields["materials"] = trip.Materials
	}
	if req.FieldOps != nil {
		trip.FieldOps = *req.FieldOps
		fields["field_ops"] = trip.FieldOps
	}

	clientFreight := trip.ClientFreight
	supplierFreight := trip.SupplierFreight
	advancePercentage := trip.AdvancePercentage
	freightChanged := false

	if req.ClientFreight != nil {
		if *req.ClientFreight < 0 {
			return nil, ErrNegativeFreight
		}
		clientFreight = *req.ClientFreight
		fields["client_freight"] = clientFreight
		freightChanged = true
	}
	if req.SupplierFreight != nil {
		if *req.SupplierFreight < 0 {
			return nil, ErrNegativeFreight
		}
		supplierFreight = *req.SupplierFreight
		fields["supplier_freight"] = supplierFreight
	}
	if req.AdvancePercentage != nil {
		if *req.AdvancePercentage < 0 || *req.AdvancePercentage > 100 {
			return nil, ErrInvalidAdvancePercentage
		}
		advancePercentage = *req.AdvancePercentage
		fields["advance_percentage"] = advancePercentage
	}

	if req.SupplierFreight != nil || req.AdvancePercentage != nil {
		advance := roundMoney(supplierFreight * advancePercentage / 100)
		fields["advance_supplier_freight"] = advance
		fields["balance_supplier_freight"] = supplierFreight - advance
		freightChanged = true
	}
	if freightChanged {
		fields["margin"] = clientFreight - supplierFreight
	}

	if len(fields) == 0 {
		dto := mapper.ToTripDTO(trip)
		return &dto, nil
	}

	err = s.tripRepo.UpdateWithHistory(ctx, trip.ID, trip.Version, repository.TripMutation{Fields: fields})
	if err != nil {
		return nil, s.mapWriteError(err)
	}

	updated, err := s.tripRepo.GetByID(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload trip: %w", err)
	}

	dto := mapper.ToTripDTO(updated)
	return &dto, nil
}

// DeleteTrip removes a trip and all its child rows
func (s *TripService) DeleteTrip(ctx context.Context, ref string) error {
	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return err
	}

	if err := s.tripRepo.Delete(ctx, trip.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTripNotFound
		}
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	s.logger.Info("Trip deleted",
		zap.String("trip_id", trip.ID.String()),
		zap.String("order_number", trip.OrderNumber),
	)
	return nil
}

// UpdateTripStatus moves a trip to a new operational status. Moving to In
// Transit requires the advance to be paid; Completed requires the balance to
// be paid; Cancelled is only allowed while nothing has been paid out.
func (s *TripService) UpdateTripStatus(ctx context.Context, ref string, target domain.TripStatus) (*domain.TripDTO, error) {
	if !target.IsValid() {
		return nil, ErrInvalidStatusTransition
	}

	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	if trip.Status == target {
		dto := mapper.ToTripDTO(trip)
		return &dto, nil
	}

	if !transitionAllowed(trip.Status, target) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, trip.Status, target)
	}

	switch target {
	case domain.TripStatusInTransit:
		if trip.AdvancePaymentStatus != domain.PaymentPaid {
			return nil, ErrAdvanceNotPaid
		}
	case domain.TripStatusCompleted:
		if trip.BalancePaymentStatus != domain.PaymentPaid {
			return nil, ErrBalanceNotPaid
		}
	case domain.TripStatusCancelled:
		if trip.AdvancePaymentStatus == domain.PaymentPaid || trip.BalancePaymentStatus == domain.PaymentPaid {
			return nil, fmt.Errorf("%w: cannot cancel after payout", ErrInvalidStatusTransition)
		}
	}

	fields := map[string]interface{}{"status": target}
	if target == domain.TripStatusCancelled {
		fields["is_in_advance_queue"] = false
		fields["is_in_balance_queue"] = false
	}

	err = s.tripRepo.UpdateWithHistory(ctx, trip.ID, trip.Version, repository.TripMutation{Fields: fields})
	if err != nil {
		return nil, s.mapWriteError(err)
	}

	s.logger.Info("Trip status updated",
		zap.String("trip_id", trip.ID.String()),
		zap.String("order_number", trip.OrderNumber),
		zap.String("from", string(trip.Status)),
		zap.String("to", string(target)),
	)

	updated, err := s.tripRepo.GetByID(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload trip: %w", err)
	}

	dto := mapper.ToTripDTO(updated)
	s.notifier.Publish(notifier.NewEvent(notifier.EventTripStatusChanged, trip.ID.String(), trip.OrderNumber, map[string]interface{}{
		"from": trip.Status,
		"to":   target,
	}))

	return &dto, nil
}

func transitionAllowed(from, to domain.TripStatus) bool {
	for _, allowed := range validStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// mapWriteError translates repository write failures into service errors
func (s *TripService) mapWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		return ErrWriteConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrTripNotFound
	default:
		return fmt.Errorf("failed to update trip: %w", err)
	}
}

// reload fetches a fresh copy after a successful write
func (s *TripService) reload(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload trip: %w", err)
	}
	return trip, nil
}
