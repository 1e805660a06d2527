package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/mapper"
	"github.com/freightflow/booking-api/internal/notifier"
	"github.com/freightflow/booking-api/internal/repository"
)

// paymentTransition is the computed effect of moving one payment leg to a new
// status: the trip columns to set and the audit row to append. Both payment
// entry points (the granular field update and the explicit process call) are
// built on this, so the lifecycle rules live in exactly one place.
type paymentTransition struct {
	fields    map[string]interface{}
	history   domain.PaymentHistoryEntry
	newStatus *domain.TripStatus
}

// buildPaymentTransition validates and computes a payment-status change.
// Rules:
//   - the target must differ from the current status of the leg
//   - balance payments are gated on an uploaded proof of delivery
//   - Initiated stamps the initiation time, Paid stamps completion and the
//     trip-level payment date
//   - a paid advance moves the trip to In Transit, leaves the advance queue
//     and enters the balance queue; a paid balance completes the trip and
//     leaves the balance queue
func buildPaymentTransition(trip *domain.Trip, pt domain.PaymentType, target domain.PaymentStatus, utr, method, notes string, now time.Time) (*paymentTransition, error) {
	if !pt.IsValid() {
		return nil, ErrInvalidPaymentType
	}
	if !target.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	current := trip.PaymentStatusFor(pt)
	if current == target {
		return nil, fmt.Errorf("%w: %s payment is already %s", ErrPaymentStatusUnchanged, pt, target)
	}

	if pt == domain.PaymentTypeBalance && !trip.PODUploaded {
		return nil, ErrPODRequired
	}

	t := &paymentTransition{
		fields: make(map[string]interface{}),
		history: domain.PaymentHistoryEntry{
			PaymentType:   pt,
			Status:        target,
			Amount:        trip.AmountFor(pt),
			Timestamp:     now,
			UTRNumber:     utr,
			PaymentMethod: method,
			Notes:         notes,
		},
	}

	leg := "advance"
	if pt == domain.PaymentTypeBalance {
		leg = "balance"
	}

	t.fields[leg+"_payment_status"] = target

	switch target {
	case domain.PaymentInitiated:
		t.fields[leg+"_payment_initiated_at"] = now
	case domain.PaymentPaid:
		t.fields[leg+"_payment_completed_at"] = now
		t.fields["payment_date"] = now
	}

	if utr != "" {
		t.fields["utr_number"] = utr
	}
	if method != "" {
		t.fields["payment_method"] = method
	}

	if target == domain.PaymentPaid {
		if pt == domain.PaymentTypeAdvance {
			t.fields["is_in_advance_queue"] = false
			t.fields["is_in_balance_queue"] = true
			if trip.Status == domain.TripStatusBooked {
				status := domain.TripStatusInTransit
				t.fields["status"] = status
				t.newStatus = &status
			}
		} else {
			t.fields["is_in_balance_queue"] = false
			status := domain.TripStatusCompleted
			t.fields["status"] = status
			t.newStatus = &status
		}
	}

	return t, nil
}

// UpdatePaymentStatus applies the granular payment update: either or both
// legs can move in one call, written atomically with one audit row per leg.
func (s *TripService) UpdatePaymentStatus(ctx context.Context, ref string, req *domain.UpdatePaymentStatusRequest) (*domain.TripDTO, error) {
	if req.AdvancePaymentStatus == nil && req.BalancePaymentStatus == nil {
		return nil, fmt.Errorf("%w: no payment status given", ErrInvalidInput)
	}

	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	mut := repository.TripMutation{Fields: make(map[string]interface{})}
	var statusChange *domain.TripStatus

	apply := func(pt domain.PaymentType, target domain.PaymentStatus) error {
		t, err := buildPaymentTransition(trip, pt, target, req.UTRNumber, req.PaymentMethod, "", now)
		if err != nil {
			return err
		}
		for k, v := range t.fields {
			mut.Fields[k] = v
		}
		mut.PaymentHistory = append(mut.PaymentHistory, t.history)
		if t.newStatus != nil {
			statusChange = t.newStatus
		}
		return nil
	}

	if req.AdvancePaymentStatus != nil {
		if err := apply(domain.PaymentTypeAdvance, *req.AdvancePaymentStatus); err != nil {
			return nil, err
		}
	}
	if req.BalancePaymentStatus != nil {
		if err := apply(domain.PaymentTypeBalance, *req.BalancePaymentStatus); err != nil {
			return nil, err
		}
	}

	if err := s.tripRepo.UpdateWithHistory(ctx, trip.ID, trip.Version, mut); err != nil {
		return nil, s.mapWriteError(err)
	}

	s.logger.Info("Payment status updated",
		zap.String("trip_id", trip.ID.String()),
		zap.String("order_number", trip.OrderNumber),
		zap.Int("legs_changed", len(mut.PaymentHistory)),
	)

	updated, err := s.reload(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToTripDTO(updated)

	s.notifier.Publish(notifier.NewEvent(notifier.EventPaymentStatusChanged, trip.ID.String(), trip.OrderNumber, map[string]interface{}{
		"advancePaymentStatus": updated.AdvancePaymentStatus,
		"balancePaymentStatus": updated.BalancePaymentStatus,
	}))
	if statusChange != nil {
		s.notifier.Publish(notifier.NewEvent(notifier.EventTripStatusChanged, trip.ID.String(), trip.OrderNumber, map[string]interface{}{
			"from": trip.Status,
			"to":   *statusChange,
		}))
	}

	return &dto, nil
}

// ProcessPayment applies the explicit payment call: one leg, one target
// status. Balance payments additionally require the advance to be fully paid.
func (s *TripService) ProcessPayment(ctx context.Context, ref string, req *domain.ProcessPaymentRequest) (*domain.TripDTO, error) {
	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	if req.PaymentType == domain.PaymentTypeBalance && trip.AdvancePaymentStatus != domain.PaymentPaid {
		return nil, ErrAdvanceNotPaid
	}

	now := time.Now().UTC()
	t, err := buildPaymentTransition(trip, req.PaymentType, req.PaymentStatus, req.UTRNumber, req.PaymentMethod, req.Notes, now)
	if err != nil {
		return nil, err
	}

	mut := repository.TripMutation{
		Fields:         t.fields,
		PaymentHistory: []domain.PaymentHistoryEntry{t.history},
	}
	if err := s.tripRepo.UpdateWithHistory(ctx, trip.ID, trip.Version, mut); err != nil {
		return nil, s.mapWriteError(err)
	}

	s.logger.Info("Payment processed",
		zap.String("trip_id", trip.ID.String()),
		zap.String("order_number", trip.OrderNumber),
		zap.String("payment_type", string(req.PaymentType)),
		zap.String("payment_status", string(req.PaymentStatus)),
	)

	updated, err := s.reload(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToTripDTO(updated)

	s.notifier.Publish(notifier.NewEvent(notifier.EventPaymentStatusChanged, trip.ID.String(), trip.OrderNumber, map[string]interface{}{
		"paymentType":   req.PaymentType,
		"paymentStatus": req.PaymentStatus,
	}))
	if t.newStatus != nil {
		s.notifier.Publish(notifier.NewEvent(notifier.EventTripStatusChanged, trip.ID.String(), trip.OrderNumber, map[string]interface{}{
			"from": trip.Status,
			"to":   *t.newStatus,
		}))
	}

	return &dto, nil
}
