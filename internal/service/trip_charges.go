package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/mapper"
	"github.com/freightflow/booking-api/internal/notifier"
	"github.com/freightflow/booking-api/internal/repository"
)

// fallbackChargeReason is stamped on a charge when neither the charge nor the
// request carries a reason
const fallbackChargeReason = "Charge applied"

// UpdateCharges replaces a trip's additional and deduction charge lists,
// recomputes the charge aggregates and the outstanding balance, and appends
// one audit row per charge that was added, modified or removed. Requires the
// advance to be paid; charges only make sense once the trip is funded.
func (s *TripService) UpdateCharges(ctx context.Context, ref string, req *domain.UpdateChargesRequest) (*domain.TripDTO, error) {
	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	if trip.AdvancePaymentStatus != domain.PaymentPaid {
		return nil, ErrAdvanceNotPaid
	}

	now := time.Now().UTC()
	addedBy := req.AddedBy
	if addedBy == "" {
		addedBy = "system"
	}

	stamp := func(inputs []domain.ChargeInput, chargeType domain.ChargeType, offset int) []domain.TripCharge {
		charges := make([]domain.TripCharge, len(inputs))
		for i, in := range inputs {
			reason := in.Reason
			if reason == "" {
				reason = req.Reason
			}
			if reason == "" {
				reason = fallbackChargeReason
			}
			charges[i] = domain.TripCharge{
				ChargeType:  chargeType,
				Description: in.Description,
				Amount:      in.Amount,
				Reason:      reason,
				AddedAt:     now,
				AddedBy:     addedBy,
				Position:    offset + i,
			}
		}
		return charges
	}

	additional := stamp(req.AdditionalCharges, domain.ChargeTypeAdditional, 0)
	deductions := stamp(req.DeductionCharges, domain.ChargeTypeDeduction, len(additional))
	newCharges := append(additional, deductions...)

	var totalAdditional, totalDeduction float64
	var lrCharges, platformFees, miscCharges float64
	for _, c := range additional {
		totalAdditional += c.Amount
	}
	for _, c := range deductions {
		totalDeduction += c.Amount
		switch domain.ClassifyDeduction(c.Description) {
		case domain.DeductionCategoryLR:
			lrCharges += c.Amount
		case domain.DeductionCategoryPlatform:
			platformFees += c.Amount
		default:
			miscCharges += c.Amount
		}
	}

	// The balance owed to the supplier shrinks with deductions; it never
	// goes negative. An explicit override wins.
	oldBalance := trip.BalanceSupplierFreight
	newBalance := trip.SupplierFreight - trip.AdvanceSupplierFreight - totalDeduction
	newBalance = roundMoney(newBalance)
	if newBalance < 0 {
		newBalance = 0
	}
	if req.NewBalanceAmount != nil {
		newBalance = *req.NewBalanceAmount
	}

	history := diffCharges(trip.Charges, newCharges, now, addedBy)

	fields := map[string]interface{}{
		"total_additional_charges": totalAdditional,
		"total_deduction_charges":  totalDeduction,
		"lr_charges":               lrCharges,
		"platform_fees":            platformFees,
		"miscellaneous_charges":    miscCharges,
		"balance_supplier_freight": newBalance,
	}

	mut := repository.TripMutation{
		Fields:         fields,
		ReplaceCharges: newCharges,
		ChargesSet:     true,
		ChargesHistory: history,
	}
	if err := s.tripRepo.UpdateWithHistory(ctx, trip.ID, trip.Version, mut); err != nil {
		return nil, s.mapWriteError(err)
	}

	s.logger.Info("Trip charges updated",
		zap.String("trip_id", trip.ID.String()),
		zap.String("order_number", trip.OrderNumber),
		zap.Float64("total_additional", totalAdditional),
		zap.Float64("total_deduction", totalDeduction),
		zap.Float64("old_balance", oldBalance),
		zap.Float64("new_balance", newBalance),
	)

	updated, err := s.reload(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToTripDTO(updated)

	s.notifier.Publish(notifier.NewEvent(notifier.EventBalanceAmountChanged, trip.ID.String(), trip.OrderNumber, map[string]interface{}{
		"oldBalance": oldBalance,
		"newBalance": newBalance,
	}))

	return &dto, nil
}

// diffCharges compares the stored charge lists against the replacement and
// produces the audit rows. Charges are matched within their type by
// description: a new description is an add, a matched description with a
// different amount is a modify, and a stored description that disappeared is
// a remove.
func diffCharges(old []domain.TripCharge, replacement []domain.TripCharge, now time.Time, addedBy string) []domain.ChargesHistoryEntry {
	var history []domain.ChargesHistoryEntry

	index := func(charges []domain.TripCharge, ct domain.ChargeType) map[string]domain.TripCharge {
		m := make(map[string]domain.TripCharge)
		for _, c := range charges {
			if c.ChargeType == ct {
				m[c.Description] = c
			}
		}
		return m
	}

	for _, ct := range []domain.ChargeType{domain.ChargeTypeAdditional, domain.ChargeTypeDeduction} {
		oldByDesc := index(old, ct)
		newByDesc := index(replacement, ct)

		for _, c := range replacement {
			if c.ChargeType != ct {
				continue
			}
			prev, existed := oldByDesc[c.Description]
			switch {
			case !existed:
				history = append(history, domain.ChargesHistoryEntry{
					Action:      domain.ChargeActionAdd,
					ChargeType:  ct,
					Description: c.Description,
					Amount:      c.Amount,
					Reason:      c.Reason,
					Timestamp:   now,
					AddedBy:     addedBy,
				})
			case prev.Amount != c.Amount:
				history = append(history, domain.ChargesHistoryEntry{
					Action:      domain.ChargeActionModify,
					ChargeType:  ct,
					Description: c.Description,
					Amount:      c.Amount,
					Reason:      c.Reason,
					Timestamp:   now,
					AddedBy:     addedBy,
				})
			}
		}

		for desc, prev := range oldByDesc {
			if _, kept := newByDesc[desc]; !kept {
				history = append(history, domain.ChargesHistoryEntry{
					Action:      domain.ChargeActionRemove,
					ChargeType:  ct,
					Description: desc,
					Amount:      prev.Amount,
					Reason:      prev.Reason,
					Timestamp:   now,
					AddedBy:     addedBy,
				})
			}
		}
	}

	return history
}
