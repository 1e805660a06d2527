package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/service"
)

// payAdvance books a trip and settles its advance so charges can be edited
func payAdvance(t *testing.T, tripSvc *service.TripService) *domain.TripDTO {
	t.Helper()
	created := bookTrip(t, tripSvc, nil)
	dto, err := tripSvc.ProcessPayment(context.Background(), created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
	})
	require.NoError(t, err)
	return dto
}

func TestUpdateChargesRequiresPaidAdvance(t *testing.T) {
	tripSvc, _ := newTripService(t)

	created := bookTrip(t, tripSvc, nil)

	_, err := tripSvc.UpdateCharges(context.Background(), created.OrderNumber, &domain.UpdateChargesRequest{
		DeductionCharges: []domain.ChargeInput{{Description: "LR charges", Amount: 500}},
	})
	assert.ErrorIs(t, err, service.ErrAdvanceNotPaid)
}

func TestUpdateChargesClassifiesDeductions(t *testing.T) {
	tripSvc, _ := newTripService(t)
	trip := payAdvance(t, tripSvc)

	dto, err := tripSvc.UpdateCharges(context.Background(), trip.OrderNumber, &domain.UpdateChargesRequest{
		AdditionalCharges: []domain.ChargeInput{
			{Description: "Loading labour", Amount: 1500},
		},
		DeductionCharges: []domain.ChargeInput{
			{Description: "LR charges", Amount: 500},
			{Description: "Platform fee", Amount: 300},
			{Description: "Damage penalty", Amount: 1200},
		},
		AddedBy: "ops-team",
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, dto.TotalAdditionalCharges)
	assert.Equal(t, 2000.0, dto.TotalDeductionCharges)
	assert.Equal(t, 500.0, dto.LRCharges)
	assert.Equal(t, 300.0, dto.PlatformFees)
	assert.Equal(t, 1200.0, dto.MiscellaneousCharges)

	// Balance shrinks by the total deductions: 56000 - 2000
	assert.Equal(t, 54000.0, dto.BalanceSupplierFreight)

	require.Len(t, dto.AdditionalCharges, 1)
	require.Len(t, dto.DeductionCharges, 3)
	assert.Equal(t, "ops-team", dto.DeductionCharges[0].AddedBy)
}

func TestUpdateChargesBalanceNeverNegative(t *testing.T) {
	tripSvc, _ := newTripService(t)
	trip := payAdvance(t, tripSvc)

	dto, err := tripSvc.UpdateCharges(context.Background(), trip.OrderNumber, &domain.UpdateChargesRequest{
		DeductionCharges: []domain.ChargeInput{
			{Description: "Catastrophic penalty", Amount: 999999},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dto.BalanceSupplierFreight)
}

func TestUpdateChargesBalanceOverride(t *testing.T) {
	tripSvc, _ := newTripService(t)
	trip := payAdvance(t, tripSvc)

	dto, err := tripSvc.UpdateCharges(context.Background(), trip.OrderNumber, &domain.UpdateChargesRequest{
		DeductionCharges: []domain.ChargeInput{
			{Description: "LR charges", Amount: 500},
		},
		NewBalanceAmount: floatPtr(50000),
	})
	require.NoError(t, err)
	assert.Equal(t, 50000.0, dto.BalanceSupplierFreight)
}

func TestUpdateChargesReasonFallback(t *testing.T) {
	tripSvc, _ := newTripService(t)
	trip := payAdvance(t, tripSvc)
	ctx := context.Background()

	dto, err := tripSvc.UpdateCharges(ctx, trip.OrderNumber, &domain.UpdateChargesRequest{
		DeductionCharges: []domain.ChargeInput{
			{Description: "LR charges", Amount: 500, Reason: "missing LR copy"},
			{Description: "Platform fee", Amount: 300},
		},
		Reason: "settlement review",
	})
	require.NoError(t, err)

	require.Len(t, dto.DeductionCharges, 2)
	assert.Equal(t, "missing LR copy", dto.DeductionCharges[0].Reason)
	assert.Equal(t, "settlement review", dto.DeductionCharges[1].Reason)

	// With no reason anywhere the fallback kicks in
	dto, err = tripSvc.UpdateCharges(ctx, trip.OrderNumber, &domain.UpdateChargesRequest{
		DeductionCharges: []domain.ChargeInput{
			{Description: "Weighbridge", Amount: 200},
		},
	})
	require.NoError(t, err)
	require.Len(t, dto.DeductionCharges, 1)
	assert.Equal(t, "Charge applied", dto.DeductionCharges[0].Reason)
}

func TestUpdateChargesAuditTrail(t *testing.T) {
	tripSvc, _ := newTripService(t)
	trip := payAdvance(t, tripSvc)
	ctx := context.Background()

	_, err := tripSvc.UpdateCharges(ctx, trip.OrderNumber, &domain.UpdateChargesRequest{
		DeductionCharges: []domain.ChargeInput{
			{Description: "LR charges", Amount: 500},
			{Description: "Platform fee", Amount: 300},
		},
	})
	require.NoError(t, err)

	// Modify one charge, drop the other, add a new one
	dto, err := tripSvc.UpdateCharges(ctx, trip.OrderNumber, &domain.UpdateChargesRequest{
		DeductionCharges: []domain.ChargeInput{
			{Description: "LR charges", Amount: 700},
			{Description: "Weighbridge", Amount: 200},
		},
	})
	require.NoError(t, err)

	actions := make(map[domain.ChargeAction]int)
	for _, h := range dto.ChargesHistory {
		actions[h.Action]++
	}
	// First call added two, second modified one, added one, removed one
	assert.Equal(t, 3, actions[domain.ChargeActionAdd])
	assert.Equal(t, 1, actions[domain.ChargeActionModify])
	assert.Equal(t, 1, actions[domain.ChargeActionRemove])

	// The current charge list is the replacement, not an accumulation
	require.Len(t, dto.DeductionCharges, 2)
	assert.Equal(t, 700.0, dto.LRCharges)
	assert.Equal(t, 200.0, dto.MiscellaneousCharges)
	assert.Equal(t, 0.0, dto.PlatformFees)
}
