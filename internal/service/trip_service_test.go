package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/notifier"
	"github.com/freightflow/booking-api/internal/repository"
	"github.com/freightflow/booking-api/internal/service"
	"github.com/freightflow/booking-api/internal/testutil"
)

func newTripService(t *testing.T) (*service.TripService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	tripRepo := repository.NewTripRepository(db)
	seqRepo := repository.NewOrderSequenceRepository(db)
	svc := service.NewTripService(tripRepo, seqRepo, notifier.NoopNotifier{}, testutil.NewTestLogger())
	return svc, db
}

func floatPtr(v float64) *float64 { return &v }

func bookTrip(t *testing.T, svc *service.TripService, req *domain.CreateTripRequest) *domain.TripDTO {
	t.Helper()
	if req == nil {
		req = &domain.CreateTripRequest{
			ClientName:      "Acme Industries",
			SupplierName:    "Sharma Transport",
			VehicleNumber:   "MH12AB1234",
			Source:          "Pune",
			Destination:     "Nagpur",
			ClientFreight:   100000,
			SupplierFreight: 80000,
		}
	}
	dto, err := svc.CreateTrip(context.Background(), req)
	require.NoError(t, err)
	return dto
}

func TestCreateTripDerivesFinancials(t *testing.T) {
	svc, _ := newTripService(t)

	dto, err := svc.CreateTrip(context.Background(), &domain.CreateTripRequest{
		ClientName:        "Acme Industries",
		SupplierName:      "Sharma Transport",
		ClientFreight:     100000,
		SupplierFreight:   80000,
		AdvancePercentage: floatPtr(40),
	})
	require.NoError(t, err)

	assert.Equal(t, 32000.0, dto.AdvanceSupplierFreight)
	assert.Equal(t, 48000.0, dto.BalanceSupplierFreight)
	assert.Equal(t, 20000.0, dto.Margin)
	assert.Equal(t, 40.0, dto.AdvancePercentage)
	assert.Equal(t, domain.TripStatusBooked, dto.Status)
	assert.Equal(t, domain.PaymentNotStarted, dto.AdvancePaymentStatus)
	assert.Equal(t, domain.PaymentNotStarted, dto.BalancePaymentStatus)
	assert.True(t, dto.IsInAdvanceQueue)
	assert.False(t, dto.IsInBalanceQueue)
	assert.False(t, dto.PODUploaded)
}

func TestCreateTripDefaultAdvancePercentage(t *testing.T) {
	svc, _ := newTripService(t)

	dto := bookTrip(t, svc, nil)

	assert.Equal(t, 30.0, dto.AdvancePercentage)
	assert.Equal(t, 24000.0, dto.AdvanceSupplierFreight)
	assert.Equal(t, 56000.0, dto.BalanceSupplierFreight)
}

func TestCreateTripMarginOverride(t *testing.T) {
	svc, _ := newTripService(t)

	dto, err := svc.CreateTrip(context.Background(), &domain.CreateTripRequest{
		ClientName:      "Acme Industries",
		SupplierName:    "Sharma Transport",
		ClientFreight:   100000,
		SupplierFreight: 80000,
		Margin:          floatPtr(15000),
	})
	require.NoError(t, err)
	assert.Equal(t, 15000.0, dto.Margin)
}

func TestCreateTripRejectsInvalidInput(t *testing.T) {
	svc, _ := newTripService(t)
	ctx := context.Background()

	_, err := svc.CreateTrip(ctx, &domain.CreateTripRequest{
		ClientName: "c", SupplierName: "s",
		SupplierFreight:   1000,
		AdvancePercentage: floatPtr(150),
	})
	assert.ErrorIs(t, err, service.ErrInvalidAdvancePercentage)

	_, err = svc.CreateTrip(ctx, &domain.CreateTripRequest{
		ClientName: "c", SupplierName: "s",
		SupplierFreight:   1000,
		AdvancePercentage: floatPtr(-5),
	})
	assert.ErrorIs(t, err, service.ErrInvalidAdvancePercentage)

	_, err = svc.CreateTrip(ctx, &domain.CreateTripRequest{
		ClientName: "c", SupplierName: "s",
		SupplierFreight: -100,
	})
	assert.ErrorIs(t, err, service.ErrNegativeFreight)
}

func TestCreateTripOrderNumbersAreSequential(t *testing.T) {
	svc, _ := newTripService(t)

	year := time.Now().UTC().Year()
	first := bookTrip(t, svc, nil)
	second := bookTrip(t, svc, nil)

	assert.Equal(t, fmt.Sprintf("FTL-%d-00001", year), first.OrderNumber)
	assert.Equal(t, fmt.Sprintf("FTL-%d-00002", year), second.OrderNumber)
}

func TestGetTripByIDAndOrderNumber(t *testing.T) {
	svc, _ := newTripService(t)
	ctx := context.Background()

	created := bookTrip(t, svc, nil)

	byID, err := svc.GetTrip(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.OrderNumber, byID.OrderNumber)

	byOrder, err := svc.GetTrip(ctx, created.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byOrder.ID)

	_, err = svc.GetTrip(ctx, "FTL-2020-99999")
	assert.ErrorIs(t, err, service.ErrTripNotFound)
}

func TestListTripsFiltersByStatusAndSearch(t *testing.T) {
	svc, _ := newTripService(t)
	ctx := context.Background()

	bookTrip(t, svc, &domain.CreateTripRequest{
		ClientName: "Acme Industries", SupplierName: "Sharma Transport",
		ClientFreight: 50000, SupplierFreight: 40000,
	})
	bookTrip(t, svc, &domain.CreateTripRequest{
		ClientName: "Globex", SupplierName: "Verma Logistics",
		ClientFreight: 60000, SupplierFreight: 45000,
	})

	all, err := svc.ListTrips(ctx, 1, 20, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	booked, err := svc.ListTrips(ctx, 1, 20, domain.TripStatusBooked, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), booked.Total)

	completed, err := svc.ListTrips(ctx, 1, 20, domain.TripStatusCompleted, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), completed.Total)

	search, err := svc.ListTrips(ctx, 1, 20, "", "globex")
	require.NoError(t, err)
	assert.Equal(t, int64(1), search.Total)
}

func TestUpdateTripRederivesPaymentSplit(t *testing.T) {
	svc, _ := newTripService(t)
	ctx := context.Background()

	created := bookTrip(t, svc, nil)

	updated, err := svc.UpdateTrip(ctx, created.OrderNumber, &domain.UpdateTripRequest{
		SupplierFreight: floatPtr(90000),
	})
	require.NoError(t, err)

	assert.Equal(t, 90000.0, updated.SupplierFreight)
	assert.Equal(t, 27000.0, updated.AdvanceSupplierFreight)
	assert.Equal(t, 63000.0, updated.BalanceSupplierFreight)
	assert.Equal(t, 10000.0, updated.Margin)
}

func TestUpdateTripLeavesPaymentStateAlone(t *testing.T) {
	svc, _ := newTripService(t)
	ctx := context.Background()

	created := bookTrip(t, svc, nil)

	notes := "reschedule pickup"
	updated, err := svc.UpdateTrip(ctx, created.OrderNumber, &domain.UpdateTripRequest{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, domain.PaymentNotStarted, updated.AdvancePaymentStatus)
	assert.Equal(t, created.AdvanceSupplierFreight, updated.AdvanceSupplierFreight)
	assert.True(t, updated.IsInAdvanceQueue)
}

func TestUpdateTripStatusGuards(t *testing.T) {
	svc, _ := newTripService(t)
	ctx := context.Background()

	created := bookTrip(t, svc, nil)

	// In Transit requires a paid advance
	_, err := svc.UpdateTripStatus(ctx, created.OrderNumber, domain.TripStatusInTransit)
	assert.ErrorIs(t, err, service.ErrAdvanceNotPaid)

	// Booked cannot jump straight to Completed
	_, err = svc.UpdateTripStatus(ctx, created.OrderNumber, domain.TripStatusCompleted)
	assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)

	_, err = svc.UpdateTripStatus(ctx, created.OrderNumber, "Teleported")
	assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
}

func TestUpdateTripStatusSameStatusIsNoOp(t *testing.T) {
	svc, _ := newTripService(t)

	created := bookTrip(t, svc, nil)

	dto, err := svc.UpdateTripStatus(context.Background(), created.OrderNumber, domain.TripStatusBooked)
	require.NoError(t, err)
	assert.Equal(t, domain.TripStatusBooked, dto.Status)
}

func TestCancelClearsQueuesAndBlocksAfterPayout(t *testing.T) {
	svc, _ := newTripService(t)
	ctx := context.Background()

	created := bookTrip(t, svc, nil)

	cancelled, err := svc.UpdateTripStatus(ctx, created.OrderNumber, domain.TripStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.TripStatusCancelled, cancelled.Status)
	assert.False(t, cancelled.IsInAdvanceQueue)
	assert.False(t, cancelled.IsInBalanceQueue)

	// A trip with a paid advance can no longer be cancelled
	paid := bookTrip(t, svc, nil)
	_, err = svc.ProcessPayment(ctx, paid.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
	})
	require.NoError(t, err)

	_, err = svc.UpdateTripStatus(ctx, paid.OrderNumber, domain.TripStatusCancelled)
	assert.ErrorIs(t, err, service.ErrInvalidStatusTransition)
}

func TestDeleteTripRemovesIt(t *testing.T) {
	svc, _ := newTripService(t)
	ctx := context.Background()

	created := bookTrip(t, svc, nil)

	require.NoError(t, svc.DeleteTrip(ctx, created.OrderNumber))

	_, err := svc.GetTrip(ctx, created.OrderNumber)
	assert.ErrorIs(t, err, service.ErrTripNotFound)

	assert.ErrorIs(t, svc.DeleteTrip(ctx, created.OrderNumber), service.ErrTripNotFound)
}
