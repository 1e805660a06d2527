package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/notifier"
	"github.com/freightflow/booking-api/internal/repository"
	"github.com/freightflow/booking-api/internal/service"
	"github.com/freightflow/booking-api/internal/testutil"
)

func paymentStatusPtr(s domain.PaymentStatus) *domain.PaymentStatus { return &s }

// newPaymentFixture builds a trip service plus a document service on the same
// database so tests can walk the full lifecycle
func newPaymentFixture(t *testing.T) (*service.TripService, *service.DocumentService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	tripRepo := repository.NewTripRepository(db)
	seqRepo := repository.NewOrderSequenceRepository(db)
	tripSvc := service.NewTripService(tripRepo, seqRepo, notifier.NoopNotifier{}, testutil.NewTestLogger())
	docSvc := service.NewDocumentService(tripRepo, nil, notifier.NoopNotifier{}, testutil.NewTestLogger())
	return tripSvc, docSvc, db
}

func uploadPOD(t *testing.T, docSvc *service.DocumentService, ref string) *domain.TripDTO {
	t.Helper()
	dto, err := docSvc.UploadPOD(context.Background(), ref, &domain.UploadPODRequest{
		Filename: "pod.pdf",
		URL:      "trips/pod.pdf",
	})
	require.NoError(t, err)
	return dto
}

func TestAdvancePaidMovesTripInTransit(t *testing.T) {
	tripSvc, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	created := bookTrip(t, tripSvc, nil)

	dto, err := tripSvc.ProcessPayment(ctx, created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
		UTRNumber:     "UTR123456",
		PaymentMethod: "NEFT",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentPaid, dto.AdvancePaymentStatus)
	assert.Equal(t, domain.TripStatusInTransit, dto.Status)
	assert.False(t, dto.IsInAdvanceQueue)
	assert.True(t, dto.IsInBalanceQueue)
	assert.NotNil(t, dto.AdvancePaymentCompletedAt)
	assert.NotNil(t, dto.PaymentDate)
	assert.Equal(t, "UTR123456", dto.UTRNumber)
	assert.Equal(t, "NEFT", dto.PaymentMethod)

	require.Len(t, dto.PaymentHistory, 1)
	assert.Equal(t, domain.PaymentTypeAdvance, dto.PaymentHistory[0].PaymentType)
	assert.Equal(t, domain.PaymentPaid, dto.PaymentHistory[0].Status)
	assert.Equal(t, created.AdvanceSupplierFreight, dto.PaymentHistory[0].Amount)
}

func TestAdvanceInitiatedStampsInitiationTime(t *testing.T) {
	tripSvc, _, _ := newPaymentFixture(t)

	created := bookTrip(t, tripSvc, nil)

	dto, err := tripSvc.ProcessPayment(context.Background(), created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentInitiated,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentInitiated, dto.AdvancePaymentStatus)
	assert.NotNil(t, dto.AdvancePaymentInitiatedAt)
	assert.Nil(t, dto.AdvancePaymentCompletedAt)
	// Initiated does not move the trip or its queue membership
	assert.Equal(t, domain.TripStatusBooked, dto.Status)
	assert.True(t, dto.IsInAdvanceQueue)
}

func TestBalancePaymentRequiresPOD(t *testing.T) {
	tripSvc, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	created := bookTrip(t, tripSvc, nil)
	_, err := tripSvc.ProcessPayment(ctx, created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
	})
	require.NoError(t, err)

	_, err = tripSvc.ProcessPayment(ctx, created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeBalance,
		PaymentStatus: domain.PaymentInitiated,
	})
	assert.ErrorIs(t, err, service.ErrPODRequired)
}

func TestBalancePaymentRequiresPaidAdvance(t *testing.T) {
	tripSvc, _, _ := newPaymentFixture(t)

	created := bookTrip(t, tripSvc, nil)

	_, err := tripSvc.ProcessPayment(context.Background(), created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeBalance,
		PaymentStatus: domain.PaymentInitiated,
	})
	assert.ErrorIs(t, err, service.ErrAdvanceNotPaid)
}

func TestBalancePaidCompletesTrip(t *testing.T) {
	tripSvc, docSvc, _ := newPaymentFixture(t)
	ctx := context.Background()

	created := bookTrip(t, tripSvc, nil)
	_, err := tripSvc.ProcessPayment(ctx, created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
	})
	require.NoError(t, err)
	uploadPOD(t, docSvc, created.OrderNumber)

	dto, err := tripSvc.ProcessPayment(ctx, created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeBalance,
		PaymentStatus: domain.PaymentPaid,
		UTRNumber:     "UTR654321",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentPaid, dto.BalancePaymentStatus)
	assert.Equal(t, domain.TripStatusCompleted, dto.Status)
	assert.False(t, dto.IsInBalanceQueue)
	assert.NotNil(t, dto.BalancePaymentCompletedAt)
	assert.Len(t, dto.PaymentHistory, 2)
}

func TestSameStatusTransitionIsRejected(t *testing.T) {
	tripSvc, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	created := bookTrip(t, tripSvc, nil)
	_, err := tripSvc.ProcessPayment(ctx, created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
	})
	require.NoError(t, err)

	_, err = tripSvc.ProcessPayment(ctx, created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
	})
	assert.ErrorIs(t, err, service.ErrPaymentStatusUnchanged)
}

func TestUpdatePaymentStatusMovesBothLegs(t *testing.T) {
	tripSvc, docSvc, _ := newPaymentFixture(t)
	ctx := context.Background()

	created := bookTrip(t, tripSvc, nil)

	// Pay the advance through the granular endpoint
	dto, err := tripSvc.UpdatePaymentStatus(ctx, created.OrderNumber, &domain.UpdatePaymentStatusRequest{
		AdvancePaymentStatus: paymentStatusPtr(domain.PaymentPaid),
		UTRNumber:            "UTR000001",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TripStatusInTransit, dto.Status)

	uploadPOD(t, docSvc, created.OrderNumber)

	dto, err = tripSvc.UpdatePaymentStatus(ctx, created.OrderNumber, &domain.UpdatePaymentStatusRequest{
		BalancePaymentStatus: paymentStatusPtr(domain.PaymentPending),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, dto.BalancePaymentStatus)
	assert.Len(t, dto.PaymentHistory, 2)
}

func TestUpdatePaymentStatusRequiresAtLeastOneLeg(t *testing.T) {
	tripSvc, _, _ := newPaymentFixture(t)

	created := bookTrip(t, tripSvc, nil)

	_, err := tripSvc.UpdatePaymentStatus(context.Background(), created.OrderNumber, &domain.UpdatePaymentStatusRequest{})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestProcessPaymentUnknownTrip(t *testing.T) {
	tripSvc, _, _ := newPaymentFixture(t)

	_, err := tripSvc.ProcessPayment(context.Background(), "FTL-2020-00001", &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
	})
	assert.ErrorIs(t, err, service.ErrTripNotFound)
}
