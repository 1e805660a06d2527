package service_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/notifier"
	"github.com/freightflow/booking-api/internal/repository"
	"github.com/freightflow/booking-api/internal/service"
	"github.com/freightflow/booking-api/internal/storage"
	"github.com/freightflow/booking-api/internal/testutil"
)

// newDocumentFixture wires the document service against local file storage
func newDocumentFixture(t *testing.T) (*service.TripService, *service.DocumentService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	tripRepo := repository.NewTripRepository(db)
	seqRepo := repository.NewOrderSequenceRepository(db)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	tripSvc := service.NewTripService(tripRepo, seqRepo, notifier.NoopNotifier{}, testutil.NewTestLogger())
	docSvc := service.NewDocumentService(tripRepo, store, notifier.NoopNotifier{}, testutil.NewTestLogger())
	return tripSvc, docSvc
}

func inTransitTrip(t *testing.T, tripSvc *service.TripService) *domain.TripDTO {
	t.Helper()
	created := bookTrip(t, tripSvc, nil)
	dto, err := tripSvc.ProcessPayment(context.Background(), created.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
	})
	require.NoError(t, err)
	return dto
}

func TestUploadPODEntersBalanceQueue(t *testing.T) {
	tripSvc, docSvc := newDocumentFixture(t)

	trip := inTransitTrip(t, tripSvc)

	dto, err := docSvc.UploadPOD(context.Background(), trip.OrderNumber, &domain.UploadPODRequest{
		Filename: "pod-scan.pdf",
		URL:      "https://storage.example.com/pod-scan.pdf",
	})
	require.NoError(t, err)

	assert.True(t, dto.PODUploaded)
	assert.NotNil(t, dto.PODDate)
	assert.True(t, dto.IsInBalanceQueue)
	require.NotNil(t, dto.PODDocument)
	assert.Equal(t, domain.DocumentTypePOD, dto.PODDocument.Type)
	assert.Equal(t, "pod-scan.pdf", dto.PODDocument.Filename)
	assert.True(t, dto.PODDocument.IsDownloadable)
}

func TestUploadPODGuards(t *testing.T) {
	tripSvc, docSvc := newDocumentFixture(t)
	ctx := context.Background()

	// A trip that is still booked cannot take a POD
	booked := bookTrip(t, tripSvc, nil)
	_, err := docSvc.UploadPOD(ctx, booked.OrderNumber, &domain.UploadPODRequest{
		Filename: "pod.pdf", URL: "x",
	})
	assert.ErrorIs(t, err, service.ErrTripNotInTransit)

	// A second upload on the same trip is rejected
	trip := inTransitTrip(t, tripSvc)
	_, err = docSvc.UploadPOD(ctx, trip.OrderNumber, &domain.UploadPODRequest{
		Filename: "pod.pdf", URL: "x",
	})
	require.NoError(t, err)
	_, err = docSvc.UploadPOD(ctx, trip.OrderNumber, &domain.UploadPODRequest{
		Filename: "pod2.pdf", URL: "y",
	})
	assert.ErrorIs(t, err, service.ErrPODAlreadyUploaded)
}

func TestUploadPODFileStoresAndRegisters(t *testing.T) {
	tripSvc, docSvc := newDocumentFixture(t)
	ctx := context.Background()

	trip := inTransitTrip(t, tripSvc)

	dto, err := docSvc.UploadPODFile(ctx, trip.OrderNumber, "pod.pdf", "application/pdf",
		strings.NewReader("%PDF-1.4 delivered"))
	require.NoError(t, err)

	assert.True(t, dto.PODUploaded)
	require.NotNil(t, dto.PODDocument)

	// The stored file streams back through the document download path
	reader, doc, err := docSvc.DownloadDocument(ctx, trip.OrderNumber, dto.PODDocument.ID)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "pod.pdf", doc.Filename)
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 delivered", string(content))
}

func TestUploadPODFileGuardRunsBeforeStorage(t *testing.T) {
	tripSvc, docSvc := newDocumentFixture(t)

	booked := bookTrip(t, tripSvc, nil)

	_, err := docSvc.UploadPODFile(context.Background(), booked.OrderNumber, "pod.pdf", "application/pdf",
		strings.NewReader("data"))
	assert.ErrorIs(t, err, service.ErrTripNotInTransit)
}

func TestUploadDocumentRoutesPODThroughGuards(t *testing.T) {
	tripSvc, docSvc := newDocumentFixture(t)
	ctx := context.Background()

	// Explicit POD type on a booked trip hits the POD guards
	booked := bookTrip(t, tripSvc, nil)
	_, err := docSvc.UploadDocument(ctx, booked.OrderNumber, &domain.UploadDocumentRequest{
		Type: domain.DocumentTypePOD, Filename: "scan.pdf", URL: "x",
	})
	assert.ErrorIs(t, err, service.ErrTripNotInTransit)

	// A filename that names a pod routes the same way
	_, err = docSvc.UploadDocument(ctx, booked.OrderNumber, &domain.UploadDocumentRequest{
		Type: domain.DocumentTypeOther, Filename: "trip-POD-scan.pdf", URL: "x",
	})
	assert.ErrorIs(t, err, service.ErrTripNotInTransit)
}

func TestUploadDocumentAttachesOtherTypes(t *testing.T) {
	tripSvc, docSvc := newDocumentFixture(t)

	booked := bookTrip(t, tripSvc, nil)

	dto, err := docSvc.UploadDocument(context.Background(), booked.OrderNumber, &domain.UploadDocumentRequest{
		Type:     domain.DocumentTypeLR,
		Filename: "lorry-receipt.pdf",
		URL:      "https://storage.example.com/lr.pdf",
		Number:   "LR-4521",
	})
	require.NoError(t, err)

	require.Len(t, dto.Documents, 1)
	assert.Equal(t, domain.DocumentTypeLR, dto.Documents[0].Type)
	assert.Equal(t, "LR-4521", dto.Documents[0].Number)
	// An LR is not a proof of delivery
	assert.False(t, dto.PODUploaded)
	assert.False(t, dto.IsInBalanceQueue)
}

func TestDownloadDocumentUnknownID(t *testing.T) {
	tripSvc, docSvc := newDocumentFixture(t)

	booked := bookTrip(t, tripSvc, nil)

	_, _, err := docSvc.DownloadDocument(context.Background(), booked.OrderNumber, booked.ID)
	assert.ErrorIs(t, err, service.ErrDocumentNotFound)
}
