package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/mapper"
	"github.com/freightflow/booking-api/internal/notifier"
	"github.com/freightflow/booking-api/internal/repository"
	"github.com/freightflow/booking-api/internal/storage"
)

// DocumentService handles trip document uploads, including the proof of
// delivery that gates balance payments
type DocumentService struct {
	tripRepo *repository.TripRepository
	store    storage.Storage
	notifier notifier.Notifier
	logger   *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	tripRepo *repository.TripRepository,
	store storage.Storage,
	events notifier.Notifier,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		tripRepo: tripRepo,
		store:    store,
		notifier: events,
		logger:   logger,
	}
}

func (s *DocumentService) resolve(ctx context.Context, ref string) (*domain.Trip, error) {
	trip, err := s.tripRepo.Resolve(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to resolve trip: %w", err)
	}
	return trip, nil
}

// UploadPOD registers a proof-of-delivery document. The trip must be in
// transit with the advance paid; a second upload is rejected. On success the
// trip enters the balance payment queue.
func (s *DocumentService) UploadPOD(ctx context.Context, ref string, req *domain.UploadPODRequest) (*domain.TripDTO, error) {
	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.applyPOD(ctx, trip, req.Filename, req.URL)
}

// UploadPODFile stores the POD file and registers it on the trip
func (s *DocumentService) UploadPODFile(ctx context.Context, ref, filename, contentType string, data io.Reader) (*domain.TripDTO, error) {
	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	// Guards run before the upload so a rejected trip never leaves an
	// orphaned file behind
	if err := s.podGuards(trip); err != nil {
		return nil, err
	}

	storagePath, size, err := s.store.Upload(ctx, trip.OrderNumber, filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store POD: %w", err)
	}
	s.logger.Debug("POD file stored",
		zap.String("order_number", trip.OrderNumber),
		zap.String("storage_path", storagePath),
		zap.Int64("size", size),
	)

	return s.applyPOD(ctx, trip, filename, storagePath)
}

func (s *DocumentService) podGuards(trip *domain.Trip) error {
	if trip.PODUploaded {
		return ErrPODAlreadyUploaded
	}
	if trip.Status != domain.TripStatusInTransit {
		return ErrTripNotInTransit
	}
	if trip.AdvancePaymentStatus != domain.PaymentPaid {
		return ErrAdvanceNotPaid
	}
	return nil
}

func (s *DocumentService) applyPOD(ctx context.Context, trip *domain.Trip, filename, url string) (*domain.TripDTO, error) {
	if err := s.podGuards(trip); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	mut := repository.TripMutation{
		Fields: map[string]interface{}{
			"pod_uploaded":        true,
			"pod_date":            now,
			"is_in_balance_queue": true,
		},
		Documents: []domain.TripDocument{{
			Type:           domain.DocumentTypePOD,
			Filename:       filename,
			URL:            url,
			UploadedAt:     now,
			IsDownloadable: true,
		}},
	}

	if err := s.tripRepo.UpdateWithHistory(ctx, trip.ID, trip.Version, mut); err != nil {
		return nil, s.mapWriteError(err)
	}

	s.logger.Info("POD uploaded",
		zap.String("trip_id", trip.ID.String()),
		zap.String("order_number", trip.OrderNumber),
		zap.String("filename", filename),
	)

	updated, err := s.tripRepo.GetByID(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload trip: %w", err)
	}

	dto := mapper.ToTripDTO(updated)
	s.notifier.Publish(notifier.NewEvent(notifier.EventPODUploaded, trip.ID.String(), trip.OrderNumber, map[string]interface{}{
		"filename": filename,
		"podDate":  now,
	}))

	return &dto, nil
}

// UploadDocument attaches a document to a trip. Documents that identify
// themselves as a proof of delivery route through the POD path and its
// guards.
func (s *DocumentService) UploadDocument(ctx context.Context, ref string, req *domain.UploadDocumentRequest) (*domain.TripDTO, error) {
	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	if req.Type == domain.DocumentTypePOD || strings.Contains(strings.ToLower(req.Filename), "pod") {
		return s.applyPOD(ctx, trip, req.Filename, req.URL)
	}

	now := time.Now().UTC()
	mut := repository.TripMutation{
		Fields: map[string]interface{}{},
		Documents: []domain.TripDocument{{
			Type:           req.Type,
			Filename:       req.Filename,
			URL:            req.URL,
			Number:         req.Number,
			UploadedAt:     now,
			IsDownloadable: true,
		}},
	}

	if err := s.tripRepo.UpdateWithHistory(ctx, trip.ID, trip.Version, mut); err != nil {
		return nil, s.mapWriteError(err)
	}

	updated, err := s.tripRepo.GetByID(ctx, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload trip: %w", err)
	}

	dto := mapper.ToTripDTO(updated)
	return &dto, nil
}

// DownloadDocument streams a stored document
func (s *DocumentService) DownloadDocument(ctx context.Context, ref string, documentID uuid.UUID) (io.ReadCloser, *domain.TripDocument, error) {
	trip, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, nil, err
	}

	var doc *domain.TripDocument
	for i := range trip.Documents {
		if trip.Documents[i].ID == documentID {
			doc = &trip.Documents[i]
			break
		}
	}
	if doc == nil {
		return nil, nil, ErrDocumentNotFound
	}

	reader, err := s.store.Download(ctx, doc.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download document: %w", err)
	}
	return reader, doc, nil
}

func (s *DocumentService) mapWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		return ErrWriteConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrTripNotFound
	default:
		return fmt.Errorf("failed to update trip: %w", err)
	}
}
