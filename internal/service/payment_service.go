package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/mapper"
	"github.com/freightflow/booking-api/internal/repository"
)

// PaymentService serves the payment queues and payment statistics. All
// queue membership is derived from trip state in the store; the service keeps
// no state of its own.
type PaymentService struct {
	tripRepo *repository.TripRepository
	logger   *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(tripRepo *repository.TripRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// AdvanceQueue returns trips waiting for their advance payment, ordered by
// booking time
func (s *PaymentService) AdvanceQueue(ctx context.Context) ([]domain.QueueEntryDTO, error) {
	trips, err := s.tripRepo.AdvanceQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load advance queue: %w", err)
	}

	entries := make([]domain.QueueEntryDTO, len(trips))
	for i := range trips {
		entries[i] = mapper.ToQueueEntryDTO(&trips[i], domain.PaymentTypeAdvance)
	}
	return entries, nil
}

// BalanceQueue returns trips waiting for their balance payment, ordered by
// POD upload time
func (s *PaymentService) BalanceQueue(ctx context.Context) ([]domain.QueueEntryDTO, error) {
	trips, err := s.tripRepo.BalanceQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance queue: %w", err)
	}

	entries := make([]domain.QueueEntryDTO, len(trips))
	for i := range trips {
		entries[i] = mapper.ToQueueEntryDTO(&trips[i], domain.PaymentTypeBalance)
	}
	return entries, nil
}

// Stats summarizes queue load and settlement progress
func (s *PaymentService) Stats(ctx context.Context) (*domain.PaymentStatsDTO, error) {
	stats, err := s.tripRepo.PaymentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment stats: %w", err)
	}
	return stats, nil
}
