package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/repository"
)

// DashboardService aggregates trip counts for the operations dashboard
type DashboardService struct {
	tripRepo *repository.TripRepository
	logger   *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(tripRepo *repository.TripRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// StatusCounts returns trip counts per status plus the number of outstanding
// advance and balance payments
func (s *DashboardService) StatusCounts(ctx context.Context) (*domain.StatusCountsDTO, error) {
	counts, err := s.tripRepo.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate status counts: %w", err)
	}
	return counts, nil
}
