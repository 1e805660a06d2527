package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/domain"
)

// OrderSequenceRepository handles database operations for order-number
// sequences. One sequence per calendar year keeps order numbers unique and
// monotonic within the year.
type OrderSequenceRepository struct {
	db *gorm.DB
}

// NewOrderSequenceRepository creates a new OrderSequenceRepository
func NewOrderSequenceRepository(db *gorm.DB) *OrderSequenceRepository {
	return &OrderSequenceRepository{db: db}
}

// NextNumber atomically increments and returns the next sequence number for a
// year. The increment runs as a conditional UPDATE inside a transaction, so
// two concurrent callers never receive the same number. A missing row is
// created lazily.
func (r *OrderSequenceRepository) NextNumber(ctx context.Context, year int) (int64, error) {
	var next int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.OrderSequence{}).
			Where("year = ?", year).
			Updates(map[string]interface{}{
				"last_sequence": gorm.Expr("last_sequence + 1"),
				"updated_at":    time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to increment order sequence: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			seq := domain.OrderSequence{
				Year:         year,
				LastSequence: 1,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create order sequence: %w", err)
			}
			next = 1
			return nil
		}

		var seq domain.OrderSequence
		if err := tx.Where("year = ?", year).First(&seq).Error; err != nil {
			return fmt.Errorf("failed to read order sequence: %w", err)
		}
		next = seq.LastSequence
		return nil
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}

// CurrentSequence returns the last used sequence without incrementing.
// Returns 0 when no sequence exists for the year.
func (r *OrderSequenceRepository) CurrentSequence(ctx context.Context, year int) (int64, error) {
	var seq domain.OrderSequence
	result := r.db.WithContext(ctx).Where("year = ?", year).First(&seq)
	if result.Error == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if result.Error != nil {
		return 0, fmt.Errorf("failed to get order sequence: %w", result.Error)
	}
	return seq.LastSequence, nil
}
