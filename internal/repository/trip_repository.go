package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/domain"
)

// ErrVersionConflict is returned when a conditional update finds the trip at a
// different version than the one it was loaded at.
var ErrVersionConflict = errors.New("trip version conflict")

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create persists a trip together with its child rows
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

// GetByID loads a trip with all associations
func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	var trip domain.Trip
	err := r.preloaded(ctx).Where("id = ?", id).First(&trip).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetByOrderNumber loads a trip by its order number with all associations
func (r *TripRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Trip, error) {
	var trip domain.Trip
	err := r.preloaded(ctx).Where("order_number = ?", orderNumber).First(&trip).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// Resolve looks a trip up by UUID first, then falls back to order number.
// References that do not parse as a UUID go straight to the order-number
// lookup.
func (r *TripRepository) Resolve(ctx context.Context, ref string) (*domain.Trip, error) {
	if id, err := uuid.Parse(ref); err == nil {
		trip, err := r.GetByID(ctx, id)
		if err == nil {
			return trip, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return r.GetByOrderNumber(ctx, ref)
}

func (r *TripRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Charges", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC")
		}).
		Preload("PaymentHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Preload("ChargesHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		})
}

// List returns trips with pagination and optional filters
func (r *TripRepository) List(ctx context.Context, page, pageSize int, status domain.TripStatus, search string) ([]domain.Trip, int64, error) {
	var trips []domain.Trip
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Trip{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(order_number) LIKE ? OR LOWER(client_name) LIKE ? OR LOWER(supplier_name) LIKE ? OR LOWER(vehicle_number) LIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Charges").
		Offset(offset).Limit(pageSize).
		Order("created_at DESC").
		Find(&trips).Error

	return trips, total, err
}

// TripMutation is one atomic write against a trip: a conditional field update
// guarded by the version the caller loaded, plus the audit rows and child-list
// replacements that belong to the same change.
type TripMutation struct {
	// Fields are the trip columns to set; version and updated_at are managed
	// here and must not appear in the map.
	Fields map[string]interface{}
	// ReplaceCharges swaps the full trip_charges list when non-nil (empty
	// slice clears it).
	ReplaceCharges []domain.TripCharge
	ChargesSet     bool
	PaymentHistory []domain.PaymentHistoryEntry
	ChargesHistory []domain.ChargesHistoryEntry
	Documents      []domain.TripDocument
}

// UpdateWithHistory applies a mutation in a single transaction. The field
// update only succeeds when the stored version still matches expectedVersion;
// a stale version returns ErrVersionConflict and nothing is written.
func (r *TripRepository) UpdateWithHistory(ctx context.Context, tripID uuid.UUID, expectedVersion int64, mut TripMutation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fields := make(map[string]interface{}, len(mut.Fields)+2)
		for k, v := range mut.Fields {
			fields[k] = v
		}
		fields["version"] = gorm.Expr("version + 1")
		fields["updated_at"] = time.Now().UTC()

		result := tx.Model(&domain.Trip{}).
			Where("id = ? AND version = ?", tripID, expectedVersion).
			Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Distinguish a missing trip from a lost write race
			var count int64
			if err := tx.Model(&domain.Trip{}).Where("id = ?", tripID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrVersionConflict
		}

		if mut.ChargesSet {
			if err := tx.Where("trip_id = ?", tripID).Delete(&domain.TripCharge{}).Error; err != nil {
				return err
			}
			for i := range mut.ReplaceCharges {
				mut.ReplaceCharges[i].TripID = tripID
			}
			if len(mut.ReplaceCharges) > 0 {
				if err := tx.Create(&mut.ReplaceCharges).Error; err != nil {
					return err
				}
			}
		}

		for i := range mut.PaymentHistory {
			mut.PaymentHistory[i].TripID = tripID
		}
		if len(mut.PaymentHistory) > 0 {
			if err := tx.Create(&mut.PaymentHistory).Error; err != nil {
				return err
			}
		}

		for i := range mut.ChargesHistory {
			mut.ChargesHistory[i].TripID = tripID
		}
		if len(mut.ChargesHistory) > 0 {
			if err := tx.Create(&mut.ChargesHistory).Error; err != nil {
				return err
			}
		}

		for i := range mut.Documents {
			mut.Documents[i].TripID = tripID
		}
		if len(mut.Documents) > 0 {
			if err := tx.Create(&mut.Documents).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a trip and its child rows
func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", id).Delete(&domain.TripCharge{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).Delete(&domain.TripDocument{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).Delete(&domain.PaymentHistoryEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).Delete(&domain.ChargesHistoryEntry{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Trip{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AdvanceQueue returns trips waiting for an advance payment, oldest booking
// first
func (r *TripRepository) AdvanceQueue(ctx context.Context) ([]domain.Trip, error) {
	var trips []domain.Trip
	err := r.db.WithContext(ctx).
		Where("is_in_advance_queue = ? AND advance_payment_status <> ?", true, domain.PaymentPaid).
		Order("created_at ASC").
		Find(&trips).Error
	return trips, err
}

// BalanceQueue returns trips waiting for a balance payment, oldest delivery
// first. Only trips with an uploaded POD qualify.
func (r *TripRepository) BalanceQueue(ctx context.Context) ([]domain.Trip, error) {
	var trips []domain.Trip
	err := r.db.WithContext(ctx).
		Where("is_in_balance_queue = ? AND balance_payment_status <> ? AND pod_uploaded = ?", true, domain.PaymentPaid, true).
		Order("pod_date ASC").
		Find(&trips).Error
	return trips, err
}

// StatusCounts aggregates trip counts per status plus outstanding payment
// counts for the dashboard
func (r *TripRepository) StatusCounts(ctx context.Context) (*domain.StatusCountsDTO, error) {
	type statusCount struct {
		Status domain.TripStatus
		Count  int64
	}
	var rows []statusCount

	err := r.db.WithContext(ctx).Model(&domain.Trip{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := &domain.StatusCountsDTO{}
	for _, row := range rows {
		counts.TotalTrips += row.Count
		switch row.Status {
		case domain.TripStatusBooked:
			counts.BookedTrips = row.Count
		case domain.TripStatusInTransit:
			counts.InTransitTrips = row.Count
		case domain.TripStatusCompleted:
			counts.CompletedTrips = row.Count
		}
	}

	if err := r.db.WithContext(ctx).Model(&domain.Trip{}).
		Where("is_in_advance_queue = ? AND advance_payment_status <> ?", true, domain.PaymentPaid).
		Count(&counts.PendingAdvancePayments).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&domain.Trip{}).
		Where("is_in_balance_queue = ? AND balance_payment_status <> ? AND pod_uploaded = ?", true, domain.PaymentPaid, true).
		Count(&counts.PendingBalancePayments).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

// PaymentStats summarizes queue load and settlement progress
func (r *TripRepository) PaymentStats(ctx context.Context) (*domain.PaymentStatsDTO, error) {
	stats := &domain.PaymentStatsDTO{Timestamp: time.Now().UTC()}

	if err := r.db.WithContext(ctx).Model(&domain.Trip{}).
		Where("is_in_advance_queue = ? AND advance_payment_status <> ?", true, domain.PaymentPaid).
		Count(&stats.AdvanceQueue).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&domain.Trip{}).
		Where("is_in_balance_queue = ? AND balance_payment_status <> ? AND pod_uploaded = ?", true, domain.PaymentPaid, true).
		Count(&stats.BalanceQueue).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&domain.Trip{}).
		Where("status <> ? AND (advance_payment_status <> ? OR balance_payment_status <> ?)",
			domain.TripStatusCancelled, domain.PaymentPaid, domain.PaymentPaid).
		Count(&stats.TotalPending).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&domain.Trip{}).
		Where("advance_payment_status = ? AND balance_payment_status = ?", domain.PaymentPaid, domain.PaymentPaid).
		Count(&stats.TotalPaid).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
