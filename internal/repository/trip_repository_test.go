package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/repository"
	"github.com/freightflow/booking-api/internal/testutil"
)

func seedTrip(t *testing.T, repo *repository.TripRepository, orderNumber string) *domain.Trip {
	t.Helper()
	trip := &domain.Trip{
		OrderNumber:            orderNumber,
		ClientName:             "Acme Industries",
		SupplierName:           "Sharma Transport",
		Status:                 domain.TripStatusBooked,
		AdvancePaymentStatus:   domain.PaymentNotStarted,
		BalancePaymentStatus:   domain.PaymentNotStarted,
		SupplierFreight:        80000,
		AdvanceSupplierFreight: 24000,
		BalanceSupplierFreight: 56000,
		IsInAdvanceQueue:       true,
	}
	require.NoError(t, repo.Create(context.Background(), trip))
	return trip
}

func TestResolveByIDAndOrderNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTripRepository(db)
	ctx := context.Background()

	trip := seedTrip(t, repo, "FTL-2025-00001")

	byID, err := repo.Resolve(ctx, trip.ID.String())
	require.NoError(t, err)
	assert.Equal(t, trip.OrderNumber, byID.OrderNumber)

	byOrder, err := repo.Resolve(ctx, "FTL-2025-00001")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, byOrder.ID)

	_, err = repo.Resolve(ctx, "FTL-2025-99999")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateWithHistoryBumpsVersion(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTripRepository(db)
	ctx := context.Background()

	trip := seedTrip(t, repo, "FTL-2025-00001")
	require.Equal(t, int64(0), trip.Version)

	err := repo.UpdateWithHistory(ctx, trip.ID, trip.Version, repository.TripMutation{
		Fields: map[string]interface{}{"notes": "first write"},
	})
	require.NoError(t, err)

	reloaded, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reloaded.Version)
	assert.Equal(t, "first write", reloaded.Notes)
}

func TestUpdateWithHistoryStaleVersionConflicts(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTripRepository(db)
	ctx := context.Background()

	trip := seedTrip(t, repo, "FTL-2025-00001")

	// Two writers load the same version; the second write must lose
	loadedVersion := trip.Version

	err := repo.UpdateWithHistory(ctx, trip.ID, loadedVersion, repository.TripMutation{
		Fields: map[string]interface{}{"notes": "writer one"},
	})
	require.NoError(t, err)

	err = repo.UpdateWithHistory(ctx, trip.ID, loadedVersion, repository.TripMutation{
		Fields:         map[string]interface{}{"notes": "writer two"},
		PaymentHistory: []domain.PaymentHistoryEntry{{PaymentType: domain.PaymentTypeAdvance, Status: domain.PaymentPaid}},
	})
	assert.ErrorIs(t, err, repository.ErrVersionConflict)

	// The losing write left nothing behind
	reloaded, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "writer one", reloaded.Notes)
	assert.Empty(t, reloaded.PaymentHistory)
}

func TestUpdateWithHistoryMissingTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTripRepository(db)

	trip := seedTrip(t, repo, "FTL-2025-00001")
	require.NoError(t, repo.Delete(context.Background(), trip.ID))

	err := repo.UpdateWithHistory(context.Background(), trip.ID, 0, repository.TripMutation{
		Fields: map[string]interface{}{"notes": "ghost"},
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateWithHistoryReplacesCharges(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTripRepository(db)
	ctx := context.Background()

	trip := seedTrip(t, repo, "FTL-2025-00001")

	err := repo.UpdateWithHistory(ctx, trip.ID, 0, repository.TripMutation{
		Fields: map[string]interface{}{"total_deduction_charges": 500.0},
		ReplaceCharges: []domain.TripCharge{
			{ChargeType: domain.ChargeTypeDeduction, Description: "LR charges", Amount: 500, AddedBy: "ops"},
		},
		ChargesSet: true,
	})
	require.NoError(t, err)

	// An empty replacement clears the list
	err = repo.UpdateWithHistory(ctx, trip.ID, 1, repository.TripMutation{
		Fields:     map[string]interface{}{"total_deduction_charges": 0.0},
		ChargesSet: true,
	})
	require.NoError(t, err)

	reloaded, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Charges)
	assert.Equal(t, int64(2), reloaded.Version)
}

func TestDeleteRemovesChildRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTripRepository(db)
	ctx := context.Background()

	trip := seedTrip(t, repo, "FTL-2025-00001")
	err := repo.UpdateWithHistory(ctx, trip.ID, 0, repository.TripMutation{
		Fields:         map[string]interface{}{"notes": "with children"},
		PaymentHistory: []domain.PaymentHistoryEntry{{PaymentType: domain.PaymentTypeAdvance, Status: domain.PaymentInitiated}},
		Documents:      []domain.TripDocument{{Type: domain.DocumentTypeLR, Filename: "lr.pdf", URL: "x"}},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, trip.ID))

	var historyCount, documentCount int64
	require.NoError(t, db.Model(&domain.PaymentHistoryEntry{}).Where("trip_id = ?", trip.ID).Count(&historyCount).Error)
	require.NoError(t, db.Model(&domain.TripDocument{}).Where("trip_id = ?", trip.ID).Count(&documentCount).Error)
	assert.Zero(t, historyCount)
	assert.Zero(t, documentCount)

	assert.ErrorIs(t, repo.Delete(ctx, trip.ID), gorm.ErrRecordNotFound)
}

func TestStatusCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTripRepository(db)
	ctx := context.Background()

	seedTrip(t, repo, "FTL-2025-00001")
	seedTrip(t, repo, "FTL-2025-00002")

	inTransit := seedTrip(t, repo, "FTL-2025-00003")
	require.NoError(t, repo.UpdateWithHistory(ctx, inTransit.ID, 0, repository.TripMutation{
		Fields: map[string]interface{}{
			"status":                 domain.TripStatusInTransit,
			"advance_payment_status": domain.PaymentPaid,
			"is_in_advance_queue":    false,
		},
	}))

	counts, err := repo.StatusCounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), counts.TotalTrips)
	assert.Equal(t, int64(2), counts.BookedTrips)
	assert.Equal(t, int64(1), counts.InTransitTrips)
	assert.Equal(t, int64(0), counts.CompletedTrips)
	assert.Equal(t, int64(2), counts.PendingAdvancePayments)
	assert.Equal(t, int64(0), counts.PendingBalancePayments)
}
