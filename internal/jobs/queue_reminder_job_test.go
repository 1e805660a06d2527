package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/jobs"
	"github.com/freightflow/booking-api/internal/notifier"
)

type fakeQueues struct {
	advance    []domain.QueueEntryDTO
	balance    []domain.QueueEntryDTO
	advanceErr error
}

func (f *fakeQueues) AdvanceQueue(ctx context.Context) ([]domain.QueueEntryDTO, error) {
	return f.advance, f.advanceErr
}

func (f *fakeQueues) BalanceQueue(ctx context.Context) ([]domain.QueueEntryDTO, error) {
	return f.balance, nil
}

type capturingNotifier struct {
	events []notifier.Event
}

func (c *capturingNotifier) Publish(event notifier.Event) {
	c.events = append(c.events, event)
}

func queueEntry(orderNumber string, paymentType domain.PaymentType, age time.Duration) domain.QueueEntryDTO {
	return domain.QueueEntryDTO{
		ID:            uuid.New(),
		OrderNumber:   orderNumber,
		SupplierName:  "Sharma Transport",
		PaymentType:   paymentType,
		Amount:        24000,
		PaymentStatus: domain.PaymentNotStarted,
		CreatedAt:     time.Now().Add(-age),
	}
}

func TestQueueReminderPublishesForStaleEntries(t *testing.T) {
	stale := queueEntry("FTL-2025-00001", domain.PaymentTypeAdvance, 48*time.Hour)
	fresh := queueEntry("FTL-2025-00002", domain.PaymentTypeAdvance, time.Hour)

	queues := &fakeQueues{advance: []domain.QueueEntryDTO{stale, fresh}}
	captured := &capturingNotifier{}

	jobs.NewQueueReminderJob(queues, captured, zap.NewNop(), 24*time.Hour).Run()

	require.Len(t, captured.events, 1)
	event := captured.events[0]
	assert.Equal(t, notifier.EventQueueReminder, event.Type)
	assert.Equal(t, stale.OrderNumber, event.OrderNumber)
	assert.Equal(t, stale.ID.String(), event.TripID)

	data, ok := event.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, domain.PaymentTypeAdvance, data["paymentType"])
	assert.Equal(t, "Sharma Transport", data["supplierName"])
}

func TestQueueReminderBalanceWaitsFromPODDate(t *testing.T) {
	// Booked long ago but the POD only just arrived, so the entry is fresh
	entry := queueEntry("FTL-2025-00001", domain.PaymentTypeBalance, 72*time.Hour)
	podDate := time.Now().Add(-time.Hour)
	entry.PODDate = &podDate
	entry.PODUploaded = true

	queues := &fakeQueues{balance: []domain.QueueEntryDTO{entry}}
	captured := &capturingNotifier{}

	jobs.NewQueueReminderJob(queues, captured, zap.NewNop(), 24*time.Hour).Run()
	assert.Empty(t, captured.events)

	// Backdate the POD past the threshold and the reminder fires
	podDate = time.Now().Add(-30 * time.Hour)
	jobs.NewQueueReminderJob(queues, captured, zap.NewNop(), 24*time.Hour).Run()
	require.Len(t, captured.events, 1)
	assert.Equal(t, entry.OrderNumber, captured.events[0].OrderNumber)
}

func TestQueueReminderSurvivesScanFailure(t *testing.T) {
	entry := queueEntry("FTL-2025-00001", domain.PaymentTypeBalance, 48*time.Hour)
	podDate := time.Now().Add(-48 * time.Hour)
	entry.PODDate = &podDate

	queues := &fakeQueues{
		advanceErr: errors.New("connection refused"),
		balance:    []domain.QueueEntryDTO{entry},
	}
	captured := &capturingNotifier{}

	// A failed advance scan must not stop the balance scan
	jobs.NewQueueReminderJob(queues, captured, zap.NewNop(), 24*time.Hour).Run()
	require.Len(t, captured.events, 1)
}
