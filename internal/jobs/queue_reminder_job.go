package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/notifier"
)

// QueueReminderJobName is the name of the payment queue reminder job
const QueueReminderJobName = "payment_queue_reminder"

// queueReminderTimeout bounds a single scan of both queues
const queueReminderTimeout = 2 * time.Minute

// PaymentQueueService defines the queue reads the reminder job needs.
// The job only reads queue state; it never mutates trips.
type PaymentQueueService interface {
	AdvanceQueue(ctx context.Context) ([]domain.QueueEntryDTO, error)
	BalanceQueue(ctx context.Context) ([]domain.QueueEntryDTO, error)
}

// QueueReminderJob scans both payment queues for entries that have been
// waiting longer than the configured threshold and publishes a reminder event
// for each.
type QueueReminderJob struct {
	payments   PaymentQueueService
	notifier   notifier.Notifier
	logger     *zap.Logger
	staleAfter time.Duration
}

// NewQueueReminderJob creates a new queue reminder job.
func NewQueueReminderJob(payments PaymentQueueService, n notifier.Notifier, logger *zap.Logger, staleAfter time.Duration) *QueueReminderJob {
	return &QueueReminderJob{
		payments:   payments,
		notifier:   n,
		logger:     logger,
		staleAfter: staleAfter,
	}
}

// Run executes one scan. Called by the scheduler according to the cron
// expression.
func (j *QueueReminderJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), queueReminderTimeout)
	defer cancel()

	start := time.Now()
	cutoff := start.Add(-j.staleAfter)
	reminded := 0

	advance, err := j.payments.AdvanceQueue(ctx)
	if err != nil {
		j.logger.Error("queue reminder: advance queue scan failed", zap.Error(err))
	} else {
		for i := range advance {
			if advance[i].CreatedAt.Before(cutoff) {
				j.remind(&advance[i], advance[i].CreatedAt)
				reminded++
			}
		}
	}

	balance, err := j.payments.BalanceQueue(ctx)
	if err != nil {
		j.logger.Error("queue reminder: balance queue scan failed", zap.Error(err))
	} else {
		for i := range balance {
			// Balance entries wait from POD upload, not from booking
			waitingSince := balance[i].CreatedAt
			if balance[i].PODDate != nil {
				waitingSince = *balance[i].PODDate
			}
			if waitingSince.Before(cutoff) {
				j.remind(&balance[i], waitingSince)
				reminded++
			}
		}
	}

	j.logger.Info("queue reminder scan completed",
		zap.Int("reminders_published", reminded),
		zap.Duration("stale_after", j.staleAfter),
		zap.Duration("duration", time.Since(start)))
}

func (j *QueueReminderJob) remind(entry *domain.QueueEntryDTO, waitingSince time.Time) {
	j.notifier.Publish(notifier.NewEvent(
		notifier.EventQueueReminder,
		entry.ID.String(),
		entry.OrderNumber,
		map[string]interface{}{
			"paymentType":   entry.PaymentType,
			"paymentStatus": entry.PaymentStatus,
			"amount":        entry.Amount,
			"supplierName":  entry.SupplierName,
			"waitingSince":  waitingSince,
		},
	))
}

// RegisterQueueReminderJob registers the queue reminder job with the
// scheduler.
func RegisterQueueReminderJob(scheduler *Scheduler, payments PaymentQueueService, n notifier.Notifier, logger *zap.Logger, cronExpr string, staleAfter time.Duration) error {
	job := NewQueueReminderJob(payments, n, logger, staleAfter)
	return scheduler.AddJob(QueueReminderJobName, cronExpr, job.Run)
}
