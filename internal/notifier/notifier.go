package notifier

import (
	"time"
)

// Event types broadcast to connected clients
const (
	EventTripCreated          = "trip_created"
	EventPaymentStatusChanged = "payment_status_changed"
	EventBalanceAmountChanged = "balance_amount_changed"
	EventTripStatusChanged    = "trip_status_changed"
	EventPODUploaded          = "pod_uploaded"
	EventQueueReminder        = "payment_queue_reminder"
)

// Event is one domain event pushed to subscribers
type Event struct {
	Type        string      `json:"type"`
	TripID      string      `json:"tripId,omitempty"`
	OrderNumber string      `json:"orderNumber,omitempty"`
	Data        interface{} `json:"data,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Notifier publishes domain events to interested subscribers. Publishing is
// fire-and-forget: a failed or absent subscriber never affects the write that
// produced the event.
type Notifier interface {
	Publish(event Event)
}

// NewEvent builds an event stamped with the current time
func NewEvent(eventType, tripID, orderNumber string, data interface{}) Event {
	return Event{
		Type:        eventType,
		TripID:      tripID,
		OrderNumber: orderNumber,
		Data:        data,
		Timestamp:   time.Now().UTC(),
	}
}

// NoopNotifier discards all events. Used in tests and when the hub is
// disabled.
type NoopNotifier struct{}

// Publish discards the event
func (NoopNotifier) Publish(Event) {}
