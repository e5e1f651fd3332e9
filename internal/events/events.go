package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/kafka"
	"courtside/shared/logger"
	"courtside/shared/timezone"
)

// Event types emitted on the booking and recurring topics.
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingStarted   = "booking.started"
	TypeBookingCompleted = "booking.completed"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingMoved     = "booking.moved"

	TypeRecurringCreated   = "recurring.created"
	TypeRecurringPaid      = "recurring.occurrence_paid"
	TypeRecurringCancelled = "recurring.cancelled"
)

type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type BookingPayload struct {
	BookingID   string `json:"bookingId"`
	ResourceID  string `json:"resourceId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	Status      string `json:"status"`
	ActorID     string `json:"actorId,omitempty"`
}

type RecurringPayload struct {
	GroupID    string   `json:"groupId"`
	ResourceID string   `json:"resourceId"`
	Status     string   `json:"status,omitempty"`
	Booked     int      `json:"booked,omitempty"`
	Skipped    int      `json:"skipped,omitempty"`
	BookingIDs []string `json:"bookingIds,omitempty"`
}

// Publisher emits domain events to the message broker. Publishing is
// fire and forget; a broker outage never fails the request that raised
// the event.
type Publisher interface {
	PublishBooking(ctx context.Context, eventType string, payload BookingPayload)
	PublishRecurring(ctx context.Context, eventType string, payload RecurringPayload)
}

type kafkaPublisher struct {
	client kafka.Client
	config *config.Config
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &kafkaPublisher{
		client: client,
		config: cfg,
	}
}

func (pub *kafkaPublisher) PublishBooking(ctx context.Context, eventType string, payload BookingPayload) {
	pub.send(ctx, pub.config.Kafka.Topics.BookingEvents, payload.BookingID, eventType, payload)
}

func (pub *kafkaPublisher) PublishRecurring(ctx context.Context, eventType string, payload RecurringPayload) {
	pub.send(ctx, pub.config.Kafka.Topics.RecurringEvents, payload.GroupID, eventType, payload)
}

func (pub *kafkaPublisher) send(ctx context.Context, topic, key, eventType string, payload any) {
	envelope := Envelope{
		Type:       eventType,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	// Detached from the request context so a finished request does not
	// cancel the delivery.
	detached := context.WithoutCancel(ctx)

	go func() {
		err := pub.client.SendMessages(detached, topic, kafka.Message{
			Key:   key,
			Value: value,
		})
		if err != nil {
			log.Warn().
				Err(err).
				Str("topic", topic).
				Str("eventType", eventType).
				Msg("failed to publish event")
		}
	}()
}
