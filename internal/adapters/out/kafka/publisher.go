// Package kafka implements the EventPublisher port over a Kafka topic.
// Each status-changed event becomes one JSON message keyed by the subject ID,
// so all transitions of one shipment or offer land on the same partition and
// are consumed in order.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"yolnext/internal/core/domain/model/notification"

	"github.com/segmentio/kafka-go"
)

// writer is the subset of kafka.Writer this publisher needs, injectable in tests.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// statusChangedMessage is the wire envelope for a status-changed event.
type statusChangedMessage struct {
	EventID         string    `json:"event_id"`
	SubjectType     string    `json:"subject_type"`
	SubjectID       string    `json:"subject_id"`
	OldStatus       string    `json:"old_status"`
	NewStatus       string    `json:"new_status"`
	AffectedUserIDs []string  `json:"affected_user_ids"`
	CreatedAt       time.Time `json:"created_at"`
}

// StatusChangedPublisher publishes status-changed events to a Kafka topic.
type StatusChangedPublisher struct {
	writer writer
}

// NewStatusChangedPublisher creates a publisher writing to the given broker
// and topic. The LeastBytes balancer spreads load across partitions while
// the per-subject key keeps ordering within a subject.
func NewStatusChangedPublisher(brokerURL, topic string) *StatusChangedPublisher {
	return &StatusChangedPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerURL),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// NewStatusChangedPublisherWithWriter allows injecting a test writer.
func NewStatusChangedPublisherWithWriter(w writer) *StatusChangedPublisher {
	return &StatusChangedPublisher{writer: w}
}

// Publish hands one status-changed event to the broker as a JSON message
// keyed by the subject ID.
func (p *StatusChangedPublisher) Publish(
	ctx context.Context,
	event *notification.StatusChangedEvent,
) error {
	if err := event.Validate(); err != nil {
		return err
	}

	userIDs := make([]string, 0, len(event.AffectedUserIDs()))
	for _, id := range event.AffectedUserIDs() {
		userIDs = append(userIDs, id.String())
	}

	payload, err := json.Marshal(statusChangedMessage{
		EventID:         event.ID().String(),
		SubjectType:     event.SubjectType().String(),
		SubjectID:       event.SubjectID().String(),
		OldStatus:       event.OldStatus(),
		NewStatus:       event.NewStatus(),
		AffectedUserIDs: userIDs,
		CreatedAt:       event.CreatedAt(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SubjectID().String()),
		Value: payload,
	})
}

// Close shuts down the underlying Kafka writer.
func (p *StatusChangedPublisher) Close() error {
	return p.writer.Close()
}
