// Package events publishes reservation lifecycle events to Kafka for the
// notification and analytics collaborators. Publishing is best-effort:
// a failed publish is logged by the caller and never fails the request.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Event types emitted by the reservation engine
const (
	TypePreReservationCreated    = "prereservation.created"
	TypePreReservationConfirmed  = "prereservation.confirmed"
	TypePreReservationExpired    = "prereservation.expired"
	TypePreReservationSuperseded = "prereservation.superseded"
	TypeMissionConfirmed         = "mission.confirmed"
	TypeMissionCancelled         = "mission.cancelled"
	TypePrioritiesRotated        = "priorities.rotated"
)

// Event is the envelope written to the topic.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	AircraftID int64       `json:"aircraftId,omitempty"`
	MemberID   int64       `json:"memberId,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload,omitempty"`
}

// Publisher is the producer surface consumed by usecases.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Producer пишет события в Kafka; ключ — идентификатор судна, чтобы
// события одного судна читались в порядке записи
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a Kafka producer for the given brokers and topic
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("events: at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("events: topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
	}

	return &Producer{writer: writer}, nil
}

// Publish writes one event; the event ID is assigned here
func (p *Producer) Publish(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.AircraftID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(event.ID)},
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: write message: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// NopPublisher отбрасывает события; используется, когда Kafka выключена
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
