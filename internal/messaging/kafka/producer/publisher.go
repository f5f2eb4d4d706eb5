package producer

import (
	"context"

	"barangay-portal/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

const RequestIDHeader = "request_id"

// MessageWriter is the part of *kafkago.Writer the worker needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func publishEvent(ctx context.Context, writer MessageWriter, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "outbox_id", Value: []byte(event.ID)},
			{Key: RequestIDHeader, Value: []byte(event.RequestID)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
