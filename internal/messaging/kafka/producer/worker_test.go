package producer_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"barangay-portal/internal/messaging/kafka"
	"barangay-portal/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeOutboxRepo struct {
	pending []kafka.OutboxEvent
	sent    []string
	failed  map[string]string
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.pending = append(f.pending, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return f.pending, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingOnce(t *testing.T) {
	repo := &fakeOutboxRepo{pending: []kafka.OutboxEvent{
		{ID: "a", RequestID: "req-7", AggregateID: "n1", EventType: "notification.queued", Topic: "ok", Payload: []byte(`{}`)},
		{ID: "b", AggregateID: "n2", EventType: "notification.queued", Topic: "down", Payload: []byte(`{}`)},
	}}
	writer := &fakeWriter{failTopic: "down"}

	err := producer.ProcessPendingOnce(context.Background(), repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, []string{"a"}, repo.sent)
	assert.Equal(t, "broker unavailable", repo.failed["b"])
	if assert.Len(t, writer.written, 1) {
		assert.Equal(t, []byte("n1"), writer.written[0].Key)
		assert.Equal(t, "event_type", writer.written[0].Headers[0].Key)
		last := writer.written[0].Headers[len(writer.written[0].Headers)-1]
		assert.Equal(t, producer.RequestIDHeader, last.Key)
		assert.Equal(t, "req-7", string(last.Value))
	}
}

func TestProcessPendingOnce_Empty(t *testing.T) {
	repo := &fakeOutboxRepo{}
	writer := &fakeWriter{}

	err := producer.ProcessPendingOnce(context.Background(), repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Empty(t, writer.written)
}
