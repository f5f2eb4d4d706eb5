package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"barangay-portal/internal/events"
	"barangay-portal/internal/messaging/kafka"
	"barangay-portal/internal/shared/contextutil"
	"barangay-portal/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const eventTypeNotificationQueued = "notification.queued"

//go:generate mockgen -source=dispatcher.go -destination=mock/dispatcher_mock.go -package=mock
type Dispatcher interface {
	Notify(ctx context.Context, recipientID uuid.UUID, eventType string, payload any) error
}

type dispatcher struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

// NewDispatcher stores the notification row and its mail event in one transaction.
// outbox may be nil, in which case no mail is queued.
func NewDispatcher(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	return &dispatcher{db: db, repo: repo, outbox: outbox, logger: l}
}

func (d *dispatcher) Notify(ctx context.Context, recipientID uuid.UUID, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode notification payload: %w", err)
	}

	n := &Notification{
		ID:             uuid.New(),
		Type:           eventType,
		NotifiableType: NotifiableUser,
		NotifiableID:   recipientID,
		Data:           data,
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := d.repo.WithTx(tx).Create(ctx, n); err != nil {
		return err
	}

	if d.outbox != nil {
		event, err := queuedEvent(ctx, n)
		if err != nil {
			return err
		}
		if err := d.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	d.logger.Debug("notification stored",
		zap.String("notification_id", n.ID.String()),
		zap.String("recipient_id", recipientID.String()),
		zap.String("type", eventType),
	)
	return nil
}

func queuedEvent(ctx context.Context, n *Notification) (kafka.OutboxEvent, error) {
	payload, err := json.Marshal(events.NotificationQueuedEvent{
		EventType:        eventTypeNotificationQueued,
		NotificationID:   n.ID.String(),
		RecipientID:      n.NotifiableID.String(),
		NotificationType: n.Type,
		Payload:          n.Data,
		OccurredAt:       time.Now().UTC(),
	})
	if err != nil {
		return kafka.OutboxEvent{}, err
	}

	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: kafka.AggregateNotification,
		AggregateID:   n.ID.String(),
		EventType:     eventTypeNotificationQueued,
		Topic:         events.NotificationQueuedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}, nil
}

// NotifyBestEffort is how feature services raise notifications. A failure is logged
// and counted, never returned, so the triggering write always stands.
func NotifyBestEffort(ctx context.Context, d Dispatcher, logger *zap.Logger, recipientID uuid.UUID, eventType string, payload any) {
	if d == nil {
		return
	}
	if err := d.Notify(ctx, recipientID, eventType, payload); err != nil {
		metrics.RecordNotificationFailure(eventType)
		contextutil.GetLogger(ctx, logger).Error("notification dispatch failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("recipient_id", recipientID.String()),
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}
