package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"barangay-portal/internal/events"
	"barangay-portal/internal/messaging/kafka/producer"
	"barangay-portal/internal/notification"
	"barangay-portal/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	minRetryDelay = 500 * time.Millisecond
	maxRetryDelay = 30 * time.Second
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// MailDeliverer sends the mail for one queued notification.
type MailDeliverer interface {
	Deliver(ctx context.Context, event events.NotificationQueuedEvent) error
}

// sleep waits for d or until ctx ends. Tests replace it.
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func nextDelay(d time.Duration) time.Duration {
	if d < minRetryDelay {
		return minRetryDelay
	}
	if d*2 > maxRetryDelay {
		return maxRetryDelay
	}
	return d * 2
}

func ConsumeNotificationMail(
	ctx context.Context,
	reader MessageReader,
	delivery MailDeliverer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification_mail")
	log.Info("notification mail consumer started")

	var fetchDelay time.Duration
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification mail consumer stopped")
				return
			}
			fetchDelay = nextDelay(fetchDelay)
			log.Error("fetch notification message failed", zap.Duration("retry_in", fetchDelay), zap.Error(err))
			if sleep(ctx, fetchDelay) != nil {
				log.Info("notification mail consumer stopped")
				return
			}
			continue
		}
		fetchDelay = 0

		handleNotificationMessage(ctx, reader, delivery, log, msg)
	}
}

// handleNotificationMessage commits msg only once it is settled. A failed delivery is
// retried in place, because committing any later offset would skip it for good.
func handleNotificationMessage(
	ctx context.Context,
	reader MessageReader,
	delivery MailDeliverer,
	log *zap.Logger,
	msg kafkago.Message,
) {
	if rid := headerValue(msg, producer.RequestIDHeader); rid != "" {
		ctx = contextutil.WithRequestID(ctx, rid)
		log = log.With(zap.String("request_id", rid))
	}

	var event events.NotificationQueuedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode notification event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	var delay time.Duration
	for attempt := 1; ; attempt++ {
		err := delivery.Deliver(ctx, event)
		if err == nil {
			break
		}
		if errors.Is(err, notification.ErrUnknownRecipient) {
			log.Warn("notification recipient gone, skipping",
				zap.String("notification_id", event.NotificationID),
				zap.String("recipient_id", event.RecipientID),
			)
			_ = reader.CommitMessages(ctx, msg)
			return
		}

		delay = nextDelay(delay)
		log.Error("deliver notification mail failed",
			zap.String("notification_id", event.NotificationID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)
		if sleep(ctx, delay) != nil {
			// Shutting down: the uncommitted offset is redelivered to the group.
			return
		}
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit notification message failed", zap.Error(err))
		return
	}

	log.Info("notification mail delivered",
		zap.String("notification_id", event.NotificationID),
		zap.String("type", event.NotificationType),
	)
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
