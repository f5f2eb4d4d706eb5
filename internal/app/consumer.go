package app

import (
	"context"
	"os/signal"
	"syscall"

	"barangay-portal/internal/events"
	"barangay-portal/internal/messaging/kafka/consumer"
	"barangay-portal/internal/notification"
	"barangay-portal/internal/shared/config"
	"barangay-portal/internal/shared/connection"
	"barangay-portal/internal/user"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const notificationMailGroup = "barangay-portal-notification-mail"

// RunConsumer turns queued notification events into mails until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.DBMaxRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	delivery := notification.NewMailDelivery(
		user.NewRepository(gormDB),
		notification.NewLogMailer(logger),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.NotificationQueuedTopic,
		GroupID:        notificationMailGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Returns once ctx is cancelled by a signal.
	consumer.ConsumeNotificationMail(ctx, reader, delivery, logger)

	logger.Info("consumer shut down")
	return nil
}
