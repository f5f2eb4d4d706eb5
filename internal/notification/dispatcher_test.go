package notification_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"barangay-portal/internal/events"
	"barangay-portal/internal/messaging/kafka"
	"barangay-portal/internal/notification"
	"barangay-portal/internal/notification/mock"
	"barangay-portal/internal/shared/metrics"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeNotificationRepository struct {
	createFn      func(ctx context.Context, n *notification.Notification) error
	listFn        func(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]notification.Notification, int64, error)
	markReadFn    func(ctx context.Context, userID, id uuid.UUID, at time.Time) (bool, error)
	markAllReadFn func(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	created       []*notification.Notification
}

func (f *fakeNotificationRepository) WithTx(tx *sql.Tx) notification.Repository { return f }

func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if f.createFn != nil {
		if err := f.createFn(ctx, n); err != nil {
			return err
		}
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepository) ListByRecipient(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]notification.Notification, int64, error) {
	return f.listFn(ctx, userID, unreadOnly, page, pageSize)
}

func (f *fakeNotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) (bool, error) {
	return f.markReadFn(ctx, userID, id, at)
}

func (f *fakeNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	return f.markAllReadFn(ctx, userID, at)
}

type fakeOutbox struct {
	err    error
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, e kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error               { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestDispatcher_Notify(t *testing.T) {
	ctx := context.Background()
	recipient := uuid.New()

	t.Run("row and outbox event share one commit", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &fakeNotificationRepository{}
		outbox := &fakeOutbox{}
		d := notification.NewDispatcher(db, repo, outbox, zap.NewNop())

		expectTx(t, sqlMock, true)

		err = d.Notify(ctx, recipient, notification.TypeDocumentRequestStatusChanged, map[string]string{"status": "approved"})

		assert.NoError(t, err)
		require.Len(t, repo.created, 1)
		n := repo.created[0]
		assert.Equal(t, notification.NotifiableUser, n.NotifiableType)
		assert.Equal(t, recipient, n.NotifiableID)
		assert.JSONEq(t, `{"status":"approved"}`, string(n.Data))

		require.Len(t, outbox.events, 1)
		assert.Equal(t, events.NotificationQueuedTopic, outbox.events[0].Topic)
		assert.Equal(t, n.ID.String(), outbox.events[0].AggregateID)

		var queued events.NotificationQueuedEvent
		require.NoError(t, json.Unmarshal(outbox.events[0].Payload, &queued))
		assert.Equal(t, recipient.String(), queued.RecipientID)
		assert.Equal(t, notification.TypeDocumentRequestStatusChanged, queued.NotificationType)

		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		d := notification.NewDispatcher(db, &fakeNotificationRepository{}, &fakeOutbox{err: errors.New("outbox down")}, zap.NewNop())
		expectTx(t, sqlMock, false)

		err = d.Notify(ctx, recipient, notification.TypeMeetingScheduled, nil)

		assert.EqualError(t, err, "outbox down")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("unencodable payload never opens a transaction", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		d := notification.NewDispatcher(db, &fakeNotificationRepository{}, nil, zap.NewNop())

		err = d.Notify(ctx, recipient, notification.TypeMeetingScheduled, make(chan int))

		assert.Error(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestNotifyBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	recipient := uuid.New()

	t.Run("failure is swallowed and counted", func(t *testing.T) {
		d := mock.NewMockDispatcher(ctrl)
		d.EXPECT().
			Notify(gomock.Any(), recipient, notification.TypeInterviewScheduled, gomock.Any()).
			Return(errors.New("smtp unreachable"))

		before := metrics.NotificationFailures(notification.TypeInterviewScheduled)

		assert.NotPanics(t, func() {
			notification.NotifyBestEffort(ctx, d, zap.NewNop(), recipient, notification.TypeInterviewScheduled, nil)
		})
		assert.Equal(t, before+1, metrics.NotificationFailures(notification.TypeInterviewScheduled))
	})

	t.Run("nil dispatcher is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			notification.NotifyBestEffort(ctx, nil, zap.NewNop(), recipient, notification.TypeMeetingScheduled, nil)
		})
	})
}
