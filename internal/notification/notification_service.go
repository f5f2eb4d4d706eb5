package notification

import (
	"context"
	"time"

	"barangay-portal/internal/domain"
	notificationerrors "barangay-portal/internal/notification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, caller domain.Caller, unreadOnly bool, page, pageSize int) ([]NotificationResponse, int64, error)
	MarkRead(ctx context.Context, caller domain.Caller, id string) error
	MarkAllRead(ctx context.Context, caller domain.Caller) (ReadAllResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) List(ctx context.Context, caller domain.Caller, unreadOnly bool, page, pageSize int) ([]NotificationResponse, int64, error) {
	items, total, err := s.repo.ListByRecipient(ctx, caller.ID, unreadOnly, page, pageSize)
	if err != nil {
		s.logger.Error("list notifications failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]NotificationResponse, len(items))
	for i, n := range items {
		resp[i] = mapToResponse(n)
	}
	return resp, total, nil
}

func (s *service) MarkRead(ctx context.Context, caller domain.Caller, id string) error {
	nid, err := uuid.Parse(id)
	if err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}

	found, err := s.repo.MarkRead(ctx, caller.ID, nid, s.now())
	if err != nil {
		return err
	}
	if !found {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, caller domain.Caller) (ReadAllResponse, error) {
	n, err := s.repo.MarkAllRead(ctx, caller.ID, s.now())
	if err != nil {
		return ReadAllResponse{}, err
	}
	return ReadAllResponse{Updated: n}, nil
}
