package user

import (
	"context"

	"barangay-portal/internal/domain"
	"barangay-portal/internal/shared/contextutil"
	usererrors "barangay-portal/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, caller domain.Caller, page, pageSize int) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, caller domain.Caller, id string) (UserResponse, error)
	Provision(ctx context.Context, caller domain.Caller, req ProvisionUserRequest) (UserResponse, error)
	UpdateRole(ctx context.Context, caller domain.Caller, id string, role string) (UserResponse, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
}

// CacheInvalidator drops derived analytics once resident counts or roles change.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type service struct {
	repo   Repository
	cache  CacheInvalidator
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func NewServiceWithCache(repo Repository, cache CacheInvalidator, logger ...*zap.Logger) Service {
	s := NewService(repo, logger...).(*service)
	s.cache = cache
	return s
}

// InvalidateBestEffort bumps the analytics cache and only logs a failure.
func InvalidateBestEffort(ctx context.Context, cache CacheInvalidator, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		logger.Warn("analytics cache invalidation failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (s *service) List(ctx context.Context, caller domain.Caller, page, pageSize int) ([]UserResponse, int64, error) {
	if caller.Role != domain.RoleAdmin {
		return nil, 0, usererrors.ErrAdminOnly
	}

	users, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = MapToResponse(u)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, caller domain.Caller, id string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	if caller.Role != domain.RoleAdmin && caller.ID != uid {
		return UserResponse{}, usererrors.ErrAdminOnly
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return MapToResponse(*u), nil
}

// Provision creates an account with any role. Only admins reach this path.
func (s *service) Provision(ctx context.Context, caller domain.Caller, req ProvisionUserRequest) (UserResponse, error) {
	log := s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))

	if caller.Role != domain.RoleAdmin {
		log.Warn("provision rejected", zap.String("caller_role", caller.Role.String()))
		return UserResponse{}, usererrors.ErrAdminOnly
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	birthdate, err := ParseBirthdate(req.Birthdate)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidBirthdate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      role,
		Barangay:  req.Barangay,
		Sitio:     req.Sitio,
		Phone:     req.Phone,
		Address:   req.Address,
		Birthdate: birthdate,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		log.Error("failed to provision user", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	log.Info("user provisioned", zap.String("user_id", u.ID.String()), zap.String("role", role.String()))
	InvalidateBestEffort(ctx, s.cache, s.logger)
	return MapToResponse(*u), nil
}

// UpdateRole is the only path that changes an existing account's role.
func (s *service) UpdateRole(ctx context.Context, caller domain.Caller, id string, role string) (UserResponse, error) {
	log := s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))

	if caller.Role != domain.RoleAdmin {
		log.Warn("role change rejected", zap.String("caller_role", caller.Role.String()))
		return UserResponse{}, usererrors.ErrAdminOnly
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	if uid == caller.ID {
		return UserResponse{}, usererrors.ErrCannotChangeOwnRole
	}

	newRole, err := domain.ParseRole(role)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	previous := u.Role
	u.Role = newRole
	if err := s.repo.UpdateRole(ctx, u); err != nil {
		log.Error("failed to update role", zap.Error(err))
		return UserResponse{}, err
	}

	log.Info("user role changed",
		zap.String("user_id", uid.String()),
		zap.String("from", previous.String()),
		zap.String("to", newRole.String()),
	)
	InvalidateBestEffort(ctx, s.cache, s.logger)
	return MapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if caller.Role != domain.RoleAdmin {
		return usererrors.ErrAdminOnly
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}
	if uid == caller.ID {
		return usererrors.ErrCannotChangeOwnRole
	}

	exists, err := s.repo.Exists(ctx, uid)
	if err != nil {
		return err
	}
	if !exists {
		return usererrors.ErrUserNotFound
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		return err
	}
	InvalidateBestEffort(ctx, s.cache, s.logger)
	return nil
}
