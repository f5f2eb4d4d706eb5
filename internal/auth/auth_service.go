package auth

import (
	"context"
	"errors"

	autherrors "barangay-portal/internal/auth/errors"
	"barangay-portal/internal/domain"
	"barangay-portal/internal/shared/contextutil"
	"barangay-portal/internal/user"
	usererrors "barangay-portal/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	GetMe(ctx context.Context, caller domain.Caller) (AuthResponse, error)
	Lookup(ctx context.Context, id uuid.UUID) (domain.Caller, error)
}

type service struct {
	users  user.Repository
	cache  user.CacheInvalidator
	logger *zap.Logger
}

func NewService(users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, logger: l}
}

func NewServiceWithCache(users user.Repository, cache user.CacheInvalidator, logger ...*zap.Logger) Service {
	s := NewService(users, logger...).(*service)
	s.cache = cache
	return s
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	log := s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))

	birthdate, err := user.ParseBirthdate(req.Birthdate)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidBirthdate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      domain.RoleResident,
		Barangay:  req.Barangay,
		Sitio:     req.Sitio,
		Phone:     req.Phone,
		Address:   req.Address,
		Birthdate: birthdate,
	}

	if err := s.users.Create(ctx, u); err != nil {
		mapped := user.MapRepositoryError(err)
		if errors.Is(mapped, usererrors.ErrEmailAlreadyRegistered) {
			log.Warn("registration with taken email")
		} else {
			log.Error("failed to register resident", zap.Error(err))
		}
		return AuthResponse{}, mapped
	}

	log.Info("resident registered", zap.String("user_id", u.ID.String()))
	user.InvalidateBestEffort(ctx, s.cache, s.logger)
	return toResponse(u), nil
}

func (s *service) GetMe(ctx context.Context, caller domain.Caller) (AuthResponse, error) {
	u, err := s.users.FindByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrAccountNotFound
		}
		return AuthResponse{}, err
	}
	return toResponse(u), nil
}

// Lookup resolves a verified token subject to the stored identity.
func (s *service) Lookup(ctx context.Context, id uuid.UUID) (domain.Caller, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Caller{}, autherrors.ErrAccountNotFound
		}
		return domain.Caller{}, err
	}
	return u.Caller(), nil
}

func toResponse(u *user.User) AuthResponse {
	return AuthResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role.String(),
		Barangay: u.Barangay,
		Sitio:    u.Sitio,
	}
}
