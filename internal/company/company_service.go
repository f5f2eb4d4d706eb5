package company

import (
	"context"
	"errors"

	companyerrors "barangay-portal/internal/company/errors"
	"barangay-portal/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, caller domain.Caller, req UpsertHrCompanyRequest) (HrCompanyResponse, bool, error)
	GetMine(ctx context.Context, caller domain.Caller) (HrCompanyResponse, error)
	GetByID(ctx context.Context, id string) (HrCompanyResponse, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*HrCompany, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

// Upsert creates the caller's company on first call and overwrites it afterwards.
// The bool reports whether a row was created.
func (s *service) Upsert(ctx context.Context, caller domain.Caller, req UpsertHrCompanyRequest) (HrCompanyResponse, bool, error) {
	if !caller.Role.IsEmployer() {
		return HrCompanyResponse{}, false, companyerrors.ErrEmployerOnly
	}

	existing, err := s.repo.FindByUser(ctx, caller.ID)
	err = mapRepositoryError(err)
	switch {
	case err == nil:
		applyRequest(existing, req)
		if err := s.repo.Update(ctx, existing); err != nil {
			s.logger.Error("update hr company failed", zap.Error(err))
			return HrCompanyResponse{}, false, mapRepositoryError(err)
		}
		s.logger.Info("hr company updated", zap.String("hr_company_id", existing.ID.String()))
		return mapToResponse(existing), false, nil

	case errors.Is(err, companyerrors.ErrHrCompanyNotFound):
		c := &HrCompany{ID: uuid.New(), UserID: caller.ID}
		applyRequest(c, req)
		if err := s.repo.Create(ctx, c); err != nil {
			s.logger.Error("create hr company failed", zap.Error(err))
			return HrCompanyResponse{}, false, mapRepositoryError(err)
		}
		s.logger.Info("hr company created",
			zap.String("hr_company_id", c.ID.String()),
			zap.String("user_id", caller.ID.String()),
		)
		return mapToResponse(c), true, nil

	default:
		s.logger.Error("find hr company failed", zap.Error(err))
		return HrCompanyResponse{}, false, err
	}
}

func (s *service) GetMine(ctx context.Context, caller domain.Caller) (HrCompanyResponse, error) {
	c, err := s.repo.FindByUser(ctx, caller.ID)
	if err != nil {
		return HrCompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(c), nil
}

func (s *service) GetByID(ctx context.Context, id string) (HrCompanyResponse, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return HrCompanyResponse{}, companyerrors.ErrInvalidHrCompanyID
	}

	c, err := s.repo.FindByID(ctx, cid)
	if err != nil {
		return HrCompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(c), nil
}

// FindByUser returns nil without error when the user has no company.
func (s *service) FindByUser(ctx context.Context, userID uuid.UUID) (*HrCompany, error) {
	c, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(mapRepositoryError(err), companyerrors.ErrHrCompanyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}
