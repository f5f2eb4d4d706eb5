package resident

import (
	"context"
	"errors"
	"strings"
	"time"

	"barangay-portal/internal/domain"
	residenterrors "barangay-portal/internal/resident/errors"
	"barangay-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=resident_service.go -destination=mock/resident_service_mock.go -package=mock
type Service interface {
	AddSkill(ctx context.Context, caller domain.Caller, req AddSkillRequest) (SkillResponse, error)
	ListSkills(ctx context.Context, caller domain.Caller) ([]SkillResponse, error)
	DeleteSkill(ctx context.Context, caller domain.Caller, id string) error
	AddEmploymentRecord(ctx context.Context, caller domain.Caller, req AddEmploymentRecordRequest) (EmploymentRecordResponse, error)
	ListEmploymentRecords(ctx context.Context, caller domain.Caller) ([]EmploymentRecordResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("resident.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resident.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))
}

func (s *service) AddSkill(ctx context.Context, caller domain.Caller, req AddSkillRequest) (SkillResponse, error) {
	skill := &Skill{
		ID:              uuid.New(),
		UserID:          caller.ID,
		Name:            strings.TrimSpace(req.Name),
		Level:           req.Level,
		YearsExperience: req.YearsExperience,
	}

	if err := s.repo.CreateSkill(ctx, skill); err != nil {
		mapped := mapSkillError(err)
		if !errors.Is(mapped, residenterrors.ErrSkillAlreadyExists) {
			s.log(ctx).Error("create skill failed", zap.Error(err))
		}
		return SkillResponse{}, mapped
	}
	return mapSkill(*skill), nil
}

func (s *service) ListSkills(ctx context.Context, caller domain.Caller) ([]SkillResponse, error) {
	items, err := s.repo.ListSkills(ctx, caller.ID)
	if err != nil {
		s.log(ctx).Error("list skills failed", zap.Error(err))
		return nil, err
	}
	return mapSkills(items), nil
}

func (s *service) DeleteSkill(ctx context.Context, caller domain.Caller, id string) error {
	sid, err := uuid.Parse(id)
	if err != nil {
		return residenterrors.ErrInvalidSkillID
	}

	affected, err := s.repo.DeleteSkill(ctx, caller.ID, sid)
	if err != nil {
		s.log(ctx).Error("delete skill failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return residenterrors.ErrSkillNotFound
	}
	return nil
}

func (s *service) AddEmploymentRecord(ctx context.Context, caller domain.Caller, req AddEmploymentRecordRequest) (EmploymentRecordResponse, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return EmploymentRecordResponse{}, residenterrors.ErrInvalidStartDate
	}

	rec := &EmploymentRecord{
		ID:             uuid.New(),
		UserID:         caller.ID,
		EmployerName:   strings.TrimSpace(req.EmployerName),
		Position:       strings.TrimSpace(req.Position),
		EmploymentType: req.EmploymentType,
		StartDate:      start,
		IsCurrent:      req.IsCurrent,
	}

	if req.EndDate != nil && *req.EndDate != "" {
		if req.IsCurrent {
			return EmploymentRecordResponse{}, residenterrors.ErrCurrentWithEndDate
		}
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil || end.Before(start) {
			return EmploymentRecordResponse{}, residenterrors.ErrInvalidEndDate
		}
		rec.EndDate = &end
	}
	if req.MonthlyIncome != nil {
		v := toCentavos(*req.MonthlyIncome)
		rec.MonthlyIncome = &v
	}

	if err := s.repo.CreateEmploymentRecord(ctx, rec); err != nil {
		s.log(ctx).Error("create employment record failed", zap.Error(err))
		return EmploymentRecordResponse{}, err
	}
	return mapEmploymentRecord(*rec), nil
}

func (s *service) ListEmploymentRecords(ctx context.Context, caller domain.Caller) ([]EmploymentRecordResponse, error) {
	items, err := s.repo.ListEmploymentRecords(ctx, caller.ID)
	if err != nil {
		s.log(ctx).Error("list employment records failed", zap.Error(err))
		return nil, err
	}
	return mapEmploymentRecords(items), nil
}
