package job

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"barangay-portal/internal/company"
	"barangay-portal/internal/domain"
	joberrors "barangay-portal/internal/job/errors"
	"barangay-portal/internal/notification"
	"barangay-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const timeLayout = "15:04"

// CompanyLookup resolves the HR company owned by a user, nil when the user has none.
type CompanyLookup interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*company.HrCompany, error)
}

// CacheInvalidator drops derived analytics once listing or application counts change.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	CreateListing(ctx context.Context, caller domain.Caller, req CreateJobListingRequest) (JobListingResponse, error)
	ListListings(ctx context.Context, filter ListingFilter, page, pageSize int) ([]JobListingResponse, int64, error)
	GetListing(ctx context.Context, id string) (JobListingResponse, error)

	Apply(ctx context.Context, caller domain.Caller, req ApplyRequest) (JobApplicationResponse, error)
	ListApplications(ctx context.Context, caller domain.Caller, listingID string) ([]JobApplicationResponse, error)
	MyApplications(ctx context.Context, caller domain.Caller) ([]JobApplicationResponse, error)
	Accept(ctx context.Context, caller domain.Caller, applicationID string) (JobApplicationResponse, error)
	Reject(ctx context.Context, caller domain.Caller, applicationID string) (JobApplicationResponse, error)
	ScheduleInterview(ctx context.Context, caller domain.Caller, listingID string, req ScheduleInterviewRequest) (JobApplicationResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	companies  CompanyLookup
	dispatcher notification.Dispatcher
	cache      CacheInvalidator
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, companies CompanyLookup, dispatcher notification.Dispatcher, cache CacheInvalidator, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		companies:  companies,
		dispatcher: dispatcher,
		cache:      cache,
		now:        time.Now,
		logger:     l,
	}
}

func NewServiceWithClock(db *sql.DB, repo Repository, companies CompanyLookup, dispatcher notification.Dispatcher, cache CacheInvalidator, now func() time.Time, logger ...*zap.Logger) Service {
	s := NewService(db, repo, companies, dispatcher, cache, logger...).(*service)
	s.now = now
	return s
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))
}

func (s *service) CreateListing(ctx context.Context, caller domain.Caller, req CreateJobListingRequest) (JobListingResponse, error) {
	log := s.log(ctx)

	if !caller.Role.IsEmployer() {
		return JobListingResponse{}, joberrors.ErrEmployerOnly
	}

	needed := req.NeededApplicants
	if needed < 1 {
		needed = 1
	}

	l := &JobListing{
		ID:               uuid.New(),
		Title:            strings.TrimSpace(req.Title),
		Company:          strings.TrimSpace(req.Company),
		Type:             req.Type,
		Salary:           req.Salary,
		Description:      req.Description,
		Urgent:           req.Urgent,
		Status:           ListingOpen,
		PostedAt:         s.now(),
		NeededApplicants: needed,
		PostedBy:         caller.ID,
	}

	if s.companies != nil {
		hc, err := s.companies.FindByUser(ctx, caller.ID)
		if err != nil {
			log.Error("hr company lookup failed", zap.Error(err))
			return JobListingResponse{}, err
		}
		if hc != nil {
			l.HrCompanyID = &hc.ID
		}
	}

	if err := s.repo.CreateListing(ctx, l); err != nil {
		log.Error("create job listing failed", zap.Error(err))
		return JobListingResponse{}, err
	}

	log.Info("job listing created",
		zap.String("job_listing_id", l.ID.String()),
		zap.String("posted_by", caller.ID.String()),
		zap.Int("needed_applicants", needed),
	)
	s.invalidateCache(ctx)
	return mapListing(*l), nil
}

func (s *service) ListListings(ctx context.Context, filter ListingFilter, page, pageSize int) ([]JobListingResponse, int64, error) {
	if filter.Status != "" && filter.Status != ListingOpen && filter.Status != ListingFilled {
		return nil, 0, joberrors.ErrInvalidListingStatus
	}

	items, total, err := s.repo.ListListings(ctx, filter, page, pageSize)
	if err != nil {
		s.log(ctx).Error("list job listings failed", zap.Error(err))
		return nil, 0, err
	}
	return mapListings(items), total, nil
}

func (s *service) GetListing(ctx context.Context, id string) (JobListingResponse, error) {
	lid, err := uuid.Parse(id)
	if err != nil {
		return JobListingResponse{}, joberrors.ErrInvalidJobListingID
	}

	l, err := s.repo.FindListing(ctx, lid)
	if err != nil {
		return JobListingResponse{}, mapListingLookup(err)
	}
	return mapListing(*l), nil
}

func (s *service) Apply(ctx context.Context, caller domain.Caller, req ApplyRequest) (JobApplicationResponse, error) {
	log := s.log(ctx)

	if caller.Role != domain.RoleResident {
		return JobApplicationResponse{}, joberrors.ErrResidentOnly
	}

	lid, err := uuid.Parse(req.JobListingID)
	if err != nil {
		return JobApplicationResponse{}, joberrors.ErrInvalidJobListingID
	}

	l, err := s.repo.FindListing(ctx, lid)
	if err != nil {
		return JobApplicationResponse{}, mapListingLookup(err)
	}
	if l.Status != ListingOpen {
		return JobApplicationResponse{}, joberrors.ErrListingClosed
	}

	exists, err := s.repo.ApplicationExists(ctx, caller.ID, lid)
	if err != nil {
		log.Error("application lookup failed", zap.Error(err))
		return JobApplicationResponse{}, err
	}
	if exists {
		log.Warn("duplicate job application",
			zap.String("user_id", caller.ID.String()),
			zap.String("job_listing_id", lid.String()),
		)
		return JobApplicationResponse{}, joberrors.ErrAlreadyApplied
	}

	a := &JobApplication{
		ID:           uuid.New(),
		UserID:       caller.ID,
		JobListingID: lid,
		CoverLetter:  req.CoverLetter,
		Status:       ApplicationPending,
		CreatedAt:    s.now(),
	}

	// The unique index catches the race the read check above cannot.
	if err := s.repo.CreateApplication(ctx, a); err != nil {
		mapped := mapWriteError(err)
		if errors.Is(mapped, joberrors.ErrAlreadyApplied) {
			log.Warn("duplicate job application rejected by index", zap.String("job_listing_id", lid.String()))
			return JobApplicationResponse{}, mapped
		}
		log.Error("create job application failed", zap.Error(err))
		return JobApplicationResponse{}, err
	}

	log.Info("job application submitted",
		zap.String("job_application_id", a.ID.String()),
		zap.String("job_listing_id", lid.String()),
	)
	s.invalidateCache(ctx)

	notification.NotifyBestEffort(ctx, s.dispatcher, s.logger, l.PostedBy,
		notification.TypeJobApplicationReceived,
		map[string]any{
			"job_application_id": a.ID.String(),
			"job_listing_id":     l.ID.String(),
			"title":              l.Title,
			"applicant_id":       caller.ID.String(),
			"applicant_name":     caller.Name,
		},
	)

	a.JobListing = l
	return mapApplication(*a), nil
}

func (s *service) ListApplications(ctx context.Context, caller domain.Caller, listingID string) ([]JobApplicationResponse, error) {
	lid, err := uuid.Parse(listingID)
	if err != nil {
		return nil, joberrors.ErrInvalidJobListingID
	}

	l, err := s.repo.FindListing(ctx, lid)
	if err != nil {
		return nil, mapListingLookup(err)
	}
	if !canManage(caller, l) {
		return nil, joberrors.ErrNotListingOwner
	}

	items, err := s.repo.ListByListing(ctx, lid)
	if err != nil {
		s.log(ctx).Error("list job applications failed", zap.Error(err))
		return nil, err
	}
	return mapApplications(items), nil
}

func (s *service) MyApplications(ctx context.Context, caller domain.Caller) ([]JobApplicationResponse, error) {
	items, err := s.repo.ListByUser(ctx, caller.ID)
	if err != nil {
		s.log(ctx).Error("list my job applications failed", zap.Error(err))
		return nil, err
	}
	return mapApplications(items), nil
}

type decision struct {
	application *JobApplication
	listing     *JobListing
	filled      bool
}

func (s *service) Accept(ctx context.Context, caller domain.Caller, applicationID string) (JobApplicationResponse, error) {
	out, err := s.decide(ctx, caller, applicationID, ApplicationAccepted)
	if err != nil {
		return JobApplicationResponse{}, err
	}
	s.invalidateCache(ctx)

	s.log(ctx).Info("job application accepted",
		zap.String("job_application_id", out.application.ID.String()),
		zap.String("job_listing_id", out.listing.ID.String()),
		zap.Bool("listing_filled", out.filled),
	)

	notification.NotifyBestEffort(ctx, s.dispatcher, s.logger, out.application.UserID,
		notification.TypeJobApplicationAccepted,
		map[string]any{
			"job_application_id": out.application.ID.String(),
			"job_listing_id":     out.listing.ID.String(),
			"title":              out.listing.Title,
			"company":            out.listing.Company,
		},
	)
	return s.reload(ctx, out.application), nil
}

func (s *service) Reject(ctx context.Context, caller domain.Caller, applicationID string) (JobApplicationResponse, error) {
	out, err := s.decide(ctx, caller, applicationID, ApplicationRejected)
	if err != nil {
		return JobApplicationResponse{}, err
	}
	s.invalidateCache(ctx)

	s.log(ctx).Info("job application rejected",
		zap.String("job_application_id", out.application.ID.String()),
		zap.String("job_listing_id", out.listing.ID.String()),
	)

	notification.NotifyBestEffort(ctx, s.dispatcher, s.logger, out.application.UserID,
		notification.TypeJobApplicationRejected,
		map[string]any{
			"job_application_id": out.application.ID.String(),
			"job_listing_id":     out.listing.ID.String(),
			"title":              out.listing.Title,
			"company":            out.listing.Company,
		},
	)
	return s.reload(ctx, out.application), nil
}

// decide moves a pending application to accepted or rejected. Accepting the
// last needed applicant fills the listing in the same transaction.
func (s *service) decide(ctx context.Context, caller domain.Caller, applicationID, status string) (decision, error) {
	log := s.log(ctx)

	if !caller.Role.IsEmployer() {
		return decision{}, joberrors.ErrEmployerOnly
	}
	aid, err := uuid.Parse(applicationID)
	if err != nil {
		return decision{}, joberrors.ErrInvalidJobApplicationID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("decide application begin tx failed", zap.Error(err))
		return decision{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindApplicationForUpdate(ctx, aid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decision{}, joberrors.ErrJobApplicationNotFound
		}
		log.Error("load job application failed", zap.Error(err))
		return decision{}, err
	}

	l, err := qtx.FindListingForUpdate(ctx, a.JobListingID)
	if err != nil {
		return decision{}, mapListingLookup(err)
	}
	if !canManage(caller, l) {
		return decision{}, joberrors.ErrNotListingOwner
	}
	if status == ApplicationAccepted && l.Status == ListingFilled {
		return decision{}, joberrors.ErrListingFilled
	}
	if a.Status != ApplicationPending {
		return decision{}, joberrors.ErrApplicationNotPending
	}

	a.Status = status
	if err := qtx.UpdateApplication(ctx, a); err != nil {
		log.Error("persist job application failed", zap.Error(err))
		return decision{}, err
	}

	out := decision{application: a, listing: l}
	if status == ApplicationAccepted {
		accepted, err := qtx.CountAccepted(ctx, l.ID)
		if err != nil {
			log.Error("count accepted applications failed", zap.Error(err))
			return decision{}, err
		}
		if accepted >= int64(l.NeededApplicants) {
			if err := qtx.UpdateListingStatus(ctx, l.ID, ListingFilled); err != nil {
				log.Error("fill job listing failed", zap.Error(err))
				return decision{}, err
			}
			l.Status = ListingFilled
			out.filled = true
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("decide application commit failed", zap.Error(err))
		return decision{}, err
	}
	return out, nil
}

func (s *service) ScheduleInterview(ctx context.Context, caller domain.Caller, listingID string, req ScheduleInterviewRequest) (JobApplicationResponse, error) {
	log := s.log(ctx)

	if !caller.Role.IsEmployer() {
		return JobApplicationResponse{}, joberrors.ErrEmployerOnly
	}
	lid, err := uuid.Parse(listingID)
	if err != nil {
		return JobApplicationResponse{}, joberrors.ErrInvalidJobListingID
	}
	aid, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return JobApplicationResponse{}, joberrors.ErrInvalidJobApplicationID
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return JobApplicationResponse{}, joberrors.ErrInvalidInterviewDate
	}
	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return JobApplicationResponse{}, joberrors.ErrInvalidInterviewTime
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("schedule interview begin tx failed", zap.Error(err))
		return JobApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindListing(ctx, lid)
	if err != nil {
		return JobApplicationResponse{}, mapListingLookup(err)
	}
	if !canManage(caller, l) {
		return JobApplicationResponse{}, joberrors.ErrNotListingOwner
	}

	a, err := qtx.FindApplicationForUpdate(ctx, aid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobApplicationResponse{}, joberrors.ErrJobApplicationNotFound
		}
		log.Error("load job application failed", zap.Error(err))
		return JobApplicationResponse{}, err
	}
	if a.JobListingID != l.ID {
		return JobApplicationResponse{}, joberrors.ErrApplicationListingMismatch
	}

	clock := req.Time
	location := strings.TrimSpace(req.Location)
	a.InterviewDate = &date
	a.InterviewTime = &clock
	a.InterviewLocation = &location
	a.InterviewNotes = req.Notes

	if err := qtx.UpdateApplication(ctx, a); err != nil {
		log.Error("persist interview failed", zap.Error(err))
		return JobApplicationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("schedule interview commit failed", zap.Error(err))
		return JobApplicationResponse{}, err
	}

	log.Info("interview scheduled",
		zap.String("job_application_id", a.ID.String()),
		zap.String("job_listing_id", l.ID.String()),
		zap.String("date", req.Date),
	)

	notification.NotifyBestEffort(ctx, s.dispatcher, s.logger, a.UserID,
		notification.TypeInterviewScheduled,
		map[string]any{
			"job_application_id": a.ID.String(),
			"job_listing_id":     l.ID.String(),
			"title":              l.Title,
			"company":            l.Company,
			"date":               req.Date,
			"time":               clock,
			"location":           location,
		},
	)

	a.JobListing = l
	return mapApplication(*a), nil
}

func (s *service) reload(ctx context.Context, a *JobApplication) JobApplicationResponse {
	loaded, err := s.repo.FindApplication(ctx, a.ID)
	if err != nil {
		s.log(ctx).Warn("reload job application failed", zap.Error(err))
		return mapApplication(*a)
	}
	return mapApplication(*loaded)
}

// canManage reports whether caller posted the listing. Admins manage every listing.
func canManage(caller domain.Caller, l *JobListing) bool {
	return caller.Role == domain.RoleAdmin || l.PostedBy == caller.ID
}

func mapListingLookup(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobListingNotFound
	}
	return err
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log(ctx).Warn("analytics cache invalidation failed", zap.Error(err))
	}
}
