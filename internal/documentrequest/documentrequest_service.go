package documentrequest

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"barangay-portal/internal/bootstrap"
	documentrequesterrors "barangay-portal/internal/documentrequest/errors"
	"barangay-portal/internal/domain"
	"barangay-portal/internal/notification"
	"barangay-portal/internal/scope"
	"barangay-portal/internal/shared/contextutil"
	"barangay-portal/internal/shared/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CacheInvalidator drops cached dashboards derived from document requests.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

//go:generate mockgen -source=documentrequest_service.go -destination=mock/documentrequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller domain.Caller, req CreateDocumentRequestRequest) (DocumentRequestResponse, error)
	List(ctx context.Context, caller domain.Caller, filter ListFilter, page, pageSize int) ([]DocumentRequestResponse, int64, error)
	GetByID(ctx context.Context, caller domain.Caller, id string) (DocumentRequestResponse, error)
	Update(ctx context.Context, caller domain.Caller, id string, req UpdateDocumentRequestRequest) (DocumentRequestResponse, error)
	Types() []DocumentTypeResponse
}

type Dependencies struct {
	Dispatcher notification.Dispatcher
	Cache      CacheInvalidator
	Audit      bootstrap.AuditLogger
}

type service struct {
	db         *sql.DB
	repo       Repository
	dispatcher notification.Dispatcher
	cache      CacheInvalidator
	audit      bootstrap.AuditLogger
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("documentrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("documentrequest.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		audit:      deps.Audit,
		now:        time.Now,
		logger:     l,
	}
}

// NewServiceWithClock fixes the clock used for processed_at and paid_at.
func NewServiceWithClock(db *sql.DB, repo Repository, deps Dependencies, now func() time.Time, logger ...*zap.Logger) Service {
	s := NewService(db, repo, deps, logger...).(*service)
	s.now = now
	return s
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))
}

func (s *service) Types() []DocumentTypeResponse {
	return catalogResponse()
}

func (s *service) Create(ctx context.Context, caller domain.Caller, req CreateDocumentRequestRequest) (DocumentRequestResponse, error) {
	log := s.log(ctx)

	docType := strings.TrimSpace(req.Type)
	if docType == "" {
		return DocumentRequestResponse{}, documentrequesterrors.ErrTypeRequired
	}

	urgency := UrgencyNormal
	if req.Urgency != nil && *req.Urgency != "" {
		if !validUrgency(*req.Urgency) {
			return DocumentRequestResponse{}, documentrequesterrors.ErrInvalidUrgency
		}
		urgency = *req.Urgency
	}

	entry, _ := LookupType(docType)
	d := &DocumentRequest{
		ID:      uuid.New(),
		UserID:  caller.ID,
		Type:    docType,
		Notes:   req.Notes,
		Status:  StatusPending,
		Urgency: urgency,
		Amount:  entry.Fee,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		log.Error("create document request failed", zap.Error(err))
		return DocumentRequestResponse{}, err
	}

	log.Info("document request created",
		zap.String("document_request_id", d.ID.String()),
		zap.String("user_id", caller.ID.String()),
		zap.String("type", docType),
	)
	s.invalidateCache(ctx)

	return mapToResponse(*d), nil
}

// listScopes is the visibility predicate: staff see every request, everyone else only their own.
func listScopes(caller domain.Caller) []Scope {
	if caller.Role.IsStaff() {
		return []Scope{scope.None()}
	}
	return []Scope{scope.OwnedBy("user_id", caller.ID)}
}

func (s *service) List(ctx context.Context, caller domain.Caller, filter ListFilter, page, pageSize int) ([]DocumentRequestResponse, int64, error) {
	scopes := listScopes(caller)
	if filter.Status != "" {
		if !validStatus(filter.Status) {
			return nil, 0, documentrequesterrors.ErrInvalidStatus
		}
		status := filter.Status
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", status)
		})
	}

	items, total, err := s.repo.List(ctx, scopes, page, pageSize)
	if err != nil {
		s.log(ctx).Error("list document requests failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(items), total, nil
}

func (s *service) GetByID(ctx context.Context, caller domain.Caller, id string) (DocumentRequestResponse, error) {
	rid, err := uuid.Parse(id)
	if err != nil {
		return DocumentRequestResponse{}, documentrequesterrors.ErrInvalidDocumentRequestID
	}

	d, err := s.repo.FindByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentRequestResponse{}, documentrequesterrors.ErrDocumentRequestNotFound
		}
		return DocumentRequestResponse{}, err
	}

	if !caller.Role.IsStaff() && d.UserID != caller.ID {
		return DocumentRequestResponse{}, documentrequesterrors.ErrNotOwner
	}
	return mapToResponse(*d), nil
}

type updateOutcome struct {
	request         *DocumentRequest
	fromStatus      string
	statusChanged   bool
	assigneeChanged bool
}

func (s *service) Update(ctx context.Context, caller domain.Caller, id string, req UpdateDocumentRequestRequest) (DocumentRequestResponse, error) {
	log := s.log(ctx)

	if !caller.Role.IsStaff() {
		log.Warn("document request update rejected",
			zap.String("caller_id", caller.ID.String()),
			zap.String("caller_role", caller.Role.String()),
		)
		return DocumentRequestResponse{}, documentrequesterrors.ErrStaffOnly
	}

	rid, err := uuid.Parse(id)
	if err != nil {
		return DocumentRequestResponse{}, documentrequesterrors.ErrInvalidDocumentRequestID
	}
	if err := validateUpdate(req); err != nil {
		log.Warn("document request update validation failed", zap.Error(err))
		return DocumentRequestResponse{}, err
	}

	outcome, err := s.applyUpdate(ctx, rid, req)
	if err != nil {
		return DocumentRequestResponse{}, err
	}
	d := outcome.request

	log.Info("document request updated",
		zap.String("document_request_id", d.ID.String()),
		zap.String("status", d.Status),
		zap.Bool("status_changed", outcome.statusChanged),
	)

	if outcome.statusChanged {
		metrics.RecordDocumentTransition(outcome.fromStatus, d.Status)
		s.auditLog(ctx, bootstrap.AuditLog{
			Action:  bootstrap.AuditDocumentRequestStatus,
			ActorID: caller.ID.String(),
			Message: outcome.fromStatus + " -> " + d.Status,
			Meta: map[string]any{
				"document_request_id": d.ID.String(),
				"owner_id":            d.UserID.String(),
			},
		})
		notification.NotifyBestEffort(ctx, s.dispatcher, s.logger, d.UserID,
			notification.TypeDocumentRequestStatusChanged,
			map[string]any{
				"document_request_id": d.ID.String(),
				"type":                d.Type,
				"type_label":          Label(d.Type),
				"from_status":         outcome.fromStatus,
				"status":              d.Status,
			},
		)
	}

	if outcome.assigneeChanged && d.AssignedTo != nil {
		s.auditLog(ctx, bootstrap.AuditLog{
			Action:  bootstrap.AuditDocumentRequestAssigned,
			ActorID: caller.ID.String(),
			Message: "assigned to " + d.AssignedTo.String(),
			Meta:    map[string]any{"document_request_id": d.ID.String()},
		})
		notification.NotifyBestEffort(ctx, s.dispatcher, s.logger, *d.AssignedTo,
			notification.TypeDocumentRequestAssigned,
			map[string]any{
				"document_request_id": d.ID.String(),
				"type":                d.Type,
				"type_label":          Label(d.Type),
				"urgency":             d.Urgency,
			},
		)
	}

	s.invalidateCache(ctx)

	// Reload for owner and assignee; the write already stands if this fails.
	if loaded, err := s.repo.FindByID(ctx, d.ID); err == nil {
		d = loaded
	} else {
		log.Warn("reload document request failed", zap.Error(err))
	}
	return mapToResponse(*d), nil
}

// applyUpdate is the authoritative write. Nothing outside the transaction happens here.
func (s *service) applyUpdate(ctx context.Context, id uuid.UUID, req UpdateDocumentRequestRequest) (updateOutcome, error) {
	log := s.log(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update document request begin tx failed", zap.Error(err))
		return updateOutcome{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return updateOutcome{}, documentrequesterrors.ErrDocumentRequestNotFound
		}
		log.Error("load document request failed", zap.Error(err))
		return updateOutcome{}, err
	}

	now := s.now()
	outcome := updateOutcome{request: d, fromStatus: d.Status}

	if req.AssignedTo != nil {
		previous := d.AssignedTo
		if *req.AssignedTo == "" {
			d.AssignedTo = nil
		} else {
			assignee, err := uuid.Parse(*req.AssignedTo)
			if err != nil {
				return updateOutcome{}, documentrequesterrors.ErrInvalidAssignee
			}
			exists, err := qtx.UserExists(ctx, assignee)
			if err != nil {
				log.Error("assignee lookup failed", zap.Error(err))
				return updateOutcome{}, err
			}
			if !exists {
				return updateOutcome{}, documentrequesterrors.ErrAssigneeNotFound
			}
			d.AssignedTo = &assignee
		}
		outcome.assigneeChanged = !sameUser(previous, d.AssignedTo)
	}

	if req.Notes != nil {
		d.Notes = req.Notes
	}
	if req.Urgency != nil {
		d.Urgency = *req.Urgency
	}
	if req.Amount != nil {
		d.Amount = pesosToCentavos(*req.Amount)
	}
	if req.IsPaid != nil {
		if *req.IsPaid && !d.IsPaid {
			d.PaidAt = &now
		}
		if !*req.IsPaid {
			d.PaidAt = nil
		}
		d.IsPaid = *req.IsPaid
	}

	if req.Status != nil && *req.Status != d.Status {
		outcome.statusChanged = true
		d.Status = *req.Status
		if d.Status == StatusPending {
			d.ProcessedAt = nil
		} else {
			d.ProcessedAt = &now
		}
	}

	if err := qtx.Update(ctx, d); err != nil {
		log.Error("persist document request failed", zap.Error(err))
		return updateOutcome{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("update document request commit failed", zap.Error(err))
		return updateOutcome{}, err
	}
	return outcome, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log(ctx).Warn("analytics cache invalidation failed", zap.Error(err))
	}
}

func (s *service) auditLog(ctx context.Context, entry bootstrap.AuditLog) {
	if s.audit == nil {
		return
	}
	s.audit.Log(ctx, entry)
}

func validateUpdate(req UpdateDocumentRequestRequest) error {
	if req.Status != nil && !validStatus(*req.Status) {
		return documentrequesterrors.ErrInvalidStatus
	}
	if req.Urgency != nil && !validUrgency(*req.Urgency) {
		return documentrequesterrors.ErrInvalidUrgency
	}
	if req.Amount != nil && *req.Amount < 0 {
		return documentrequesterrors.ErrInvalidAmount
	}
	return nil
}

func validStatus(v string) bool {
	switch v {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func validUrgency(v string) bool {
	switch v {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent:
		return true
	default:
		return false
	}
}

func sameUser(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
