package meeting

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"barangay-portal/internal/bootstrap"
	"barangay-portal/internal/domain"
	meetingerrors "barangay-portal/internal/meeting/errors"
	"barangay-portal/internal/notification"
	"barangay-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=meeting_service.go -destination=mock/meeting_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller domain.Caller, req CreateMeetingRequest) (MeetingResponse, error)
	List(ctx context.Context, caller domain.Caller, page, pageSize int) ([]MeetingResponse, int64, error)
	Get(ctx context.Context, caller domain.Caller, id string) (MeetingResponse, error)
	UpdateStatus(ctx context.Context, caller domain.Caller, id string, req UpdateStatusRequest) (MeetingResponse, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
	ScheduleAllSitios(ctx context.Context, caller domain.Caller, req ScheduleAllSitiosRequest) ([]MeetingResponse, error)
	RespondAttendance(ctx context.Context, caller domain.Caller, id string, req RespondAttendanceRequest) (AttendeeResponse, error)
	RecordAttendance(ctx context.Context, caller domain.Caller, id string, req RecordAttendanceRequest) (AttendeeResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	dispatcher notification.Dispatcher
	audit      bootstrap.AuditLogger
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, dispatcher notification.Dispatcher, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("meeting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("meeting.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		dispatcher: dispatcher,
		audit:      audit,
		now:        time.Now,
		logger:     l,
	}
}

func NewServiceWithClock(db *sql.DB, repo Repository, dispatcher notification.Dispatcher, audit bootstrap.AuditLogger, now func() time.Time, logger ...*zap.Logger) Service {
	s := NewService(db, repo, dispatcher, audit, logger...).(*service)
	s.now = now
	return s
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))
}

// invitation is a meeting created in the current transaction and the users it was sent to.
type invitation struct {
	meeting    *BarangayMeeting
	recipients []uuid.UUID
}

func (s *service) Create(ctx context.Context, caller domain.Caller, req CreateMeetingRequest) (MeetingResponse, error) {
	log := s.log(ctx)

	if !isOrganizer(caller.Role) {
		return MeetingResponse{}, meetingerrors.ErrOrganizerOnly
	}
	if !validType(req.MeetingType) {
		return MeetingResponse{}, meetingerrors.ErrInvalidMeetingType
	}

	m := &BarangayMeeting{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		MeetingType:     req.MeetingType,
		Barangay:        caller.Barangay,
		TargetSitio:     blankToNil(req.TargetSitio),
		MeetingDatetime: req.MeetingDatetime,
		Location:        strings.TrimSpace(req.Location),
		Agenda:          req.Agenda,
		Notes:           req.Notes,
		Status:          StatusScheduled,
		CreatedBy:       caller.ID,
	}

	invites, err := s.schedule(ctx, []*BarangayMeeting{m})
	if err != nil {
		return MeetingResponse{}, err
	}

	log.Info("meeting scheduled",
		zap.String("meeting_id", m.ID.String()),
		zap.String("meeting_type", m.MeetingType),
		zap.Int("invited", len(invites[0].recipients)),
	)
	s.afterSchedule(ctx, caller, invites)

	return mapToResponse(*m), nil
}

func (s *service) ScheduleAllSitios(ctx context.Context, caller domain.Caller, req ScheduleAllSitiosRequest) ([]MeetingResponse, error) {
	log := s.log(ctx)

	if !isOrganizer(caller.Role) {
		return nil, meetingerrors.ErrOrganizerOnly
	}
	if !caller.HasBarangay() {
		return nil, meetingerrors.ErrBarangayRequired
	}

	meetingType := req.MeetingType
	if meetingType == "" {
		meetingType = TypeResidents
	}
	if !validType(meetingType) || meetingType == TypeOfficialsOnly {
		return nil, meetingerrors.ErrInvalidMeetingType
	}

	sitios, err := s.repo.DistinctSitios(ctx, caller.BarangayName())
	if err != nil {
		log.Error("list sitios failed", zap.Error(err))
		return nil, err
	}
	if len(sitios) == 0 {
		return nil, meetingerrors.ErrNoSitios
	}

	meetings := make([]*BarangayMeeting, len(sitios))
	for i, sitio := range sitios {
		target := sitio
		meetings[i] = &BarangayMeeting{
			ID:              uuid.New(),
			Title:           strings.TrimSpace(req.Title) + " - " + sitio,
			Description:     req.Description,
			MeetingType:     meetingType,
			Barangay:        caller.Barangay,
			TargetSitio:     &target,
			MeetingDatetime: req.MeetingDatetime,
			Location:        strings.TrimSpace(req.Location),
			Agenda:          req.Agenda,
			Status:          StatusScheduled,
			CreatedBy:       caller.ID,
		}
	}

	invites, err := s.schedule(ctx, meetings)
	if err != nil {
		return nil, err
	}

	log.Info("meetings scheduled for every sitio",
		zap.String("barangay", caller.BarangayName()),
		zap.Int("meetings", len(meetings)),
	)
	s.afterSchedule(ctx, caller, invites)

	out := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		out[i] = mapToResponse(*m)
	}
	return out, nil
}

// schedule writes the meetings and their invitations in one transaction.
func (s *service) schedule(ctx context.Context, meetings []*BarangayMeeting) ([]invitation, error) {
	log := s.log(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("schedule meeting begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()

	invites := make([]invitation, 0, len(meetings))
	for _, m := range meetings {
		m.CreatedAt = now
		if err := qtx.Create(ctx, m); err != nil {
			log.Error("create meeting failed", zap.Error(err))
			return nil, err
		}

		recipients, err := qtx.Recipients(ctx, m)
		if err != nil {
			log.Error("resolve meeting recipients failed", zap.Error(err))
			return nil, err
		}
		if err := qtx.AddAttendees(ctx, m.ID, recipients); err != nil {
			log.Error("invite attendees failed", zap.Error(err))
			return nil, err
		}
		invites = append(invites, invitation{meeting: m, recipients: recipients})
	}

	if err := tx.Commit(); err != nil {
		log.Error("schedule meeting commit failed", zap.Error(err))
		return nil, err
	}
	return invites, nil
}

// afterSchedule runs once the meetings are committed. Notification failures are logged per recipient.
func (s *service) afterSchedule(ctx context.Context, caller domain.Caller, invites []invitation) {
	for _, inv := range invites {
		m := inv.meeting
		s.auditLog(ctx, bootstrap.AuditLog{
			Action:  bootstrap.AuditMeetingScheduled,
			ActorID: caller.ID.String(),
			Message: m.Title,
			Meta: map[string]any{
				"meeting_id":   m.ID.String(),
				"meeting_type": m.MeetingType,
				"invited":      len(inv.recipients),
			},
		})

		payload := map[string]any{
			"meeting_id":       m.ID.String(),
			"title":            m.Title,
			"meeting_type":     m.MeetingType,
			"meeting_datetime": m.MeetingDatetime.Format(time.RFC3339),
			"location":         m.Location,
			"target_sitio":     m.TargetSitio,
		}
		for _, recipient := range inv.recipients {
			notification.NotifyBestEffort(ctx, s.dispatcher, s.logger, recipient,
				notification.TypeMeetingScheduled, payload)
		}
	}
}

func (s *service) List(ctx context.Context, caller domain.Caller, page, pageSize int) ([]MeetingResponse, int64, error) {
	items, total, err := s.repo.List(ctx, listScopes(caller), page, pageSize)
	if err != nil {
		s.log(ctx).Error("list meetings failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(items), total, nil
}

func (s *service) Get(ctx context.Context, caller domain.Caller, id string) (MeetingResponse, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return MeetingResponse{}, err
	}
	if !canSee(caller, m) {
		return MeetingResponse{}, meetingerrors.ErrNotVisible
	}
	return mapToResponse(*m), nil
}

func (s *service) UpdateStatus(ctx context.Context, caller domain.Caller, id string, req UpdateStatusRequest) (MeetingResponse, error) {
	log := s.log(ctx)

	if !isOrganizer(caller.Role) {
		return MeetingResponse{}, meetingerrors.ErrOrganizerOnly
	}
	if !validStatus(req.Status) {
		return MeetingResponse{}, meetingerrors.ErrInvalidStatus
	}

	m, err := s.find(ctx, id)
	if err != nil {
		return MeetingResponse{}, err
	}

	from := m.Status
	m.Status = req.Status
	if req.Notes != nil {
		m.Notes = req.Notes
	}
	if err := s.repo.Update(ctx, m); err != nil {
		log.Error("update meeting status failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	if from != m.Status {
		log.Info("meeting status changed",
			zap.String("meeting_id", m.ID.String()),
			zap.String("from", from),
			zap.String("to", m.Status),
		)
		s.auditLog(ctx, bootstrap.AuditLog{
			Action:  bootstrap.AuditMeetingStatus,
			ActorID: caller.ID.String(),
			Message: from + " -> " + m.Status,
			Meta:    map[string]any{"meeting_id": m.ID.String()},
		})
	}
	return mapToResponse(*m), nil
}

func (s *service) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if !isOrganizer(caller.Role) {
		return meetingerrors.ErrOrganizerOnly
	}

	m, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, m.ID); err != nil {
		s.log(ctx).Error("delete meeting failed", zap.Error(err))
		return err
	}

	s.auditLog(ctx, bootstrap.AuditLog{
		Action:  bootstrap.AuditMeetingDeleted,
		ActorID: caller.ID.String(),
		Message: m.Title,
		Meta:    map[string]any{"meeting_id": m.ID.String()},
	})
	return nil
}

func (s *service) RespondAttendance(ctx context.Context, caller domain.Caller, id string, req RespondAttendanceRequest) (AttendeeResponse, error) {
	if req.Status != AttendanceAttending && req.Status != AttendanceDeclined {
		return AttendeeResponse{}, meetingerrors.ErrInvalidAttendanceStatus
	}

	m, err := s.find(ctx, id)
	if err != nil {
		return AttendeeResponse{}, err
	}
	if !canSee(caller, m) {
		return AttendeeResponse{}, meetingerrors.ErrNotVisible
	}
	if m.Status == StatusCompleted || m.Status == StatusCancelled {
		return AttendeeResponse{}, meetingerrors.ErrMeetingClosed
	}

	now := s.now()
	a := &MeetingAttendee{
		MeetingID:        m.ID,
		UserID:           caller.ID,
		AttendanceStatus: req.Status,
		RespondedAt:      &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.SaveAttendance(ctx, a); err != nil {
		s.log(ctx).Error("save attendance response failed", zap.Error(err))
		return AttendeeResponse{}, err
	}
	return mapAttendee(*a), nil
}

func (s *service) RecordAttendance(ctx context.Context, caller domain.Caller, id string, req RecordAttendanceRequest) (AttendeeResponse, error) {
	if !isOrganizer(caller.Role) {
		return AttendeeResponse{}, meetingerrors.ErrOrganizerOnly
	}
	if req.Status != AttendanceAttended && req.Status != AttendanceAbsent {
		return AttendeeResponse{}, meetingerrors.ErrInvalidAttendanceStatus
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return AttendeeResponse{}, meetingerrors.ErrInvalidAttendee
	}

	m, err := s.find(ctx, id)
	if err != nil {
		return AttendeeResponse{}, err
	}

	a, err := s.repo.FindAttendee(ctx, m.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendeeResponse{}, meetingerrors.ErrInvalidAttendee
		}
		return AttendeeResponse{}, err
	}

	a.AttendanceStatus = req.Status
	a.UpdatedAt = s.now()
	if err := s.repo.SaveAttendance(ctx, a); err != nil {
		s.log(ctx).Error("record attendance failed", zap.Error(err))
		return AttendeeResponse{}, err
	}
	return mapAttendee(*a), nil
}

func (s *service) find(ctx context.Context, id string) (*BarangayMeeting, error) {
	mid, err := uuid.Parse(id)
	if err != nil {
		return nil, meetingerrors.ErrInvalidMeetingID
	}
	m, err := s.repo.FindByID(ctx, mid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, meetingerrors.ErrMeetingNotFound
		}
		s.log(ctx).Error("load meeting failed", zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (s *service) auditLog(ctx context.Context, entry bootstrap.AuditLog) {
	if s.audit == nil {
		return
	}
	s.audit.Log(ctx, entry)
}

func blankToNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
