package meeting_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"barangay-portal/internal/bootstrap"
	"barangay-portal/internal/domain"
	"barangay-portal/internal/meeting"
	meetingerrors "barangay-portal/internal/meeting/errors"
	"barangay-portal/internal/notification"
	notificationMock "barangay-portal/internal/notification/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeMeetingRepository struct {
	meetings    map[uuid.UUID]*meeting.BarangayMeeting
	attendees   map[uuid.UUID]map[uuid.UUID]*meeting.MeetingAttendee
	sitios      []string
	recipients  func(m *meeting.BarangayMeeting) []uuid.UUID
	listScopes  []meeting.Scope
	createErr   error
	createCalls int
	deleted     []uuid.UUID
}

func newFakeRepo() *fakeMeetingRepository {
	return &fakeMeetingRepository{
		meetings:   map[uuid.UUID]*meeting.BarangayMeeting{},
		attendees:  map[uuid.UUID]map[uuid.UUID]*meeting.MeetingAttendee{},
		recipients: func(*meeting.BarangayMeeting) []uuid.UUID { return nil },
	}
}

func (f *fakeMeetingRepository) WithTx(tx *sql.Tx) meeting.Repository { return f }

func (f *fakeMeetingRepository) Create(ctx context.Context, m *meeting.BarangayMeeting) error {
	f.createCalls++
	if f.createErr != nil && f.createCalls > 1 {
		return f.createErr
	}
	cp := *m
	f.meetings[m.ID] = &cp
	return nil
}

func (f *fakeMeetingRepository) List(ctx context.Context, scopes []meeting.Scope, page, pageSize int) ([]meeting.BarangayMeeting, int64, error) {
	f.listScopes = scopes
	var out []meeting.BarangayMeeting
	for _, m := range f.meetings {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*meeting.BarangayMeeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMeetingRepository) Update(ctx context.Context, m *meeting.BarangayMeeting) error {
	cp := *m
	f.meetings[m.ID] = &cp
	return nil
}

func (f *fakeMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	delete(f.meetings, id)
	return nil
}

func (f *fakeMeetingRepository) DistinctSitios(ctx context.Context, barangay string) ([]string, error) {
	return f.sitios, nil
}

func (f *fakeMeetingRepository) Recipients(ctx context.Context, m *meeting.BarangayMeeting) ([]uuid.UUID, error) {
	return f.recipients(m), nil
}

func (f *fakeMeetingRepository) AddAttendees(ctx context.Context, meetingID uuid.UUID, userIDs []uuid.UUID) error {
	for _, id := range userIDs {
		f.put(&meeting.MeetingAttendee{MeetingID: meetingID, UserID: id, AttendanceStatus: meeting.AttendanceInvited})
	}
	return nil
}

func (f *fakeMeetingRepository) FindAttendee(ctx context.Context, meetingID, userID uuid.UUID) (*meeting.MeetingAttendee, error) {
	a, ok := f.attendees[meetingID][userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeMeetingRepository) SaveAttendance(ctx context.Context, a *meeting.MeetingAttendee) error {
	f.put(a)
	return nil
}

func (f *fakeMeetingRepository) put(a *meeting.MeetingAttendee) {
	if f.attendees[a.MeetingID] == nil {
		f.attendees[a.MeetingID] = map[uuid.UUID]*meeting.MeetingAttendee{}
	}
	cp := *a
	f.attendees[a.MeetingID][a.UserID] = &cp
}

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

type serviceDeps struct {
	sqlMock    sqlmock.Sqlmock
	repo       *fakeMeetingRepository
	dispatcher *notificationMock.MockDispatcher
	audit      *recordingAudit
	service    meeting.Service
	now        time.Time
}

func setupService(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	repo := newFakeRepo()
	dispatcher := notificationMock.NewMockDispatcher(ctrl)
	audit := &recordingAudit{}
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	svc := meeting.NewServiceWithClock(db, repo, dispatcher, audit, func() time.Time { return now }, zap.NewNop())

	return &serviceDeps{
		sqlMock:    sqlMock,
		repo:       repo,
		dispatcher: dispatcher,
		audit:      audit,
		service:    svc,
		now:        now,
	}
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func ptr[T any](v T) *T { return &v }

func captain() domain.Caller {
	return domain.Caller{ID: uuid.New(), Name: "Kap", Role: domain.RoleBarangayCaptain, Barangay: ptr("Centro")}
}

func residentOf(sitio string) domain.Caller {
	c := domain.Caller{ID: uuid.New(), Name: "Rosa", Role: domain.RoleResident, Barangay: ptr("Centro")}
	if sitio != "" {
		c.Sitio = ptr(sitio)
	}
	return c
}

func seedMeeting(deps *serviceDeps, meetingType string, sitio *string) *meeting.BarangayMeeting {
	m := &meeting.BarangayMeeting{
		ID:              uuid.New(),
		Title:           "Assembly",
		MeetingType:     meetingType,
		Barangay:        ptr("Centro"),
		TargetSitio:     sitio,
		MeetingDatetime: deps.now.Add(48 * time.Hour),
		Location:        "Hall",
		Status:          meeting.StatusScheduled,
		CreatedBy:       uuid.New(),
	}
	deps.repo.meetings[m.ID] = m
	return m
}

func createRequest(meetingType string) meeting.CreateMeetingRequest {
	return meeting.CreateMeetingRequest{
		Title:           " Clean-up Drive ",
		MeetingType:     meetingType,
		MeetingDatetime: time.Date(2026, 3, 21, 8, 0, 0, 0, time.UTC),
		Location:        "Covered Court",
	}
}

func TestMeetingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("invites recipients and notifies each after commit", func(t *testing.T) {
		deps := setupService(t)
		caller := captain()
		a, b := uuid.New(), uuid.New()
		deps.repo.recipients = func(*meeting.BarangayMeeting) []uuid.UUID { return []uuid.UUID{a, b} }

		gomock.InOrder(
			deps.dispatcher.EXPECT().Notify(gomock.Any(), a, notification.TypeMeetingScheduled, gomock.Any()).Return(nil),
			deps.dispatcher.EXPECT().Notify(gomock.Any(), b, notification.TypeMeetingScheduled, gomock.Any()).Return(nil),
		)

		expectTx(deps.sqlMock, true)
		resp, err := deps.service.Create(ctx, caller, createRequest(meeting.TypePublic))

		require.NoError(t, err)
		assert.Equal(t, "Clean-up Drive", resp.Title)
		assert.Equal(t, meeting.StatusScheduled, resp.Status)
		assert.Equal(t, "Centro", *resp.Barangay)
		assert.Len(t, deps.repo.attendees[uuid.MustParse(resp.ID)], 2)
		require.Len(t, deps.audit.entries, 1)
		assert.Equal(t, bootstrap.AuditMeetingScheduled, deps.audit.entries[0].Action)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("one failed notification does not stop the fan-out", func(t *testing.T) {
		deps := setupService(t)
		a, b := uuid.New(), uuid.New()
		deps.repo.recipients = func(*meeting.BarangayMeeting) []uuid.UUID { return []uuid.UUID{a, b} }

		deps.dispatcher.EXPECT().Notify(gomock.Any(), a, gomock.Any(), gomock.Any()).Return(errors.New("queue full"))
		deps.dispatcher.EXPECT().Notify(gomock.Any(), b, gomock.Any(), gomock.Any()).Return(nil)

		expectTx(deps.sqlMock, true)
		_, err := deps.service.Create(ctx, captain(), createRequest(meeting.TypeEmergency))

		assert.NoError(t, err)
	})

	t.Run("blank target sitio is stored as unset", func(t *testing.T) {
		deps := setupService(t)
		req := createRequest(meeting.TypeResidents)
		req.TargetSitio = ptr("  ")

		expectTx(deps.sqlMock, true)
		resp, err := deps.service.Create(ctx, captain(), req)

		require.NoError(t, err)
		assert.Nil(t, resp.TargetSitio)
	})

	t.Run("residents cannot organize", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.Create(ctx, residentOf(""), createRequest(meeting.TypePublic))

		assert.ErrorIs(t, err, meetingerrors.ErrOrganizerOnly)
		assert.Empty(t, deps.repo.meetings)
	})

	t.Run("secretary may organize", func(t *testing.T) {
		deps := setupService(t)
		secretary := domain.Caller{ID: uuid.New(), Role: domain.RoleSecretary}

		expectTx(deps.sqlMock, true)
		_, err := deps.service.Create(ctx, secretary, createRequest(meeting.TypeOfficialsOnly))

		assert.NoError(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.Create(ctx, captain(), createRequest("town_hall"))

		assert.ErrorIs(t, err, meetingerrors.ErrInvalidMeetingType)
	})
}

func TestMeetingService_ScheduleAllSitios(t *testing.T) {
	ctx := context.Background()

	t.Run("one meeting per sitio in a single transaction", func(t *testing.T) {
		deps := setupService(t)
		deps.repo.sitios = []string{"Purok 1", "Purok 2", "Purok 3"}
		deps.repo.recipients = func(m *meeting.BarangayMeeting) []uuid.UUID { return []uuid.UUID{uuid.New()} }

		deps.dispatcher.EXPECT().
			Notify(gomock.Any(), gomock.Any(), notification.TypeMeetingScheduled, gomock.Any()).
			Return(nil).Times(3)

		expectTx(deps.sqlMock, true)
		items, err := deps.service.ScheduleAllSitios(ctx, captain(), meeting.ScheduleAllSitiosRequest{
			Title:           "Sitio Assembly",
			MeetingDatetime: deps.now.Add(72 * time.Hour),
			Location:        "Chapel",
		})

		require.NoError(t, err)
		require.Len(t, items, 3)
		for i, sitio := range deps.repo.sitios {
			assert.Equal(t, sitio, *items[i].TargetSitio)
			assert.Equal(t, "Sitio Assembly - "+sitio, items[i].Title)
			assert.Equal(t, meeting.TypeResidents, items[i].MeetingType)
		}
		assert.Len(t, deps.audit.entries, 3)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("a failed insert rolls back and notifies nobody", func(t *testing.T) {
		deps := setupService(t)
		deps.repo.sitios = []string{"Purok 1", "Purok 2"}
		deps.repo.createErr = errors.New("insert failed")

		expectTx(deps.sqlMock, false)
		_, err := deps.service.ScheduleAllSitios(ctx, captain(), meeting.ScheduleAllSitiosRequest{
			Title: "Assembly", MeetingDatetime: deps.now, Location: "Hall",
		})

		assert.EqualError(t, err, "insert failed")
		assert.Empty(t, deps.audit.entries)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("requires a barangay", func(t *testing.T) {
		deps := setupService(t)
		admin := domain.Caller{ID: uuid.New(), Role: domain.RoleAdmin}

		_, err := deps.service.ScheduleAllSitios(ctx, admin, meeting.ScheduleAllSitiosRequest{Title: "x"})

		assert.ErrorIs(t, err, meetingerrors.ErrBarangayRequired)
	})

	t.Run("no sitios", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.ScheduleAllSitios(ctx, captain(), meeting.ScheduleAllSitiosRequest{Title: "x"})

		assert.ErrorIs(t, err, meetingerrors.ErrNoSitios)
	})

	t.Run("officials only is not a sitio meeting", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.ScheduleAllSitios(ctx, captain(), meeting.ScheduleAllSitiosRequest{
			Title: "x", MeetingType: meeting.TypeOfficialsOnly,
		})

		assert.ErrorIs(t, err, meetingerrors.ErrInvalidMeetingType)
	})
}

func renderScopes(t *testing.T, scopes []meeting.Scope) (string, []any) {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var out []meeting.BarangayMeeting
	stmt := db.Model(&meeting.BarangayMeeting{}).Scopes(scopes...).Find(&out).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestMeetingService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("organizers are unfiltered", func(t *testing.T) {
		deps := setupService(t)

		_, _, err := deps.service.List(ctx, captain(), 1, 10)

		require.NoError(t, err)
		query, vars := renderScopes(t, deps.repo.listScopes)
		assert.NotContains(t, query, "meeting_type")
		assert.Empty(t, vars)
	})

	t.Run("residents see open types in their barangay and sitio", func(t *testing.T) {
		deps := setupService(t)

		_, _, err := deps.service.List(ctx, residentOf("Purok 2"), 1, 10)

		require.NoError(t, err)
		query, vars := renderScopes(t, deps.repo.listScopes)
		assert.Contains(t, query, "meeting_type IN ($1,$2,$3)")
		assert.Contains(t, query, "barangay IS NULL OR barangay = $4")
		assert.Contains(t, query, "target_sitio IS NULL OR target_sitio = $5")
		assert.Equal(t, []any{"public", "residents", "emergency", "Centro", "Purok 2"}, vars)
	})

	t.Run("residents without a sitio only see untargeted meetings", func(t *testing.T) {
		deps := setupService(t)

		_, _, err := deps.service.List(ctx, residentOf(""), 1, 10)

		require.NoError(t, err)
		query, _ := renderScopes(t, deps.repo.listScopes)
		assert.Contains(t, query, "target_sitio IS NULL")
		assert.NotContains(t, query, "target_sitio =")
	})
}

func TestMeetingService_Get(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t)

	officials := seedMeeting(deps, meeting.TypeOfficialsOnly, nil)
	purok1 := seedMeeting(deps, meeting.TypeResidents, ptr("Purok 1"))
	public := seedMeeting(deps, meeting.TypePublic, nil)

	cases := []struct {
		name    string
		caller  domain.Caller
		meeting *meeting.BarangayMeeting
		wantErr error
	}{
		{"official sees officials only", captain(), officials, nil},
		{"resident cannot see officials only", residentOf("Purok 1"), officials, meetingerrors.ErrNotVisible},
		{"resident sees own sitio", residentOf("Purok 1"), purok1, nil},
		{"resident cannot see other sitio", residentOf("Purok 2"), purok1, meetingerrors.ErrNotVisible},
		{"resident sees untargeted", residentOf(""), public, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := deps.service.Get(ctx, tc.caller, tc.meeting.ID.String())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := deps.service.Get(ctx, captain(), uuid.NewString())
		assert.ErrorIs(t, err, meetingerrors.ErrMeetingNotFound)
	})
}

func TestMeetingService_UpdateStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t)
	m := seedMeeting(deps, meeting.TypePublic, nil)

	resp, err := deps.service.UpdateStatus(ctx, captain(), m.ID.String(), meeting.UpdateStatusRequest{
		Status: meeting.StatusCancelled,
		Notes:  ptr("typhoon signal no. 2"),
	})
	require.NoError(t, err)
	assert.Equal(t, meeting.StatusCancelled, resp.Status)
	assert.Equal(t, "typhoon signal no. 2", *resp.Notes)
	require.Len(t, deps.audit.entries, 1)
	assert.Equal(t, "scheduled -> cancelled", deps.audit.entries[0].Message)

	_, err = deps.service.UpdateStatus(ctx, residentOf(""), m.ID.String(), meeting.UpdateStatusRequest{Status: meeting.StatusOngoing})
	assert.ErrorIs(t, err, meetingerrors.ErrOrganizerOnly)

	_, err = deps.service.UpdateStatus(ctx, captain(), m.ID.String(), meeting.UpdateStatusRequest{Status: "postponed"})
	assert.ErrorIs(t, err, meetingerrors.ErrInvalidStatus)

	require.NoError(t, deps.service.Delete(ctx, captain(), m.ID.String()))
	assert.Equal(t, []uuid.UUID{m.ID}, deps.repo.deleted)

	err = deps.service.Delete(ctx, captain(), m.ID.String())
	assert.ErrorIs(t, err, meetingerrors.ErrMeetingNotFound)
}

func TestMeetingService_Attendance(t *testing.T) {
	ctx := context.Background()

	t.Run("visible resident responds", func(t *testing.T) {
		deps := setupService(t)
		m := seedMeeting(deps, meeting.TypeResidents, ptr("Purok 1"))
		caller := residentOf("Purok 1")

		resp, err := deps.service.RespondAttendance(ctx, caller, m.ID.String(), meeting.RespondAttendanceRequest{Status: meeting.AttendanceAttending})

		require.NoError(t, err)
		assert.Equal(t, meeting.AttendanceAttending, resp.AttendanceStatus)
		require.NotNil(t, resp.RespondedAt)
		assert.Equal(t, "2026-03-14T09:30:00Z", *resp.RespondedAt)
		assert.Equal(t, meeting.AttendanceAttending, deps.repo.attendees[m.ID][caller.ID].AttendanceStatus)
	})

	t.Run("cancelled meetings take no responses", func(t *testing.T) {
		deps := setupService(t)
		m := seedMeeting(deps, meeting.TypePublic, nil)
		m.Status = meeting.StatusCancelled

		_, err := deps.service.RespondAttendance(ctx, residentOf(""), m.ID.String(), meeting.RespondAttendanceRequest{Status: meeting.AttendanceDeclined})

		assert.ErrorIs(t, err, meetingerrors.ErrMeetingClosed)
	})

	t.Run("hidden meeting", func(t *testing.T) {
		deps := setupService(t)
		m := seedMeeting(deps, meeting.TypeOfficialsOnly, nil)

		_, err := deps.service.RespondAttendance(ctx, residentOf(""), m.ID.String(), meeting.RespondAttendanceRequest{Status: meeting.AttendanceAttending})

		assert.ErrorIs(t, err, meetingerrors.ErrNotVisible)
	})

	t.Run("organizer records attendance of an invitee", func(t *testing.T) {
		deps := setupService(t)
		m := seedMeeting(deps, meeting.TypePublic, nil)
		invitee := uuid.New()
		require.NoError(t, deps.repo.AddAttendees(ctx, m.ID, []uuid.UUID{invitee}))

		resp, err := deps.service.RecordAttendance(ctx, captain(), m.ID.String(), meeting.RecordAttendanceRequest{
			UserID: invitee.String(), Status: meeting.AttendanceAttended,
		})
		require.NoError(t, err)
		assert.Equal(t, meeting.AttendanceAttended, resp.AttendanceStatus)

		_, err = deps.service.RecordAttendance(ctx, captain(), m.ID.String(), meeting.RecordAttendanceRequest{
			UserID: uuid.NewString(), Status: meeting.AttendanceAbsent,
		})
		assert.ErrorIs(t, err, meetingerrors.ErrInvalidAttendee)
	})
}
