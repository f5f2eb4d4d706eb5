package meeting

import (
	"context"
	"database/sql"

	"barangay-portal/internal/shared/connection"
	"barangay-portal/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=meeting_repo.go -destination=mock/meeting_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *BarangayMeeting) error
	List(ctx context.Context, scopes []Scope, page, pageSize int) ([]BarangayMeeting, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BarangayMeeting, error)
	Update(ctx context.Context, m *BarangayMeeting) error
	Delete(ctx context.Context, id uuid.UUID) error
	DistinctSitios(ctx context.Context, barangay string) ([]string, error)
	Recipients(ctx context.Context, m *BarangayMeeting) ([]uuid.UUID, error)
	AddAttendees(ctx context.Context, meetingID uuid.UUID, userIDs []uuid.UUID) error
	FindAttendee(ctx context.Context, meetingID, userID uuid.UUID) (*MeetingAttendee, error)
	SaveAttendance(ctx context.Context, a *MeetingAttendee) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, m *BarangayMeeting) error {
	return r.conn(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *repository) List(ctx context.Context, scopes []Scope, page, pageSize int) ([]BarangayMeeting, int64, error) {
	var (
		items []BarangayMeeting
		total int64
	)

	q := r.conn(ctx).Model(&BarangayMeeting{}).Scopes(scopes...).Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Creator").
		Order("meeting_datetime DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*BarangayMeeting, error) {
	var m BarangayMeeting
	err := r.conn(ctx).
		Preload("Creator").
		Preload("Attendees.User").
		First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) Update(ctx context.Context, m *BarangayMeeting) error {
	return r.conn(ctx).Omit(clause.Associations).Save(m).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Delete(&BarangayMeeting{}, "id = ?", id).Error
}

func (r *repository) DistinctSitios(ctx context.Context, barangay string) ([]string, error) {
	var sitios []string
	err := r.conn(ctx).
		Model(&user.User{}).
		Where("barangay = ? AND sitio IS NOT NULL AND sitio <> ''", barangay).
		Distinct().
		Order("sitio").
		Pluck("sitio", &sitios).Error
	return sitios, err
}

// Recipients lists the users who can see m, excluding its creator.
func (r *repository) Recipients(ctx context.Context, m *BarangayMeeting) ([]uuid.UUID, error) {
	q := r.conn(ctx).
		Model(&user.User{}).
		Where("id <> ?", m.CreatedBy)

	if m.Barangay != nil {
		q = q.Where("barangay = ?", *m.Barangay)
	}

	switch {
	case m.MeetingType == TypeOfficialsOnly:
		q = q.Where("role IN ?", organizerRoleNames())
	case m.TargetSitio != nil:
		q = q.Where("(role IN ? OR sitio = ?)", organizerRoleNames(), *m.TargetSitio)
	}

	var ids []uuid.UUID
	err := q.Order("created_at").Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) AddAttendees(ctx context.Context, meetingID uuid.UUID, userIDs []uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]MeetingAttendee, len(userIDs))
	for i, id := range userIDs {
		rows[i] = MeetingAttendee{MeetingID: meetingID, UserID: id, AttendanceStatus: AttendanceInvited}
	}
	return r.conn(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, 500).Error
}

func (r *repository) FindAttendee(ctx context.Context, meetingID, userID uuid.UUID) (*MeetingAttendee, error) {
	var a MeetingAttendee
	err := r.conn(ctx).First(&a, "meeting_id = ? AND user_id = ?", meetingID, userID).Error
	return &a, err
}

func (r *repository) SaveAttendance(ctx context.Context, a *MeetingAttendee) error {
	return r.conn(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "responded_at", "updated_at"}),
		}).
		Create(a).Error
}
