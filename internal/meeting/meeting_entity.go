package meeting

import (
	"time"

	"barangay-portal/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeOfficialsOnly = "officials_only"
	TypePublic        = "public"
	TypeResidents     = "residents"
	TypeEmergency     = "emergency"
)

const (
	StatusScheduled = "scheduled"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	AttendanceInvited   = "invited"
	AttendanceAttending = "attending"
	AttendanceDeclined  = "declined"
	AttendanceAttended  = "attended"
	AttendanceAbsent    = "absent"
)

type BarangayMeeting struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title           string            `gorm:"type:varchar(191);not null"`
	Description     *string           `gorm:"type:text"`
	MeetingType     string            `gorm:"type:varchar(20);not null;index"`
	Barangay        *string           `gorm:"type:varchar(100);index"`
	TargetSitio     *string           `gorm:"type:varchar(100)"`
	MeetingDatetime time.Time         `gorm:"not null;index"`
	Location        string            `gorm:"type:varchar(191);not null"`
	Agenda          *string           `gorm:"type:text"`
	Notes           *string           `gorm:"type:text"`
	Status          string            `gorm:"type:varchar(20);not null;default:'scheduled'"`
	CreatedBy       uuid.UUID         `gorm:"type:uuid;not null;index"`
	Creator         *user.User        `gorm:"foreignKey:CreatedBy;references:ID"`
	Attendees       []MeetingAttendee `gorm:"foreignKey:MeetingID;references:ID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (BarangayMeeting) TableName() string {
	return "barangay_meetings"
}

// MeetingAttendee is the meeting/user pivot.
type MeetingAttendee struct {
	MeetingID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	User             *user.User `gorm:"foreignKey:UserID;references:ID"`
	AttendanceStatus string     `gorm:"type:varchar(20);not null;default:'invited'"`
	RespondedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (MeetingAttendee) TableName() string {
	return "meeting_attendees"
}
