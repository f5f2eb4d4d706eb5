package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const NotifiableUser = "user"

// Event types written to notifications.type.
const (
	TypeDocumentRequestStatusChanged = "document_request_status_changed"
	TypeDocumentRequestAssigned      = "document_request_assigned"
	TypeJobApplicationReceived       = "job_application_received"
	TypeJobApplicationAccepted       = "job_application_accepted"
	TypeJobApplicationRejected       = "job_application_rejected"
	TypeInterviewScheduled           = "interview_scheduled"
	TypeMeetingScheduled             = "meeting_scheduled"
)

type Notification struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type           string          `gorm:"type:varchar(100);not null"`
	NotifiableType string          `gorm:"type:varchar(50);not null;index:idx_notifications_notifiable,priority:1"`
	NotifiableID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_notifications_notifiable,priority:2"`
	Data           json.RawMessage `gorm:"type:jsonb;not null"`
	ReadAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Notification) TableName() string {
	return "notifications"
}
