package documentrequest

import (
	"time"

	"barangay-portal/internal/user"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Statuses in lifecycle order.
var Statuses = []string{StatusPending, StatusApproved, StatusRejected}

const (
	UrgencyLow    = "low"
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
	UrgencyUrgent = "urgent"
)

type DocumentRequest struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_document_requests_user"`
	User     *user.User `gorm:"foreignKey:UserID;references:ID"`
	Type     string     `gorm:"type:varchar(191);not null;index:idx_document_requests_type"`
	Notes    *string    `gorm:"type:text"`
	Status   string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_document_requests_status"`
	Urgency  string     `gorm:"type:varchar(20);not null;default:'normal'"`
	IsPaid   bool       `gorm:"not null;default:false"`
	Amount   int64      `gorm:"type:bigint;not null;default:0"`
	PaidAt   *time.Time `gorm:"index"`

	AssignedTo *uuid.UUID `gorm:"type:uuid;index:idx_document_requests_assignee"`
	Assignee   *user.User `gorm:"foreignKey:AssignedTo;references:ID"`

	ProcessedAt *time.Time

	// Stored for a download-limit feature that is not implemented; nothing reads them.
	ExpiresAt     *time.Time
	DownloadCount int  `gorm:"not null;default:0"`
	MaxDownloads  *int

	CreatedAt time.Time `gorm:"index:idx_document_requests_created"`
	UpdatedAt time.Time
}

func (DocumentRequest) TableName() string {
	return "document_requests"
}
