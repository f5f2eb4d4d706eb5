package job

import (
	"time"

	"barangay-portal/internal/user"

	"github.com/google/uuid"
)

const (
	ListingOpen   = "open"
	ListingFilled = "filled"
)

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

type JobListing struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string     `gorm:"type:varchar(191);not null"`
	Company          string     `gorm:"type:varchar(191);not null"`
	Type             string     `gorm:"type:varchar(50);not null"`
	Salary           *string    `gorm:"type:varchar(100)"`
	Description      string     `gorm:"type:text;not null"`
	Urgent           bool       `gorm:"not null;default:false"`
	Status           string     `gorm:"type:varchar(20);not null;default:'open';index:idx_job_listings_status"`
	PostedAt         time.Time  `gorm:"not null;default:now()"`
	NeededApplicants int        `gorm:"not null;default:1;check:chk_job_listings_needed,needed_applicants >= 1"`
	HrCompanyID      *uuid.UUID `gorm:"type:uuid;index"`
	PostedBy         uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (JobListing) TableName() string {
	return "job_listings"
}

// JobApplication is unique per (user_id, job_listing_id).
type JobApplication struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_job_application_user_listing,priority:1"`
	User         *user.User  `gorm:"foreignKey:UserID;references:ID"`
	JobListingID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_job_application_user_listing,priority:2;index"`
	JobListing   *JobListing `gorm:"foreignKey:JobListingID;references:ID"`
	CoverLetter  *string     `gorm:"type:text"`
	Status       string      `gorm:"type:varchar(20);not null;default:'pending'"`

	InterviewDate     *time.Time `gorm:"type:date"`
	InterviewTime     *string    `gorm:"type:varchar(5)"`
	InterviewLocation *string    `gorm:"type:varchar(191)"`
	InterviewNotes    *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (JobApplication) TableName() string {
	return "job_applications"
}
