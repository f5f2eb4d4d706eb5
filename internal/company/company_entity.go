package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HrCompany is the employer profile of an hr or hr_manager account. One per user.
type HrCompany struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_hr_companies_user"`
	Name         string         `gorm:"type:varchar(150);not null"`
	Industry     *string        `gorm:"type:varchar(100)"`
	Address      *string        `gorm:"type:text"`
	ContactEmail *string        `gorm:"type:varchar(255)"`
	ContactPhone *string        `gorm:"type:varchar(30)"`
	Description  *string        `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"not null;default:now()"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (HrCompany) TableName() string {
	return "hr_companies"
}
