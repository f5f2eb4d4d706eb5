package user

import (
	"time"

	"barangay-portal/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string      `gorm:"type:varchar(191);not null"`
	Email     string      `gorm:"type:varchar(191);not null;uniqueIndex:uq_users_email"`
	Password  string      `gorm:"type:varchar(255);not null"`
	Role      domain.Role `gorm:"type:varchar(30);not null;default:'resident';index:idx_users_role"`
	Barangay  *string     `gorm:"type:varchar(100);index:idx_users_barangay"`
	Sitio     *string     `gorm:"type:varchar(100)"`
	Phone     string      `gorm:"type:varchar(30)"`
	Address   string      `gorm:"type:text"`
	Birthdate *time.Time  `gorm:"type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// Caller projects the stored account onto the request identity.
func (u User) Caller() domain.Caller {
	return domain.Caller{
		ID:       u.ID,
		Name:     u.Name,
		Role:     u.Role,
		Barangay: u.Barangay,
		Sitio:    u.Sitio,
	}
}
