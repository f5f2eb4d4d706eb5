package resident

import (
	"time"

	"github.com/google/uuid"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

const (
	EmploymentFullTime     = "full_time"
	EmploymentPartTime     = "part_time"
	EmploymentContract     = "contract"
	EmploymentSelfEmployed = "self_employed"
)

type Skill struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_skills_user_name,priority:1"`
	Name            string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_skills_user_name,priority:2"`
	Level           *string   `gorm:"type:varchar(20)"`
	YearsExperience *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Skill) TableName() string {
	return "skills"
}

type EmploymentRecord struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployerName   string     `gorm:"type:varchar(191);not null"`
	Position       string     `gorm:"type:varchar(191);not null"`
	EmploymentType string     `gorm:"type:varchar(20);not null"`
	StartDate      time.Time  `gorm:"type:date;not null"`
	EndDate        *time.Time `gorm:"type:date"`
	IsCurrent      bool       `gorm:"not null;default:false"`
	MonthlyIncome  *int64     `gorm:"comment:centavos"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (EmploymentRecord) TableName() string {
	return "employment_records"
}
