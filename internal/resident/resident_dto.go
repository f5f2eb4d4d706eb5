package resident

type AddSkillRequest struct {
	Name            string  `json:"name" binding:"required,max=100"`
	Level           *string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	YearsExperience *int    `json:"years_experience" binding:"omitempty,min=0,max=80"`
}

type SkillResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Level           *string `json:"level"`
	YearsExperience *int    `json:"years_experience"`
	CreatedAt       string  `json:"created_at"`
}

type AddEmploymentRecordRequest struct {
	EmployerName   string   `json:"employer_name" binding:"required,max=191"`
	Position       string   `json:"position" binding:"required,max=191"`
	EmploymentType string   `json:"employment_type" binding:"required,oneof=full_time part_time contract self_employed"`
	StartDate      string   `json:"start_date" binding:"required"`
	EndDate        *string  `json:"end_date"`
	IsCurrent      bool     `json:"is_current"`
	MonthlyIncome  *float64 `json:"monthly_income" binding:"omitempty,min=0"`
}

type EmploymentRecordResponse struct {
	ID             string   `json:"id"`
	EmployerName   string   `json:"employer_name"`
	Position       string   `json:"position"`
	EmploymentType string   `json:"employment_type"`
	StartDate      string   `json:"start_date"`
	EndDate        *string  `json:"end_date"`
	IsCurrent      bool     `json:"is_current"`
	MonthlyIncome  *float64 `json:"monthly_income"`
}
