package job

import "barangay-portal/internal/user"

type CreateJobListingRequest struct {
	Title            string  `json:"title" binding:"required,max=191"`
	Company          string  `json:"company" binding:"required,max=191"`
	Type             string  `json:"type" binding:"required,max=50"`
	Salary           *string `json:"salary" binding:"omitempty,max=100"`
	Description      string  `json:"description" binding:"required"`
	Urgent           bool    `json:"urgent"`
	NeededApplicants int     `json:"needed_applicants" binding:"omitempty,min=1"`
}

type ListingFilter struct {
	Status string
}

type ApplyRequest struct {
	JobListingID string  `json:"job_listing_id" binding:"required,uuid"`
	CoverLetter  *string `json:"cover_letter" binding:"omitempty,max=5000"`
}

type ScheduleInterviewRequest struct {
	ApplicationID string  `json:"application_id" binding:"required,uuid"`
	Date          string  `json:"date" binding:"required"`
	Time          string  `json:"time" binding:"required"`
	Location      string  `json:"location" binding:"required,max=191"`
	Notes         *string `json:"notes"`
}

type JobListingResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Company          string  `json:"company"`
	Type             string  `json:"type"`
	Salary           *string `json:"salary"`
	Description      string  `json:"description"`
	Urgent           bool    `json:"urgent"`
	Status           string  `json:"status"`
	PostedAt         string  `json:"posted_at"`
	NeededApplicants int     `json:"needed_applicants"`
	HrCompanyID      *string `json:"hr_company_id"`
	PostedBy         string  `json:"posted_by"`
}

type ListingSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Status  string `json:"status"`
}

type InterviewResponse struct {
	Date     string  `json:"date"`
	Time     *string `json:"time"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

type JobApplicationResponse struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	JobListingID string             `json:"job_listing_id"`
	CoverLetter  *string            `json:"cover_letter"`
	Status       string             `json:"status"`
	Interview    *InterviewResponse `json:"interview"`
	Applicant    *user.Summary      `json:"applicant,omitempty"`
	JobListing   *ListingSummary    `json:"job_listing,omitempty"`
	CreatedAt    string             `json:"created_at"`
}
