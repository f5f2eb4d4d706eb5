package job

import (
	"time"

	"barangay-portal/internal/user"
)

const dateLayout = "2006-01-02"

func mapListing(l JobListing) JobListingResponse {
	resp := JobListingResponse{
		ID:               l.ID.String(),
		Title:            l.Title,
		Company:          l.Company,
		Type:             l.Type,
		Salary:           l.Salary,
		Description:      l.Description,
		Urgent:           l.Urgent,
		Status:           l.Status,
		PostedAt:         l.PostedAt.Format(time.RFC3339),
		NeededApplicants: l.NeededApplicants,
		PostedBy:         l.PostedBy.String(),
	}
	if l.HrCompanyID != nil {
		v := l.HrCompanyID.String()
		resp.HrCompanyID = &v
	}
	return resp
}

func mapListings(items []JobListing) []JobListingResponse {
	out := make([]JobListingResponse, len(items))
	for i, l := range items {
		out[i] = mapListing(l)
	}
	return out
}

func mapApplication(a JobApplication) JobApplicationResponse {
	resp := JobApplicationResponse{
		ID:           a.ID.String(),
		UserID:       a.UserID.String(),
		JobListingID: a.JobListingID.String(),
		CoverLetter:  a.CoverLetter,
		Status:       a.Status,
		Applicant:    user.MapToSummary(a.User),
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
	if a.InterviewDate != nil {
		resp.Interview = &InterviewResponse{
			Date:     a.InterviewDate.Format(dateLayout),
			Time:     a.InterviewTime,
			Location: a.InterviewLocation,
			Notes:    a.InterviewNotes,
		}
	}
	if a.JobListing != nil {
		resp.JobListing = &ListingSummary{
			ID:      a.JobListing.ID.String(),
			Title:   a.JobListing.Title,
			Company: a.JobListing.Company,
			Status:  a.JobListing.Status,
		}
	}
	return resp
}

func mapApplications(items []JobApplication) []JobApplicationResponse {
	out := make([]JobApplicationResponse, len(items))
	for i, a := range items {
		out[i] = mapApplication(a)
	}
	return out
}
