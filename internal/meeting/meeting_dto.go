package meeting

import (
	"time"

	"barangay-portal/internal/user"
)

type CreateMeetingRequest struct {
	Title           string    `json:"title" binding:"required,max=191"`
	Description     *string   `json:"description"`
	MeetingType     string    `json:"meeting_type" binding:"required,oneof=officials_only public residents emergency"`
	TargetSitio     *string   `json:"target_sitio" binding:"omitempty,max=100"`
	MeetingDatetime time.Time `json:"meeting_datetime" binding:"required"`
	Location        string    `json:"location" binding:"required,max=191"`
	Agenda          *string   `json:"agenda"`
	Notes           *string   `json:"notes"`
}

// ScheduleAllSitiosRequest creates one meeting per sitio; target_sitio is filled per meeting.
type ScheduleAllSitiosRequest struct {
	Title           string    `json:"title" binding:"required,max=191"`
	Description     *string   `json:"description"`
	MeetingType     string    `json:"meeting_type" binding:"omitempty,oneof=public residents emergency"`
	MeetingDatetime time.Time `json:"meeting_datetime" binding:"required"`
	Location        string    `json:"location" binding:"required,max=191"`
	Agenda          *string   `json:"agenda"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=scheduled ongoing completed cancelled"`
	Notes  *string `json:"notes"`
}

type RespondAttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=attending declined"`
}

type RecordAttendanceRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Status string `json:"status" binding:"required,oneof=attended absent"`
}

type AttendeeResponse struct {
	UserID           string        `json:"user_id"`
	AttendanceStatus string        `json:"attendance_status"`
	RespondedAt      *string       `json:"responded_at"`
	User             *user.Summary `json:"user,omitempty"`
}

type MeetingResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     *string            `json:"description"`
	MeetingType     string             `json:"meeting_type"`
	Barangay        *string            `json:"barangay"`
	TargetSitio     *string            `json:"target_sitio"`
	MeetingDatetime string             `json:"meeting_datetime"`
	Location        string             `json:"location"`
	Agenda          *string            `json:"agenda"`
	Notes           *string            `json:"notes"`
	Status          string             `json:"status"`
	CreatedBy       string             `json:"created_by"`
	Creator         *user.Summary      `json:"creator,omitempty"`
	Attendees       []AttendeeResponse `json:"attendees,omitempty"`
	CreatedAt       string             `json:"created_at"`
}
