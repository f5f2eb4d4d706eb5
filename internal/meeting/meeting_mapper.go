package meeting

import (
	"time"

	"barangay-portal/internal/user"
)

func mapToResponse(m BarangayMeeting) MeetingResponse {
	resp := MeetingResponse{
		ID:              m.ID.String(),
		Title:           m.Title,
		Description:     m.Description,
		MeetingType:     m.MeetingType,
		Barangay:        m.Barangay,
		TargetSitio:     m.TargetSitio,
		MeetingDatetime: m.MeetingDatetime.Format(time.RFC3339),
		Location:        m.Location,
		Agenda:          m.Agenda,
		Notes:           m.Notes,
		Status:          m.Status,
		CreatedBy:       m.CreatedBy.String(),
		Creator:         user.MapToSummary(m.Creator),
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
	for _, a := range m.Attendees {
		resp.Attendees = append(resp.Attendees, mapAttendee(a))
	}
	return resp
}

func mapAttendee(a MeetingAttendee) AttendeeResponse {
	resp := AttendeeResponse{
		UserID:           a.UserID.String(),
		AttendanceStatus: a.AttendanceStatus,
		User:             user.MapToSummary(a.User),
	}
	if a.RespondedAt != nil {
		v := a.RespondedAt.Format(time.RFC3339)
		resp.RespondedAt = &v
	}
	return resp
}

func mapToListResponse(items []BarangayMeeting) []MeetingResponse {
	out := make([]MeetingResponse, len(items))
	for i, m := range items {
		out[i] = mapToResponse(m)
	}
	return out
}
