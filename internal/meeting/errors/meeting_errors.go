package meetingerrors

import (
	"barangay-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrMeetingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Meeting not found",
		http.StatusNotFound,
	)

	ErrInvalidMeetingID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid meeting ID",
		http.StatusBadRequest,
	)

	ErrOrganizerOnly = apperror.New(
		apperror.CodeForbidden,
		"Only barangay officials can manage meetings",
		http.StatusForbidden,
	)

	ErrNotVisible = apperror.New(
		apperror.CodeForbidden,
		"You are not invited to this meeting",
		http.StatusForbidden,
	)

	ErrInvalidMeetingType = apperror.New(
		apperror.CodeValidation,
		"Meeting type must be one of: officials_only, public, residents, emergency",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"Status must be one of: scheduled, ongoing, completed, cancelled",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidAttendanceStatus = apperror.New(
		apperror.CodeValidation,
		"Attendance status is invalid",
		http.StatusUnprocessableEntity,
	)

	ErrMeetingClosed = apperror.New(
		apperror.CodeInvalidState,
		"Meeting is no longer open for responses",
		http.StatusConflict,
	)

	ErrBarangayRequired = apperror.New(
		apperror.CodeScopeRequired,
		"A barangay assignment is required to schedule meetings for every sitio",
		http.StatusBadRequest,
	)

	ErrNoSitios = apperror.New(
		apperror.CodeValidation,
		"No sitios are registered in this barangay",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidAttendee = apperror.New(
		apperror.CodeValidation,
		"User is not an attendee of this meeting",
		http.StatusUnprocessableEntity,
	)
)
