package joberrors

import (
	"barangay-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrJobListingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job listing not found",
		http.StatusNotFound,
	)

	ErrInvalidJobListingID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job listing ID",
		http.StatusBadRequest,
	)

	ErrJobApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job application not found",
		http.StatusNotFound,
	)

	ErrInvalidJobApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job application ID",
		http.StatusBadRequest,
	)

	ErrEmployerOnly = apperror.New(
		apperror.CodeForbidden,
		"Only HR accounts can manage job listings",
		http.StatusForbidden,
	)

	ErrResidentOnly = apperror.New(
		apperror.CodeForbidden,
		"Only residents can apply to job listings",
		http.StatusForbidden,
	)

	ErrNotListingOwner = apperror.New(
		apperror.CodeForbidden,
		"You can only manage applications to your own job listings",
		http.StatusForbidden,
	)

	ErrListingClosed = apperror.New(
		apperror.CodeInvalidState,
		"Job listing is no longer accepting applications",
		http.StatusConflict,
	)

	ErrAlreadyApplied = apperror.New(
		apperror.CodeValidation,
		"You have already applied to this job listing",
		http.StatusUnprocessableEntity,
	)

	ErrListingFilled = apperror.New(
		apperror.CodeConflict,
		"listing already filled",
		http.StatusConflict,
	)

	ErrApplicationNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending applications can be accepted or rejected",
		http.StatusConflict,
	)

	ErrApplicationListingMismatch = apperror.New(
		apperror.CodeValidation,
		"Application does not belong to this job listing",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidInterviewDate = apperror.New(
		apperror.CodeValidation,
		"Date must be formatted as YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidInterviewTime = apperror.New(
		apperror.CodeValidation,
		"Time must be formatted as HH:MM",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidListingStatus = apperror.New(
		apperror.CodeValidation,
		"Status must be one of: open, filled",
		http.StatusUnprocessableEntity,
	)
)
