package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// RequiredField reports a missing field as a validation failure.
func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusUnprocessableEntity)
}

// InvalidField reports a present but malformed field as a validation failure.
func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusUnprocessableEntity)
}
