package usererrors

import (
	"barangay-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeValidation,
		"Role is invalid",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidBirthdate = apperror.New(
		apperror.CodeValidation,
		"Birthdate must be YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)

	ErrAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"Only an admin can manage accounts",
		http.StatusForbidden,
	)

	ErrCannotChangeOwnRole = apperror.New(
		apperror.CodeInvalidState,
		"Admins cannot change or delete their own account here",
		http.StatusConflict,
	)
)
