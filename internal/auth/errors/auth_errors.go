package autherrors

import (
	"barangay-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Account not found",
		http.StatusUnauthorized,
	)

	ErrInvalidBirthdate = apperror.New(
		apperror.CodeValidation,
		"Birthdate must be YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)
)
