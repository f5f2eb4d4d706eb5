package companyerrors

import (
	"barangay-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrHrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"HR company not found",
		http.StatusNotFound,
	)

	ErrHrCompanyAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An HR company already exists for this account",
		http.StatusConflict,
	)

	ErrInvalidHrCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid HR company ID",
		http.StatusBadRequest,
	)

	ErrEmployerOnly = apperror.New(
		apperror.CodeForbidden,
		"Only HR accounts can manage a company profile",
		http.StatusForbidden,
	)
)
