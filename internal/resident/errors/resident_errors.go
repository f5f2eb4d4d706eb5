package residenterrors

import (
	"barangay-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrSkillNotFound = apperror.New(
		apperror.CodeNotFound,
		"Skill not found",
		http.StatusNotFound,
	)

	ErrInvalidSkillID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid skill ID",
		http.StatusBadRequest,
	)

	ErrSkillAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Skill already listed on your profile",
		http.StatusConflict,
	)

	ErrInvalidStartDate = apperror.New(
		apperror.CodeValidation,
		"Start date must be formatted as YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidEndDate = apperror.New(
		apperror.CodeValidation,
		"End date must be formatted as YYYY-MM-DD and not before the start date",
		http.StatusUnprocessableEntity,
	)

	ErrCurrentWithEndDate = apperror.New(
		apperror.CodeValidation,
		"A current employment record cannot have an end date",
		http.StatusUnprocessableEntity,
	)
)
