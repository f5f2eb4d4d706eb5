package documentrequesterrors

import (
	"barangay-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrDocumentRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document request not found",
		http.StatusNotFound,
	)

	ErrInvalidDocumentRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid document request ID",
		http.StatusBadRequest,
	)

	ErrStaffOnly = apperror.New(
		apperror.CodeForbidden,
		"Only a secretary or admin can update document requests",
		http.StatusForbidden,
	)

	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"You can only view your own document requests",
		http.StatusForbidden,
	)

	ErrTypeRequired = apperror.RequiredField("Type")

	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"Status must be one of: pending, approved, rejected",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidUrgency = apperror.New(
		apperror.CodeValidation,
		"Urgency must be one of: low, normal, high, urgent",
		http.StatusUnprocessableEntity,
	)

	ErrAssigneeNotFound = apperror.New(
		apperror.CodeValidation,
		"Assigned To must reference an existing user",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidAssignee = apperror.InvalidField("Assigned To")

	ErrInvalidAmount = apperror.New(
		apperror.CodeValidation,
		"Amount must not be negative",
		http.StatusUnprocessableEntity,
	)
)
