package analyticserrors

import (
	"barangay-portal/internal/shared/apperror"
	"net/http"
)

var (
	ErrScopeRequired = apperror.New(
		apperror.CodeScopeRequired,
		"Your account is not assigned to a barangay",
		http.StatusBadRequest,
	)
)

// AggregationFailed reports a failed dashboard query with its raw message attached.
func AggregationFailed(err error) *apperror.AppError {
	return apperror.Wrap(
		err,
		apperror.CodeInternalError,
		"Failed to compute analytics",
		http.StatusInternalServerError,
	).WithDetails(err.Error())
}
