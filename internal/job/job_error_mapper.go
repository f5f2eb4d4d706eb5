package job

import (
	"errors"

	joberrors "barangay-portal/internal/job/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueApplication = "uq_job_application_user_listing"

// mapWriteError turns the storage-level duplicate guard into the same error the read check returns.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueApplication {
		return joberrors.ErrAlreadyApplied
	}
	return err
}
