package resident

import (
	"errors"
	"strings"

	residenterrors "barangay-portal/internal/resident/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapSkillError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return residenterrors.ErrSkillNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_skills_user_name" {
		return residenterrors.ErrSkillAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_skills_user_name") {
		return residenterrors.ErrSkillAlreadyExists
	}

	return err
}
