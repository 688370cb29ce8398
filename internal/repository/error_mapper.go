package repository

import (
	"company-employees/internal/shared/apperror"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapPersistenceError keeps the driver error wrapped so callers can still
// inspect it, but gives it a status the error handler understands.
func mapPersistenceError(err error, message string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Wrap(err, apperror.CodeConflict, "A record with the same key already exists", http.StatusConflict)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperror.Wrap(err, apperror.CodeConflict, "A referenced record does not exist", http.StatusConflict)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.Wrap(err, apperror.CodeConflict, "A record with the same key already exists", http.StatusConflict)
		case pgForeignKeyViolation:
			return apperror.Wrap(err, apperror.CodeConflict, "A referenced record does not exist", http.StatusConflict)
		}
	}

	return apperror.Wrap(err, apperror.CodePersistenceError, message, http.StatusInternalServerError)
}
