package postgres

import (
	"strings"

	domainerrors "zenvira/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for constraint error checking. gorm translates driver errors when
// TranslateError is enabled; the message checks cover drivers that do not.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}

// notFoundOr maps gorm.ErrRecordNotFound to notFound and anything else to a database error.
func notFoundOr(err error, notFound *domainerrors.BaseError, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.WithStack(notFound)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// writeError maps a failed write to a domain error.
func writeError(err error, conflict *domainerrors.BaseError, details string) error {
	switch {
	case conflict != nil && isUniqueConstraintViolation(err):
		return errors.WithStack(conflict)
	case isForeignKeyConstraintViolation(err):
		return errors.WithStack(domainerrors.ErrConflict.WithDetails(details))
	case isCheckConstraintViolation(err):
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
