package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// createError converts a failed insert into the error the callers understand.
func createError(err error, what string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return errors.Wrapf(err, "%s references an unknown user", what)
	case isNotNullConstraintViolation(err):
		return errors.Wrapf(err, "%s is missing required information", what)
	default:
		return errors.Wrapf(err, "failed to create %s", what)
	}
}
