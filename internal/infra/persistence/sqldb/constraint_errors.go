package sqldb

import (
	"strings"

	"crm/internal/errors"

	"gorm.io/gorm"
)

// GORM translates driver errors when the dialector supports it; the message
// checks cover SQLite and PostgreSQL wording when it does not.

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "null value in column") ||
		strings.Contains(errMsg, "23502")
}
