package repository

import (
	"errors"
	"strings"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"

	"gorm.io/gorm"
)

// wrapDBError maps a database error onto the business taxonomy:
//   - ErrRecordNotFound -> CodeNotFound
//   - anything else     -> CodeInternal
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeInternal, msg)
}

// wrapDBErrorf is wrapDBError with a formatted message.
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeInternal, format, args...)
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// Covers both gorm's translated error and the raw driver messages
// (MySQL "Duplicate entry ... for key ...", SQLite "UNIQUE constraint failed").
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
