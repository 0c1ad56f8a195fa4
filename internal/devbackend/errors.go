package devbackend

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotLinked          = errors.New("user is not linked to a condominium")
	ErrCondominiumUnknown = errors.New("condominium token not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrInvalidInterval    = errors.New("end must be after start")
	ErrOverlap            = errors.New("interval overlaps an existing booking")
	ErrRecordNotFound     = errors.New("record not found")
)

// isUniqueViolation recognises unique constraint failures from postgres and sqlite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
