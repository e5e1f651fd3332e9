package postgres

import (
	"errors"

	"github.com/lib/pq"

	"courtside/shared/constant"
)

// IsUniqueViolation reports whether err wraps a postgres unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

// IsForeignKeyViolation reports whether err wraps a postgres foreign
// key violation.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation
}
