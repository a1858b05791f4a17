package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsConflictViolation reports whether err is a postgres unique or exclusion
// constraint violation. The schema carries those constraints as a backstop
// for the transactional checks, so both map to HTTP 409.
func IsConflictViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation || pgErr.Code == pgExclusionViolation
	}
	return false
}
