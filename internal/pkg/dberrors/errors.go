package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports a unique_violation on any constraint.
func IsUniqueViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == CodeUniqueViolation
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation reports a foreign_key_violation, returning the constraint name.
func IsForeignKeyViolation(err error) (string, bool) {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != CodeForeignKeyViolation {
		return "", false
	}
	return pgErr.ConstraintName, true
}

// IsCheckViolation reports a check_violation.
func IsCheckViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == CodeCheckViolation
}
