package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolhub/internal/db"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	AcademicYearRepository *AcademicYearRepository
	AcademicTermRepository *AcademicTermRepository
	GradeLevelRepository   *GradeLevelRepository
	ClassRepository        *ClassRepository
	TextbookRepository     *TextbookRepository
	ExamTitleRepository    *ExamTitleRepository
	StudentRepository      *StudentRepository
	UserRepository         *UserRepository
	StaffRoleRepository    *StaffRoleRepository
	EnrollmentRepository   *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		AcademicYearRepository: NewAcademicYearRepository(database),
		AcademicTermRepository: NewAcademicTermRepository(database.Pool),
		GradeLevelRepository:   NewGradeLevelRepository(database.Pool),
		ClassRepository:        NewClassRepository(database.Pool),
		TextbookRepository:     NewTextbookRepository(database.Pool),
		ExamTitleRepository:    NewExamTitleRepository(database.Pool),
		StudentRepository:      NewStudentRepository(database.Pool),
		UserRepository:         NewUserRepository(database.Pool),
		StaffRoleRepository:    NewStaffRoleRepository(database.Pool),
		EnrollmentRepository:   NewEnrollmentRepository(database.Pool),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

// collect scans every row with scan. It always returns a non-nil slice.
func collect[T any](rows pgx.Rows, scan func(scanner) (*T, error)) ([]*T, error) {
	defer rows.Close()

	items := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// queryAll runs a select built with squirrel and scans every row.
func queryAll[T any](ctx context.Context, q db.Querier, b squirrel.SelectBuilder, op string, scan func(scanner) (*T, error)) ([]*T, error) {
	sqlStr, args, err := b.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building SQL")
		return nil, apperrors.NewPersistenceError(err, op)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error executing query")
		return nil, apperrors.NewPersistenceError(err, op)
	}

	items, err := collect(rows, scan)
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error scanning rows")
		return nil, apperrors.NewPersistenceError(err, op)
	}
	return items, nil
}

// queryOne runs a single-row statement. pgx.ErrNoRows becomes a not-found
// error carrying notFoundMsg.
func queryOne[T any](ctx context.Context, q db.Querier, b squirrel.Sqlizer, op, notFoundMsg string, scan func(scanner) (*T, error)) (*T, error) {
	sqlStr, args, err := b.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building SQL")
		return nil, apperrors.NewPersistenceError(err, op)
	}

	item, err := scan(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError(notFoundMsg)
		}
		return nil, err
	}
	return item, nil
}

// execAffecting runs a write and reports not-found when no row matched.
func execAffecting(ctx context.Context, q db.Querier, b squirrel.Sqlizer, op, notFoundMsg string) error {
	sqlStr, args, err := b.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building SQL")
		return apperrors.NewPersistenceError(err, op)
	}

	tag, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError(notFoundMsg)
	}
	return nil
}

// persistenceError logs err and wraps it, passing through errors already
// classified by the taxonomy.
func persistenceError(err error, op string) error {
	if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrConflict, apperrors.ErrValidationFailed, apperrors.ErrPersistence) {
		return err
	}
	logger.Error().Err(err).Str("op", op).Msg("Database operation failed")
	return apperrors.NewPersistenceError(err, op)
}

// dateValue casts a nullable YYYY-MM-DD string to DATE.
func dateValue(v *string) squirrel.Sqlizer {
	return squirrel.Expr("CAST(? AS DATE)", v)
}

// castDates rewrites the listed date columns of fields into DATE casts.
func castDates(fields map[string]interface{}, columns ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	for _, col := range columns {
		v, ok := out[col]
		if !ok {
			continue
		}
		switch s := v.(type) {
		case *string:
			out[col] = dateValue(s)
		case string:
			out[col] = dateValue(&s)
		case nil:
			out[col] = dateValue(nil)
		}
	}
	return out
}

// withUpdatedAt stamps updated_at on an update map.
func withUpdatedAt(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["updated_at"] = squirrel.Expr("now()")
	return out
}

// dateColumn renders a DATE column as YYYY-MM-DD text.
func dateColumn(col, alias string) string {
	return "to_char(" + col + ", 'YYYY-MM-DD') AS " + alias
}
