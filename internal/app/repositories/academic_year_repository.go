package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/dberrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

const (
	academicYearNotFound      = "academic year not found"
	academicYearCurrentIndex  = "uq_academic_years_current"
	academicYearForeignKeyMsg = "academic year is still referenced by other records"
)

// AcademicYearRepository handles database operations for academic years
type AcademicYearRepository struct {
	db *db.PostgresDB
}

// NewAcademicYearRepository creates a new academic year repository
func NewAcademicYearRepository(database *db.PostgresDB) *AcademicYearRepository {
	return &AcademicYearRepository{db: database}
}

func (r *AcademicYearRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"id", "title",
		dateColumn("start_date", "start_date"),
		dateColumn("end_date", "end_date"),
		"is_current", "created_at", "updated_at",
	).From("academic_years")
}

func scanAcademicYear(row scanner) (*models.AcademicYear, error) {
	var y models.AcademicYear
	if err := row.Scan(&y.ID, &y.Title, &y.StartDate, &y.EndDate, &y.IsCurrent, &y.CreatedAt, &y.UpdatedAt); err != nil {
		return nil, err
	}
	return &y, nil
}

// List returns every year, newest first.
func (r *AcademicYearRepository) List(ctx context.Context) ([]*models.AcademicYear, error) {
	return queryAll(ctx, r.db.Pool, r.selectQuery().OrderBy("id DESC"), "list academic years", scanAcademicYear)
}

// FindByID retrieves a year by ID
func (r *AcademicYearRepository) FindByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	y, err := queryOne(ctx, r.db.Pool, r.selectQuery().Where(squirrel.Eq{"id": id}), "get academic year", academicYearNotFound, scanAcademicYear)
	if err != nil {
		return nil, persistenceError(err, "get academic year")
	}
	return y, nil
}

// FindCurrent returns the current year, or nil when none is flagged.
func (r *AcademicYearRepository) FindCurrent(ctx context.Context) (*models.AcademicYear, error) {
	y, err := queryOne(ctx, r.db.Pool, r.selectQuery().Where(squirrel.Eq{"is_current": true}).Limit(1), "get current academic year", academicYearNotFound, scanAcademicYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, nil
		}
		return nil, persistenceError(err, "get current academic year")
	}
	return y, nil
}

// Create inserts a year. When the year is current every other flag is
// cleared in the same transaction.
func (r *AcademicYearRepository) Create(ctx context.Context, year *models.AcademicYear) (*models.AcademicYear, error) {
	var created *models.AcademicYear
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if year.IsCurrent {
			if err := clearCurrent(ctx, tx); err != nil {
				return err
			}
		}

		insert := psql.Insert("academic_years").
			Columns("title", "start_date", "end_date", "is_current").
			Values(year.Title, dateValue(year.StartDate), dateValue(year.EndDate), year.IsCurrent).
			Suffix("RETURNING id")

		sqlStr, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		var id int64
		if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
			return err
		}

		created, err = queryOne(ctx, tx, r.selectQuery().Where(squirrel.Eq{"id": id}), "reload academic year", academicYearNotFound, scanAcademicYear)
		return err
	})
	if err != nil {
		return nil, r.mapWriteError(err, "create academic year")
	}
	return created, nil
}

// Update applies column changes to a year.
func (r *AcademicYearRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.AcademicYear, error) {
	if len(fields) > 0 {
		update := psql.Update("academic_years").
			SetMap(withUpdatedAt(castDates(fields, "start_date", "end_date"))).
			Where(squirrel.Eq{"id": id})
		if err := execAffecting(ctx, r.db.Pool, update, "update academic year", academicYearNotFound); err != nil {
			return nil, r.mapWriteError(err, "update academic year")
		}
	}
	return r.FindByID(ctx, id)
}

// SetCurrent flags id as the only current year. Setting the already
// current year is a no-op apart from updated_at.
func (r *AcademicYearRepository) SetCurrent(ctx context.Context, id int64) (*models.AcademicYear, error) {
	var year *models.AcademicYear
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Lock the target first so a missing id aborts before flags are touched.
		lock := psql.Select("id").From("academic_years").Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")
		sqlStr, args, err := lock.ToSql()
		if err != nil {
			return err
		}
		var found int64
		if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&found); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewResourceNotFoundError(academicYearNotFound)
			}
			return err
		}

		if err := clearCurrent(ctx, tx); err != nil {
			return err
		}

		flag := psql.Update("academic_years").
			Set("is_current", true).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id})
		if err := execAffecting(ctx, tx, flag, "flag current academic year", academicYearNotFound); err != nil {
			return err
		}

		year, err = queryOne(ctx, tx, r.selectQuery().Where(squirrel.Eq{"id": id}), "reload academic year", academicYearNotFound, scanAcademicYear)
		return err
	})
	if err != nil {
		return nil, r.mapWriteError(err, "set current academic year")
	}
	return year, nil
}

// Delete removes a year permanently.
func (r *AcademicYearRepository) Delete(ctx context.Context, id int64) error {
	del := psql.Delete("academic_years").Where(squirrel.Eq{"id": id})
	if err := execAffecting(ctx, r.db.Pool, del, "delete academic year", academicYearNotFound); err != nil {
		return r.mapWriteError(err, "delete academic year")
	}
	return nil
}

func clearCurrent(ctx context.Context, q db.Querier) error {
	sqlStr, args, err := psql.Update("academic_years").
		Set("is_current", false).
		Where(squirrel.Eq{"is_current": true}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sqlStr, args...)
	return err
}

func (r *AcademicYearRepository) mapWriteError(err error, op string) error {
	if dberrors.IsDuplicateConstraintError(err, academicYearCurrentIndex) {
		logger.Warn().Err(err).Str("op", op).Msg("Concurrent current-year change rejected")
		return apperrors.NewConflictError("another academic year became current concurrently")
	}
	if _, ok := dberrors.IsForeignKeyViolation(err); ok {
		return apperrors.NewConflictError(academicYearForeignKeyMsg)
	}
	return persistenceError(err, op)
}
