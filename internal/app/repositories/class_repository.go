package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
)

const classNotFound = "class not found"

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"c.id", "c.code", "c.name", "c.grade_level_id", "c.academic_year_id",
		"g.name AS grade_level_name", "y.title AS academic_year_title",
		"c.created_at", "c.updated_at", "c.deleted_at",
	).From("classes c").
		LeftJoin("grade_levels g ON g.id = c.grade_level_id").
		LeftJoin("academic_years y ON y.id = c.academic_year_id").
		Where("c.deleted_at IS NULL")
}

func scanClass(row scanner) (*models.Class, error) {
	var c models.Class
	if err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.GradeLevelID, &c.AcademicYearID,
		&c.GradeLevelName, &c.AcademicYearTitle,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns live classes, newest first.
func (r *ClassRepository) List(ctx context.Context, filter models.YearFilter) ([]*models.Class, error) {
	q := r.selectQuery().OrderBy("c.id DESC")
	if filter.AcademicYearID > 0 {
		q = q.Where(squirrel.Eq{"c.academic_year_id": filter.AcademicYearID})
	}
	return queryAll(ctx, r.db, q, "list classes", scanClass)
}

// FindByID retrieves a live class by ID
func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	c, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"c.id": id}), "get class", classNotFound, scanClass)
	if err != nil {
		return nil, persistenceError(err, "get class")
	}
	return c, nil
}

// Create inserts a class.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (*models.Class, error) {
	insert := psql.Insert("classes").
		Columns("code", "name", "grade_level_id", "academic_year_id").
		Values(class.Code, class.Name, class.GradeLevelID, class.AcademicYearID).
		Suffix("RETURNING id")

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, persistenceError(err, "create class")
	}
	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return nil, persistenceError(err, "create class")
	}
	return r.FindByID(ctx, id)
}

// Update applies column changes to a live class.
func (r *ClassRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Class, error) {
	if len(fields) > 0 {
		update := psql.Update("classes").
			SetMap(withUpdatedAt(fields)).
			Where(squirrel.Eq{"id": id}).
			Where("deleted_at IS NULL")
		if err := execAffecting(ctx, r.db, update, "update class", classNotFound); err != nil {
			return nil, persistenceError(err, "update class")
		}
	}
	return r.FindByID(ctx, id)
}

// SoftDelete marks a live class deleted.
func (r *ClassRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.db, "classes", id, classNotFound)
}
