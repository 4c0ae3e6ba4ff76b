package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
)

const gradeLevelNotFound = "grade level not found"

// GradeLevelRepository handles database operations for grade levels
type GradeLevelRepository struct {
	db *pgxpool.Pool
}

// NewGradeLevelRepository creates a new grade level repository
func NewGradeLevelRepository(db *pgxpool.Pool) *GradeLevelRepository {
	return &GradeLevelRepository{db: db}
}

func (r *GradeLevelRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"g.id", "g.academic_term_id", "g.grade_code", "g.name", "g.status",
		"t.name AS academic_term_name",
		"g.created_at", "g.updated_at", "g.deleted_at",
	).From("grade_levels g").
		LeftJoin("academic_terms t ON t.id = g.academic_term_id").
		Where("g.deleted_at IS NULL")
}

func scanGradeLevel(row scanner) (*models.GradeLevel, error) {
	var g models.GradeLevel
	if err := row.Scan(
		&g.ID, &g.AcademicTermID, &g.GradeCode, &g.Name, &g.Status,
		&g.TermName,
		&g.CreatedAt, &g.UpdatedAt, &g.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns live grade levels with their term name, newest first.
func (r *GradeLevelRepository) List(ctx context.Context) ([]*models.GradeLevel, error) {
	return queryAll(ctx, r.db, r.selectQuery().OrderBy("g.id DESC"), "list grade levels", scanGradeLevel)
}

// FindByID retrieves a live grade level by ID
func (r *GradeLevelRepository) FindByID(ctx context.Context, id int64) (*models.GradeLevel, error) {
	g, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"g.id": id}), "get grade level", gradeLevelNotFound, scanGradeLevel)
	if err != nil {
		return nil, persistenceError(err, "get grade level")
	}
	return g, nil
}

// Create inserts a grade level.
func (r *GradeLevelRepository) Create(ctx context.Context, level *models.GradeLevel) (*models.GradeLevel, error) {
	insert := psql.Insert("grade_levels").
		Columns("academic_term_id", "grade_code", "name", "status").
		Values(level.AcademicTermID, level.GradeCode, level.Name, level.Status).
		Suffix("RETURNING id")

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, persistenceError(err, "create grade level")
	}
	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return nil, persistenceError(err, "create grade level")
	}
	return r.FindByID(ctx, id)
}

// Update applies column changes to a live grade level.
func (r *GradeLevelRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.GradeLevel, error) {
	if len(fields) > 0 {
		update := psql.Update("grade_levels").
			SetMap(withUpdatedAt(fields)).
			Where(squirrel.Eq{"id": id}).
			Where("deleted_at IS NULL")
		if err := execAffecting(ctx, r.db, update, "update grade level", gradeLevelNotFound); err != nil {
			return nil, persistenceError(err, "update grade level")
		}
	}
	return r.FindByID(ctx, id)
}

// SoftDelete marks a live grade level deleted.
func (r *GradeLevelRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.db, "grade_levels", id, gradeLevelNotFound)
}
