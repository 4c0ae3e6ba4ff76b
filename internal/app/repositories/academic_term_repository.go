package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
)

const academicTermNotFound = "academic term not found"

// AcademicTermRepository handles database operations for academic terms
type AcademicTermRepository struct {
	db *pgxpool.Pool
}

// NewAcademicTermRepository creates a new academic term repository
func NewAcademicTermRepository(db *pgxpool.Pool) *AcademicTermRepository {
	return &AcademicTermRepository{db: db}
}

func (r *AcademicTermRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select("id", "name", "status", "created_at", "updated_at", "deleted_at").
		From("academic_terms").
		Where("deleted_at IS NULL")
}

func scanAcademicTerm(row scanner) (*models.AcademicTerm, error) {
	var t models.AcademicTerm
	if err := row.Scan(&t.ID, &t.Name, &t.Status, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns live terms, newest first.
func (r *AcademicTermRepository) List(ctx context.Context) ([]*models.AcademicTerm, error) {
	return queryAll(ctx, r.db, r.selectQuery().OrderBy("id DESC"), "list academic terms", scanAcademicTerm)
}

// FindByID retrieves a live term by ID
func (r *AcademicTermRepository) FindByID(ctx context.Context, id int64) (*models.AcademicTerm, error) {
	t, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"id": id}), "get academic term", academicTermNotFound, scanAcademicTerm)
	if err != nil {
		return nil, persistenceError(err, "get academic term")
	}
	return t, nil
}

// Create inserts a term.
func (r *AcademicTermRepository) Create(ctx context.Context, term *models.AcademicTerm) (*models.AcademicTerm, error) {
	insert := psql.Insert("academic_terms").
		Columns("name", "status").
		Values(term.Name, term.Status).
		Suffix("RETURNING id, name, status, created_at, updated_at, deleted_at")

	t, err := queryOne(ctx, r.db, insert, "create academic term", academicTermNotFound, scanAcademicTerm)
	if err != nil {
		return nil, persistenceError(err, "create academic term")
	}
	return t, nil
}

// Update applies column changes to a live term.
func (r *AcademicTermRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.AcademicTerm, error) {
	if len(fields) > 0 {
		update := psql.Update("academic_terms").
			SetMap(withUpdatedAt(fields)).
			Where(squirrel.Eq{"id": id}).
			Where("deleted_at IS NULL")
		if err := execAffecting(ctx, r.db, update, "update academic term", academicTermNotFound); err != nil {
			return nil, persistenceError(err, "update academic term")
		}
	}
	return r.FindByID(ctx, id)
}

// SoftDelete marks a live term deleted.
func (r *AcademicTermRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.db, "academic_terms", id, academicTermNotFound)
}

// softDelete stamps deleted_at on a live row of table.
func softDelete(ctx context.Context, db *pgxpool.Pool, table string, id int64, notFoundMsg string) error {
	update := psql.Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL")
	if err := execAffecting(ctx, db, update, "soft delete "+table, notFoundMsg); err != nil {
		return persistenceError(err, "soft delete "+table)
	}
	return nil
}
