package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
)

const textbookNotFound = "textbook not found"

// TextbookRepository handles database operations for textbooks
type TextbookRepository struct {
	db *pgxpool.Pool
}

// NewTextbookRepository creates a new textbook repository
func NewTextbookRepository(db *pgxpool.Pool) *TextbookRepository {
	return &TextbookRepository{db: db}
}

func (r *TextbookRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.name", "b.grade_level_id", "b.academic_year_id",
		"g.name AS grade_level_name", "y.title AS academic_year_title",
		"b.created_at", "b.updated_at", "b.deleted_at",
	).From("textbooks b").
		LeftJoin("grade_levels g ON g.id = b.grade_level_id").
		LeftJoin("academic_years y ON y.id = b.academic_year_id").
		Where("b.deleted_at IS NULL")
}

func scanTextbook(row scanner) (*models.Textbook, error) {
	var b models.Textbook
	if err := row.Scan(
		&b.ID, &b.Name, &b.GradeLevelID, &b.AcademicYearID,
		&b.GradeLevelName, &b.AcademicYearTitle,
		&b.CreatedAt, &b.UpdatedAt, &b.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns live textbooks, newest first.
func (r *TextbookRepository) List(ctx context.Context, filter models.YearFilter) ([]*models.Textbook, error) {
	q := r.selectQuery().OrderBy("b.id DESC")
	if filter.AcademicYearID > 0 {
		q = q.Where(squirrel.Eq{"b.academic_year_id": filter.AcademicYearID})
	}
	return queryAll(ctx, r.db, q, "list textbooks", scanTextbook)
}

// FindByID retrieves a live textbook by ID
func (r *TextbookRepository) FindByID(ctx context.Context, id int64) (*models.Textbook, error) {
	b, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"b.id": id}), "get textbook", textbookNotFound, scanTextbook)
	if err != nil {
		return nil, persistenceError(err, "get textbook")
	}
	return b, nil
}

// Create inserts a textbook.
func (r *TextbookRepository) Create(ctx context.Context, book *models.Textbook) (*models.Textbook, error) {
	insert := psql.Insert("textbooks").
		Columns("name", "grade_level_id", "academic_year_id").
		Values(book.Name, book.GradeLevelID, book.AcademicYearID).
		Suffix("RETURNING id")

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, persistenceError(err, "create textbook")
	}
	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return nil, persistenceError(err, "create textbook")
	}
	return r.FindByID(ctx, id)
}

// Update applies column changes to a live textbook.
func (r *TextbookRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Textbook, error) {
	if len(fields) > 0 {
		update := psql.Update("textbooks").
			SetMap(withUpdatedAt(fields)).
			Where(squirrel.Eq{"id": id}).
			Where("deleted_at IS NULL")
		if err := execAffecting(ctx, r.db, update, "update textbook", textbookNotFound); err != nil {
			return nil, persistenceError(err, "update textbook")
		}
	}
	return r.FindByID(ctx, id)
}

// SoftDelete marks a live textbook deleted.
func (r *TextbookRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.db, "textbooks", id, textbookNotFound)
}
