package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
)

const examTitleNotFound = "exam title not found"

// ExamTitleRepository handles database operations for exam titles
type ExamTitleRepository struct {
	db *pgxpool.Pool
}

// NewExamTitleRepository creates a new exam title repository
func NewExamTitleRepository(db *pgxpool.Pool) *ExamTitleRepository {
	return &ExamTitleRepository{db: db}
}

const examTitleColumns = "id, name, status, academic_year_id, created_at, updated_at, deleted_at"

func (r *ExamTitleRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(examTitleColumns).
		From("exam_titles").
		Where("deleted_at IS NULL")
}

func scanExamTitle(row scanner) (*models.ExamTitle, error) {
	var e models.ExamTitle
	if err := row.Scan(&e.ID, &e.Name, &e.Status, &e.AcademicYearID, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByYear returns live exam titles of a year, newest first.
func (r *ExamTitleRepository) ListByYear(ctx context.Context, yearID int64) ([]*models.ExamTitle, error) {
	q := r.selectQuery().Where(squirrel.Eq{"academic_year_id": yearID}).OrderBy("id DESC")
	return queryAll(ctx, r.db, q, "list exam titles", scanExamTitle)
}

// FindByID retrieves a live exam title by ID
func (r *ExamTitleRepository) FindByID(ctx context.Context, id int64) (*models.ExamTitle, error) {
	e, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"id": id}), "get exam title", examTitleNotFound, scanExamTitle)
	if err != nil {
		return nil, persistenceError(err, "get exam title")
	}
	return e, nil
}

// Create inserts an exam title.
func (r *ExamTitleRepository) Create(ctx context.Context, exam *models.ExamTitle) (*models.ExamTitle, error) {
	insert := psql.Insert("exam_titles").
		Columns("name", "status", "academic_year_id").
		Values(exam.Name, exam.Status, exam.AcademicYearID).
		Suffix("RETURNING " + examTitleColumns)

	e, err := queryOne(ctx, r.db, insert, "create exam title", examTitleNotFound, scanExamTitle)
	if err != nil {
		return nil, persistenceError(err, "create exam title")
	}
	return e, nil
}

// Update applies column changes to a live exam title.
func (r *ExamTitleRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamTitle, error) {
	if len(fields) > 0 {
		update := psql.Update("exam_titles").
			SetMap(withUpdatedAt(fields)).
			Where(squirrel.Eq{"id": id}).
			Where("deleted_at IS NULL")
		if err := execAffecting(ctx, r.db, update, "update exam title", examTitleNotFound); err != nil {
			return nil, persistenceError(err, "update exam title")
		}
	}
	return r.FindByID(ctx, id)
}

// SoftDelete marks a live exam title deleted.
func (r *ExamTitleRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.db, "exam_titles", id, examTitleNotFound)
}
