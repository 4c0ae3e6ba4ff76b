package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/dberrors"
)

const (
	enrollmentNotFound        = "enrollment not found"
	enrollmentLiveIndex       = "uq_student_enrollments_live"
	enrollmentAlreadyEnrolled = "student already enrolled for this year"
	enrollmentReturning       = "RETURNING id, student_id, academic_year_id, class_id, status, created_at, updated_at, deleted_at"
)

// EnrollmentRepository handles database operations for student_enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"e.id", "e.student_id", "e.academic_year_id", "e.class_id", "e.status",
		"e.created_at", "e.updated_at", "e.deleted_at",
		"s.first_name AS student_first_name", "s.last_name AS student_last_name",
		"c.name AS class_name",
	).From("student_enrollments e").
		LeftJoin("students s ON s.id = e.student_id").
		LeftJoin("classes c ON c.id = e.class_id")
}

func scanEnrollment(row scanner) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := row.Scan(
		&e.ID, &e.StudentID, &e.AcademicYearID, &e.ClassID, &e.Status,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		&e.StudentFirstName, &e.StudentLastName, &e.ClassName,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEnrollmentRow(row scanner) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := row.Scan(&e.ID, &e.StudentID, &e.AcademicYearID, &e.ClassID, &e.Status, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Upsert places a student in a year with a single statement. An existing
// live row keeps its id and status and takes the new class, including NULL.
func (r *EnrollmentRepository) Upsert(ctx context.Context, studentID, yearID int64, classID *int64) (*models.Enrollment, error) {
	e, err := queryOne(ctx, r.db, upsertEnrollmentQuery(studentID, yearID, classID), "upsert enrollment", enrollmentNotFound, scanEnrollmentRow)
	if err != nil {
		return nil, mapEnrollmentWriteError(err, "upsert enrollment")
	}
	return e, nil
}

func upsertEnrollmentQuery(studentID, yearID int64, classID *int64) squirrel.InsertBuilder {
	return psql.Insert("student_enrollments").
		Columns("student_id", "academic_year_id", "class_id", "status").
		Values(studentID, yearID, classID, models.EnrollmentActive).
		Suffix(`ON CONFLICT (student_id, academic_year_id) WHERE deleted_at IS NULL
			DO UPDATE SET class_id = EXCLUDED.class_id, updated_at = now() ` + enrollmentReturning)
}

// List returns live enrollments matching filter, newest first.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	q := r.selectQuery().Where("e.deleted_at IS NULL").OrderBy("e.created_at DESC", "e.id DESC")
	if filter.AcademicYearID != nil {
		q = q.Where(squirrel.Eq{"e.academic_year_id": *filter.AcademicYearID})
	}
	if filter.ClassID != nil {
		q = q.Where(squirrel.Eq{"e.class_id": *filter.ClassID})
	}
	if filter.StudentID != nil {
		q = q.Where(squirrel.Eq{"e.student_id": *filter.StudentID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"e.status": *filter.Status})
	}
	return queryAll(ctx, r.db, q, "list enrollments", scanEnrollment)
}

// FindByID retrieves an enrollment by ID, soft-deleted rows included.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	e, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"e.id": id}), "get enrollment", enrollmentNotFound, scanEnrollment)
	if err != nil {
		return nil, persistenceError(err, "get enrollment")
	}
	return e, nil
}

// FindLiveByStudentYear returns the live enrollment of a student in a year, or nil.
func (r *EnrollmentRepository) FindLiveByStudentYear(ctx context.Context, studentID, yearID int64) (*models.Enrollment, error) {
	q := r.selectQuery().
		Where("e.deleted_at IS NULL").
		Where(squirrel.Eq{"e.student_id": studentID, "e.academic_year_id": yearID})
	e, err := queryOne(ctx, r.db, q, "get live enrollment", enrollmentNotFound, scanEnrollment)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, nil
		}
		return nil, persistenceError(err, "get live enrollment")
	}
	return e, nil
}

// Create inserts a live enrollment. A second live row for the same
// student and year is rejected by the partial unique index.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error) {
	insert := psql.Insert("student_enrollments").
		Columns("student_id", "academic_year_id", "class_id", "status").
		Values(enrollment.StudentID, enrollment.AcademicYearID, enrollment.ClassID, enrollment.Status).
		Suffix("RETURNING id")

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, persistenceError(err, "create enrollment")
	}
	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return nil, mapEnrollmentWriteError(err, "create enrollment")
	}
	return r.FindByID(ctx, id)
}

// Update applies column changes to a live enrollment.
func (r *EnrollmentRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Enrollment, error) {
	update := psql.Update("student_enrollments").
		SetMap(withUpdatedAt(fields)).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL")
	if err := execAffecting(ctx, r.db, update, "update enrollment", enrollmentNotFound); err != nil {
		return nil, mapEnrollmentWriteError(err, "update enrollment")
	}
	return r.FindByID(ctx, id)
}

// SoftDelete marks a live enrollment deleted.
func (r *EnrollmentRepository) SoftDelete(ctx context.Context, id int64) error {
	update := psql.Update("student_enrollments").
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL")
	if err := execAffecting(ctx, r.db, update, "soft delete enrollment", enrollmentNotFound); err != nil {
		return persistenceError(err, "soft delete enrollment")
	}
	return nil
}

func mapEnrollmentWriteError(err error, op string) error {
	if dberrors.IsDuplicateConstraintError(err, enrollmentLiveIndex) {
		return apperrors.NewConflictError(enrollmentAlreadyEnrolled)
	}
	if constraint, ok := dberrors.IsForeignKeyViolation(err); ok {
		return apperrors.NewResourceNotFoundError("referenced record not found: " + constraint)
	}
	return persistenceError(err, op)
}
