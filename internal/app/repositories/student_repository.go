package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
)

const studentNotFound = "student not found"

var studentDateColumns = []string{"birth_date", "father_birth_date", "mother_birth_date"}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func studentSelectColumns(prefix string) []string {
	col := func(name string) string { return prefix + name }
	date := func(name string) string { return dateColumn(prefix+name, name) }
	return []string{
		col("id"),
		col("first_name"), col("last_name"), col("national_code"),
		col("birth_certificate_no"), col("birth_certificate_place"), col("birth_certificate_id"),
		date("birth_date"), col("birth_place"), col("photo"),
		col("father_name"), col("father_national_code"), date("father_birth_date"),
		col("father_mobile"), col("father_birth_certificate_place"), col("father_education"), col("father_job"),
		col("mother_first_name"), col("mother_last_name"), col("mother_national_code"),
		date("mother_birth_date"), col("mother_mobile"), col("mother_education"), col("mother_job"),
		col("guardian"), col("address"), col("home_phone"), col("status"),
		col("created_at"), col("updated_at"), col("deleted_at"),
	}
}

func (r *StudentRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(studentSelectColumns("s.")...).
		From("students s").
		Where("s.deleted_at IS NULL")
}

func scanStudent(row scanner) (*models.Student, error) {
	var s models.Student
	if err := row.Scan(
		&s.ID,
		&s.FirstName, &s.LastName, &s.NationalCode,
		&s.BirthCertificateNo, &s.BirthCertificatePlace, &s.BirthCertificateID,
		&s.BirthDate, &s.BirthPlace, &s.Photo,
		&s.FatherName, &s.FatherNationalCode, &s.FatherBirthDate,
		&s.FatherMobile, &s.FatherBirthCertificatePlace, &s.FatherEducation, &s.FatherJob,
		&s.MotherFirstName, &s.MotherLastName, &s.MotherNationalCode,
		&s.MotherBirthDate, &s.MotherMobile, &s.MotherEducation, &s.MotherJob,
		&s.Guardian, &s.Address, &s.HomePhone, &s.Status,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns live students, newest first.
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	return queryAll(ctx, r.db, r.selectQuery().OrderBy("s.id DESC"), "list students", scanStudent)
}

// ListUnenrolled returns live students without a live enrollment in yearID.
func (r *StudentRepository) ListUnenrolled(ctx context.Context, yearID int64) ([]*models.Student, error) {
	q := r.selectQuery().
		Where(`NOT EXISTS (
			SELECT 1 FROM student_enrollments e
			WHERE e.student_id = s.id AND e.academic_year_id = ? AND e.deleted_at IS NULL
		)`, yearID).
		OrderBy("s.id DESC")
	return queryAll(ctx, r.db, q, "list unenrolled students", scanStudent)
}

// FindByID retrieves a live student by ID
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	s, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"s.id": id}), "get student", studentNotFound, scanStudent)
	if err != nil {
		return nil, persistenceError(err, "get student")
	}
	return s, nil
}

// Create inserts a student built from column values and returns the new id.
func (r *StudentRepository) Create(ctx context.Context, fields map[string]interface{}) (int64, error) {
	insert := psql.Insert("students").
		SetMap(castDates(fields, studentDateColumns...)).
		Suffix("RETURNING id")

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return 0, persistenceError(err, "create student")
	}
	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, persistenceError(err, "create student")
	}
	return id, nil
}

// Update applies column changes to a live student.
func (r *StudentRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Student, error) {
	if len(fields) > 0 {
		update := psql.Update("students").
			SetMap(withUpdatedAt(castDates(fields, studentDateColumns...))).
			Where(squirrel.Eq{"id": id}).
			Where("deleted_at IS NULL")
		if err := execAffecting(ctx, r.db, update, "update student", studentNotFound); err != nil {
			return nil, persistenceError(err, "update student")
		}
	}
	return r.FindByID(ctx, id)
}

// SoftDelete marks a live student deleted.
func (r *StudentRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.db, "students", id, studentNotFound)
}
