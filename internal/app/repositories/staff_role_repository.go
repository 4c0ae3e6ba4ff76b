package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/dberrors"
)

const staffRoleNotFound = "staff role not found"

// StaffRoleRepository handles database operations for user_roles
type StaffRoleRepository struct {
	db *pgxpool.Pool
}

// NewStaffRoleRepository creates a new staff role repository
func NewStaffRoleRepository(db *pgxpool.Pool) *StaffRoleRepository {
	return &StaffRoleRepository{db: db}
}

func (r *StaffRoleRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"ur.id", "ur.user_id", "ur.role_id", "ur.class_id", "ur.academic_year_id", "ur.academic_term_id",
		"ur.created_at", "ur.updated_at",
		"CONCAT(u.first_name, ' ', u.last_name) AS user_full_name",
		"c.name AS class_name",
		"t.name AS academic_term_name",
	).From("user_roles ur").
		LeftJoin("users u ON u.id = ur.user_id").
		LeftJoin("classes c ON c.id = ur.class_id").
		LeftJoin("academic_terms t ON t.id = ur.academic_term_id")
}

func scanStaffRole(row scanner) (*models.StaffRole, error) {
	var s models.StaffRole
	if err := row.Scan(
		&s.ID, &s.UserID, &s.RoleID, &s.ClassID, &s.AcademicYearID, &s.AcademicTermID,
		&s.CreatedAt, &s.UpdatedAt,
		&s.UserFullName, &s.ClassName, &s.TermName,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByYear returns the assignments of a year, newest first.
func (r *StaffRoleRepository) ListByYear(ctx context.Context, yearID int64) ([]*models.StaffRole, error) {
	q := r.selectQuery().Where(squirrel.Eq{"ur.academic_year_id": yearID}).OrderBy("ur.id DESC")
	return queryAll(ctx, r.db, q, "list staff roles", scanStaffRole)
}

// FindByID retrieves an assignment by ID
func (r *StaffRoleRepository) FindByID(ctx context.Context, id int64) (*models.StaffRole, error) {
	s, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"ur.id": id}), "get staff role", staffRoleNotFound, scanStaffRole)
	if err != nil {
		return nil, persistenceError(err, "get staff role")
	}
	return s, nil
}

// Exists reports whether an assignment with the same key exists, ignoring excludeID.
// Nil class or term match only NULL columns.
func (r *StaffRoleRepository) Exists(ctx context.Context, key models.StaffRoleKey, excludeID int64) (bool, error) {
	q := psql.Select("1").From("user_roles").Where(squirrel.Eq{
		"user_id":          key.UserID,
		"role_id":          key.RoleID,
		"academic_year_id": key.AcademicYearID,
		"class_id":         nullableEq(key.ClassID),
		"academic_term_id": nullableEq(key.AcademicTermID),
	})
	if excludeID > 0 {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	sqlStr, args, err := q.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, persistenceError(err, "check staff role")
	}
	var exists bool
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		return false, persistenceError(err, "check staff role")
	}
	return exists, nil
}

// Create inserts an assignment.
func (r *StaffRoleRepository) Create(ctx context.Context, role *models.StaffRole) (*models.StaffRole, error) {
	insert := psql.Insert("user_roles").
		Columns("user_id", "role_id", "class_id", "academic_year_id", "academic_term_id").
		Values(role.UserID, role.RoleID, role.ClassID, role.AcademicYearID, role.AcademicTermID).
		Suffix("RETURNING id")

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, persistenceError(err, "create staff role")
	}
	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return nil, mapStaffRoleWriteError(err, "create staff role")
	}
	return r.FindByID(ctx, id)
}

// Update rewrites role, class and term of an assignment.
func (r *StaffRoleRepository) Update(ctx context.Context, id int64, roleID int, classID, termID *int64) (*models.StaffRole, error) {
	update := psql.Update("user_roles").
		Set("role_id", roleID).
		Set("class_id", classID).
		Set("academic_term_id", termID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})
	if err := execAffecting(ctx, r.db, update, "update staff role", staffRoleNotFound); err != nil {
		return nil, mapStaffRoleWriteError(err, "update staff role")
	}
	return r.FindByID(ctx, id)
}

// Delete removes an assignment permanently.
func (r *StaffRoleRepository) Delete(ctx context.Context, id int64) error {
	del := psql.Delete("user_roles").Where(squirrel.Eq{"id": id})
	if err := execAffecting(ctx, r.db, del, "delete staff role", staffRoleNotFound); err != nil {
		return persistenceError(err, "delete staff role")
	}
	return nil
}

// nullableEq lets squirrel.Eq render IS NULL for a nil pointer.
func nullableEq(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func mapStaffRoleWriteError(err error, op string) error {
	if constraint, ok := dberrors.IsForeignKeyViolation(err); ok {
		return apperrors.NewResourceNotFoundError("referenced record not found: " + constraint)
	}
	return persistenceError(err, op)
}
