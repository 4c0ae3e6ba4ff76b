package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/dberrors"
)

const (
	userNotFound           = "user not found"
	userUsernameConstraint = "uq_users_username"
	userDuplicateUsername  = "username is already taken"
)

// UserRepository handles database operations for staff users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"id", "first_name", "last_name", "national_id", "username", "password_hash", "phone",
		dateColumn("birth_date", "birth_date"),
		"birth_certificate_identifier", "birth_certificate_issue_place", "birth_place",
		"father_name", "mother_first_name", "mother_last_name",
		"spouse_first_name", "spouse_last_name", "spouse_mobile",
		"home_address", "home_phone", "marital_status", "children_count",
		"bank_card_number", "bank_account_number", "bank_sheba_number", "bank_name",
		"is_active", "last_login_at", "created_at", "updated_at",
	).From("users")
}

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.NationalID, &u.Username, &u.PasswordHash, &u.Phone,
		&u.BirthDate,
		&u.BirthCertificateIdentifier, &u.BirthCertificateIssuePlace, &u.BirthPlace,
		&u.FatherName, &u.MotherFirstName, &u.MotherLastName,
		&u.SpouseFirstName, &u.SpouseLastName, &u.SpouseMobile,
		&u.HomeAddress, &u.HomePhone, &u.MaritalStatus, &u.ChildrenCount,
		&u.BankCardNumber, &u.BankAccountNumber, &u.BankShebaNumber, &u.BankName,
		&u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns every user, newest first.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	return queryAll(ctx, r.db, r.selectQuery().OrderBy("id DESC"), "list users", scanUser)
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"id": id}), "get user", userNotFound, scanUser)
	if err != nil {
		return nil, persistenceError(err, "get user")
	}
	return u, nil
}

// FindByUsername retrieves a user by username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := queryOne(ctx, r.db, r.selectQuery().Where(squirrel.Eq{"username": username}), "get user by username", userNotFound, scanUser)
	if err != nil {
		return nil, persistenceError(err, "get user by username")
	}
	return u, nil
}

// UsernameExists reports whether username is taken by a user other than excludeID.
func (r *UserRepository) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	q := psql.Select("1").From("users").Where(squirrel.Eq{"username": username})
	if excludeID > 0 {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}
	sqlStr, args, err := q.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, persistenceError(err, "check username")
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		return false, persistenceError(err, "check username")
	}
	return exists, nil
}

// Create inserts a user built from column values and returns it.
func (r *UserRepository) Create(ctx context.Context, fields map[string]interface{}) (*models.User, error) {
	insert := psql.Insert("users").
		SetMap(castDates(fields, "birth_date")).
		Suffix("RETURNING id")

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, persistenceError(err, "create user")
	}
	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return nil, mapUserWriteError(err, "create user")
	}
	return r.FindByID(ctx, id)
}

// Update applies column changes to a user.
func (r *UserRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	if len(fields) > 0 {
		update := psql.Update("users").
			SetMap(withUpdatedAt(castDates(fields, "birth_date"))).
			Where(squirrel.Eq{"id": id})
		if err := execAffecting(ctx, r.db, update, "update user", userNotFound); err != nil {
			return nil, mapUserWriteError(err, "update user")
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes a user permanently. Role assignments cascade.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	del := psql.Delete("users").Where(squirrel.Eq{"id": id})
	if err := execAffecting(ctx, r.db, del, "delete user", userNotFound); err != nil {
		return persistenceError(err, "delete user")
	}
	return nil
}

// TouchLastLogin records a successful sign-in.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	update := psql.Update("users").
		Set("last_login_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})
	if err := execAffecting(ctx, r.db, update, "update last login", userNotFound); err != nil {
		return persistenceError(err, "update last login")
	}
	return nil
}

func mapUserWriteError(err error, op string) error {
	if dberrors.IsDuplicateConstraintError(err, userUsernameConstraint) {
		return apperrors.NewConflictError(userDuplicateUsername)
	}
	return persistenceError(err, op)
}
