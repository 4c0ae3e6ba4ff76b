package services

import (
	"context"
	"strings"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/calendar"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// UserService defines the interface for staff user operations
type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	users UserStore
}

// NewUserService creates a new UserService
func NewUserService(users UserStore) UserService {
	return &userServiceImpl{users: users}
}

func (s *userServiceImpl) List(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

func (s *userServiceImpl) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *userServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	firstName, err := requiredName(req.FirstName, "first_name", 80)
	if err != nil {
		return nil, err
	}
	lastName, err := requiredName(req.LastName, "last_name", 80)
	if err != nil {
		return nil, err
	}
	username, err := requiredName(req.Username, "username", 64)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUsernameFree(ctx, username, 0); err != nil {
		return nil, err
	}

	fields, err := userProfileColumns(&req.UserFields)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err, "hash password")
	}

	fields["first_name"] = firstName
	fields["last_name"] = lastName
	fields["username"] = username
	fields["password_hash"] = hash
	if _, ok := fields["is_active"]; !ok {
		fields["is_active"] = true
	}

	user, err := s.users.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User created")
	return user, nil
}

func (s *userServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields, err := userProfileColumns(&req.UserFields)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		v, err := requiredName(*req.FirstName, "first_name", 80)
		if err != nil {
			return nil, err
		}
		fields["first_name"] = v
	}
	if req.LastName != nil {
		v, err := requiredName(*req.LastName, "last_name", 80)
		if err != nil {
			return nil, err
		}
		fields["last_name"] = v
	}
	if req.Username != nil {
		v, err := requiredName(*req.Username, "username", 64)
		if err != nil {
			return nil, err
		}
		if err := s.ensureUsernameFree(ctx, v, id); err != nil {
			return nil, err
		}
		fields["username"] = v
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.NewPersistenceError(err, "hash password")
		}
		fields["password_hash"] = hash
	}

	return s.users.Update(ctx, id, fields)
}

// Delete removes the user permanently.
func (s *userServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func (s *userServiceImpl) ensureUsernameFree(ctx context.Context, username string, excludeID int64) error {
	taken, err := s.users.UsernameExists(ctx, username, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.NewConflictError("username is already taken")
	}
	return nil
}

// userProfileColumns maps the optional profile fields that were sent.
func userProfileColumns(f *dto.UserFields) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	text := map[string]*string{
		"national_id":                   f.NationalID,
		"phone":                         f.Phone,
		"birth_certificate_identifier":  f.BirthCertificateIdentifier,
		"birth_certificate_issue_place": f.BirthCertificateIssuePlace,
		"birth_place":                   f.BirthPlace,
		"father_name":                   f.FatherName,
		"mother_first_name":             f.MotherFirstName,
		"mother_last_name":              f.MotherLastName,
		"spouse_first_name":             f.SpouseFirstName,
		"spouse_last_name":              f.SpouseLastName,
		"spouse_mobile":                 f.SpouseMobile,
		"home_address":                  f.HomeAddress,
		"home_phone":                    f.HomePhone,
		"marital_status":                f.MaritalStatus,
		"bank_card_number":              f.BankCardNumber,
		"bank_account_number":           f.BankAccountNumber,
		"bank_sheba_number":             f.BankShebaNumber,
		"bank_name":                     f.BankName,
	}
	for column, value := range text {
		if value != nil {
			fields[column] = helpers.TrimToNil(value)
		}
	}

	if f.BirthDate != nil {
		date, err := calendar.PrepareDate(f.BirthDate, "birth date")
		if err != nil {
			return nil, err
		}
		fields["birth_date"] = date
	}
	if f.ChildrenCount != nil {
		fields["children_count"] = *f.ChildrenCount
	}
	if f.IsActive != nil {
		fields["is_active"] = *f.IsActive
	}
	return fields, nil
}
