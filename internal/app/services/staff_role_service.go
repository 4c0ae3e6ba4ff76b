package services

import (
	"context"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// StaffRoleService defines the interface for staff role operations
type StaffRoleService interface {
	List(ctx context.Context, yc models.AcademicYearContext) (*dto.StaffRoleListResponse, error)
	Meta(ctx context.Context, yc models.AcademicYearContext) (*dto.StaffRoleMetaResponse, error)
	Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateStaffRoleRequest) (*models.StaffRole, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStaffRoleRequest) (*models.StaffRole, error)
	Delete(ctx context.Context, id int64) error
}

// staffRoleServiceImpl implements StaffRoleService
type staffRoleServiceImpl struct {
	roles     StaffRoleStore
	users     UserStore
	classes   ClassStore
	terms     AcademicTermStore
	validator *RoleAssignmentValidator
}

// NewStaffRoleService creates a new staff role service
func NewStaffRoleService(roles StaffRoleStore, users UserStore, classes ClassStore, terms AcademicTermStore, validator *RoleAssignmentValidator) StaffRoleService {
	return &staffRoleServiceImpl{
		roles:     roles,
		users:     users,
		classes:   classes,
		terms:     terms,
		validator: validator,
	}
}

func (s *staffRoleServiceImpl) label(rows ...*models.StaffRole) {
	for _, r := range rows {
		r.RoleLabel = models.RoleLabel(s.validator.Catalog(), r.RoleID)
	}
}

func (s *staffRoleServiceImpl) List(ctx context.Context, yc models.AcademicYearContext) (*dto.StaffRoleListResponse, error) {
	year, err := yc.Require()
	if err != nil {
		return nil, err
	}

	rows, err := s.roles.ListByYear(ctx, year.ID)
	if err != nil {
		return nil, err
	}
	s.label(rows...)

	return &dto.StaffRoleListResponse{
		Year:  dto.NewAcademicYearResponse(year),
		Rows:  rows,
		Roles: s.validator.Catalog().All(),
	}, nil
}

func (s *staffRoleServiceImpl) Meta(ctx context.Context, yc models.AcademicYearContext) (*dto.StaffRoleMetaResponse, error) {
	year, err := yc.Require()
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := s.classes.List(ctx, models.YearFilter{AcademicYearID: year.ID})
	if err != nil {
		return nil, err
	}
	terms, err := s.terms.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StaffRoleMetaResponse{
		Year:    dto.NewAcademicYearResponse(year),
		Users:   users,
		Classes: classes,
		Terms:   terms,
		Roles:   s.validator.Catalog().All(),
	}, nil
}

func (s *staffRoleServiceImpl) Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateStaffRoleRequest) (*models.StaffRole, error) {
	year, err := yc.Require()
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	scope, err := s.validator.Validate(ctx, req.RoleID, req.ClassID, req.AcademicTermID, year.ID)
	if err != nil {
		return nil, err
	}

	key := models.StaffRoleKey{
		UserID:         req.UserID,
		RoleID:         req.RoleID,
		AcademicYearID: year.ID,
		ClassID:        scope.ClassID,
		AcademicTermID: scope.AcademicTermID,
	}
	if err := s.ensureUnique(ctx, key, 0); err != nil {
		return nil, err
	}

	created, err := s.roles.Create(ctx, &models.StaffRole{
		UserID:         req.UserID,
		RoleID:         req.RoleID,
		ClassID:        scope.ClassID,
		AcademicYearID: year.ID,
		AcademicTermID: scope.AcademicTermID,
	})
	if err != nil {
		return nil, err
	}
	s.label(created)

	logger.Info().
		Int64("staffRoleID", created.ID).
		Int64("userID", created.UserID).
		Int("roleID", created.RoleID).
		Msg("Staff role assigned")
	return created, nil
}

// Update keeps stored values for absent fields. Validation runs against the
// assignment's own year, not the current one.
func (s *staffRoleServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateStaffRoleRequest) (*models.StaffRole, error) {
	row, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roleID := row.RoleID
	if req.RoleID.Set {
		if req.RoleID.Value == nil {
			return nil, apperrors.NewValidationError("role_id cannot be null")
		}
		roleID = *req.RoleID.Value
	}
	classID := req.ClassID.Or(row.ClassID)
	termID := req.AcademicTermID.Or(row.AcademicTermID)

	scope, err := s.validator.Validate(ctx, roleID, classID, termID, row.AcademicYearID)
	if err != nil {
		return nil, err
	}

	key := models.StaffRoleKey{
		UserID:         row.UserID,
		RoleID:         roleID,
		AcademicYearID: row.AcademicYearID,
		ClassID:        scope.ClassID,
		AcademicTermID: scope.AcademicTermID,
	}
	if err := s.ensureUnique(ctx, key, id); err != nil {
		return nil, err
	}

	updated, err := s.roles.Update(ctx, id, roleID, scope.ClassID, scope.AcademicTermID)
	if err != nil {
		return nil, err
	}
	s.label(updated)
	return updated, nil
}

func (s *staffRoleServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.roles.Delete(ctx, id)
}

func (s *staffRoleServiceImpl) ensureUnique(ctx context.Context, key models.StaffRoleKey, excludeID int64) error {
	exists, err := s.roles.Exists(ctx, key, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewConflictError("this role is already assigned to the user")
	}
	return nil
}
