package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
)

// AcademicTermService defines the interface for academic term operations
type AcademicTermService interface {
	List(ctx context.Context) ([]*models.AcademicTerm, error)
	Get(ctx context.Context, id int64) (*models.AcademicTerm, error)
	Create(ctx context.Context, req *dto.CreateAcademicTermRequest) (*models.AcademicTerm, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAcademicTermRequest) (*models.AcademicTerm, error)
	Delete(ctx context.Context, id int64) error
}

type academicTermServiceImpl struct {
	terms AcademicTermStore
}

// NewAcademicTermService creates a new academic term service
func NewAcademicTermService(terms AcademicTermStore) AcademicTermService {
	return &academicTermServiceImpl{terms: terms}
}

func (s *academicTermServiceImpl) List(ctx context.Context) ([]*models.AcademicTerm, error) {
	return s.terms.List(ctx)
}

func (s *academicTermServiceImpl) Get(ctx context.Context, id int64) (*models.AcademicTerm, error) {
	return s.terms.FindByID(ctx, id)
}

func (s *academicTermServiceImpl) Create(ctx context.Context, req *dto.CreateAcademicTermRequest) (*models.AcademicTerm, error) {
	name, err := requiredName(req.Name, "name", 120)
	if err != nil {
		return nil, err
	}
	status, err := parseActivityStatus(req.Status)
	if err != nil {
		return nil, err
	}
	return s.terms.Create(ctx, &models.AcademicTerm{Name: name, Status: status})
}

func (s *academicTermServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateAcademicTermRequest) (*models.AcademicTerm, error) {
	if _, err := s.terms.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		name, err := requiredName(*req.Name, "name", 120)
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if req.Status != nil {
		status, err := parseActivityStatus(req.Status)
		if err != nil {
			return nil, err
		}
		fields["status"] = status
	}
	return s.terms.Update(ctx, id, fields)
}

func (s *academicTermServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.terms.SoftDelete(ctx, id)
}

// GradeLevelService defines the interface for grade level operations
type GradeLevelService interface {
	List(ctx context.Context) ([]*models.GradeLevel, error)
	Get(ctx context.Context, id int64) (*models.GradeLevel, error)
	Create(ctx context.Context, req *dto.CreateGradeLevelRequest) (*models.GradeLevel, error)
	Update(ctx context.Context, id int64, req *dto.UpdateGradeLevelRequest) (*models.GradeLevel, error)
	Delete(ctx context.Context, id int64) error
}

type gradeLevelServiceImpl struct {
	levels GradeLevelStore
	terms  AcademicTermStore
}

// NewGradeLevelService creates a new grade level service
func NewGradeLevelService(levels GradeLevelStore, terms AcademicTermStore) GradeLevelService {
	return &gradeLevelServiceImpl{levels: levels, terms: terms}
}

func (s *gradeLevelServiceImpl) List(ctx context.Context) ([]*models.GradeLevel, error) {
	return s.levels.List(ctx)
}

func (s *gradeLevelServiceImpl) Get(ctx context.Context, id int64) (*models.GradeLevel, error) {
	return s.levels.FindByID(ctx, id)
}

func (s *gradeLevelServiceImpl) Create(ctx context.Context, req *dto.CreateGradeLevelRequest) (*models.GradeLevel, error) {
	if _, err := s.terms.FindByID(ctx, req.AcademicTermID); err != nil {
		return nil, missingAsInvalid(err, "academic term not found")
	}

	code, err := requiredName(req.GradeCode, "grade_code", 20)
	if err != nil {
		return nil, err
	}
	name, err := requiredName(req.Name, "name", 120)
	if err != nil {
		return nil, err
	}
	status, err := parseActivityStatus(req.Status)
	if err != nil {
		return nil, err
	}

	return s.levels.Create(ctx, &models.GradeLevel{
		AcademicTermID: req.AcademicTermID,
		GradeCode:      code,
		Name:           name,
		Status:         status,
	})
}

func (s *gradeLevelServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateGradeLevelRequest) (*models.GradeLevel, error) {
	if _, err := s.levels.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.AcademicTermID != nil {
		if _, err := s.terms.FindByID(ctx, *req.AcademicTermID); err != nil {
			return nil, missingAsInvalid(err, "academic term not found")
		}
		fields["academic_term_id"] = *req.AcademicTermID
	}
	if req.GradeCode != nil {
		code, err := requiredName(*req.GradeCode, "grade_code", 20)
		if err != nil {
			return nil, err
		}
		fields["grade_code"] = code
	}
	if req.Name != nil {
		name, err := requiredName(*req.Name, "name", 120)
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if req.Status != nil {
		status, err := parseActivityStatus(req.Status)
		if err != nil {
			return nil, err
		}
		fields["status"] = status
	}
	return s.levels.Update(ctx, id, fields)
}

func (s *gradeLevelServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.levels.SoftDelete(ctx, id)
}

// requiredName trims v and checks it is non-empty and at most max runes.
func requiredName(v, field string, max int) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperrors.NewValidationError(field + " is required")
	}
	if helpers.TooLong(v, max) {
		return "", apperrors.NewValidationError(field + " is too long")
	}
	return v, nil
}

// parseActivityStatus defaults to active for a nil or blank status.
func parseActivityStatus(raw *string) (models.ActivityStatus, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return models.StatusActive, nil
	}
	status := models.ActivityStatus(strings.TrimSpace(*raw))
	if !status.Valid() {
		return "", apperrors.NewValidationError("status must be one of: فعال, غیرفعال")
	}
	return status, nil
}

// missingAsInvalid reports a missing referenced row as bad input.
func missingAsInvalid(err error, msg string) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return apperrors.NewValidationError(msg)
	}
	return err
}
