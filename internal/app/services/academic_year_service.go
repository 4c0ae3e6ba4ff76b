package services

import (
	"context"
	"strings"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/calendar"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

const (
	startDateLabel = "start date"
	endDateLabel   = "end date"
)

// AcademicYearService defines the interface for academic year operations
type AcademicYearService interface {
	List(ctx context.Context) ([]*models.AcademicYear, error)
	Get(ctx context.Context, id int64) (*models.AcademicYear, error)
	Current(ctx context.Context) (*models.AcademicYear, error)
	Create(ctx context.Context, req *dto.CreateAcademicYearRequest) (*models.AcademicYear, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAcademicYearRequest) (*models.AcademicYear, error)
	SetCurrent(ctx context.Context, id int64) (*models.AcademicYear, error)
	Delete(ctx context.Context, id int64) error
}

// academicYearServiceImpl implements AcademicYearService
type academicYearServiceImpl struct {
	years AcademicYearStore
}

// NewAcademicYearService creates a new academic year service
func NewAcademicYearService(years AcademicYearStore) AcademicYearService {
	return &academicYearServiceImpl{years: years}
}

func (s *academicYearServiceImpl) List(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.years.List(ctx)
}

func (s *academicYearServiceImpl) Get(ctx context.Context, id int64) (*models.AcademicYear, error) {
	return s.years.FindByID(ctx, id)
}

// Current returns nil without error while no year is current.
func (s *academicYearServiceImpl) Current(ctx context.Context) (*models.AcademicYear, error) {
	return s.years.FindCurrent(ctx)
}

func (s *academicYearServiceImpl) Create(ctx context.Context, req *dto.CreateAcademicYearRequest) (*models.AcademicYear, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	start, err := calendar.PrepareDate(req.StartDate, startDateLabel)
	if err != nil {
		return nil, err
	}
	end, err := calendar.PrepareDate(req.EndDate, endDateLabel)
	if err != nil {
		return nil, err
	}

	year := &models.AcademicYear{
		Title:     title,
		StartDate: start,
		EndDate:   end,
		IsCurrent: req.IsCurrent != nil && *req.IsCurrent,
	}

	created, err := s.years.Create(ctx, year)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("yearID", created.ID).Bool("current", created.IsCurrent).Msg("Academic year created")
	return created, nil
}

func (s *academicYearServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateAcademicYearRequest) (*models.AcademicYear, error) {
	if _, err := s.years.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title is required")
		}
		fields["title"] = title
	}
	if req.StartDate.Set {
		start, err := calendar.PrepareDate(req.StartDate.Value, startDateLabel)
		if err != nil {
			return nil, err
		}
		fields["start_date"] = start
	}
	if req.EndDate.Set {
		end, err := calendar.PrepareDate(req.EndDate.Value, endDateLabel)
		if err != nil {
			return nil, err
		}
		fields["end_date"] = end
	}

	return s.years.Update(ctx, id, fields)
}

func (s *academicYearServiceImpl) SetCurrent(ctx context.Context, id int64) (*models.AcademicYear, error) {
	year, err := s.years.SetCurrent(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("yearID", id).Msg("Current academic year changed")
	return year, nil
}

func (s *academicYearServiceImpl) Delete(ctx context.Context, id int64) error {
	year, err := s.years.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if year.IsCurrent {
		return apperrors.NewConflictError("cannot delete the current year")
	}
	return s.years.Delete(ctx, id)
}
