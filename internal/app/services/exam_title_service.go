package services

import (
	"context"
	"strings"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// ExamTitleService defines the interface for exam title operations
type ExamTitleService interface {
	List(ctx context.Context, yc models.AcademicYearContext) (*dto.ExamTitleListResponse, error)
	Get(ctx context.Context, id int64) (*models.ExamTitle, error)
	Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateExamTitleRequest) (*models.ExamTitle, error)
	Update(ctx context.Context, id int64, req *dto.UpdateExamTitleRequest) (*models.ExamTitle, error)
	Delete(ctx context.Context, id int64) error
}

type examTitleServiceImpl struct {
	exams ExamTitleStore
}

// NewExamTitleService creates a new exam title service
func NewExamTitleService(exams ExamTitleStore) ExamTitleService {
	return &examTitleServiceImpl{exams: exams}
}

func (s *examTitleServiceImpl) List(ctx context.Context, yc models.AcademicYearContext) (*dto.ExamTitleListResponse, error) {
	year, err := yc.Require()
	if err != nil {
		return nil, err
	}
	rows, err := s.exams.ListByYear(ctx, year.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ExamTitleListResponse{Year: dto.NewAcademicYearResponse(year), Rows: rows}, nil
}

func (s *examTitleServiceImpl) Get(ctx context.Context, id int64) (*models.ExamTitle, error) {
	return s.exams.FindByID(ctx, id)
}

func (s *examTitleServiceImpl) Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateExamTitleRequest) (*models.ExamTitle, error) {
	year, err := yc.Require()
	if err != nil {
		return nil, err
	}
	name, err := examName(req.Name)
	if err != nil {
		return nil, err
	}
	status, err := parseExamStatus(req.Status)
	if err != nil {
		return nil, err
	}

	return s.exams.Create(ctx, &models.ExamTitle{
		Name:           name,
		Status:         status,
		AcademicYearID: year.ID,
	})
}

func (s *examTitleServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateExamTitleRequest) (*models.ExamTitle, error) {
	if _, err := s.exams.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		name, err := examName(*req.Name)
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if req.Status != nil {
		status, err := parseExamStatus(req.Status)
		if err != nil {
			return nil, err
		}
		fields["status"] = status
	}
	return s.exams.Update(ctx, id, fields)
}

func (s *examTitleServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.exams.SoftDelete(ctx, id)
}

func examName(raw string) (string, error) {
	name, err := requiredName(raw, "name", 120)
	if err != nil {
		return "", err
	}
	if len([]rune(name)) < 2 {
		return "", apperrors.NewValidationError("name must be at least 2 characters")
	}
	return name, nil
}

func parseExamStatus(raw *string) (models.ExamStatus, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return models.ExamStatusActive, nil
	}
	status := models.ExamStatus(strings.TrimSpace(*raw))
	if !status.Valid() {
		return "", apperrors.NewValidationError("status must be one of: active, inactive")
	}
	return status, nil
}
