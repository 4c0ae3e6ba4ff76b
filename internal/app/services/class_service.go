package services

import (
	"context"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
)

// ClassService defines the interface for class operations
type ClassService interface {
	List(ctx context.Context, yc models.AcademicYearContext, yearID *int64, onlyCurrent bool) ([]*models.Class, error)
	Get(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateClassRequest) (*models.Class, error)
	Update(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*models.Class, error)
	Delete(ctx context.Context, id int64) error
}

type classServiceImpl struct {
	classes ClassStore
	levels  GradeLevelStore
	years   AcademicYearStore
}

// NewClassService creates a new class service
func NewClassService(classes ClassStore, levels GradeLevelStore, years AcademicYearStore) ClassService {
	return &classServiceImpl{classes: classes, levels: levels, years: years}
}

func (s *classServiceImpl) List(ctx context.Context, yc models.AcademicYearContext, yearID *int64, onlyCurrent bool) ([]*models.Class, error) {
	filter, err := resolveYearFilter(yc, yearID, onlyCurrent)
	if err != nil {
		return nil, err
	}
	return s.classes.List(ctx, filter)
}

func (s *classServiceImpl) Get(ctx context.Context, id int64) (*models.Class, error) {
	return s.classes.FindByID(ctx, id)
}

func (s *classServiceImpl) Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateClassRequest) (*models.Class, error) {
	code, err := requiredName(req.Code, "code", 20)
	if err != nil {
		return nil, err
	}
	name, err := requiredName(req.Name, "name", 120)
	if err != nil {
		return nil, err
	}
	if _, err := s.levels.FindByID(ctx, req.GradeLevelID); err != nil {
		return nil, missingAsInvalid(err, "grade level not found")
	}
	yearID, err := resolveTargetYear(ctx, s.years, yc, req.AcademicYearID)
	if err != nil {
		return nil, err
	}

	return s.classes.Create(ctx, &models.Class{
		Code:           code,
		Name:           name,
		GradeLevelID:   req.GradeLevelID,
		AcademicYearID: yearID,
	})
}

func (s *classServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*models.Class, error) {
	if _, err := s.classes.FindByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Code != nil {
		code, err := requiredName(*req.Code, "code", 20)
		if err != nil {
			return nil, err
		}
		fields["code"] = code
	}
	if req.Name != nil {
		name, err := requiredName(*req.Name, "name", 120)
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if req.GradeLevelID != nil {
		if _, err := s.levels.FindByID(ctx, *req.GradeLevelID); err != nil {
			return nil, missingAsInvalid(err, "grade level not found")
		}
		fields["grade_level_id"] = *req.GradeLevelID
	}
	if req.AcademicYearID != nil {
		if _, err := s.years.FindByID(ctx, *req.AcademicYearID); err != nil {
			return nil, missingAsInvalid(err, "academic year is not valid")
		}
		fields["academic_year_id"] = *req.AcademicYearID
	}
	return s.classes.Update(ctx, id, fields)
}

func (s *classServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.classes.SoftDelete(ctx, id)
}

// TextbookService defines the interface for textbook operations
type TextbookService interface {
	List(ctx context.Context, yc models.AcademicYearContext, yearID *int64, onlyCurrent bool) ([]*models.Textbook, error)
	Get(ctx context.Context, id int64) (*models.Textbook, error)
	Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateTextbookRequest) (*models.Textbook, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTextbookRequest) (*models.Textbook, error)
	Delete(ctx context.Context, id int64) error
}

type textbookServiceImpl struct {
	books  TextbookStore
	levels GradeLevelStore
	years  AcademicYearStore
}

// NewTextbookService creates a new textbook service
func NewTextbookService(books TextbookStore, levels GradeLevelStore, years AcademicYearStore) TextbookService {
	return &textbookServiceImpl{books: books, levels: levels, years: years}
}

func (s *textbookServiceImpl) List(ctx context.Context, yc models.AcademicYearContext, yearID *int64, onlyCurrent bool) ([]*models.Textbook, error) {
	filter, err := resolveYearFilter(yc, yearID, onlyCurrent)
	if err != nil {
		return nil, err
	}
	return s.books.List(ctx, filter)
}

func (s *textbookServiceImpl) Get(ctx context.Context, id int64) (*models.Textbook, error) {
	return s.books.FindByID(ctx, id)
}

func (s *textbookServiceImpl) Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateTextbookRequest) (*models.Textbook, error) {
	name, err := requiredName(req.Name, "name", 120)
	if err != nil {
		return nil, err
	}
	if _, err := s.levels.FindByID(ctx, req.GradeLevelID); err != nil {
		return nil, missingAsInvalid(err, "grade level not found")
	}
	yearID, err := resolveTargetYear(ctx, s.years, yc, req.AcademicYearID)
	if err != nil {
		return nil, err
	}

	return s.books.Create(ctx, &models.Textbook{
		Name:           name,
		GradeLevelID:   req.GradeLevelID,
		AcademicYearID: yearID,
	})
}

func (s *textbookServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateTextbookRequest) (*models.Textbook, error) {
	if _, err := s.books.FindByID(ctx, id); err != nil {
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
	if req.GradeLevelID != nil {
		if _, err := s.levels.FindByID(ctx, *req.GradeLevelID); err != nil {
			return nil, missingAsInvalid(err, "grade level not found")
		}
		fields["grade_level_id"] = *req.GradeLevelID
	}
	if req.AcademicYearID != nil {
		if _, err := s.years.FindByID(ctx, *req.AcademicYearID); err != nil {
			return nil, missingAsInvalid(err, "academic year is not valid")
		}
		fields["academic_year_id"] = *req.AcademicYearID
	}
	return s.books.Update(ctx, id, fields)
}

func (s *textbookServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.books.SoftDelete(ctx, id)
}

// resolveYearFilter picks the listing year. An explicit id wins over
// onlyCurrent; with neither, every year is listed.
func resolveYearFilter(yc models.AcademicYearContext, yearID *int64, onlyCurrent bool) (models.YearFilter, error) {
	switch {
	case yearID != nil:
		return models.YearFilter{AcademicYearID: *yearID}, nil
	case onlyCurrent:
		year, err := yc.Require()
		if err != nil {
			return models.YearFilter{}, err
		}
		return models.YearFilter{AcademicYearID: year.ID}, nil
	default:
		return models.YearFilter{}, nil
	}
}

// resolveTargetYear returns the requested year when it exists, otherwise the
// current one.
func resolveTargetYear(ctx context.Context, years AcademicYearStore, yc models.AcademicYearContext, requested *int64) (int64, error) {
	if requested == nil {
		year, err := yc.Require()
		if err != nil {
			return 0, err
		}
		return year.ID, nil
	}
	if _, err := years.FindByID(ctx, *requested); err != nil {
		return 0, missingAsInvalid(err, "academic year is not valid")
	}
	return *requested, nil
}
