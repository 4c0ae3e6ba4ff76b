package services

import (
	"context"
	"fmt"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// EnrollmentService is the status-based enrollment flow scoped to the current year.
type EnrollmentService interface {
	List(ctx context.Context, yc models.AcademicYearContext) (*dto.EnrollmentListResponse, error)
	Unenrolled(ctx context.Context, yc models.AcademicYearContext) (*dto.UnenrolledResponse, error)
	Meta(ctx context.Context, yc models.AcademicYearContext) (*dto.EnrollmentMetaResponse, error)
	Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error)
	Delete(ctx context.Context, id int64) error
}

// enrollmentServiceImpl implements EnrollmentService
type enrollmentServiceImpl struct {
	enrollments EnrollmentStore
	students    StudentStore
	classes     ClassStore
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollments EnrollmentStore, students StudentStore, classes ClassStore) EnrollmentService {
	return &enrollmentServiceImpl{enrollments: enrollments, students: students, classes: classes}
}

func (s *enrollmentServiceImpl) List(ctx context.Context, yc models.AcademicYearContext) (*dto.EnrollmentListResponse, error) {
	year, err := yc.Require()
	if err != nil {
		return nil, err
	}
	rows, err := s.enrollments.List(ctx, models.EnrollmentFilter{AcademicYearID: &year.ID})
	if err != nil {
		return nil, err
	}
	return &dto.EnrollmentListResponse{Year: dto.NewAcademicYearResponse(year), Rows: rows}, nil
}

func (s *enrollmentServiceImpl) Unenrolled(ctx context.Context, yc models.AcademicYearContext) (*dto.UnenrolledResponse, error) {
	year, err := yc.Require()
	if err != nil {
		return nil, err
	}
	students, err := s.students.ListUnenrolled(ctx, year.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UnenrolledResponse{Year: dto.NewAcademicYearResponse(year), Students: students}, nil
}

func (s *enrollmentServiceImpl) Meta(ctx context.Context, yc models.AcademicYearContext) (*dto.EnrollmentMetaResponse, error) {
	year, err := yc.Require()
	if err != nil {
		return nil, err
	}
	classes, err := s.classes.List(ctx, models.YearFilter{AcademicYearID: year.ID})
	if err != nil {
		return nil, err
	}
	return &dto.EnrollmentMetaResponse{
		Year:     dto.NewAcademicYearResponse(year),
		Classes:  classes,
		Statuses: models.EnrollmentStatuses,
	}, nil
}

func (s *enrollmentServiceImpl) Create(ctx context.Context, yc models.AcademicYearContext, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	year, err := yc.Require()
	if err != nil {
		return nil, err
	}

	status, err := parseEnrollmentStatus(req.Status, models.EnrollmentActive)
	if err != nil {
		return nil, err
	}

	if _, err := s.students.FindByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if err := s.ensureClassInYear(ctx, req.ClassID, year.ID); err != nil {
		return nil, err
	}

	existing, err := s.enrollments.FindLiveByStudentYear(ctx, req.StudentID, year.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("student already enrolled for this year")
	}

	classID := req.ClassID
	created, err := s.enrollments.Create(ctx, &models.Enrollment{
		StudentID:      req.StudentID,
		AcademicYearID: year.ID,
		ClassID:        &classID,
		Status:         status,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("enrollmentID", created.ID).
		Int64("studentID", created.StudentID).
		Int64("yearID", created.AcademicYearID).
		Msg("Student enrolled")
	return created, nil
}

func (s *enrollmentServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	row, err := findLiveEnrollment(ctx, s.enrollments, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.ClassID != nil {
		if err := s.ensureClassInYear(ctx, *req.ClassID, row.AcademicYearID); err != nil {
			return nil, err
		}
		fields["class_id"] = *req.ClassID
	}
	if req.Status != nil {
		status, err := parseEnrollmentStatus(req.Status, row.Status)
		if err != nil {
			return nil, err
		}
		fields["status"] = status
	}
	if len(fields) == 0 {
		return row, nil
	}
	return s.enrollments.Update(ctx, id, fields)
}

func (s *enrollmentServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.enrollments.SoftDelete(ctx, id)
}

func (s *enrollmentServiceImpl) ensureClassInYear(ctx context.Context, classID, yearID int64) error {
	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		return err
	}
	if class.AcademicYearID != yearID {
		return apperrors.NewValidationError("class does not belong to the current year")
	}
	return nil
}

// parseEnrollmentStatus returns def for a nil or blank status.
func parseEnrollmentStatus(raw *string, def models.EnrollmentStatus) (models.EnrollmentStatus, error) {
	if raw == nil || *raw == "" {
		return def, nil
	}
	status := models.EnrollmentStatus(*raw)
	if !status.Valid() {
		return "", apperrors.NewValidationError(fmt.Sprintf("invalid enrollment status %q", *raw))
	}
	return status, nil
}

// findLiveEnrollment treats soft-deleted rows as missing.
func findLiveEnrollment(ctx context.Context, store EnrollmentStore, id int64) (*models.Enrollment, error) {
	row, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.DeletedAt != nil {
		return nil, apperrors.NewResourceNotFoundError("enrollment not found")
	}
	return row, nil
}
