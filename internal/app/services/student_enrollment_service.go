package services

import (
	"context"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// StudentEnrollmentService places students in years and classes idempotently.
type StudentEnrollmentService interface {
	List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error)
	Get(ctx context.Context, id int64) (*models.Enrollment, error)
	Upsert(ctx context.Context, req *dto.UpsertStudentEnrollmentRequest) (*models.Enrollment, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentEnrollmentRequest) (*models.Enrollment, error)
	SoftDelete(ctx context.Context, id int64) error
}

// studentEnrollmentServiceImpl implements StudentEnrollmentService
type studentEnrollmentServiceImpl struct {
	enrollments EnrollmentStore
	students    StudentStore
	years       AcademicYearStore
	classes     ClassStore
}

// NewStudentEnrollmentService creates a new student enrollment service
func NewStudentEnrollmentService(enrollments EnrollmentStore, students StudentStore, years AcademicYearStore, classes ClassStore) StudentEnrollmentService {
	return &studentEnrollmentServiceImpl{
		enrollments: enrollments,
		students:    students,
		years:       years,
		classes:     classes,
	}
}

func (s *studentEnrollmentServiceImpl) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid enrollment status")
	}
	return s.enrollments.List(ctx, filter)
}

// Get looks a row up by id, soft-deleted rows included.
func (s *studentEnrollmentServiceImpl) Get(ctx context.Context, id int64) (*models.Enrollment, error) {
	return s.enrollments.FindByID(ctx, id)
}

func (s *studentEnrollmentServiceImpl) Upsert(ctx context.Context, req *dto.UpsertStudentEnrollmentRequest) (*models.Enrollment, error) {
	if _, err := s.students.FindByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.years.FindByID(ctx, req.AcademicYearID); err != nil {
		return nil, err
	}
	if req.ClassID != nil {
		if _, err := s.classes.FindByID(ctx, *req.ClassID); err != nil {
			return nil, err
		}
	}

	row, err := s.enrollments.Upsert(ctx, req.StudentID, req.AcademicYearID, req.ClassID)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int64("enrollmentID", row.ID).
		Int64("studentID", row.StudentID).
		Int64("yearID", row.AcademicYearID).
		Msg("Enrollment upserted")
	return row, nil
}

func (s *studentEnrollmentServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateStudentEnrollmentRequest) (*models.Enrollment, error) {
	row, err := findLiveEnrollment(ctx, s.enrollments, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.ClassID.Set {
		if req.ClassID.Value != nil {
			if _, err := s.classes.FindByID(ctx, *req.ClassID.Value); err != nil {
				return nil, err
			}
		}
		fields["class_id"] = req.ClassID.Value
	}
	if req.Status.Set {
		if req.Status.Value == nil {
			return nil, apperrors.NewValidationError("status cannot be null")
		}
		status, err := parseEnrollmentStatus(req.Status.Value, row.Status)
		if err != nil {
			return nil, err
		}
		fields["status"] = status
	}

	return s.enrollments.Update(ctx, id, fields)
}

func (s *studentEnrollmentServiceImpl) SoftDelete(ctx context.Context, id int64) error {
	return s.enrollments.SoftDelete(ctx, id)
}
