package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/calendar"
	"github.com/yigit/schoolhub/internal/pkg/filestorage"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
	"github.com/yigit/schoolhub/internal/pkg/logger"
	"github.com/yigit/schoolhub/internal/pkg/validation"
)

const studentPhotoDir = "students"

// Columns where Persian or Arabic-Indic digits are folded to ASCII. A non-nil
// check runs on the folded value.
var numericStudentColumns = map[string]func(string) bool{
	"national_code":        validation.IsNationalCode,
	"father_national_code": validation.IsNationalCode,
	"mother_national_code": validation.IsNationalCode,
	"father_mobile":        validation.IsMobile,
	"mother_mobile":        validation.IsMobile,
	"home_phone":           nil,
}

// StudentService defines the interface for student operations
type StudentService interface {
	List(ctx context.Context) ([]*models.Student, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, req *dto.StudentRequest) (*models.Student, error)
	Update(ctx context.Context, id int64, req *dto.StudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	UploadPhoto(ctx context.Context, id int64, fileHeader *multipart.FileHeader) (*dto.StudentPhotoResponse, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	students StudentStore
	storage  filestorage.FileStorage
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, storage filestorage.FileStorage) StudentService {
	return &studentServiceImpl{students: students, storage: storage}
}

func (s *studentServiceImpl) List(ctx context.Context) ([]*models.Student, error) {
	return s.students.List(ctx)
}

func (s *studentServiceImpl) Get(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.FindByID(ctx, id)
}

func (s *studentServiceImpl) Create(ctx context.Context, req *dto.StudentRequest) (*models.Student, error) {
	fields, err := studentColumns(req)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, col := range []string{
		"first_name", "last_name",
		"father_name", "father_national_code",
		"mother_first_name", "mother_last_name", "mother_national_code",
	} {
		if _, ok := fields[col]; !ok {
			missing = append(missing, col+" is required")
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}

	id, err := s.students.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("studentID", id).Msg("Student created")
	return s.students.FindByID(ctx, id)
}

// Update ignores blank fields, so required columns cannot be cleared.
func (s *studentServiceImpl) Update(ctx context.Context, id int64, req *dto.StudentRequest) (*models.Student, error) {
	if _, err := s.students.FindByID(ctx, id); err != nil {
		return nil, err
	}
	fields, err := studentColumns(req)
	if err != nil {
		return nil, err
	}
	return s.students.Update(ctx, id, fields)
}

func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.students.SoftDelete(ctx, id)
}

// UploadPhoto stores an image and points the student at it. The previous
// photo is removed once the row is updated.
func (s *studentServiceImpl) UploadPhoto(ctx context.Context, id int64, fileHeader *multipart.FileHeader) (*dto.StudentPhotoResponse, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fileHeader == nil {
		return nil, apperrors.NewValidationError("photo file is required")
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.NewValidationError(fmt.Sprintf("file is not an image: %s", contentType))
	}

	key, err := s.storage.SaveFileWithPath(fileHeader, fmt.Sprintf("%s/%d", studentPhotoDir, id))
	if err != nil {
		return nil, apperrors.NewPersistenceError(err, "save student photo")
	}

	if _, err := s.students.Update(ctx, id, map[string]interface{}{"photo": key}); err != nil {
		_ = s.storage.DeleteFile(key)
		return nil, err
	}

	if old := helpers.Deref(student.Photo); old != "" && old != key {
		if err := s.storage.DeleteFile(old); err != nil {
			logger.Warn().Err(err).Int64("studentID", id).Str("key", old).Msg("Failed to remove previous photo")
		}
	}

	return &dto.StudentPhotoResponse{StudentID: id, Photo: key, URL: s.storage.URL(key)}, nil
}

// studentColumns maps the non-blank request fields to trimmed column values.
// Dates are converted to Gregorian.
func studentColumns(req *dto.StudentRequest) (map[string]interface{}, error) {
	text := []struct {
		column string
		value  *string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"national_code", req.NationalCode},
		{"birth_certificate_no", req.BirthCertificateNo},
		{"birth_certificate_place", req.BirthCertificatePlace},
		{"birth_certificate_id", req.BirthCertificateID},
		{"birth_place", req.BirthPlace},
		{"father_name", req.FatherName},
		{"father_national_code", req.FatherNationalCode},
		{"father_mobile", req.FatherMobile},
		{"father_birth_certificate_place", req.FatherBirthCertificatePlace},
		{"father_education", req.FatherEducation},
		{"father_job", req.FatherJob},
		{"mother_first_name", req.MotherFirstName},
		{"mother_last_name", req.MotherLastName},
		{"mother_national_code", req.MotherNationalCode},
		{"mother_mobile", req.MotherMobile},
		{"mother_education", req.MotherEducation},
		{"mother_job", req.MotherJob},
		{"guardian", req.Guardian},
		{"address", req.Address},
		{"home_phone", req.HomePhone},
		{"status", req.Status},
	}

	fields := make(map[string]interface{})
	var problems []string
	for _, f := range text {
		v := helpers.TrimToNil(f.value)
		if v == nil {
			continue
		}
		check, numeric := numericStudentColumns[f.column]
		if !numeric {
			fields[f.column] = *v
			continue
		}
		digits := calendar.NormalizeDigits(*v)
		if check != nil && !check(digits) {
			problems = append(problems, f.column+" has an invalid format")
			continue
		}
		fields[f.column] = digits
	}

	dates := []struct {
		column string
		label  string
		value  *string
	}{
		{"birth_date", "birth date", req.BirthDate},
		{"father_birth_date", "father birth date", req.FatherBirthDate},
		{"mother_birth_date", "mother birth date", req.MotherBirthDate},
	}

	for _, d := range dates {
		v, err := calendar.PrepareDate(d.value, d.label)
		if err != nil {
			problems = append(problems, apperrors.Messages(err)...)
			continue
		}
		if v != nil {
			fields[d.column] = *v
		}
	}
	if len(problems) > 0 {
		return nil, apperrors.NewValidationError(problems...)
	}
	return fields, nil
}
