package services

import (
	"context"

	"github.com/yigit/schoolhub/internal/app/models"
)

// Storage contracts the services depend on. The repositories package
// provides the PostgreSQL implementations; tests use in-memory fakes.

// AcademicYearStore persists academic years.
type AcademicYearStore interface {
	List(ctx context.Context) ([]*models.AcademicYear, error)
	FindByID(ctx context.Context, id int64) (*models.AcademicYear, error)
	FindCurrent(ctx context.Context) (*models.AcademicYear, error)
	Create(ctx context.Context, year *models.AcademicYear) (*models.AcademicYear, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.AcademicYear, error)
	SetCurrent(ctx context.Context, id int64) (*models.AcademicYear, error)
	Delete(ctx context.Context, id int64) error
}

// AcademicTermStore persists academic terms.
type AcademicTermStore interface {
	List(ctx context.Context) ([]*models.AcademicTerm, error)
	FindByID(ctx context.Context, id int64) (*models.AcademicTerm, error)
	Create(ctx context.Context, term *models.AcademicTerm) (*models.AcademicTerm, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.AcademicTerm, error)
	SoftDelete(ctx context.Context, id int64) error
}

// GradeLevelStore persists grade levels.
type GradeLevelStore interface {
	List(ctx context.Context) ([]*models.GradeLevel, error)
	FindByID(ctx context.Context, id int64) (*models.GradeLevel, error)
	Create(ctx context.Context, level *models.GradeLevel) (*models.GradeLevel, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.GradeLevel, error)
	SoftDelete(ctx context.Context, id int64) error
}

// ClassStore persists classes.
type ClassStore interface {
	List(ctx context.Context, filter models.YearFilter) ([]*models.Class, error)
	FindByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) (*models.Class, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Class, error)
	SoftDelete(ctx context.Context, id int64) error
}

// TextbookStore persists textbooks.
type TextbookStore interface {
	List(ctx context.Context, filter models.YearFilter) ([]*models.Textbook, error)
	FindByID(ctx context.Context, id int64) (*models.Textbook, error)
	Create(ctx context.Context, book *models.Textbook) (*models.Textbook, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Textbook, error)
	SoftDelete(ctx context.Context, id int64) error
}

// ExamTitleStore persists exam titles.
type ExamTitleStore interface {
	ListByYear(ctx context.Context, yearID int64) ([]*models.ExamTitle, error)
	FindByID(ctx context.Context, id int64) (*models.ExamTitle, error)
	Create(ctx context.Context, exam *models.ExamTitle) (*models.ExamTitle, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.ExamTitle, error)
	SoftDelete(ctx context.Context, id int64) error
}

// StudentStore persists students.
type StudentStore interface {
	List(ctx context.Context) ([]*models.Student, error)
	ListUnenrolled(ctx context.Context, yearID int64) ([]*models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, fields map[string]interface{}) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Student, error)
	SoftDelete(ctx context.Context, id int64) error
}

// UserStore persists staff users.
type UserStore interface {
	List(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error)
	Create(ctx context.Context, fields map[string]interface{}) (*models.User, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	TouchLastLogin(ctx context.Context, id int64) error
}

// StaffRoleStore persists role assignments.
type StaffRoleStore interface {
	ListByYear(ctx context.Context, yearID int64) ([]*models.StaffRole, error)
	FindByID(ctx context.Context, id int64) (*models.StaffRole, error)
	Exists(ctx context.Context, key models.StaffRoleKey, excludeID int64) (bool, error)
	Create(ctx context.Context, role *models.StaffRole) (*models.StaffRole, error)
	Update(ctx context.Context, id int64, roleID int, classID, termID *int64) (*models.StaffRole, error)
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore persists enrollments for both access paths.
type EnrollmentStore interface {
	Upsert(ctx context.Context, studentID, yearID int64, classID *int64) (*models.Enrollment, error)
	List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error)
	FindByID(ctx context.Context, id int64) (*models.Enrollment, error)
	FindLiveByStudentYear(ctx context.Context, studentID, yearID int64) (*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) (*models.Enrollment, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Enrollment, error)
	SoftDelete(ctx context.Context, id int64) error
}
