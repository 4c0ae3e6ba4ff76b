package services

import (
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/filestorage"
)

// Services holds every service the HTTP layer talks to.
type Services struct {
	AcademicYearService      AcademicYearService
	AcademicTermService      AcademicTermService
	GradeLevelService        GradeLevelService
	ClassService             ClassService
	TextbookService          TextbookService
	ExamTitleService         ExamTitleService
	StudentService           StudentService
	UserService              UserService
	StaffRoleService         StaffRoleService
	EnrollmentService        EnrollmentService
	StudentEnrollmentService StudentEnrollmentService
	AuthService              *AuthService
}

// NewServices wires the services on top of the PostgreSQL repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.FileStorage, catalog models.RoleCatalog) *Services {
	validator := NewRoleAssignmentValidator(catalog, repos.ClassRepository, repos.AcademicTermRepository)

	return &Services{
		AcademicYearService: NewAcademicYearService(repos.AcademicYearRepository),
		AcademicTermService: NewAcademicTermService(repos.AcademicTermRepository),
		GradeLevelService:   NewGradeLevelService(repos.GradeLevelRepository, repos.AcademicTermRepository),
		ClassService:        NewClassService(repos.ClassRepository, repos.GradeLevelRepository, repos.AcademicYearRepository),
		TextbookService:     NewTextbookService(repos.TextbookRepository, repos.GradeLevelRepository, repos.AcademicYearRepository),
		ExamTitleService:    NewExamTitleService(repos.ExamTitleRepository),
		StudentService:      NewStudentService(repos.StudentRepository, storage),
		UserService:         NewUserService(repos.UserRepository),
		StaffRoleService: NewStaffRoleService(
			repos.StaffRoleRepository,
			repos.UserRepository,
			repos.ClassRepository,
			repos.AcademicTermRepository,
			validator,
		),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository, repos.StudentRepository, repos.ClassRepository),
		StudentEnrollmentService: NewStudentEnrollmentService(
			repos.EnrollmentRepository,
			repos.StudentRepository,
			repos.AcademicYearRepository,
			repos.ClassRepository,
		),
		AuthService: NewAuthService(repos.UserRepository, jwtService),
	}
}
