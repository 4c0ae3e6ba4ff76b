package controllers

import "github.com/yigit/schoolhub/internal/app/services"

// Controllers holds every HTTP controller of the API
type Controllers struct {
	Auth              *AuthController
	User              *UserController
	AcademicYear      *AcademicYearController
	AcademicTerm      *AcademicTermController
	GradeLevel        *GradeLevelController
	Class             *ClassController
	Textbook          *TextbookController
	ExamTitle         *ExamTitleController
	Student           *StudentController
	StaffRole         *StaffRoleController
	Enrollment        *EnrollmentController
	StudentEnrollment *StudentEnrollmentController
}

// NewControllers builds the controllers on top of the service layer
func NewControllers(svcs *services.Services, maxPhotoBytes int64) *Controllers {
	return &Controllers{
		Auth:              NewAuthController(svcs.AuthService),
		User:              NewUserController(svcs.UserService),
		AcademicYear:      NewAcademicYearController(svcs.AcademicYearService),
		AcademicTerm:      NewAcademicTermController(svcs.AcademicTermService),
		GradeLevel:        NewGradeLevelController(svcs.GradeLevelService),
		Class:             NewClassController(svcs.ClassService),
		Textbook:          NewTextbookController(svcs.TextbookService),
		ExamTitle:         NewExamTitleController(svcs.ExamTitleService),
		Student:           NewStudentController(svcs.StudentService, maxPhotoBytes),
		StaffRole:         NewStaffRoleController(svcs.StaffRoleService),
		Enrollment:        NewEnrollmentController(svcs.EnrollmentService),
		StudentEnrollment: NewStudentEnrollmentController(svcs.StudentEnrollmentService),
	}
}
