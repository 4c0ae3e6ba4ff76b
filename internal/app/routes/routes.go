package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/controllers"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
	yearFinder middleware.CurrentYearFinder,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})

	// --- Public Auth routes ---
	v1.POST("/auth/login", ctrl.Auth.Login)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth(), middleware.CurrentYear(yearFinder))
	{
		authenticated.GET("/auth/me", ctrl.Auth.Me)

		years := authenticated.Group("/academic-years")
		{
			years.GET("", ctrl.AcademicYear.List)
			years.GET("/current", ctrl.AcademicYear.Current)
			years.GET("/:id", ctrl.AcademicYear.Get)
			years.POST("", ctrl.AcademicYear.Create)
			years.PATCH("/:id", ctrl.AcademicYear.Update)
			years.PATCH("/:id/current", ctrl.AcademicYear.SetCurrent)
			years.DELETE("/:id", ctrl.AcademicYear.Delete)
		}

		terms := authenticated.Group("/academic-terms")
		{
			terms.GET("", ctrl.AcademicTerm.List)
			terms.GET("/:id", ctrl.AcademicTerm.Get)
			terms.POST("", ctrl.AcademicTerm.Create)
			terms.PATCH("/:id", ctrl.AcademicTerm.Update)
			terms.DELETE("/:id", ctrl.AcademicTerm.Delete)
		}

		levels := authenticated.Group("/grade-levels")
		{
			levels.GET("", ctrl.GradeLevel.List)
			levels.GET("/:id", ctrl.GradeLevel.Get)
			levels.POST("", ctrl.GradeLevel.Create)
			levels.PATCH("/:id", ctrl.GradeLevel.Update)
			levels.DELETE("/:id", ctrl.GradeLevel.Delete)
		}

		classes := authenticated.Group("/classes")
		{
			classes.GET("", ctrl.Class.List)
			classes.GET("/:id", ctrl.Class.Get)
			classes.POST("", ctrl.Class.Create)
			classes.PATCH("/:id", ctrl.Class.Update)
			classes.DELETE("/:id", ctrl.Class.Delete)
		}

		textbooks := authenticated.Group("/textbooks")
		{
			textbooks.GET("", ctrl.Textbook.List)
			textbooks.GET("/:id", ctrl.Textbook.Get)
			textbooks.POST("", ctrl.Textbook.Create)
			textbooks.PATCH("/:id", ctrl.Textbook.Update)
			textbooks.DELETE("/:id", ctrl.Textbook.Delete)
		}

		exams := authenticated.Group("/exams")
		{
			exams.GET("", ctrl.ExamTitle.List)
			exams.GET("/:id", ctrl.ExamTitle.Get)
			exams.POST("", ctrl.ExamTitle.Create)
			exams.PATCH("/:id", ctrl.ExamTitle.Update)
			exams.DELETE("/:id", ctrl.ExamTitle.Delete)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", ctrl.Student.List)
			students.GET("/:id", ctrl.Student.Get)
			students.POST("", ctrl.Student.Create)
			students.PATCH("/:id", ctrl.Student.Update)
			students.DELETE("/:id", ctrl.Student.Delete)
			students.POST("/:id/photo", ctrl.Student.UploadPhoto)
		}

		users := authenticated.Group("/users")
		{
			users.GET("", ctrl.User.List)
			users.GET("/:id", ctrl.User.Get)
			users.POST("", ctrl.User.Create)
			users.PATCH("/:id", ctrl.User.Update)
			users.DELETE("/:id", ctrl.User.Delete)
		}

		staffRoles := authenticated.Group("/staff-roles")
		{
			staffRoles.GET("", ctrl.StaffRole.List)
			staffRoles.GET("/meta", ctrl.StaffRole.Meta)
			staffRoles.POST("", ctrl.StaffRole.Create)
			staffRoles.PATCH("/:id", ctrl.StaffRole.Update)
			staffRoles.DELETE("/:id", ctrl.StaffRole.Delete)
		}

		// Legacy screens, always scoped to the current year
		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.GET("", ctrl.Enrollment.List)
			enrollments.GET("/unenrolled", ctrl.Enrollment.Unenrolled)
			enrollments.GET("/meta", ctrl.Enrollment.Meta)
			enrollments.POST("", ctrl.Enrollment.Create)
			enrollments.PATCH("/:id", ctrl.Enrollment.Update)
			enrollments.DELETE("/:id", ctrl.Enrollment.Delete)
		}

		studentEnrollments := authenticated.Group("/student-enrollments")
		{
			studentEnrollments.GET("", ctrl.StudentEnrollment.List)
			studentEnrollments.PUT("/upsert", ctrl.StudentEnrollment.Upsert)
			studentEnrollments.GET("/:id", ctrl.StudentEnrollment.Get)
			studentEnrollments.PATCH("/:id", ctrl.StudentEnrollment.Update)
			studentEnrollments.DELETE("/:id", ctrl.StudentEnrollment.Delete)
		}
	}
}
