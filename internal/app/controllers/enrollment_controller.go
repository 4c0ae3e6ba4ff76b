package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// EnrollmentController serves the current-year enrollment screens
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// List returns the enrollments of the current year
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse}
// @Failure 400 {object} dto.ErrorResponse "No current academic year"
// @Router /enrollments [get]
func (c *EnrollmentController) List(ctx *gin.Context) {
	list, err := c.enrollmentService.List(ctx.Request.Context(), middleware.YearContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list))
}

// Unenrolled returns students without an enrollment in the current year
// @Summary List unenrolled students
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UnenrolledResponse}
// @Failure 400 {object} dto.ErrorResponse "No current academic year"
// @Router /enrollments/unenrolled [get]
func (c *EnrollmentController) Unenrolled(ctx *gin.Context) {
	list, err := c.enrollmentService.Unenrolled(ctx.Request.Context(), middleware.YearContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list))
}

// Meta returns classes and statuses for the enrollment form
// @Summary Enrollment form options
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentMetaResponse}
// @Failure 400 {object} dto.ErrorResponse "No current academic year"
// @Router /enrollments/meta [get]
func (c *EnrollmentController) Meta(ctx *gin.Context) {
	meta, err := c.enrollmentService.Meta(ctx.Request.Context(), middleware.YearContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(meta))
}

// Create enrolls a student in the current year
// @Summary Create enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEnrollmentRequest true "Enrollment"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or already enrolled"
// @Router /enrollments [post]
func (c *EnrollmentController) Create(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	row, err := c.enrollmentService.Create(ctx.Request.Context(), middleware.YearContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(row))
}

// Update changes class or status
// @Summary Update enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Param request body dto.UpdateEnrollmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [patch]
func (c *EnrollmentController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateEnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	row, err := c.enrollmentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(row))
}

// Delete soft-deletes an enrollment
// @Summary Delete enrollment
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.enrollmentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// StudentEnrollmentController places students in years and classes
type StudentEnrollmentController struct {
	enrollmentService services.StudentEnrollmentService
}

// NewStudentEnrollmentController creates a new StudentEnrollmentController
func NewStudentEnrollmentController(enrollmentService services.StudentEnrollmentService) *StudentEnrollmentController {
	return &StudentEnrollmentController{enrollmentService: enrollmentService}
}

// List returns live enrollments matching the filters
// @Summary List student enrollments
// @Tags student-enrollments
// @Produce json
// @Security BearerAuth
// @Param academic_year_id query int false "Academic year ID"
// @Param class_id query int false "Class ID"
// @Param student_id query int false "Student ID"
// @Param status query string false "Enrollment status" Enums(active, deferred, expelled, graduated)
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /student-enrollments [get]
func (c *StudentEnrollmentController) List(ctx *gin.Context) {
	var filter models.EnrollmentFilter
	var ok bool
	if filter.AcademicYearID, ok = middleware.ParseOptionalIDQuery(ctx, "academic_year_id"); !ok {
		return
	}
	if filter.ClassID, ok = middleware.ParseOptionalIDQuery(ctx, "class_id"); !ok {
		return
	}
	if filter.StudentID, ok = middleware.ParseOptionalIDQuery(ctx, "student_id"); !ok {
		return
	}
	if raw := ctx.Query("status"); raw != "" {
		status := models.EnrollmentStatus(raw)
		filter.Status = &status
	}

	rows, err := c.enrollmentService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// Get returns one enrollment, soft-deleted rows included
// @Summary Get student enrollment
// @Tags student-enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /student-enrollments/{id} [get]
func (c *StudentEnrollmentController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	row, err := c.enrollmentService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(row))
}

// Upsert places a student in a year
// @Summary Upsert student enrollment
// @Description Creates the live row for (student, year) or updates its class. Repeating the call is harmless.
// @Tags student-enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertStudentEnrollmentRequest true "Placement"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 404 {object} dto.ErrorResponse "Student, year or class not found"
// @Router /student-enrollments/upsert [put]
func (c *StudentEnrollmentController) Upsert(ctx *gin.Context) {
	var req dto.UpsertStudentEnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	row, err := c.enrollmentService.Upsert(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(row))
}

// Update changes class or status
// @Summary Update student enrollment
// @Description A null class_id unassigns the class
// @Tags student-enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentEnrollmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /student-enrollments/{id} [patch]
func (c *StudentEnrollmentController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateStudentEnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	row, err := c.enrollmentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(row))
}

// Delete soft-deletes an enrollment
// @Summary Delete student enrollment
// @Tags student-enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /student-enrollments/{id} [delete]
func (c *StudentEnrollmentController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.enrollmentService.SoftDelete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
