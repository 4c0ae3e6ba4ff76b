package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// StudentController handles student records
type StudentController struct {
	studentService services.StudentService
	maxPhotoBytes  int64
}

// NewStudentController creates a new StudentController. maxPhotoBytes <= 0
// disables the upload size check.
func NewStudentController(studentService services.StudentService, maxPhotoBytes int64) *StudentController {
	return &StudentController{
		studentService: studentService,
		maxPhotoBytes:  maxPhotoBytes,
	}
}

// List returns live students, newest first
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.studentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// Get returns one student
// @Summary Get student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	student, err := c.studentService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Create registers a student
// @Summary Create student
// @Description Date fields accept Jalali (1396/05/12) or Gregorian input. Persian digits are normalized in codes and phone numbers.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentRequest true "Student"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	student, err := c.studentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// Update changes a student
// @Summary Update student
// @Description Absent or blank fields are left unchanged
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.StudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [patch]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	student, err := c.studentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Delete soft-deletes a student
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// UploadPhoto stores a student's photo
// @Summary Upload student photo
// @Description Replaces the stored photo. Only image content types are accepted.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param photo formData file true "Photo"
// @Success 200 {object} dto.APIResponse{data=dto.StudentPhotoResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid file"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/photo [post]
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("photo file is required"))
		return
	}
	if c.maxPhotoBytes > 0 && fileHeader.Size > c.maxPhotoBytes {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(fmt.Sprintf("photo must not exceed %d bytes", c.maxPhotoBytes)))
		return
	}

	resp, err := c.studentService.UploadPhoto(ctx.Request.Context(), id, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
