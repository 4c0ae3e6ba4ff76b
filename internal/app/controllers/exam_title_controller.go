package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// ExamTitleController handles exam title operations
type ExamTitleController struct {
	examService services.ExamTitleService
}

// NewExamTitleController creates a new ExamTitleController
func NewExamTitleController(examService services.ExamTitleService) *ExamTitleController {
	return &ExamTitleController{examService: examService}
}

// List returns the exam titles of the current year
// @Summary List exam titles
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ExamTitleListResponse}
// @Failure 400 {object} dto.ErrorResponse "No current academic year"
// @Router /exams [get]
func (c *ExamTitleController) List(ctx *gin.Context) {
	list, err := c.examService.List(ctx.Request.Context(), middleware.YearContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list))
}

// Get returns one exam title
// @Summary Get exam title
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam title ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.ExamTitle}
// @Failure 404 {object} dto.ErrorResponse "Exam title not found"
// @Router /exams/{id} [get]
func (c *ExamTitleController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	exam, err := c.examService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam))
}

// Create adds an exam title to the current year
// @Summary Create exam title
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamTitleRequest true "Exam title"
// @Success 201 {object} dto.APIResponse{data=models.ExamTitle}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or no current year"
// @Router /exams [post]
func (c *ExamTitleController) Create(ctx *gin.Context) {
	var req dto.CreateExamTitleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	exam, err := c.examService.Create(ctx.Request.Context(), middleware.YearContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(exam))
}

// Update changes name or status
// @Summary Update exam title
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam title ID" Format(int64) minimum(1)
// @Param request body dto.UpdateExamTitleRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.ExamTitle}
// @Failure 404 {object} dto.ErrorResponse "Exam title not found"
// @Router /exams/{id} [patch]
func (c *ExamTitleController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateExamTitleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	exam, err := c.examService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam))
}

// Delete soft-deletes an exam title
// @Summary Delete exam title
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam title ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Exam title not found"
// @Router /exams/{id} [delete]
func (c *ExamTitleController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.examService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
