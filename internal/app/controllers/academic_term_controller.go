package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// AcademicTermController handles academic term operations
type AcademicTermController struct {
	termService services.AcademicTermService
}

// NewAcademicTermController creates a new AcademicTermController
func NewAcademicTermController(termService services.AcademicTermService) *AcademicTermController {
	return &AcademicTermController{termService: termService}
}

// List godoc
// @Summary List academic terms
// @Tags academic-terms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicTerm}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-terms [get]
func (c *AcademicTermController) List(ctx *gin.Context) {
	terms, err := c.termService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(terms))
}

// Get godoc
// @Summary Get academic term
// @Tags academic-terms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic term ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.AcademicTerm}
// @Failure 404 {object} dto.ErrorResponse "Academic term not found"
// @Router /academic-terms/{id} [get]
func (c *AcademicTermController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	term, err := c.termService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(term))
}

// Create godoc
// @Summary Create academic term
// @Tags academic-terms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicTermRequest true "Academic term"
// @Success 201 {object} dto.APIResponse{data=models.AcademicTerm}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /academic-terms [post]
func (c *AcademicTermController) Create(ctx *gin.Context) {
	var req dto.CreateAcademicTermRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	term, err := c.termService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(term))
}

// Update godoc
// @Summary Update academic term
// @Tags academic-terms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic term ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAcademicTermRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.AcademicTerm}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 404 {object} dto.ErrorResponse "Academic term not found"
// @Router /academic-terms/{id} [patch]
func (c *AcademicTermController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateAcademicTermRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	term, err := c.termService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(term))
}

// Delete godoc
// @Summary Delete academic term
// @Tags academic-terms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic term ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Academic term not found"
// @Router /academic-terms/{id} [delete]
func (c *AcademicTermController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.termService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// GradeLevelController handles grade level operations
type GradeLevelController struct {
	levelService services.GradeLevelService
}

// NewGradeLevelController creates a new GradeLevelController
func NewGradeLevelController(levelService services.GradeLevelService) *GradeLevelController {
	return &GradeLevelController{levelService: levelService}
}

// List godoc
// @Summary List grade levels
// @Tags grade-levels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.GradeLevel}
// @Router /grade-levels [get]
func (c *GradeLevelController) List(ctx *gin.Context) {
	levels, err := c.levelService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(levels))
}

// Get godoc
// @Summary Get grade level
// @Tags grade-levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade level ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.GradeLevel}
// @Failure 404 {object} dto.ErrorResponse "Grade level not found"
// @Router /grade-levels/{id} [get]
func (c *GradeLevelController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	level, err := c.levelService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(level))
}

// Create godoc
// @Summary Create grade level
// @Tags grade-levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGradeLevelRequest true "Grade level"
// @Success 201 {object} dto.APIResponse{data=models.GradeLevel}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or unknown term"
// @Router /grade-levels [post]
func (c *GradeLevelController) Create(ctx *gin.Context) {
	var req dto.CreateGradeLevelRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	level, err := c.levelService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(level))
}

// Update godoc
// @Summary Update grade level
// @Tags grade-levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade level ID" Format(int64) minimum(1)
// @Param request body dto.UpdateGradeLevelRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.GradeLevel}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or unknown term"
// @Failure 404 {object} dto.ErrorResponse "Grade level not found"
// @Router /grade-levels/{id} [patch]
func (c *GradeLevelController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateGradeLevelRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	level, err := c.levelService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(level))
}

// Delete godoc
// @Summary Delete grade level
// @Tags grade-levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade level ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Grade level not found"
// @Router /grade-levels/{id} [delete]
func (c *GradeLevelController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.levelService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
