package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// AcademicYearController handles academic year operations
type AcademicYearController struct {
	yearService services.AcademicYearService
}

// NewAcademicYearController creates a new AcademicYearController
func NewAcademicYearController(yearService services.AcademicYearService) *AcademicYearController {
	return &AcademicYearController{
		yearService: yearService,
	}
}

// List returns all academic years, newest first
// @Summary List academic years
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AcademicYearResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years [get]
func (c *AcademicYearController) List(ctx *gin.Context) {
	years, err := c.yearService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewAcademicYearListResponse(years)))
}

// Current returns the year marked current
// @Summary Current academic year
// @Description Returns the current year, or null data when none is set
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AcademicYearResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years/current [get]
func (c *AcademicYearController) Current(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewAcademicYearResponse(middleware.YearContext(ctx).Year)))
}

// Get returns one academic year
// @Summary Get academic year
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AcademicYearResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Router /academic-years/{id} [get]
func (c *AcademicYearController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	year, err := c.yearService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewAcademicYearResponse(year)))
}

// Create adds an academic year
// @Summary Create academic year
// @Description Dates accept Jalali (1404/07/01) or Gregorian (2025-09-23) input. is_current=true demotes the previous current year.
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicYearRequest true "Academic year"
// @Success 201 {object} dto.APIResponse{data=dto.AcademicYearResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /academic-years [post]
func (c *AcademicYearController) Create(ctx *gin.Context) {
	var req dto.CreateAcademicYearRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	year, err := c.yearService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewAcademicYearResponse(year)))
}

// Update changes an academic year
// @Summary Update academic year
// @Description Absent fields are kept; a null date clears it.
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAcademicYearRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.AcademicYearResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Router /academic-years/{id} [patch]
func (c *AcademicYearController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateAcademicYearRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	year, err := c.yearService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewAcademicYearResponse(year)))
}

// SetCurrent marks a year as current
// @Summary Set current academic year
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AcademicYearResponse}
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Router /academic-years/{id}/current [patch]
func (c *AcademicYearController) SetCurrent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	year, err := c.yearService.SetCurrent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewAcademicYearResponse(year)))
}

// Delete removes a year that is not current
// @Summary Delete academic year
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Year is current"
// @Failure 404 {object} dto.ErrorResponse "Academic year not found"
// @Router /academic-years/{id} [delete]
func (c *AcademicYearController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.yearService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
