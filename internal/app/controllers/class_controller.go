package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// yearListFilter reads ?academic_year_id= and ?current=1 shared by the
// year-scoped catalog listings.
func yearListFilter(ctx *gin.Context) (yearID *int64, onlyCurrent bool, ok bool) {
	yearID, ok = middleware.ParseOptionalIDQuery(ctx, "academic_year_id")
	if !ok {
		return nil, false, false
	}
	switch ctx.Query("current") {
	case "1", "true":
		onlyCurrent = true
	}
	return yearID, onlyCurrent, true
}

// ClassController handles class operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// List returns classes, optionally narrowed to one year
// @Summary List classes
// @Description academic_year_id selects a year; current=1 selects the current year
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param academic_year_id query int false "Academic year ID"
// @Param current query string false "1 to list the current year only"
// @Success 200 {object} dto.APIResponse{data=[]models.Class}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter or no current year"
// @Router /classes [get]
func (c *ClassController) List(ctx *gin.Context) {
	yearID, onlyCurrent, ok := yearListFilter(ctx)
	if !ok {
		return
	}
	classes, err := c.classService.List(ctx.Request.Context(), middleware.YearContext(ctx), yearID, onlyCurrent)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(classes))
}

// Get returns one class
// @Summary Get class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Class}
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id} [get]
func (c *ClassController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	class, err := c.classService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(class))
}

// Create adds a class
// @Summary Create class
// @Description academic_year_id defaults to the current year
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class"
// @Success 201 {object} dto.APIResponse{data=models.Class}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /classes [post]
func (c *ClassController) Create(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	class, err := c.classService.Create(ctx.Request.Context(), middleware.YearContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(class))
}

// Update changes a class
// @Summary Update class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Param request body dto.UpdateClassRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Class}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id} [patch]
func (c *ClassController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateClassRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	class, err := c.classService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(class))
}

// Delete soft-deletes a class
// @Summary Delete class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id} [delete]
func (c *ClassController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.classService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// TextbookController handles textbook operations
type TextbookController struct {
	bookService services.TextbookService
}

// NewTextbookController creates a new TextbookController
func NewTextbookController(bookService services.TextbookService) *TextbookController {
	return &TextbookController{bookService: bookService}
}

// List returns textbooks, optionally narrowed to one year
// @Summary List textbooks
// @Tags textbooks
// @Produce json
// @Security BearerAuth
// @Param academic_year_id query int false "Academic year ID"
// @Param current query string false "1 to list the current year only"
// @Success 200 {object} dto.APIResponse{data=[]models.Textbook}
// @Failure 400 {object} dto.ErrorResponse "Invalid filter or no current year"
// @Router /textbooks [get]
func (c *TextbookController) List(ctx *gin.Context) {
	yearID, onlyCurrent, ok := yearListFilter(ctx)
	if !ok {
		return
	}
	books, err := c.bookService.List(ctx.Request.Context(), middleware.YearContext(ctx), yearID, onlyCurrent)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(books))
}

// Get returns one textbook
// @Summary Get textbook
// @Tags textbooks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Textbook ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Textbook}
// @Failure 404 {object} dto.ErrorResponse "Textbook not found"
// @Router /textbooks/{id} [get]
func (c *TextbookController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	book, err := c.bookService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(book))
}

// Create adds a textbook
// @Summary Create textbook
// @Tags textbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTextbookRequest true "Textbook"
// @Success 201 {object} dto.APIResponse{data=models.Textbook}
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /textbooks [post]
func (c *TextbookController) Create(ctx *gin.Context) {
	var req dto.CreateTextbookRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	book, err := c.bookService.Create(ctx.Request.Context(), middleware.YearContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(book))
}

// Update changes a textbook
// @Summary Update textbook
// @Tags textbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Textbook ID" Format(int64) minimum(1)
// @Param request body dto.UpdateTextbookRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Textbook}
// @Failure 404 {object} dto.ErrorResponse "Textbook not found"
// @Router /textbooks/{id} [patch]
func (c *TextbookController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateTextbookRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	book, err := c.bookService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(book))
}

// Delete soft-deletes a textbook
// @Summary Delete textbook
// @Tags textbooks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Textbook ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Textbook not found"
// @Router /textbooks/{id} [delete]
func (c *TextbookController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.bookService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
