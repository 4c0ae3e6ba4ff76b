package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// StaffRoleController handles staff role assignments of the current year
type StaffRoleController struct {
	roleService services.StaffRoleService
}

// NewStaffRoleController creates a new StaffRoleController
func NewStaffRoleController(roleService services.StaffRoleService) *StaffRoleController {
	return &StaffRoleController{roleService: roleService}
}

// List returns the assignments of the current year
// @Summary List staff roles
// @Description Rows carry the resolved role label
// @Tags staff-roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StaffRoleListResponse}
// @Failure 400 {object} dto.ErrorResponse "No current academic year"
// @Router /staff-roles [get]
func (c *StaffRoleController) List(ctx *gin.Context) {
	list, err := c.roleService.List(ctx.Request.Context(), middleware.YearContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list))
}

// Meta returns the options of the assignment form
// @Summary Staff role form options
// @Tags staff-roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StaffRoleMetaResponse}
// @Failure 400 {object} dto.ErrorResponse "No current academic year"
// @Router /staff-roles/meta [get]
func (c *StaffRoleController) Meta(ctx *gin.Context) {
	meta, err := c.roleService.Meta(ctx.Request.Context(), middleware.YearContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(meta))
}

// Create assigns a role in the current year
// @Summary Create staff role
// @Description The role decides whether class and term are required, allowed or dropped
// @Tags staff-roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffRoleRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.StaffRole}
// @Failure 400 {object} dto.ErrorResponse "Invalid scope or duplicate assignment"
// @Router /staff-roles [post]
func (c *StaffRoleController) Create(ctx *gin.Context) {
	var req dto.CreateStaffRoleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	role, err := c.roleService.Create(ctx.Request.Context(), middleware.YearContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(role))
}

// Update changes an assignment
// @Summary Update staff role
// @Tags staff-roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff role ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStaffRoleRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.StaffRole}
// @Failure 400 {object} dto.ErrorResponse "Invalid scope or duplicate assignment"
// @Failure 404 {object} dto.ErrorResponse "Staff role not found"
// @Router /staff-roles/{id} [patch]
func (c *StaffRoleController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateStaffRoleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	role, err := c.roleService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(role))
}

// Delete removes an assignment
// @Summary Delete staff role
// @Tags staff-roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff role ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Staff role not found"
// @Router /staff-roles/{id} [delete]
func (c *StaffRoleController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.roleService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
