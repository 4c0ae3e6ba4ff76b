package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// UserController manages staff accounts
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// List returns every user
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(users))
}

// Get returns one user
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	user, err := c.userService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// Create adds a user
// @Summary Create user
// @Description Creates a staff user. The password is stored as a bcrypt hash.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or username taken"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	user, err := c.userService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(user))
}

// Update changes a user
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse "Invalid data or username taken"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [patch]
func (c *UserController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	user, err := c.userService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// Delete removes a user
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.userService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
