// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// AuthController handles authentication related requests
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles user login
// @Summary User login
// @Description Authenticates a staff user and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials or disabled account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Me returns the caller identity carried by the token
// @Summary Current user
// @Description Returns the identity encoded in the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MeResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.authService.Me(claims)))
}
