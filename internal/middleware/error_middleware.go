package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/logger"
	"github.com/yigit/schoolhub/internal/pkg/validation"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(apperrors.Messages(err)))
	case errors.Is(err, apperrors.ErrConflict):
		detail := dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error()).WithSeverity(dto.ErrorSeverityWarning)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password")))
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	default:
		code := dto.ErrorCodeInternalServer
		if errors.Is(err, apperrors.ErrPersistence) {
			code = dto.ErrorCodeDatabaseError
		}
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("requestID", c.GetString(ContextRequestID)).
			Msg("Request failed")
		detail := dto.NewErrorDetail(code, "Internal server error").WithSeverity(dto.ErrorSeverityCritical)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}

// HandleBindingError answers 400 with one message per invalid field.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(validation.Messages(err)))
}
