package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// BindJSON binds the request body into obj. On failure the 400 response is
// already written and false is returned.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleBindingError(c, err)
		return false
	}
	return true
}

// ParseIDParam reads a positive integer path parameter. On failure the 400
// response is already written and false is returned.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		HandleAPIError(c, apperrors.NewValidationError(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

// ParseOptionalIDQuery reads a positive integer query parameter. A missing
// parameter yields nil.
func ParseOptionalIDQuery(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		HandleAPIError(c, apperrors.NewValidationError(name+" must be a positive integer"))
		return nil, false
	}
	return &id, true
}
