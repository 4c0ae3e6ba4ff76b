package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models"
)

const contextCurrentYear = "currentYear"

// CurrentYearFinder looks up the year marked current, nil when there is none.
type CurrentYearFinder interface {
	Current(ctx context.Context) (*models.AcademicYear, error)
}

// CurrentYear resolves the current academic year once per request. Handlers
// read it with YearContext.
func CurrentYear(finder CurrentYearFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		year, err := finder.Current(c.Request.Context())
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}
		c.Set(contextCurrentYear, models.AcademicYearContext{Year: year})
		c.Next()
	}
}

// YearContext returns the year resolved by CurrentYear. Without that
// middleware it reports no current year.
func YearContext(c *gin.Context) models.AcademicYearContext {
	if v, ok := c.Get(contextCurrentYear); ok {
		if yc, ok := v.(models.AcademicYearContext); ok {
			return yc
		}
	}
	return models.AcademicYearContext{}
}
