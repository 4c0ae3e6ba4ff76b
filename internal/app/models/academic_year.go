package models

import (
	"time"

	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// AcademicYear is a school year. At most one row is current.
type AcademicYear struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartDate *string   `json:"start_date"`
	EndDate   *string   `json:"end_date"`
	IsCurrent bool      `json:"is_current"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AcademicYearContext is the current year as resolved once for a request.
// Year is nil when no year has been marked current yet.
type AcademicYearContext struct {
	Year *AcademicYear
}

// Require returns the current year or a validation error when none is set.
func (c AcademicYearContext) Require() (*AcademicYear, error) {
	if c.Year == nil {
		return nil, apperrors.ErrCurrentYearNotSet
	}
	return c.Year, nil
}

// ID returns the current year id or 0 when none is set.
func (c AcademicYearContext) ID() int64 {
	if c.Year == nil {
		return 0
	}
	return c.Year.ID
}
