package dto

import (
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/calendar"
)

// CreateAcademicYearRequest creates a year. Dates accept Jalali (1404/07/01)
// or Gregorian (2025-09-23) input.
type CreateAcademicYearRequest struct {
	Title     string  `json:"title" binding:"required,max=120" example:"1404-1405"`
	StartDate *string `json:"start_date" example:"1404/07/01"`
	EndDate   *string `json:"end_date" example:"1405/03/31"`
	IsCurrent *bool   `json:"is_current"`
}

// UpdateAcademicYearRequest is a partial update. A null date clears it.
type UpdateAcademicYearRequest struct {
	Title     *string          `json:"title" binding:"omitempty,max=120"`
	StartDate Optional[string] `json:"start_date" swaggertype:"string"`
	EndDate   Optional[string] `json:"end_date" swaggertype:"string"`
}

// AcademicYearResponse adds Jalali renderings of the stored dates.
type AcademicYearResponse struct {
	models.AcademicYear
	StartDateJalali string `json:"start_date_jalali" example:"1404/07/01"`
	EndDateJalali   string `json:"end_date_jalali" example:"1405/03/31"`
}

// NewAcademicYearResponse returns nil for a nil year.
func NewAcademicYearResponse(y *models.AcademicYear) *AcademicYearResponse {
	if y == nil {
		return nil
	}
	return &AcademicYearResponse{
		AcademicYear:    *y,
		StartDateJalali: calendar.ToJalaliPtr(y.StartDate),
		EndDateJalali:   calendar.ToJalaliPtr(y.EndDate),
	}
}

// NewAcademicYearListResponse maps a list of years.
func NewAcademicYearListResponse(years []*models.AcademicYear) []*AcademicYearResponse {
	out := make([]*AcademicYearResponse, 0, len(years))
	for _, y := range years {
		out = append(out, NewAcademicYearResponse(y))
	}
	return out
}

// CreateAcademicTermRequest creates a term. Status defaults to active.
type CreateAcademicTermRequest struct {
	Name   string  `json:"name" binding:"required,max=120" example:"ابتدایی"`
	Status *string `json:"status" example:"فعال"`
}

// UpdateAcademicTermRequest is a partial update.
type UpdateAcademicTermRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=120"`
	Status *string `json:"status"`
}

// CreateGradeLevelRequest creates a grade level under a term.
type CreateGradeLevelRequest struct {
	AcademicTermID int64   `json:"academic_term_id" binding:"required,gt=0"`
	GradeCode      string  `json:"grade_code" binding:"required,max=20" example:"G1"`
	Name           string  `json:"name" binding:"required,max=120" example:"پایه اول"`
	Status         *string `json:"status"`
}

// UpdateGradeLevelRequest is a partial update.
type UpdateGradeLevelRequest struct {
	AcademicTermID *int64  `json:"academic_term_id" binding:"omitempty,gt=0"`
	GradeCode      *string `json:"grade_code" binding:"omitempty,max=20"`
	Name           *string `json:"name" binding:"omitempty,max=120"`
	Status         *string `json:"status"`
}

// CreateClassRequest creates a class. AcademicYearID defaults to the current year.
type CreateClassRequest struct {
	Code           string `json:"code" binding:"required,max=20" example:"101"`
	Name           string `json:"name" binding:"required,max=120" example:"اول الف"`
	GradeLevelID   int64  `json:"grade_level_id" binding:"required,gt=0"`
	AcademicYearID *int64 `json:"academic_year_id" binding:"omitempty,gt=0"`
}

// UpdateClassRequest is a partial update.
type UpdateClassRequest struct {
	Code           *string `json:"code" binding:"omitempty,max=20"`
	Name           *string `json:"name" binding:"omitempty,max=120"`
	GradeLevelID   *int64  `json:"grade_level_id" binding:"omitempty,gt=0"`
	AcademicYearID *int64  `json:"academic_year_id" binding:"omitempty,gt=0"`
}

// CreateTextbookRequest creates a textbook. AcademicYearID defaults to the current year.
type CreateTextbookRequest struct {
	Name           string `json:"name" binding:"required,max=120" example:"ریاضی اول"`
	GradeLevelID   int64  `json:"grade_level_id" binding:"required,gt=0"`
	AcademicYearID *int64 `json:"academic_year_id" binding:"omitempty,gt=0"`
}

// UpdateTextbookRequest is a partial update.
type UpdateTextbookRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=120"`
	GradeLevelID   *int64  `json:"grade_level_id" binding:"omitempty,gt=0"`
	AcademicYearID *int64  `json:"academic_year_id" binding:"omitempty,gt=0"`
}

// CreateExamTitleRequest creates an exam title in the current year.
type CreateExamTitleRequest struct {
	Name   string  `json:"name" binding:"required,min=2,max=120" example:"امتحان نوبت اول"`
	Status *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateExamTitleRequest is a partial update.
type UpdateExamTitleRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=120"`
	Status *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ExamTitleListResponse lists exam titles of the current year.
type ExamTitleListResponse struct {
	Year *AcademicYearResponse `json:"year"`
	Rows []*models.ExamTitle   `json:"rows"`
}
