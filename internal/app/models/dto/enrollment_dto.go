package dto

import "github.com/yigit/schoolhub/internal/app/models"

// CreateEnrollmentRequest enrolls a student in the current year.
type CreateEnrollmentRequest struct {
	StudentID int64   `json:"student_id" binding:"required,gt=0"`
	ClassID   int64   `json:"class_id" binding:"required,gt=0"`
	Status    *string `json:"status" binding:"omitempty,oneof=active deferred expelled graduated"`
}

// UpdateEnrollmentRequest is a partial update.
type UpdateEnrollmentRequest struct {
	ClassID *int64  `json:"class_id" binding:"omitempty,gt=0"`
	Status  *string `json:"status" binding:"omitempty,oneof=active deferred expelled graduated"`
}

// EnrollmentListResponse lists enrollments of the current year.
type EnrollmentListResponse struct {
	Year *AcademicYearResponse `json:"year"`
	Rows []*models.Enrollment  `json:"rows"`
}

// UnenrolledResponse lists students without an enrollment in the current year.
type UnenrolledResponse struct {
	Year     *AcademicYearResponse `json:"year"`
	Students []*models.Student     `json:"students"`
}

// EnrollmentMetaResponse feeds the enrollment form.
type EnrollmentMetaResponse struct {
	Year     *AcademicYearResponse           `json:"year"`
	Classes  []*models.Class                 `json:"classes"`
	Statuses []models.EnrollmentStatusOption `json:"statuses"`
}

// UpsertStudentEnrollmentRequest places a student in a year, optionally in a class.
type UpsertStudentEnrollmentRequest struct {
	StudentID      int64  `json:"student_id" binding:"required,gt=0"`
	AcademicYearID int64  `json:"academic_year_id" binding:"required,gt=0"`
	ClassID        *int64 `json:"class_id" binding:"omitempty,gt=0"`
}

// UpdateStudentEnrollmentRequest is a partial update; a null class unassigns.
type UpdateStudentEnrollmentRequest struct {
	ClassID Optional[int64]  `json:"class_id" swaggertype:"integer"`
	Status  Optional[string] `json:"status" swaggertype:"string"`
}
