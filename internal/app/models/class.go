package models

import "time"

// Class is a homeroom of one grade level in one academic year.
type Class struct {
	ID                int64      `json:"id"`
	Code              string     `json:"code"`
	Name              string     `json:"name"`
	GradeLevelID      int64      `json:"grade_level_id"`
	AcademicYearID    int64      `json:"academic_year_id"`
	GradeLevelName    *string    `json:"grade_level_name,omitempty"`
	AcademicYearTitle *string    `json:"academic_year_title,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
}

// YearFilter narrows class and textbook listings. Zero means every year.
type YearFilter struct {
	AcademicYearID int64
}

// Textbook is taught in one grade level during one academic year.
type Textbook struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	GradeLevelID      int64      `json:"grade_level_id"`
	AcademicYearID    int64      `json:"academic_year_id"`
	GradeLevelName    *string    `json:"grade_level_name,omitempty"`
	AcademicYearTitle *string    `json:"academic_year_title,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
}

// ExamStatus is the state of an exam title.
type ExamStatus string

const (
	ExamStatusActive   ExamStatus = "active"
	ExamStatusInactive ExamStatus = "inactive"
)

// Valid reports whether s is a known exam status.
func (s ExamStatus) Valid() bool {
	return s == ExamStatusActive || s == ExamStatusInactive
}

// ExamTitle names an exam held during the academic year it was created in.
type ExamTitle struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Status         ExamStatus `json:"status"`
	AcademicYearID int64      `json:"academic_year_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}
