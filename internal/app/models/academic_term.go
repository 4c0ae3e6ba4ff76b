package models

import "time"

// ActivityStatus is the localized active flag shared by terms and grade levels.
type ActivityStatus string

const (
	StatusActive   ActivityStatus = "فعال"
	StatusInactive ActivityStatus = "غیرفعال"
)

// Valid reports whether s is one of the known statuses.
func (s ActivityStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// AcademicTerm is a schooling stage (for example primary or lower secondary).
type AcademicTerm struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Status    ActivityStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt *time.Time     `json:"deleted_at,omitempty"`
}

// GradeLevel belongs to exactly one academic term.
type GradeLevel struct {
	ID             int64          `json:"id"`
	AcademicTermID int64          `json:"academic_term_id"`
	GradeCode      string         `json:"grade_code"`
	Name           string         `json:"name"`
	Status         ActivityStatus `json:"status"`
	TermName       *string        `json:"academic_term_name,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      *time.Time     `json:"deleted_at,omitempty"`
}
