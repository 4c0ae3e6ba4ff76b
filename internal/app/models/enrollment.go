package models

import "time"

// EnrollmentStatus is the state of a student's enrollment in a year.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentDeferred  EnrollmentStatus = "deferred"
	EnrollmentExpelled  EnrollmentStatus = "expelled"
	EnrollmentGraduated EnrollmentStatus = "graduated"
)

// EnrollmentStatusOption pairs a status with its display label.
type EnrollmentStatusOption struct {
	Value EnrollmentStatus `json:"value"`
	Label string           `json:"label"`
}

// EnrollmentStatuses lists the known statuses in display order.
var EnrollmentStatuses = []EnrollmentStatusOption{
	{Value: EnrollmentActive, Label: "فعال"},
	{Value: EnrollmentDeferred, Label: "معوق"},
	{Value: EnrollmentExpelled, Label: "اخراج"},
	{Value: EnrollmentGraduated, Label: "فارغ‌التحصیل"},
}

// Valid reports whether s is a known status.
func (s EnrollmentStatus) Valid() bool {
	for _, opt := range EnrollmentStatuses {
		if opt.Value == s {
			return true
		}
	}
	return false
}

// Enrollment is a student's registration in an academic year, optionally
// placed in a class. At most one live row exists per (student, year).
type Enrollment struct {
	ID             int64            `json:"id"`
	StudentID      int64            `json:"student_id"`
	AcademicYearID int64            `json:"academic_year_id"`
	ClassID        *int64           `json:"class_id"`
	Status         EnrollmentStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      *time.Time       `json:"deleted_at,omitempty"`

	// Joined for listings.
	StudentFirstName *string `json:"student_first_name,omitempty"`
	StudentLastName  *string `json:"student_last_name,omitempty"`
	ClassName        *string `json:"class_name,omitempty"`
}

// EnrollmentFilter narrows enrollment listings. Nil fields are ignored.
type EnrollmentFilter struct {
	AcademicYearID *int64
	ClassID        *int64
	StudentID      *int64
	Status         *EnrollmentStatus
}
