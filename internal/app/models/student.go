package models

import "time"

// GuardianType says who the legal guardian of a student is.
type GuardianType string

const (
	GuardianFather GuardianType = "father"
	GuardianMother GuardianType = "mother"
	GuardianOther  GuardianType = "other"
)

// Student holds the identity and guardian blocks of a pupil. Enrollment in
// a year is tracked separately.
type Student struct {
	ID int64 `json:"id"`

	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	NationalCode          *string `json:"national_code"`
	BirthCertificateNo    *string `json:"birth_certificate_no"`
	BirthCertificatePlace *string `json:"birth_certificate_place"`
	BirthCertificateID    *string `json:"birth_certificate_id"`
	BirthDate             *string `json:"birth_date"`
	BirthPlace            *string `json:"birth_place"`
	Photo                 *string `json:"photo"`

	FatherName                  string  `json:"father_name"`
	FatherNationalCode          string  `json:"father_national_code"`
	FatherBirthDate             *string `json:"father_birth_date"`
	FatherMobile                *string `json:"father_mobile"`
	FatherBirthCertificatePlace *string `json:"father_birth_certificate_place"`
	FatherEducation             *string `json:"father_education"`
	FatherJob                   *string `json:"father_job"`

	MotherFirstName    string  `json:"mother_first_name"`
	MotherLastName     string  `json:"mother_last_name"`
	MotherNationalCode string  `json:"mother_national_code"`
	MotherBirthDate    *string `json:"mother_birth_date"`
	MotherMobile       *string `json:"mother_mobile"`
	MotherEducation    *string `json:"mother_education"`
	MotherJob          *string `json:"mother_job"`

	Guardian  GuardianType `json:"guardian"`
	Address   *string      `json:"address"`
	HomePhone *string      `json:"home_phone"`
	Status    *string      `json:"status"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// FullName returns "first last".
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
