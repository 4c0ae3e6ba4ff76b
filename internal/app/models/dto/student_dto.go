package dto

// StudentRequest is used for both create and partial update. Blank strings
// are treated as absent. Date fields accept Jalali or Gregorian input; codes
// and phone numbers may use Persian digits and are checked after folding.
type StudentRequest struct {
	FirstName             *string `json:"first_name" binding:"omitempty,max=100"`
	LastName              *string `json:"last_name" binding:"omitempty,max=100"`
	NationalCode          *string `json:"national_code" binding:"omitempty,max=20"`
	BirthCertificateNo    *string `json:"birth_certificate_no" binding:"omitempty,max=50"`
	BirthCertificatePlace *string `json:"birth_certificate_place" binding:"omitempty,max=100"`
	BirthCertificateID    *string `json:"birth_certificate_id" binding:"omitempty,max=100"`
	BirthDate             *string `json:"birth_date" example:"1396/05/12"`
	BirthPlace            *string `json:"birth_place" binding:"omitempty,max=100"`

	FatherName                  *string `json:"father_name" binding:"omitempty,max=100"`
	FatherNationalCode          *string `json:"father_national_code" binding:"omitempty,max=20"`
	FatherBirthDate             *string `json:"father_birth_date"`
	FatherMobile                *string `json:"father_mobile" binding:"omitempty,max=20"`
	FatherBirthCertificatePlace *string `json:"father_birth_certificate_place" binding:"omitempty,max=100"`
	FatherEducation             *string `json:"father_education" binding:"omitempty,max=100"`
	FatherJob                   *string `json:"father_job" binding:"omitempty,max=100"`

	MotherFirstName    *string `json:"mother_first_name" binding:"omitempty,max=100"`
	MotherLastName     *string `json:"mother_last_name" binding:"omitempty,max=100"`
	MotherNationalCode *string `json:"mother_national_code" binding:"omitempty,max=20"`
	MotherBirthDate    *string `json:"mother_birth_date"`
	MotherMobile       *string `json:"mother_mobile" binding:"omitempty,max=20"`
	MotherEducation    *string `json:"mother_education" binding:"omitempty,max=100"`
	MotherJob          *string `json:"mother_job" binding:"omitempty,max=100"`

	Guardian  *string `json:"guardian" binding:"omitempty,oneof=father mother other"`
	Address   *string `json:"address"`
	HomePhone *string `json:"home_phone" binding:"omitempty,max=20"`
	Status    *string `json:"status" binding:"omitempty,max=50"`
}

// StudentPhotoResponse is returned after a photo upload.
type StudentPhotoResponse struct {
	StudentID int64  `json:"student_id"`
	Photo     string `json:"photo"`
	URL       string `json:"url"`
}
