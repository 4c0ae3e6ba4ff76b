package models

import "time"

// User is a staff member who can sign in to the admin panel.
type User struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	NationalID   *string `json:"national_id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	Phone        *string `json:"phone"`
	BirthDate    *string `json:"birth_date"`

	BirthCertificateIdentifier *string `json:"birth_certificate_identifier"`
	BirthCertificateIssuePlace *string `json:"birth_certificate_issue_place"`
	BirthPlace                 *string `json:"birth_place"`
	FatherName                 *string `json:"father_name"`
	MotherFirstName            *string `json:"mother_first_name"`
	MotherLastName             *string `json:"mother_last_name"`

	SpouseFirstName *string `json:"spouse_first_name"`
	SpouseLastName  *string `json:"spouse_last_name"`
	SpouseMobile    *string `json:"spouse_mobile"`
	HomeAddress     *string `json:"home_address"`
	HomePhone       *string `json:"home_phone"`
	MaritalStatus   *string `json:"marital_status"`
	ChildrenCount   int     `json:"children_count"`

	BankCardNumber    *string `json:"bank_card_number"`
	BankAccountNumber *string `json:"bank_account_number"`
	BankShebaNumber   *string `json:"bank_sheba_number"`
	BankName          *string `json:"bank_name"`

	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FullName returns "first last".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
