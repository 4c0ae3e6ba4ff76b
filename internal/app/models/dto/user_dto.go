package dto

import "github.com/yigit/schoolhub/internal/app/models"

// UserFields are the optional profile fields shared by create and update.
type UserFields struct {
	NationalID *string `json:"national_id" binding:"omitempty,national_code"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	BirthDate  *string `json:"birth_date"`

	BirthCertificateIdentifier *string `json:"birth_certificate_identifier" binding:"omitempty,max=120"`
	BirthCertificateIssuePlace *string `json:"birth_certificate_issue_place" binding:"omitempty,max=120"`
	BirthPlace                 *string `json:"birth_place" binding:"omitempty,max=120"`
	FatherName                 *string `json:"father_name" binding:"omitempty,max=80"`
	MotherFirstName            *string `json:"mother_first_name" binding:"omitempty,max=80"`
	MotherLastName             *string `json:"mother_last_name" binding:"omitempty,max=80"`

	SpouseFirstName *string `json:"spouse_first_name" binding:"omitempty,max=80"`
	SpouseLastName  *string `json:"spouse_last_name" binding:"omitempty,max=80"`
	SpouseMobile    *string `json:"spouse_mobile" binding:"omitempty,max=20"`
	HomeAddress     *string `json:"home_address"`
	HomePhone       *string `json:"home_phone" binding:"omitempty,max=20"`
	MaritalStatus   *string `json:"marital_status" binding:"omitempty,max=20"`
	ChildrenCount   *int    `json:"children_count" binding:"omitempty,min=0"`

	BankCardNumber    *string `json:"bank_card_number" binding:"omitempty,max=16"`
	BankAccountNumber *string `json:"bank_account_number" binding:"omitempty,max=32"`
	BankShebaNumber   *string `json:"bank_sheba_number" binding:"omitempty,max=26"`
	BankName          *string `json:"bank_name" binding:"omitempty,max=100"`

	IsActive *bool `json:"is_active"`
}

// CreateUserRequest creates a staff user.
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,max=80"`
	LastName  string `json:"last_name" binding:"required,max=80"`
	Username  string `json:"username" binding:"required,max=64"`
	Password  string `json:"password" binding:"required,min=6,max=100"`
	UserFields
}

// UpdateUserRequest is a partial update. A non-empty password is re-hashed.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=80"`
	LastName  *string `json:"last_name" binding:"omitempty,max=80"`
	Username  *string `json:"username" binding:"omitempty,max=64"`
	Password  *string `json:"password" binding:"omitempty,min=6,max=100"`
	UserFields
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// LoginResponse carries the issued token and the signed-in user.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"Bearer"`
	ExpiresIn   int          `json:"expires_in" example:"86400"`
	User        *models.User `json:"user"`
}

// MeResponse describes the caller as seen in the token.
type MeResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
