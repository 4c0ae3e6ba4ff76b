package dto

import "github.com/yigit/schoolhub/internal/app/models"

// CreateStaffRoleRequest assigns a role in the current year.
type CreateStaffRoleRequest struct {
	UserID         int64  `json:"user_id" binding:"required,gt=0"`
	RoleID         int    `json:"role_id" binding:"required,gt=0"`
	ClassID        *int64 `json:"class_id" binding:"omitempty,gt=0"`
	AcademicTermID *int64 `json:"academic_term_id" binding:"omitempty,gt=0"`
}

// UpdateStaffRoleRequest is a partial update. Absent fields keep the stored
// value, explicit nulls clear class or term.
type UpdateStaffRoleRequest struct {
	RoleID         Optional[int]   `json:"role_id" swaggertype:"integer"`
	ClassID        Optional[int64] `json:"class_id" swaggertype:"integer"`
	AcademicTermID Optional[int64] `json:"academic_term_id" swaggertype:"integer"`
}

// StaffRoleListResponse lists the assignments of the current year.
type StaffRoleListResponse struct {
	Year  *AcademicYearResponse   `json:"year"`
	Rows  []*models.StaffRole     `json:"rows"`
	Roles []models.RoleDefinition `json:"roles"`
}

// StaffRoleMetaResponse feeds the assignment form.
type StaffRoleMetaResponse struct {
	Year    *AcademicYearResponse   `json:"year"`
	Users   []*models.User          `json:"users"`
	Classes []*models.Class         `json:"classes"`
	Terms   []*models.AcademicTerm  `json:"terms"`
	Roles   []models.RoleDefinition `json:"roles"`
}
