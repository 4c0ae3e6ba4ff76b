package models

import (
	"sort"
	"strconv"
	"time"
)

// Role identifiers of the fixed staff role catalog.
const (
	RoleTeacher   = 1
	RoleAssistant = 2
	RolePrincipal = 3
	RoleStaff     = 4
	RoleCounselor = 5
)

// RoleDefinition describes a staff role and the references it requires.
type RoleDefinition struct {
	ID         int    `json:"id"`
	Key        string `json:"key"`
	Name       string `json:"name"`
	NeedsClass bool   `json:"needs_class"`
	NeedsTerm  bool   `json:"needs_term"`
}

// RoleCatalog resolves role ids to their definitions.
type RoleCatalog interface {
	Lookup(roleID int) (RoleDefinition, bool)
	NeedsClass(roleID int) bool
	NeedsTerm(roleID int) bool
	All() []RoleDefinition
}

// StaticRoleCatalog is a RoleCatalog backed by a compile-time table.
type StaticRoleCatalog map[int]RoleDefinition

// DefaultRoleCatalog is the role table shipped with the application.
var DefaultRoleCatalog RoleCatalog = StaticRoleCatalog{
	RoleTeacher:   {ID: RoleTeacher, Key: "teacher", Name: "معلم", NeedsClass: true},
	RoleAssistant: {ID: RoleAssistant, Key: "assistant", Name: "معاون", NeedsTerm: true},
	RolePrincipal: {ID: RolePrincipal, Key: "principal", Name: "مدیر"},
	RoleStaff:     {ID: RoleStaff, Key: "staff", Name: "کارمند"},
	RoleCounselor: {ID: RoleCounselor, Key: "counselor", Name: "مشاور"},
}

// Lookup returns the definition of roleID.
func (c StaticRoleCatalog) Lookup(roleID int) (RoleDefinition, bool) {
	def, ok := c[roleID]
	return def, ok
}

// NeedsClass reports whether roleID is scoped to a class.
func (c StaticRoleCatalog) NeedsClass(roleID int) bool {
	return c[roleID].NeedsClass
}

// NeedsTerm reports whether roleID is scoped to an academic term.
func (c StaticRoleCatalog) NeedsTerm(roleID int) bool {
	return c[roleID].NeedsTerm
}

// All returns every definition ordered by id.
func (c StaticRoleCatalog) All() []RoleDefinition {
	defs := make([]RoleDefinition, 0, len(c))
	for _, def := range c {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// RoleLabel returns the display name of roleID, or the id itself when unknown.
func RoleLabel(catalog RoleCatalog, roleID int) string {
	if def, ok := catalog.Lookup(roleID); ok {
		return def.Name
	}
	return strconv.Itoa(roleID)
}

// StaffRole assigns a role to a user for one academic year.
type StaffRole struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	RoleID         int       `json:"role_id"`
	ClassID        *int64    `json:"class_id"`
	AcademicYearID int64     `json:"academic_year_id"`
	AcademicTermID *int64    `json:"academic_term_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Joined for listings.
	UserFullName *string `json:"user_full_name,omitempty"`
	ClassName    *string `json:"class_name,omitempty"`
	TermName     *string `json:"academic_term_name,omitempty"`
	RoleLabel    string  `json:"role_label,omitempty"`
}

// StaffRoleKey identifies an assignment for duplicate detection.
type StaffRoleKey struct {
	UserID         int64
	RoleID         int
	AcademicYearID int64
	ClassID        *int64
	AcademicTermID *int64
}
