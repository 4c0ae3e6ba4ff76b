package services

import (
	"context"
	"fmt"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// RoleScope is a validated (class, term) pair for a role assignment.
// Fields the role does not use are always nil.
type RoleScope struct {
	ClassID        *int64
	AcademicTermID *int64
}

// RoleAssignmentValidator enforces the per-role class and term requirements.
type RoleAssignmentValidator struct {
	catalog models.RoleCatalog
	classes ClassStore
	terms   AcademicTermStore
}

// NewRoleAssignmentValidator creates a validator over catalog.
func NewRoleAssignmentValidator(catalog models.RoleCatalog, classes ClassStore, terms AcademicTermStore) *RoleAssignmentValidator {
	return &RoleAssignmentValidator{catalog: catalog, classes: classes, terms: terms}
}

// Validate checks roleID against the catalog, drops the references the role
// does not use, and verifies the remaining ones. A class must belong to yearID.
func (v *RoleAssignmentValidator) Validate(ctx context.Context, roleID int, classID, termID *int64, yearID int64) (RoleScope, error) {
	def, ok := v.catalog.Lookup(roleID)
	if !ok {
		return RoleScope{}, apperrors.NewValidationError(fmt.Sprintf("unknown role %d", roleID))
	}

	var scope RoleScope

	if def.NeedsClass {
		if classID == nil {
			return RoleScope{}, apperrors.NewValidationError("class selection required for this role")
		}
		class, err := v.classes.FindByID(ctx, *classID)
		if err != nil {
			return RoleScope{}, err
		}
		if class.AcademicYearID != yearID {
			return RoleScope{}, apperrors.NewValidationError("class does not belong to the current year")
		}
		scope.ClassID = classID
	}

	if def.NeedsTerm {
		if termID == nil {
			return RoleScope{}, apperrors.NewValidationError("term selection required for this role")
		}
		if _, err := v.terms.FindByID(ctx, *termID); err != nil {
			return RoleScope{}, err
		}
		scope.AcademicTermID = termID
	}

	return scope, nil
}

// Catalog exposes the role table used by the validator.
func (v *RoleAssignmentValidator) Catalog() models.RoleCatalog {
	return v.catalog
}
