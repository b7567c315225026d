package services

import (
	"fmt"

	"github.com/MyLifeUa/rest-api/models"
)

// Operation is what the requester wants to do to the target resource.
type Operation string

const (
	OpRead         Operation = "read"
	OpUpdate       Operation = "update"
	OpDelete       Operation = "delete"
	OpCreateDoctor Operation = "create-doctor"
	OpCreateAdmin  Operation = "create-admin"
)

// Requester is the already-authenticated actor, resolved by the auth
// middleware. Hospital is set only for admins.
type Requester struct {
	Role     models.Role
	Email    string
	Hospital string
}

// RelationshipFacts are resolved by the caller before consulting the
// policy; the policy itself never touches storage.
type RelationshipFacts struct {
	// Role owning the target resource.
	TargetRole models.Role

	// When TargetRole is client: email of that client's assigned
	// doctor, empty if none.
	AssignedDoctor string

	// When TargetRole is doctor: that doctor's hospital.
	DoctorHospital string

	// When the requester is a client and the target a doctor: email of
	// the requester's own assigned doctor, empty if none.
	RequesterDoctor string
}

// Authorize is the single yes/no gate consulted before every
// account-scoped operation. Rules are evaluated in precedence order
// and the first match wins; it performs no side effects.
func Authorize(req Requester, op Operation, targetEmail string, facts RelationshipFacts) error {
	switch {
	// Full CRUD on one's own resource.
	case req.Email == targetEmail && req.Role == facts.TargetRole:
		return nil

	// A doctor reads an assigned patient, never writes.
	case req.Role == models.RoleDoctor && facts.TargetRole == models.RoleClient &&
		facts.AssignedDoctor == req.Email && op == OpRead:
		return nil

	// A patient reads their own doctor's profile.
	case req.Role == models.RoleClient && facts.TargetRole == models.RoleDoctor &&
		facts.RequesterDoctor != "" && facts.RequesterDoctor == targetEmail && op == OpRead:
		return nil

	// An admin reads or deletes doctors of their hospital, but never
	// updates the doctor's own profile fields.
	case req.Role == models.RoleAdmin && facts.TargetRole == models.RoleDoctor &&
		facts.DoctorHospital == req.Hospital && (op == OpRead || op == OpDelete):
		return nil

	// Only admins create doctor or admin accounts.
	case req.Role == models.RoleAdmin && (op == OpCreateDoctor || op == OpCreateAdmin):
		return nil
	}

	return fmt.Errorf("%s may not %s %s: %w", req.Role, op, targetEmail, models.ErrForbidden)
}
