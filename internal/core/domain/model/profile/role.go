package profile

import (
	"fmt"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Role is the closed set of user roles. Every authenticated request resolves
// to exactly one of these; there is no fallthrough for unrecognized values.
type Role int

const (
	RoleUnknown Role = iota
	RoleSuperAdmin
	RoleAdmin
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleSuperAdmin: "super_admin",
		RoleAdmin:      "admin",
		RoleDriver:     "driver",
	}
}

// AllRoles returns every valid role.
func AllRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleDriver}
}

// RoleFromString parses the persisted form of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate reports whether the role is one of the three valid roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted snake_case form. Invalid values stringify as
// "unknown".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Actor maps the role onto transition-table authority. Super-admins carry
// admin authority over orders.
func (r Role) Actor() order.Actor {
	switch r {
	case RoleSuperAdmin, RoleAdmin:
		return order.ActorAdmin
	case RoleDriver:
		return order.ActorDriver
	default:
		return order.ActorUnknown
	}
}

// Capabilities is the per-role feature set, resolved once at session start
// rather than re-branched on a role string at each call site.
type Capabilities struct {
	ManageOrders    bool
	ManageDrivers   bool
	ViewAllProfiles bool
	DriveOrders     bool
	NavItems        []string
}

// Capabilities returns the capability and navigation set for the role.
func (r Role) Capabilities() Capabilities {
	switch r {
	case RoleSuperAdmin:
		return Capabilities{
			ManageOrders:    true,
			ManageDrivers:   true,
			ViewAllProfiles: true,
			NavItems:        []string{"dashboard", "admins", "drivers", "orders", "reports"},
		}
	case RoleAdmin:
		return Capabilities{
			ManageOrders:  true,
			ManageDrivers: true,
			NavItems:      []string{"dashboard", "orders", "drivers", "route"},
		}
	case RoleDriver:
		return Capabilities{
			DriveOrders: true,
			NavItems:    []string{"orders", "route", "profile"},
		}
	default:
		return Capabilities{}
	}
}
