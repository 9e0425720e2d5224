package queries

import (
	"trix/internal/pkg/errs"
)

// Role identifies the kind of actor running a shipment query. It scopes
// what the query may see: customers see their own shipments, drivers see
// the shipments assigned to them, admins see everything.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleDriver
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleDriver:   "driver",
		RoleAdmin:    "admin",
	}
}

func getValidRoleStrings() map[string]Role {
	return map[string]Role{
		"customer": RoleCustomer,
		"driver":   RoleDriver,
		"admin":    RoleAdmin,
	}
}

// RoleFromString parses a wire role name.
func RoleFromString(s string) (Role, error) {
	role, ok := getValidRoleStrings()[s]
	if !ok {
		return RoleUnknown, errs.NewValueIsInvalidError("role")
	}

	return role, nil
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}

	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}

	return "unknown"
}
