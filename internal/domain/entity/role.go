// Package entity contains the core business objects of the project.
package entity

// UserRole represents the type of role a user can have in the system.
type UserRole string

const (
	// RoleCustomer indicates a regular customer account.
	RoleCustomer UserRole = "customer"
	// RoleAdmin indicates an administrator account.
	RoleAdmin UserRole = "admin"
)

// String returns the string representation of the UserRole.
func (r UserRole) String() string {
	return string(r)
}

// IsValid checks if the UserRole is a valid value.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseUserRole converts a raw string into a UserRole.
// The boolean is false when the string is not part of the closed set.
func ParseUserRole(s string) (UserRole, bool) {
	r := UserRole(s)

	return r, r.IsValid()
}
