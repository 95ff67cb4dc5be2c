// Package entity contains the core business objects of the project.
package entity

import "time"

// User is a registered account, either a customer or an administrator.
// The password is stored as an opaque hash and is never reversible.
type User struct {
	ID           int64     // Numeric identity of the user.
	Name         string    // The user's display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // Opaque credential hash; never the plaintext.
	Role         UserRole  // Role controlling access to admin operations.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
