package service

import "planta/internal/domain/entity"

// Claims carries the identity information extracted from a validated token.
type Claims struct {
	UserID int64
	Role   entity.UserRole
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token for a user with the given role.
	Issue(userID int64, role entity.UserRole) (string, error)

	// Validate checks a token string and returns the claims it carries.
	Validate(tokenString string) (*Claims, error)
}
