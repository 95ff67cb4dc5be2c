package usecase

import (
	"context"

	"planta/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput defines the data an administrator can change on an account.
// Password is optional; when empty the existing credential is kept.
type UpdateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// AuthOutput returns the issued token together with the account's public fields.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UserUsecase defines the interface for account and authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a customer account and issues an access token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetUser retrieves an account by ID.
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// ListUsers retrieves every account.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser overwrites an account's fields, re-hashing the password
	// when a new one is supplied.
	UpdateUser(ctx context.Context, id int64, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, id int64) error
}
