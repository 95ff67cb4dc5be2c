// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"planta/internal/domain/entity"
	"planta/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateEmail when the email
	// is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update overwrites an existing user's account fields.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by their ID.
	Delete(ctx context.Context, id int64) error
}
