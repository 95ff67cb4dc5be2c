// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"planta/internal/domain/entity"
	"planta/internal/errors"
)

// Domain-specific errors for suggestion persistence.
var (
	// ErrSuggestionNotFound is returned when a suggestion is not found.
	ErrSuggestionNotFound = errors.New("suggestion not found")
)

// SuggestionRepository defines the interface for suggestion-related database operations.
type SuggestionRepository interface {
	// Create persists a new suggestion.
	Create(ctx context.Context, suggestion *entity.Suggestion) error

	// FindByID retrieves a suggestion by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Suggestion, error)

	// FindByPlant retrieves all suggestions referencing a specific plant.
	FindByPlant(ctx context.Context, plantID int64) ([]*entity.Suggestion, error)

	// FindAll retrieves every suggestion.
	FindAll(ctx context.Context) ([]*entity.Suggestion, error)

	// Update overwrites an existing suggestion.
	Update(ctx context.Context, suggestion *entity.Suggestion) error

	// Delete removes a suggestion by its ID.
	Delete(ctx context.Context, id int64) error
}
