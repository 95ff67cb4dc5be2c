// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"fmt"

	"planta/internal/domain/entity"
	"planta/internal/errors"
)

// Domain-specific errors for plant persistence.
var (
	// ErrPlantNotFound is returned when a plant is not found.
	ErrPlantNotFound = errors.New("plant not found")
)

// ReferenceConflictError is returned by Delete when the store refuses to
// remove a plant because historical records still reference it. Relation
// names the blocking relationship class ("orders", "maintenance schedules",
// "suggestions") when the driver reports enough detail, otherwise it is
// empty.
type ReferenceConflictError struct {
	Relation string
}

// Error implements the error interface.
func (e *ReferenceConflictError) Error() string {
	if e.Relation == "" {
		return "plant is referenced by existing records"
	}

	return fmt.Sprintf("plant is referenced by existing %s", e.Relation)
}

// PlantRepository defines the interface for plant-related database operations.
type PlantRepository interface {
	// Create persists a new plant.
	Create(ctx context.Context, plant *entity.Plant) error

	// FindByID retrieves a plant by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Plant, error)

	// FindAll retrieves every plant in the catalog.
	FindAll(ctx context.Context) ([]*entity.Plant, error)

	// Update overwrites an existing plant's catalog fields.
	Update(ctx context.Context, plant *entity.Plant) error

	// Delete removes a plant by its ID. It returns ErrPlantNotFound when the
	// row does not exist and *ReferenceConflictError when a referential
	// integrity constraint blocks the removal. Any other error is an
	// unexpected storage failure.
	Delete(ctx context.Context, id int64) error
}
