// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"planta/internal/domain/entity"
)

// --- Input DTOs ---

// PlantInput defines the data required to create or update a plant.
type PlantInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	CareGuide   string `json:"careGuide"`
	Price       string `json:"price" validate:"required"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category" validate:"required"`
}

// PlantUsecase defines the interface for plant catalog operations, including
// the referential-integrity-guarded deletion.
type PlantUsecase interface {
	// CreatePlant validates the category and price and persists a new plant.
	CreatePlant(ctx context.Context, input *PlantInput) (*entity.Plant, error)

	// GetPlant retrieves a plant by ID.
	GetPlant(ctx context.Context, id int64) (*entity.Plant, error)

	// ListPlants retrieves the whole catalog.
	ListPlants(ctx context.Context) ([]*entity.Plant, error)

	// UpdatePlant overwrites an existing plant's catalog fields.
	UpdatePlant(ctx context.Context, id int64, input *PlantInput) (*entity.Plant, error)

	// DeletePlant removes a plant unless historical records still reference
	// it. The outcome is one of: success, not-found, in-use, failed.
	DeletePlant(ctx context.Context, id int64) error
}
