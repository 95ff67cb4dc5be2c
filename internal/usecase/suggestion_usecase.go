package usecase

import (
	"context"

	"planta/internal/domain/entity"
)

// --- Input DTOs ---

// SuggestionInput defines the data required to create or update a suggestion.
// Each attribute must belong to its closed enumeration.
type SuggestionInput struct {
	PlantID    int64  `json:"plantId" validate:"required"`
	Light      string `json:"light" validate:"required"`
	SpaceType  string `json:"spaceType" validate:"required"`
	AirQuality string `json:"airQuality" validate:"required"`
	Humidity   string `json:"humidity" validate:"required"`
}

// SuggestionUsecase defines the interface for care-suggestion operations.
type SuggestionUsecase interface {
	// CreateSuggestion resolves the plant reference, validates the four
	// attributes against their closed sets and persists the suggestion.
	CreateSuggestion(ctx context.Context, input *SuggestionInput) (*entity.Suggestion, error)

	// GetSuggestion retrieves a suggestion by ID.
	GetSuggestion(ctx context.Context, id int64) (*entity.Suggestion, error)

	// SuggestionsForPlant retrieves all suggestions referencing a plant.
	SuggestionsForPlant(ctx context.Context, plantID int64) ([]*entity.Suggestion, error)

	// ListSuggestions retrieves every suggestion.
	ListSuggestions(ctx context.Context) ([]*entity.Suggestion, error)

	// UpdateSuggestion overwrites an existing suggestion after the same
	// validation as CreateSuggestion.
	UpdateSuggestion(ctx context.Context, id int64, input *SuggestionInput) (*entity.Suggestion, error)

	// DeleteSuggestion removes a suggestion.
	DeleteSuggestion(ctx context.Context, id int64) error
}
