package impl

import (
	"context"
	"fmt"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/domain/repository"
	"planta/internal/usecase"

	"github.com/pkg/errors"
)

type suggestionService struct {
	suggestionRepo repository.SuggestionRepository
	plantRepo      repository.PlantRepository
}

// NewSuggestionService creates a new suggestion service instance
func NewSuggestionService(
	suggestionRepo repository.SuggestionRepository,
	plantRepo repository.PlantRepository,
) usecase.SuggestionUsecase {
	return &suggestionService{
		suggestionRepo: suggestionRepo,
		plantRepo:      plantRepo,
	}
}

// CreateSuggestion resolves the plant reference, validates the care
// attributes and persists the suggestion.
func (s *suggestionService) CreateSuggestion(ctx context.Context, input *usecase.SuggestionInput) (*entity.Suggestion, error) {
	suggestion, err := s.buildSuggestion(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.suggestionRepo.Create(ctx, suggestion); err != nil {
		return nil, errors.Wrap(err, "failed to create suggestion")
	}

	return suggestion, nil
}

// GetSuggestion retrieves a suggestion by ID
func (s *suggestionService) GetSuggestion(ctx context.Context, id int64) (*entity.Suggestion, error) {
	suggestion, err := s.suggestionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSuggestionNotFound) {
			return nil, domainerrors.ErrSuggestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find suggestion by ID")
	}

	return suggestion, nil
}

// SuggestionsForPlant retrieves all suggestions referencing a plant
func (s *suggestionService) SuggestionsForPlant(ctx context.Context, plantID int64) ([]*entity.Suggestion, error) {
	suggestions, err := s.suggestionRepo.FindByPlant(ctx, plantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find suggestions by plant")
	}

	return suggestions, nil
}

// ListSuggestions retrieves every suggestion
func (s *suggestionService) ListSuggestions(ctx context.Context) ([]*entity.Suggestion, error) {
	suggestions, err := s.suggestionRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suggestions")
	}

	return suggestions, nil
}

// UpdateSuggestion overwrites an existing suggestion after full validation.
func (s *suggestionService) UpdateSuggestion(ctx context.Context, id int64, input *usecase.SuggestionInput) (*entity.Suggestion, error) {
	if _, err := s.suggestionRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSuggestionNotFound) {
			return nil, domainerrors.ErrSuggestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find suggestion by ID")
	}

	suggestion, err := s.buildSuggestion(ctx, input)
	if err != nil {
		return nil, err
	}
	suggestion.ID = id

	if err := s.suggestionRepo.Update(ctx, suggestion); err != nil {
		if errors.Is(err, repository.ErrSuggestionNotFound) {
			return nil, domainerrors.ErrSuggestionNotFound
		}

		return nil, errors.Wrap(err, "failed to update suggestion")
	}

	return suggestion, nil
}

// DeleteSuggestion removes a suggestion
func (s *suggestionService) DeleteSuggestion(ctx context.Context, id int64) error {
	if err := s.suggestionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSuggestionNotFound) {
			return domainerrors.ErrSuggestionNotFound
		}

		return errors.Wrap(err, "failed to delete suggestion")
	}

	return nil
}

// buildSuggestion resolves the plant reference and parses the four closed
// enumerations, naming the offending field on failure.
func (s *suggestionService) buildSuggestion(ctx context.Context, input *usecase.SuggestionInput) (*entity.Suggestion, error) {
	if _, err := s.plantRepo.FindByID(ctx, input.PlantID); err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WithDetails(
				fmt.Sprintf("plant %d does not exist", input.PlantID))
		}

		return nil, errors.Wrap(err, "failed to resolve suggestion plant")
	}

	light := entity.LightLevel(input.Light)
	if !light.IsValid() {
		return nil, invalidEnum("light", input.Light)
	}

	spaceType := entity.SpaceType(input.SpaceType)
	if !spaceType.IsValid() {
		return nil, invalidEnum("spaceType", input.SpaceType)
	}

	airQuality := entity.AirQuality(input.AirQuality)
	if !airQuality.IsValid() {
		return nil, invalidEnum("airQuality", input.AirQuality)
	}

	humidity := entity.Humidity(input.Humidity)
	if !humidity.IsValid() {
		return nil, invalidEnum("humidity", input.Humidity)
	}

	return &entity.Suggestion{
		PlantID:    input.PlantID,
		Light:      light,
		SpaceType:  spaceType,
		AirQuality: airQuality,
		Humidity:   humidity,
	}, nil
}

func invalidEnum(field, value string) error {
	return domainerrors.ErrInvalidEnumValue.WithDetails(
		fmt.Sprintf("%s: %q is not an allowed value", field, value))
}
