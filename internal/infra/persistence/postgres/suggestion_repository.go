// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/domain/repository"
	"planta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// suggestionRepository implements the repository.SuggestionRepository interface.
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository is the constructor for suggestionRepository.
func NewSuggestionRepository(db *gorm.DB) repository.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

// Create persists a new suggestion.
func (repo *suggestionRepository) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	suggestionM := fromSuggestionDomain(suggestion)

	if err := repo.db.WithContext(ctx).Create(suggestionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("suggestion references a missing plant")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required suggestion information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create suggestion")
	}

	suggestion.ID = suggestionM.ID

	return nil
}

// FindByID retrieves a suggestion by its unique ID.
func (repo *suggestionRepository) FindByID(ctx context.Context, id int64) (*entity.Suggestion, error) {
	var suggestionM model.SuggestionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&suggestionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSuggestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find suggestion by ID")
	}

	return toSuggestionDomain(&suggestionM), nil
}

// FindByPlant retrieves all suggestions referencing a specific plant.
func (repo *suggestionRepository) FindByPlant(ctx context.Context, plantID int64) ([]*entity.Suggestion, error) {
	var suggestionModels []*model.SuggestionModel

	if err := repo.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order("id ASC").
		Find(&suggestionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find suggestions by plant")
	}

	suggestions := make([]*entity.Suggestion, 0, len(suggestionModels))
	for _, suggestionM := range suggestionModels {
		suggestions = append(suggestions, toSuggestionDomain(suggestionM))
	}

	return suggestions, nil
}

// FindAll retrieves every suggestion.
func (repo *suggestionRepository) FindAll(ctx context.Context) ([]*entity.Suggestion, error) {
	var suggestionModels []*model.SuggestionModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&suggestionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find suggestions")
	}

	suggestions := make([]*entity.Suggestion, 0, len(suggestionModels))
	for _, suggestionM := range suggestionModels {
		suggestions = append(suggestions, toSuggestionDomain(suggestionM))
	}

	return suggestions, nil
}

// Update overwrites an existing suggestion.
func (repo *suggestionRepository) Update(ctx context.Context, suggestion *entity.Suggestion) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SuggestionModel{}).
		Where("id = ?", suggestion.ID).
		Updates(map[string]any{
			"plant_id":    suggestion.PlantID,
			"light":       string(suggestion.Light),
			"space_type":  string(suggestion.SpaceType),
			"air_quality": string(suggestion.AirQuality),
			"humidity":    string(suggestion.Humidity),
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("suggestion references a missing plant")
		}

		return errors.Wrap(result.Error, "failed to update suggestion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSuggestionNotFound
	}

	return nil
}

// Delete removes a suggestion by its ID.
func (repo *suggestionRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SuggestionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete suggestion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSuggestionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSuggestionDomain converts a GORM SuggestionModel to a domain Suggestion entity.
func toSuggestionDomain(data *model.SuggestionModel) *entity.Suggestion {
	if data == nil {
		return nil
	}

	return &entity.Suggestion{
		ID:         data.ID,
		PlantID:    data.PlantID,
		Light:      entity.LightLevel(data.Light),
		SpaceType:  entity.SpaceType(data.SpaceType),
		AirQuality: entity.AirQuality(data.AirQuality),
		Humidity:   entity.Humidity(data.Humidity),
	}
}

// fromSuggestionDomain converts a domain Suggestion entity to a GORM SuggestionModel.
func fromSuggestionDomain(data *entity.Suggestion) *model.SuggestionModel {
	if data == nil {
		return nil
	}

	return &model.SuggestionModel{
		ID:         data.ID,
		PlantID:    data.PlantID,
		Light:      string(data.Light),
		SpaceType:  string(data.SpaceType),
		AirQuality: string(data.AirQuality),
		Humidity:   string(data.Humidity),
	}
}
