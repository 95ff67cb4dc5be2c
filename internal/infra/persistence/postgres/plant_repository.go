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

// plantRepository implements the repository.PlantRepository interface.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{
		db: db,
	}
}

// Create persists a new plant.
func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	if err := repo.db.WithContext(ctx).Create(plantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required plant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plant")
	}

	// Update the entity with generated values
	plant.ID = plantM.ID
	plant.CreatedAt = plantM.CreatedAt

	return nil
}

// FindByID retrieves a plant by its unique ID.
func (repo *plantRepository) FindByID(ctx context.Context, id int64) (*entity.Plant, error) {
	var plantM model.PlantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&plantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by ID")
	}

	return toPlantDomain(&plantM), nil
}

// FindAll retrieves every plant in the catalog.
func (repo *plantRepository) FindAll(ctx context.Context) ([]*entity.Plant, error) {
	var plantModels []*model.PlantModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&plantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find plants")
	}

	plants := make([]*entity.Plant, 0, len(plantModels))
	for _, plantM := range plantModels {
		plants = append(plants, toPlantDomain(plantM))
	}

	return plants, nil
}

// Update overwrites an existing plant's catalog fields.
func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", plant.ID).
		Updates(map[string]any{
			"name":        plant.Name,
			"description": plant.Description,
			"care_guide":  plant.CareGuide,
			"price":       plant.Price,
			"image_url":   plant.ImageURL,
			"category":    plant.Category.String(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update plant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// Delete removes a plant by its ID. A foreign key violation means order
// details, schedules or suggestions still reference the plant; the violation
// is translated into a ReferenceConflictError naming the blocking relation
// so the caller can report which records stand in the way.
func (repo *plantRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlantModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return &repository.ReferenceConflictError{
				Relation: classifyBlockingRelation(result.Error),
			}
		}

		return errors.Wrap(result.Error, "failed to delete plant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPlantDomain converts a GORM PlantModel to a domain Plant entity.
func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	return &entity.Plant{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CareGuide:   data.CareGuide,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Category:    entity.PlantCategory(data.Category),
		CreatedAt:   data.CreatedAt,
	}
}

// fromPlantDomain converts a domain Plant entity to a GORM PlantModel.
func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CareGuide:   data.CareGuide,
		Price:       data.Price,
		ImageURL:    data.ImageURL,
		Category:    data.Category.String(),
		CreatedAt:   data.CreatedAt,
	}
}
