package impl

import (
	"context"
	"fmt"
	"time"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/domain/repository"
	"planta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type plantService struct {
	plantRepo repository.PlantRepository
}

// NewPlantService creates a new plant service instance
func NewPlantService(plantRepo repository.PlantRepository) usecase.PlantUsecase {
	return &plantService{
		plantRepo: plantRepo,
	}
}

// CreatePlant validates the input and persists a new catalog entry
func (s *plantService) CreatePlant(ctx context.Context, input *usecase.PlantInput) (*entity.Plant, error) {
	category, price, err := parsePlantInput(input)
	if err != nil {
		return nil, err
	}

	plant := &entity.Plant{
		Name:        input.Name,
		Description: input.Description,
		CareGuide:   input.CareGuide,
		Price:       price,
		ImageURL:    input.ImageURL,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.plantRepo.Create(ctx, plant); err != nil {
		return nil, errors.Wrap(err, "failed to create plant")
	}

	return plant, nil
}

// GetPlant retrieves a plant by ID
func (s *plantService) GetPlant(ctx context.Context, id int64) (*entity.Plant, error) {
	plant, err := s.plantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, domainerrors.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by ID")
	}

	return plant, nil
}

// ListPlants retrieves the whole catalog
func (s *plantService) ListPlants(ctx context.Context) ([]*entity.Plant, error) {
	plants, err := s.plantRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	return plants, nil
}

// UpdatePlant overwrites an existing plant's catalog fields. Order details
// that referenced the old price keep their snapshot; only future orders see
// the new price.
func (s *plantService) UpdatePlant(ctx context.Context, id int64, input *usecase.PlantInput) (*entity.Plant, error) {
	category, price, err := parsePlantInput(input)
	if err != nil {
		return nil, err
	}

	plant, err := s.plantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, domainerrors.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by ID")
	}

	plant.Name = input.Name
	plant.Description = input.Description
	plant.CareGuide = input.CareGuide
	plant.Price = price
	plant.ImageURL = input.ImageURL
	plant.Category = category

	if err := s.plantRepo.Update(ctx, plant); err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, domainerrors.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to update plant")
	}

	return plant, nil
}

// DeletePlant is the deletion guard for the catalog. A plant that is still
// referenced by order details, maintenance schedules or suggestions is never
// removed; the store's referential conflict is surfaced as an entity-in-use
// outcome naming the blocking relation where the driver reports it. Callers
// only ever see success, not-found, in-use or failed.
func (s *plantService) DeletePlant(ctx context.Context, id int64) error {
	if _, err := s.plantRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return domainerrors.ErrPlantNotFound
		}

		return domainerrors.ErrDeletionFailed.WithDetails(err.Error())
	}

	if err := s.plantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return domainerrors.ErrPlantNotFound
		}

		var conflict *repository.ReferenceConflictError
		if errors.As(err, &conflict) {
			details := "the plant is referenced by existing records; delete those records first"
			if conflict.Relation != "" {
				details = fmt.Sprintf(
					"the plant is referenced by existing %s; delete those records first", conflict.Relation)
			}

			return domainerrors.ErrEntityInUse.WithDetails(details)
		}

		return domainerrors.ErrDeletionFailed.WithDetails(err.Error())
	}

	return nil
}

// parsePlantInput validates the closed-set category and the fixed-point price.
func parsePlantInput(input *usecase.PlantInput) (entity.PlantCategory, decimal.Decimal, error) {
	category, ok := entity.ParsePlantCategory(input.Category)
	if !ok {
		return "", decimal.Zero, domainerrors.ErrInvalidEnumValue.WithDetails(
			fmt.Sprintf("category: %q is not a known plant category", input.Category))
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return "", decimal.Zero, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("price: %q is not a valid decimal number", input.Price))
	}
	if price.IsNegative() {
		return "", decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if !price.Round(2).Equal(price) {
		return "", decimal.Zero, domainerrors.ErrValidationFailed.WithDetails(
			"price must have at most two decimal places")
	}

	return category, price, nil
}
