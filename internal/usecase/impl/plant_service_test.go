package impl

import (
	"context"
	"testing"

	domainerrors "planta/internal/domain/errors"
	"planta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlantInput() *usecase.PlantInput {
	return &usecase.PlantInput{
		Name:        "Monstera Deliciosa",
		Description: "Large split-leaf houseplant",
		CareGuide:   "Water weekly, indirect light",
		Price:       "24.99",
		Category:    "indoor",
	}
}

func TestPlantService_CreatePlant(t *testing.T) {
	repo := newFakePlantRepo()
	svc := NewPlantService(repo)

	plant, err := svc.CreatePlant(context.Background(), validPlantInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), plant.ID)
	assert.Equal(t, "Monstera Deliciosa", plant.Name)
	assert.Equal(t, "24.99", plant.Price.StringFixed(2))
	assert.Equal(t, "indoor", plant.Category.String())
	assert.False(t, plant.CreatedAt.IsZero())
}

func TestPlantService_CreatePlant_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.PlantInput)
	}{
		{name: "unknown category", mutate: func(in *usecase.PlantInput) { in.Category = "aquatic" }},
		{name: "non-numeric price", mutate: func(in *usecase.PlantInput) { in.Price = "abc" }},
		{name: "negative price", mutate: func(in *usecase.PlantInput) { in.Price = "-5.00" }},
		{name: "too many decimal places", mutate: func(in *usecase.PlantInput) { in.Price = "9.999" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakePlantRepo()
			svc := NewPlantService(repo)

			input := validPlantInput()
			tt.mutate(input)

			_, err := svc.CreatePlant(context.Background(), input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Empty(t, repo.plants)
		})
	}
}

func TestPlantService_UpdatePlant_NotFound(t *testing.T) {
	svc := NewPlantService(newFakePlantRepo())

	_, err := svc.UpdatePlant(context.Background(), 42, validPlantInput())
	assert.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
}

func TestPlantService_UpdatePlant_KeepsIdentity(t *testing.T) {
	repo := newFakePlantRepo()
	existing := repo.add("Old Name", "10.00")
	svc := NewPlantService(repo)

	input := validPlantInput()
	plant, err := svc.UpdatePlant(context.Background(), existing.ID, input)
	require.NoError(t, err)

	assert.Equal(t, existing.ID, plant.ID)
	assert.Equal(t, "Monstera Deliciosa", plant.Name)
	assert.Equal(t, "24.99", plant.Price.StringFixed(2))
}

func TestPlantService_DeletePlant(t *testing.T) {
	repo := newFakePlantRepo()
	plant := repo.add("Snake Plant", "15.50")
	svc := NewPlantService(repo)

	err := svc.DeletePlant(context.Background(), plant.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.plants)
}

func TestPlantService_DeletePlant_NotFound(t *testing.T) {
	svc := NewPlantService(newFakePlantRepo())

	err := svc.DeletePlant(context.Background(), 7)
	assert.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
}

func TestPlantService_DeletePlant_InUse(t *testing.T) {
	repo := newFakePlantRepo()
	plant := repo.add("Fiddle Leaf Fig", "89.00")
	repo.inUseBy = "orders"
	svc := NewPlantService(repo)

	err := svc.DeletePlant(context.Background(), plant.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "orders")

	// The plant must survive the refused deletion.
	assert.Len(t, repo.plants, 1)
}

func TestPlantService_DeletePlant_StoreFailure(t *testing.T) {
	repo := newFakePlantRepo()
	plant := repo.add("Snake Plant", "15.50")
	repo.failDeleteWith = errors.New("connection reset by peer")
	svc := NewPlantService(repo)

	err := svc.DeletePlant(context.Background(), plant.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "DELETION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "connection reset")
	assert.Len(t, repo.plants, 1)
}

func TestPlantService_DeletePlant_LookupFailure(t *testing.T) {
	repo := newFakePlantRepo()
	plant := repo.add("Snake Plant", "15.50")
	repo.failWith = errors.New("connection reset by peer")
	svc := NewPlantService(repo)

	err := svc.DeletePlant(context.Background(), plant.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "DELETION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "connection reset")
}
