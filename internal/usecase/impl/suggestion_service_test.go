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

type suggestionFixture struct {
	svc            usecase.SuggestionUsecase
	suggestionRepo *fakeSuggestionRepo
	plantRepo      *fakePlantRepo
}

func newSuggestionFixture() *suggestionFixture {
	suggestionRepo := newFakeSuggestionRepo()
	plantRepo := newFakePlantRepo()

	return &suggestionFixture{
		svc:            NewSuggestionService(suggestionRepo, plantRepo),
		suggestionRepo: suggestionRepo,
		plantRepo:      plantRepo,
	}
}

func validSuggestionInput(plantID int64) *usecase.SuggestionInput {
	return &usecase.SuggestionInput{
		PlantID:    plantID,
		Light:      "medium",
		SpaceType:  "small",
		AirQuality: "good",
		Humidity:   "high",
	}
}

func TestSuggestionService_CreateSuggestion(t *testing.T) {
	fx := newSuggestionFixture()
	plant := fx.plantRepo.add("Monstera", "19.99")

	suggestion, err := fx.svc.CreateSuggestion(context.Background(), validSuggestionInput(plant.ID))
	require.NoError(t, err)

	assert.Equal(t, plant.ID, suggestion.PlantID)
	assert.Equal(t, "medium", string(suggestion.Light))
	assert.Equal(t, "high", string(suggestion.Humidity))
}

func TestSuggestionService_CreateSuggestion_UnknownPlant(t *testing.T) {
	fx := newSuggestionFixture()

	_, err := fx.svc.CreateSuggestion(context.Background(), validSuggestionInput(404))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 422, appErr.HTTPCode())
}

func TestSuggestionService_CreateSuggestion_InvalidEnums(t *testing.T) {
	fx := newSuggestionFixture()
	plant := fx.plantRepo.add("Monstera", "19.99")

	tests := []struct {
		name   string
		field  string
		mutate func(*usecase.SuggestionInput)
	}{
		{name: "light", field: "light", mutate: func(in *usecase.SuggestionInput) { in.Light = "blinding" }},
		{name: "space type", field: "spaceType", mutate: func(in *usecase.SuggestionInput) { in.SpaceType = "vast" }},
		{name: "air quality", field: "airQuality", mutate: func(in *usecase.SuggestionInput) { in.AirQuality = "pristine" }},
		{name: "humidity", field: "humidity", mutate: func(in *usecase.SuggestionInput) { in.Humidity = "soaking" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSuggestionInput(plant.ID)
			tt.mutate(input)

			_, err := fx.svc.CreateSuggestion(context.Background(), input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())

			// The offending attribute is named in the details.
			assert.Contains(t, appErr.Details(), tt.field)
			assert.Empty(t, fx.suggestionRepo.suggestions)
		})
	}
}

func TestSuggestionService_UpdateSuggestion(t *testing.T) {
	fx := newSuggestionFixture()
	plant := fx.plantRepo.add("Monstera", "19.99")

	created, err := fx.svc.CreateSuggestion(context.Background(), validSuggestionInput(plant.ID))
	require.NoError(t, err)

	input := validSuggestionInput(plant.ID)
	input.Light = "low"
	updated, err := fx.svc.UpdateSuggestion(context.Background(), created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "low", string(updated.Light))
}

func TestSuggestionService_UpdateSuggestion_NotFound(t *testing.T) {
	fx := newSuggestionFixture()
	plant := fx.plantRepo.add("Monstera", "19.99")

	_, err := fx.svc.UpdateSuggestion(context.Background(), 77, validSuggestionInput(plant.ID))
	assert.ErrorIs(t, err, domainerrors.ErrSuggestionNotFound)
}

func TestSuggestionService_DeleteSuggestion(t *testing.T) {
	fx := newSuggestionFixture()
	plant := fx.plantRepo.add("Monstera", "19.99")

	created, err := fx.svc.CreateSuggestion(context.Background(), validSuggestionInput(plant.ID))
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteSuggestion(context.Background(), created.ID))
	assert.Empty(t, fx.suggestionRepo.suggestions)

	err = fx.svc.DeleteSuggestion(context.Background(), created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSuggestionNotFound)
}
