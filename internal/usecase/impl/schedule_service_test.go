package impl

import (
	"context"
	"testing"
	"time"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleFixture struct {
	svc          usecase.ScheduleUsecase
	scheduleRepo *fakeScheduleRepo
	plantRepo    *fakePlantRepo
	userRepo     *fakeUserRepo
}

func newScheduleFixture() *scheduleFixture {
	scheduleRepo := newFakeScheduleRepo()
	plantRepo := newFakePlantRepo()
	userRepo := newFakeUserRepo()

	return &scheduleFixture{
		svc:          NewScheduleService(scheduleRepo, plantRepo, userRepo),
		scheduleRepo: scheduleRepo,
		plantRepo:    plantRepo,
		userRepo:     userRepo,
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)

	return date
}

func TestScheduleService_CreateSchedule(t *testing.T) {
	fx := newScheduleFixture()
	user := fx.userRepo.add("Alice", "alice@example.com")
	plant := fx.plantRepo.add("Monstera", "19.99")

	schedule, err := fx.svc.CreateSchedule(context.Background(), &usecase.CreateScheduleInput{
		UserID:       user.ID,
		PlantID:      plant.ID,
		ScheduleDate: mustDate(t, "2026-09-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MaintenanceScheduled, schedule.Status)
	assert.Equal(t, user.ID, schedule.UserID)
	assert.Equal(t, plant.ID, schedule.PlantID)
}

func TestScheduleService_CreateSchedule_UnknownReferences(t *testing.T) {
	fx := newScheduleFixture()
	user := fx.userRepo.add("Alice", "alice@example.com")
	plant := fx.plantRepo.add("Monstera", "19.99")

	tests := []struct {
		name  string
		input *usecase.CreateScheduleInput
	}{
		{
			name:  "unknown user",
			input: &usecase.CreateScheduleInput{UserID: 999, PlantID: plant.ID, ScheduleDate: mustDate(t, "2026-09-15")},
		},
		{
			name:  "unknown plant",
			input: &usecase.CreateScheduleInput{UserID: user.ID, PlantID: 999, ScheduleDate: mustDate(t, "2026-09-15")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.svc.CreateSchedule(context.Background(), tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 422, appErr.HTTPCode())
			assert.Empty(t, fx.scheduleRepo.schedules)
		})
	}
}

func TestScheduleService_ListSchedulesByDateRange(t *testing.T) {
	fx := newScheduleFixture()
	user := fx.userRepo.add("Alice", "alice@example.com")
	plant := fx.plantRepo.add("Monstera", "19.99")

	for _, day := range []string{"2026-09-01", "2026-09-10", "2026-09-20"} {
		_, err := fx.svc.CreateSchedule(context.Background(), &usecase.CreateScheduleInput{
			UserID:       user.ID,
			PlantID:      plant.ID,
			ScheduleDate: mustDate(t, day),
		})
		require.NoError(t, err)
	}

	schedules, err := fx.svc.ListSchedulesByDateRange(context.Background(),
		mustDate(t, "2026-09-05"), mustDate(t, "2026-09-15"))
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, mustDate(t, "2026-09-10"), schedules[0].ScheduleDate)

	// Range bounds are inclusive.
	schedules, err = fx.svc.ListSchedulesByDateRange(context.Background(),
		mustDate(t, "2026-09-01"), mustDate(t, "2026-09-20"))
	require.NoError(t, err)
	assert.Len(t, schedules, 3)
}

func TestScheduleService_ListSchedulesByDateRange_Inverted(t *testing.T) {
	fx := newScheduleFixture()

	_, err := fx.svc.ListSchedulesByDateRange(context.Background(),
		mustDate(t, "2026-09-15"), mustDate(t, "2026-09-05"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestScheduleService_UpdateStatus(t *testing.T) {
	fx := newScheduleFixture()
	user := fx.userRepo.add("Alice", "alice@example.com")
	plant := fx.plantRepo.add("Monstera", "19.99")

	schedule, err := fx.svc.CreateSchedule(context.Background(), &usecase.CreateScheduleInput{
		UserID:       user.ID,
		PlantID:      plant.ID,
		ScheduleDate: mustDate(t, "2026-09-15"),
	})
	require.NoError(t, err)

	updated, err := fx.svc.UpdateStatus(context.Background(), schedule.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, entity.MaintenanceCompleted, updated.Status)

	// completed is terminal; nothing moves out of it
	_, err = fx.svc.UpdateStatus(context.Background(), schedule.ID, "scheduled")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestScheduleService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := newScheduleFixture()

	_, err := fx.svc.UpdateStatus(context.Background(), 1, "postponed")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestScheduleService_DeleteSchedule_NotFound(t *testing.T) {
	fx := newScheduleFixture()

	err := fx.svc.DeleteSchedule(context.Background(), 3)
	assert.ErrorIs(t, err, domainerrors.ErrScheduleNotFound)
}
