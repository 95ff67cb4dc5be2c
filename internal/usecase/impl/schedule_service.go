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
)

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	plantRepo    repository.PlantRepository
	userRepo     repository.UserRepository
}

// NewScheduleService creates a new maintenance schedule service instance
func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	plantRepo repository.PlantRepository,
	userRepo repository.UserRepository,
) usecase.ScheduleUsecase {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		plantRepo:    plantRepo,
		userRepo:     userRepo,
	}
}

// CreateSchedule resolves both references before anything is written and
// books the visit in the scheduled state.
func (s *scheduleService) CreateSchedule(ctx context.Context, input *usecase.CreateScheduleInput) (*entity.MaintenanceSchedule, error) {
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WithDetails(
				fmt.Sprintf("user %d does not exist", input.UserID))
		}

		return nil, errors.Wrap(err, "failed to resolve schedule user")
	}

	if _, err := s.plantRepo.FindByID(ctx, input.PlantID); err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WithDetails(
				fmt.Sprintf("plant %d does not exist", input.PlantID))
		}

		return nil, errors.Wrap(err, "failed to resolve schedule plant")
	}

	schedule := &entity.MaintenanceSchedule{
		UserID:       input.UserID,
		PlantID:      input.PlantID,
		ScheduleDate: input.ScheduleDate.UTC(),
		Status:       entity.MaintenanceScheduled,
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, errors.Wrap(err, "failed to create schedule")
	}

	return schedule, nil
}

// GetSchedule retrieves a schedule by ID
func (s *scheduleService) GetSchedule(ctx context.Context, id int64) (*entity.MaintenanceSchedule, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, domainerrors.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule by ID")
	}

	return schedule, nil
}

// ListSchedulesByUser retrieves all schedules for a user
func (s *scheduleService) ListSchedulesByUser(ctx context.Context, userID int64) ([]*entity.MaintenanceSchedule, error) {
	schedules, err := s.scheduleRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find schedules by user")
	}

	return schedules, nil
}

// ListSchedulesByPlant retrieves all schedules for a plant
func (s *scheduleService) ListSchedulesByPlant(ctx context.Context, plantID int64) ([]*entity.MaintenanceSchedule, error) {
	schedules, err := s.scheduleRepo.FindByPlant(ctx, plantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find schedules by plant")
	}

	return schedules, nil
}

// ListSchedulesByDateRange retrieves schedules within [start, end].
// The range itself is validated; the projection carries no further rules.
func (s *scheduleService) ListSchedulesByDateRange(ctx context.Context, start, end time.Time) ([]*entity.MaintenanceSchedule, error) {
	if start.After(end) {
		return nil, domainerrors.ErrInvalidRange.WithDetails(
			fmt.Sprintf("start %s is after end %s", start.Format(time.DateOnly), end.Format(time.DateOnly)))
	}

	schedules, err := s.scheduleRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find schedules by date range")
	}

	return schedules, nil
}

// ListSchedules retrieves every schedule
func (s *scheduleService) ListSchedules(ctx context.Context) ([]*entity.MaintenanceSchedule, error) {
	schedules, err := s.scheduleRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schedules")
	}

	return schedules, nil
}

// UpdateStatus advances a schedule through its state machine.
func (s *scheduleService) UpdateStatus(ctx context.Context, id int64, status string) (*entity.MaintenanceSchedule, error) {
	next, ok := entity.ParseMaintenanceStatus(status)
	if !ok {
		return nil, domainerrors.ErrInvalidEnumValue.WithDetails(
			fmt.Sprintf("status: %q is not a known maintenance status", status))
	}

	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, domainerrors.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule by ID")
	}

	if !schedule.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("schedule %d cannot move from %s to %s", id, schedule.Status, next))
	}

	if err := s.scheduleRepo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, domainerrors.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to update schedule status")
	}

	schedule.Status = next

	return schedule, nil
}

// DeleteSchedule removes a schedule
func (s *scheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return domainerrors.ErrScheduleNotFound
		}

		return errors.Wrap(err, "failed to delete schedule")
	}

	return nil
}
