package usecase

import (
	"context"
	"time"

	"planta/internal/domain/entity"
)

// --- Input DTOs ---

// CreateScheduleInput defines the data required to book a maintenance visit.
type CreateScheduleInput struct {
	UserID       int64     `json:"userId" validate:"required"`
	PlantID      int64     `json:"plantId" validate:"required"`
	ScheduleDate time.Time `json:"scheduleDate" validate:"required"`
}

// ScheduleUsecase defines the interface for maintenance schedule operations.
type ScheduleUsecase interface {
	// CreateSchedule resolves the user and plant references and persists a
	// new schedule in the scheduled state.
	CreateSchedule(ctx context.Context, input *CreateScheduleInput) (*entity.MaintenanceSchedule, error)

	// GetSchedule retrieves a schedule by ID.
	GetSchedule(ctx context.Context, id int64) (*entity.MaintenanceSchedule, error)

	// ListSchedulesByUser retrieves all schedules for a user.
	ListSchedulesByUser(ctx context.Context, userID int64) ([]*entity.MaintenanceSchedule, error)

	// ListSchedulesByPlant retrieves all schedules for a plant.
	ListSchedulesByPlant(ctx context.Context, plantID int64) ([]*entity.MaintenanceSchedule, error)

	// ListSchedulesByDateRange retrieves all schedules within [start, end].
	ListSchedulesByDateRange(ctx context.Context, start, end time.Time) ([]*entity.MaintenanceSchedule, error)

	// ListSchedules retrieves every schedule.
	ListSchedules(ctx context.Context) ([]*entity.MaintenanceSchedule, error)

	// UpdateStatus advances the schedule through its state machine.
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.MaintenanceSchedule, error)

	// DeleteSchedule removes a schedule.
	DeleteSchedule(ctx context.Context, id int64) error
}
