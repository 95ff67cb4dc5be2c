// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"planta/internal/domain/entity"
	"planta/internal/errors"
)

// Domain-specific errors for schedule persistence.
var (
	// ErrScheduleNotFound is returned when a maintenance schedule is not found.
	ErrScheduleNotFound = errors.New("maintenance schedule not found")
)

// ScheduleRepository defines the interface for maintenance-schedule database operations.
type ScheduleRepository interface {
	// Create persists a new maintenance schedule.
	Create(ctx context.Context, schedule *entity.MaintenanceSchedule) error

	// FindByID retrieves a schedule by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.MaintenanceSchedule, error)

	// FindByUser retrieves all schedules for a specific user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.MaintenanceSchedule, error)

	// FindByPlant retrieves all schedules for a specific plant.
	FindByPlant(ctx context.Context, plantID int64) ([]*entity.MaintenanceSchedule, error)

	// FindByDateRange retrieves all schedules whose date falls within [start, end].
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.MaintenanceSchedule, error)

	// FindAll retrieves every schedule.
	FindAll(ctx context.Context) ([]*entity.MaintenanceSchedule, error)

	// UpdateStatus sets the status of a schedule.
	UpdateStatus(ctx context.Context, id int64, status entity.MaintenanceStatus) error

	// Delete removes a schedule by its ID.
	Delete(ctx context.Context, id int64) error
}
