// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/domain/repository"
	"planta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// scheduleRepository implements the repository.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

// Create persists a new maintenance schedule.
func (repo *scheduleRepository) Create(ctx context.Context, schedule *entity.MaintenanceSchedule) error {
	scheduleM := fromScheduleDomain(schedule)

	if err := repo.db.WithContext(ctx).Create(scheduleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("schedule references a missing user or plant")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required schedule information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create maintenance schedule")
	}

	schedule.ID = scheduleM.ID

	return nil
}

// FindByID retrieves a schedule by its unique ID.
func (repo *scheduleRepository) FindByID(ctx context.Context, id int64) (*entity.MaintenanceSchedule, error) {
	var scheduleM model.MaintenanceScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule by ID")
	}

	return toScheduleDomain(&scheduleM), nil
}

// FindByUser retrieves all schedules for a specific user.
func (repo *scheduleRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.MaintenanceSchedule, error) {
	var scheduleModels []*model.MaintenanceScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("schedule_date ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedules by user")
	}

	return toScheduleDomainSlice(scheduleModels), nil
}

// FindByPlant retrieves all schedules for a specific plant.
func (repo *scheduleRepository) FindByPlant(ctx context.Context, plantID int64) ([]*entity.MaintenanceSchedule, error) {
	var scheduleModels []*model.MaintenanceScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order("schedule_date ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedules by plant")
	}

	return toScheduleDomainSlice(scheduleModels), nil
}

// FindByDateRange retrieves all schedules whose date falls within [start, end].
func (repo *scheduleRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.MaintenanceSchedule, error) {
	var scheduleModels []*model.MaintenanceScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("schedule_date BETWEEN ? AND ?", start, end).
		Order("schedule_date ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedules by date range")
	}

	return toScheduleDomainSlice(scheduleModels), nil
}

// FindAll retrieves every schedule.
func (repo *scheduleRepository) FindAll(ctx context.Context) ([]*entity.MaintenanceSchedule, error) {
	var scheduleModels []*model.MaintenanceScheduleModel

	if err := repo.db.WithContext(ctx).
		Order("schedule_date ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedules")
	}

	return toScheduleDomainSlice(scheduleModels), nil
}

// UpdateStatus sets the status of a schedule.
func (repo *scheduleRepository) UpdateStatus(ctx context.Context, id int64, status entity.MaintenanceStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MaintenanceScheduleModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update schedule status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

// Delete removes a schedule by its ID.
func (repo *scheduleRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MaintenanceScheduleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete schedule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toScheduleDomain converts a GORM MaintenanceScheduleModel to a domain MaintenanceSchedule entity.
func toScheduleDomain(data *model.MaintenanceScheduleModel) *entity.MaintenanceSchedule {
	if data == nil {
		return nil
	}

	return &entity.MaintenanceSchedule{
		ID:           data.ID,
		UserID:       data.UserID,
		PlantID:      data.PlantID,
		ScheduleDate: data.ScheduleDate,
		Status:       entity.MaintenanceStatus(data.Status),
	}
}

func toScheduleDomainSlice(models []*model.MaintenanceScheduleModel) []*entity.MaintenanceSchedule {
	schedules := make([]*entity.MaintenanceSchedule, 0, len(models))
	for _, scheduleM := range models {
		schedules = append(schedules, toScheduleDomain(scheduleM))
	}

	return schedules
}

// fromScheduleDomain converts a domain MaintenanceSchedule entity to a GORM MaintenanceScheduleModel.
func fromScheduleDomain(data *entity.MaintenanceSchedule) *model.MaintenanceScheduleModel {
	if data == nil {
		return nil
	}

	return &model.MaintenanceScheduleModel{
		ID:           data.ID,
		UserID:       data.UserID,
		PlantID:      data.PlantID,
		ScheduleDate: data.ScheduleDate,
		Status:       data.Status.String(),
	}
}
