package model

import "time"

// MaintenanceScheduleModel is the GORM-specific struct for the
// 'maintenance_schedules' table. Both foreign keys are RESTRICT on delete:
// a plant or user with open schedules cannot be removed.
type MaintenanceScheduleModel struct {
	ID           int64     `gorm:"primaryKey"`
	UserID       int64     `gorm:"not null;index"`
	PlantID      int64     `gorm:"not null;index"`
	ScheduleDate time.Time `gorm:"type:date;not null"`
	Status       string    `gorm:"not null;default:'scheduled'"`

	Plant *PlantModel `gorm:"foreignKey:PlantID;constraint:OnDelete:RESTRICT"`
	User  *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (MaintenanceScheduleModel) TableName() string {
	return "maintenance_schedules"
}
