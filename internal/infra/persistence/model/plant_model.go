// Package model contains the GORM-specific persistence structs. They mirror
// the database schema and are mapped to and from the pure domain entities in
// the postgres package.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlantModel is the GORM-specific struct for the 'plants' table.
type PlantModel struct {
	ID          int64           `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"type:text"`
	CareGuide   string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL    string
	Category    string `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}
