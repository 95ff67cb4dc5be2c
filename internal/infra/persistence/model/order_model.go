package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table. Its details
// are a composition: they are created together with the order and removed
// with it (ON DELETE CASCADE).
type OrderModel struct {
	ID         int64           `gorm:"primaryKey"`
	UserID     int64           `gorm:"not null;index"`
	Status     string          `gorm:"not null;default:'pending'"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time
	Details    []OrderDetailModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderDetailModel is the GORM-specific struct for the 'order_details' table.
// The plant reference is RESTRICT on delete: a plant with historical order
// details cannot be removed from the catalog.
type OrderDetailModel struct {
	ID       int64           `gorm:"primaryKey"`
	OrderID  int64           `gorm:"not null;index"`
	PlantID  int64           `gorm:"not null;index"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Plant *PlantModel `gorm:"foreignKey:PlantID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}
