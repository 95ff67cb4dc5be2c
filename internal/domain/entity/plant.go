// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plant is a catalog entry for a plant sold and cared for by the shop.
// It is referenced by numeric ID from order details, maintenance schedules
// and suggestions; those references are never back-linked in memory.
type Plant struct {
	ID          int64           // Numeric identity of the plant.
	Name        string          // Display name of the plant.
	Description string          // Free-text description shown in the catalog.
	CareGuide   string          // Free-text care instructions.
	Price       decimal.Decimal // Current unit price, two decimal places.
	ImageURL    string          // Public URL of the plant's image, if any.
	Category    PlantCategory   // Closed-set catalog category.
	CreatedAt   time.Time       // Timestamp of when this plant was created.
}

// PlantCategory represents the catalog category of a plant.
type PlantCategory string

const (
	CategoryIndoor    PlantCategory = "indoor"
	CategoryOutdoor   PlantCategory = "outdoor"
	CategorySucculent PlantCategory = "succulent"
	CategoryFlowering PlantCategory = "flowering"
	CategoryFoliage   PlantCategory = "foliage"
	CategoryHerb      PlantCategory = "herb"
)

// String returns the string representation of the PlantCategory.
func (c PlantCategory) String() string {
	return string(c)
}

// IsValid checks if the PlantCategory is a valid value.
func (c PlantCategory) IsValid() bool {
	switch c {
	case CategoryIndoor, CategoryOutdoor, CategorySucculent, CategoryFlowering, CategoryFoliage, CategoryHerb:
		return true
	default:
		return false
	}
}

// ParsePlantCategory converts a raw string into a PlantCategory.
// The boolean is false when the string is not part of the closed set.
func ParsePlantCategory(s string) (PlantCategory, bool) {
	c := PlantCategory(s)

	return c, c.IsValid()
}
