package model

// SuggestionModel is the GORM-specific struct for the 'suggestions' table.
type SuggestionModel struct {
	ID         int64  `gorm:"primaryKey"`
	PlantID    int64  `gorm:"not null;index"`
	Light      string `gorm:"not null"`
	SpaceType  string `gorm:"not null"`
	AirQuality string `gorm:"not null"`
	Humidity   string `gorm:"not null"`

	Plant *PlantModel `gorm:"foreignKey:PlantID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (SuggestionModel) TableName() string {
	return "suggestions"
}
