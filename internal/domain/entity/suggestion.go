// Package entity contains the core business objects of the project.
package entity

// Suggestion records the care conditions a plant is suited for. Suggestions
// are stored facts, not computed recommendations; there is no ranking.
type Suggestion struct {
	ID         int64      // Numeric identity of the suggestion.
	PlantID    int64      // Referenced plant (non-owning reference).
	Light      LightLevel // Light the plant thrives in.
	SpaceType  SpaceType  // Space the plant fits.
	AirQuality AirQuality // Air quality the plant tolerates.
	Humidity   Humidity   // Humidity the plant prefers.
}

// LightLevel represents the amount of light a plant needs.
type LightLevel string

const (
	LightLow    LightLevel = "low"
	LightMedium LightLevel = "medium"
	LightHigh   LightLevel = "high"
)

// IsValid checks if the LightLevel is a valid value.
func (l LightLevel) IsValid() bool {
	switch l {
	case LightLow, LightMedium, LightHigh:
		return true
	default:
		return false
	}
}

// SpaceType represents the kind of space a plant fits.
type SpaceType string

const (
	SpaceSmall  SpaceType = "small"
	SpaceMedium SpaceType = "medium"
	SpaceLarge  SpaceType = "large"
)

// IsValid checks if the SpaceType is a valid value.
func (s SpaceType) IsValid() bool {
	switch s {
	case SpaceSmall, SpaceMedium, SpaceLarge:
		return true
	default:
		return false
	}
}

// AirQuality represents the air quality a plant tolerates.
type AirQuality string

const (
	AirPoor     AirQuality = "poor"
	AirModerate AirQuality = "moderate"
	AirGood     AirQuality = "good"
)

// IsValid checks if the AirQuality is a valid value.
func (a AirQuality) IsValid() bool {
	switch a {
	case AirPoor, AirModerate, AirGood:
		return true
	default:
		return false
	}
}

// Humidity represents the humidity level a plant prefers.
type Humidity string

const (
	HumidityLow    Humidity = "low"
	HumidityMedium Humidity = "medium"
	HumidityHigh   Humidity = "high"
)

// IsValid checks if the Humidity is a valid value.
func (h Humidity) IsValid() bool {
	switch h {
	case HumidityLow, HumidityMedium, HumidityHigh:
		return true
	default:
		return false
	}
}
