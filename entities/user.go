package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email                  string    `gorm:"uniqueIndex" json:"email"`
	Password               string    `json:"-"`
	Name                   string    `json:"name"`
	ImageURL               string    `json:"image_url,omitempty"`
	DefaultLocationLat     *float64  `json:"default_location_lat,omitempty"`
	DefaultLocationLng     *float64  `json:"default_location_lng,omitempty"`
	DefaultLocationAddress string    `json:"default_location_address,omitempty"`

	DietaryRequirements []DietaryRequirement `gorm:"many2many:user_dietary_requirements" json:"dietary_requirements,omitempty"`
	Timestamp
}
