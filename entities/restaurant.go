package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Restaurant struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GooglePlaceID     string         `gorm:"uniqueIndex" json:"google_place_id"`
	Name              string         `json:"name"`
	Address           string         `json:"address"`
	Latitude          float64        `json:"latitude"`
	Longitude         float64        `json:"longitude"`
	FoodTypes         pq.StringArray `gorm:"type:text[]" json:"food_types"`
	EstablishmentType string         `json:"establishment_type"` // "sit-down", "takeaway", "cafe"
	PriceLevel        *int           `json:"price_level,omitempty"`
	Rating            *float64       `json:"rating,omitempty"`
	UserRatingsTotal  int            `json:"user_ratings_total"`
	OpeningHours      string         `gorm:"type:text" json:"opening_hours,omitempty"`
	PhoneNumber       string         `json:"phone_number,omitempty"`
	Website           string         `json:"website,omitempty"`
	PhotoURL          string         `json:"photo_url,omitempty"`
	VisitCount        int            `json:"visit_count"`
	LastVisitedAt     *time.Time     `json:"last_visited_at,omitempty"`
	LastCachedAt      time.Time      `gorm:"type:timestamp" json:"last_cached_at"`

	Timestamp
}
