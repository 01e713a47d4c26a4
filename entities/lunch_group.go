package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type LunchGroup struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Date            time.Time `gorm:"type:date" json:"date"`
	Status          string    `json:"status"` // "planning", "voting", "decided", "completed"
	LocationLat     float64   `json:"location_lat"`
	LocationLng     float64   `json:"location_lng"`
	LocationAddress string    `json:"location_address,omitempty"`

	// Union of all participants' dietary requirement ids, recomputed on
	// every membership change.
	AggregatedDietaryRequirements pq.StringArray `gorm:"type:text[]" json:"aggregated_dietary_requirements"`

	SelectedRestaurantID *uuid.UUID `gorm:"type:uuid" json:"selected_restaurant_id,omitempty"`
	CreatedByID          uuid.UUID  `gorm:"type:uuid" json:"created_by_id"`

	SelectedRestaurant *Restaurant             `gorm:"foreignKey:SelectedRestaurantID" json:"selected_restaurant,omitempty"`
	CreatedBy          *User                   `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Participants       []LunchGroupParticipant `gorm:"constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	Votes              []Vote                  `gorm:"constraint:OnDelete:CASCADE" json:"votes,omitempty"`
	Timestamp
}

type LunchGroupParticipant struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LunchGroupID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_participant_group_user" json:"lunch_group_id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_participant_group_user" json:"user_id"`
	JoinedAt     time.Time `gorm:"type:timestamp" json:"joined_at"`

	User *User `gorm:"foreignKey:UserID"`
}

type Vote struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LunchGroupID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_vote_group_user_restaurant" json:"lunch_group_id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_vote_group_user_restaurant" json:"user_id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_vote_group_user_restaurant" json:"restaurant_id"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`

	User       *User       `gorm:"foreignKey:UserID"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
}
