package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSearchRestaurants = "restaurants retrieved successfully"
	MessageFailedSearchRestaurants  = "failed to search restaurants"

	ErrRestaurantNotFound = errors.New("restaurant not found")
)

type (
	SearchRestaurantsRequest struct {
		Latitude          float64  `json:"latitude" validate:"min=-90,max=90"`
		Longitude         float64  `json:"longitude" validate:"min=-180,max=180"`
		Radius            float64  `json:"radius" validate:"omitempty,gt=0,max=5000"`
		FoodTypes         []string `json:"food_types" validate:"omitempty,dive,required"`
		EstablishmentType string   `json:"establishment_type" validate:"omitempty,oneof=sit-down takeaway cafe"`
		MaxWalkTime       int      `json:"max_walk_time" validate:"omitempty,gt=0"`
	}

	RestaurantResponse struct {
		ID                string     `json:"id"`
		Name              string     `json:"name"`
		Address           string     `json:"address"`
		Latitude          float64    `json:"latitude"`
		Longitude         float64    `json:"longitude"`
		FoodTypes         []string   `json:"food_types"`
		EstablishmentType string     `json:"establishment_type"`
		PriceLevel        *int       `json:"price_level,omitempty"`
		Rating            *float64   `json:"rating,omitempty"`
		UserRatingsTotal  int        `json:"user_ratings_total"`
		Distance          int        `json:"distance"`  // meters from search origin
		WalkTime          int        `json:"walk_time"` // minutes at 5 km/h
		VisitCount        int        `json:"visit_count"`
		LastVisitedAt     *time.Time `json:"last_visited_at,omitempty"`
	}

	SearchRestaurantsResponse struct {
		Restaurants []RestaurantResponse `json:"restaurants"`
		Count       int                  `json:"count"`
	}
)
