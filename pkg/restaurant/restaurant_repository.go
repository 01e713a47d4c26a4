package restaurant

import (
	"context"
	"errors"

	"lunch-chooser/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RestaurantRepository interface {
		GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
		GetRestaurantByGooglePlaceID(ctx context.Context, googlePlaceID string) (*entities.Restaurant, error)
		UpsertRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
	}

	restaurantRepository struct {
		db *gorm.DB
	}
)

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetRestaurantByGooglePlaceID(ctx context.Context, googlePlaceID string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).
		Where("google_place_id = ?", googlePlaceID).
		First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil if not found
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) UpsertRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	// One row per external place id; refreshes overwrite the cached fields
	// but leave visit statistics alone.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "google_place_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address", "latitude", "longitude", "food_types",
				"establishment_type", "price_level", "rating", "user_ratings_total",
				"opening_hours", "phone_number", "website", "photo_url",
				"last_cached_at", "updated_at",
			}),
		}).
		Create(restaurant).Error
}
