package restaurant

import (
	"context"
	"sort"
	"time"

	"lunch-chooser/domain"
	"lunch-chooser/entities"
	"lunch-chooser/internal/utils/geo"
	"lunch-chooser/pkg/places"

	"github.com/google/uuid"
)

const (
	defaultSearchRadiusMeters = 1000
	maxSearchResults          = 20
	searchQuery               = "restaurant"
)

type (
	RestaurantService interface {
		SearchRestaurants(ctx context.Context, req domain.SearchRestaurantsRequest) (domain.SearchRestaurantsResponse, error)
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
		placesClient         places.PlacesClient
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository, placesClient places.PlacesClient) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		placesClient:         placesClient,
	}
}

func (s *restaurantService) SearchRestaurants(ctx context.Context, req domain.SearchRestaurantsRequest) (domain.SearchRestaurantsResponse, error) {
	radius := req.Radius
	if radius <= 0 {
		radius = defaultSearchRadiusMeters
	}

	results, err := s.placesClient.SearchText(ctx, searchQuery, req.Latitude, req.Longitude, radius, maxSearchResults)
	if err != nil {
		return domain.SearchRestaurantsResponse{}, err
	}

	restaurants := make([]domain.RestaurantResponse, 0, len(results))
	for _, place := range results {
		cached, err := s.refreshCache(ctx, place)
		if err != nil {
			return domain.SearchRestaurantsResponse{}, err
		}

		restaurants = append(restaurants, domain.RestaurantResponse{
			ID:                cached.ID.String(),
			Name:              cached.Name,
			Address:           cached.Address,
			Latitude:          cached.Latitude,
			Longitude:         cached.Longitude,
			FoodTypes:         cached.FoodTypes,
			EstablishmentType: cached.EstablishmentType,
			PriceLevel:        cached.PriceLevel,
			Rating:            cached.Rating,
			UserRatingsTotal:  cached.UserRatingsTotal,
			Distance:          geo.CalculateDistance(req.Latitude, req.Longitude, cached.Latitude, cached.Longitude),
			WalkTime:          geo.EstimateWalkTime(req.Latitude, req.Longitude, cached.Latitude, cached.Longitude),
			VisitCount:        cached.VisitCount,
			LastVisitedAt:     cached.LastVisitedAt,
		})
	}

	filtered := applyFilters(restaurants, req.FoodTypes, req.EstablishmentType, req.MaxWalkTime)

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Distance < filtered[j].Distance
	})

	return domain.SearchRestaurantsResponse{
		Restaurants: filtered,
		Count:       len(filtered),
	}, nil
}

// refreshCache upserts the cached copy of a place when it is missing or
// older than the freshness window, and serves the cached row otherwise.
func (s *restaurantService) refreshCache(ctx context.Context, place places.Place) (*entities.Restaurant, error) {
	cached, err := s.restaurantRepository.GetRestaurantByGooglePlaceID(ctx, place.ID)
	if err != nil {
		return nil, err
	}

	if !CacheStale(cached, time.Now()) {
		return cached, nil
	}

	fresh := PlaceToRestaurant(place)
	fresh.LastCachedAt = time.Now()
	if cached != nil {
		fresh.ID = cached.ID
		fresh.VisitCount = cached.VisitCount
		fresh.LastVisitedAt = cached.LastVisitedAt
		fresh.CreatedAt = cached.CreatedAt
	} else {
		fresh.ID = uuid.New()
	}

	if err := s.restaurantRepository.UpsertRestaurant(ctx, fresh); err != nil {
		return nil, err
	}

	return fresh, nil
}
