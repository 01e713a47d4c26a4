package restaurant

import (
	"lunch-chooser/domain"
)

// applyFilters narrows a search result in order: food-type overlap,
// establishment-type equality, maximum walk time. Each filter is skipped
// when its parameter is absent.
func applyFilters(restaurants []domain.RestaurantResponse, foodTypes []string, establishmentType string, maxWalkTime int) []domain.RestaurantResponse {
	filtered := restaurants

	if len(foodTypes) > 0 {
		filtered = filterRestaurants(filtered, func(r domain.RestaurantResponse) bool {
			return hasFoodTypeOverlap(r.FoodTypes, foodTypes)
		})
	}

	if establishmentType != "" {
		filtered = filterRestaurants(filtered, func(r domain.RestaurantResponse) bool {
			return r.EstablishmentType == establishmentType
		})
	}

	if maxWalkTime > 0 {
		filtered = filterRestaurants(filtered, func(r domain.RestaurantResponse) bool {
			return r.WalkTime <= maxWalkTime
		})
	}

	return filtered
}

func filterRestaurants(restaurants []domain.RestaurantResponse, keep func(domain.RestaurantResponse) bool) []domain.RestaurantResponse {
	result := make([]domain.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}

func hasFoodTypeOverlap(restaurantTypes, wanted []string) bool {
	for _, rt := range restaurantTypes {
		for _, w := range wanted {
			if rt == w {
				return true
			}
		}
	}
	return false
}
