package restaurant

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"lunch-chooser/entities"
	"lunch-chooser/pkg/places"
)

const (
	EstablishmentSitDown  = "sit-down"
	EstablishmentTakeaway = "takeaway"
	EstablishmentCafe     = "cafe"

	// CacheFreshnessWindow is how long a cached restaurant is served without
	// re-fetching it from the places API.
	CacheFreshnessWindow = 24 * time.Hour
)

var priceLevelMap = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// PlaceToRestaurant normalizes an external place record into the cached
// restaurant shape.
func PlaceToRestaurant(place places.Place) *entities.Restaurant {
	foodTypes := make([]string, 0, len(place.Types))
	for _, t := range place.Types {
		if strings.Contains(t, "_restaurant") || strings.Contains(t, "food") {
			foodTypes = append(foodTypes, t)
		}
	}

	establishmentType := EstablishmentSitDown
	if containsType(place.Types, "meal_takeaway") || containsType(place.Types, "food") {
		establishmentType = EstablishmentTakeaway
	}
	// Cafe wins over takeaway when both markers are present.
	if containsType(place.Types, "cafe") || containsType(place.Types, "bakery") {
		establishmentType = EstablishmentCafe
	}

	var priceLevel *int
	if level, ok := priceLevelMap[place.PriceLevel]; ok {
		priceLevel = &level
	}

	var rating *float64
	if place.Rating > 0 {
		rounded := math.Round(place.Rating*100) / 100
		rating = &rounded
	}

	var openingHours string
	if place.OpeningHours != nil {
		if raw, err := json.Marshal(place.OpeningHours); err == nil {
			openingHours = string(raw)
		}
	}

	var photoURL string
	if len(place.Photos) > 0 {
		photoURL = place.Photos[0].Name
	}

	return &entities.Restaurant{
		GooglePlaceID:     place.ID,
		Name:              place.DisplayName.Text,
		Address:           place.FormattedAddress,
		Latitude:          place.Location.Latitude,
		Longitude:         place.Location.Longitude,
		FoodTypes:         foodTypes,
		EstablishmentType: establishmentType,
		PriceLevel:        priceLevel,
		Rating:            rating,
		UserRatingsTotal:  place.UserRatingCount,
		OpeningHours:      openingHours,
		PhoneNumber:       place.NationalPhone,
		Website:           place.WebsiteURI,
		PhotoURL:          photoURL,
	}
}

// CacheStale reports whether a cached restaurant must be refreshed from the
// places API.
func CacheStale(cached *entities.Restaurant, now time.Time) bool {
	if cached == nil {
		return true
	}
	return cached.LastCachedAt.Before(now.Add(-CacheFreshnessWindow))
}

func containsType(types []string, target string) bool {
	for _, t := range types {
		if t == target {
			return true
		}
	}
	return false
}
