package restaurant

import (
	"testing"

	"lunch-chooser/domain"

	"github.com/stretchr/testify/assert"
)

func sampleResults() []domain.RestaurantResponse {
	return []domain.RestaurantResponse{
		{Name: "Pizza Palace", FoodTypes: []string{"pizza_restaurant", "italian_restaurant"}, EstablishmentType: EstablishmentSitDown, WalkTime: 5},
		{Name: "Sushi Go", FoodTypes: []string{"sushi_restaurant", "japanese_restaurant"}, EstablishmentType: EstablishmentTakeaway, WalkTime: 12},
		{Name: "Corner Cafe", FoodTypes: []string{"food"}, EstablishmentType: EstablishmentCafe, WalkTime: 3},
	}
}

func names(results []domain.RestaurantResponse) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}

func TestApplyFiltersNone(t *testing.T) {
	filtered := applyFilters(sampleResults(), nil, "", 0)
	assert.Len(t, filtered, 3)
}

func TestApplyFiltersFoodTypes(t *testing.T) {
	filtered := applyFilters(sampleResults(), []string{"italian_restaurant"}, "", 0)
	assert.Equal(t, []string{"Pizza Palace"}, names(filtered))

	filtered = applyFilters(sampleResults(), []string{"italian_restaurant", "food"}, "", 0)
	assert.Equal(t, []string{"Pizza Palace", "Corner Cafe"}, names(filtered))

	filtered = applyFilters(sampleResults(), []string{"thai_restaurant"}, "", 0)
	assert.Empty(t, filtered)
}

func TestApplyFiltersEstablishmentType(t *testing.T) {
	filtered := applyFilters(sampleResults(), nil, EstablishmentTakeaway, 0)
	assert.Equal(t, []string{"Sushi Go"}, names(filtered))
}

func TestApplyFiltersMaxWalkTime(t *testing.T) {
	filtered := applyFilters(sampleResults(), nil, "", 5)
	assert.Equal(t, []string{"Pizza Palace", "Corner Cafe"}, names(filtered))
}

func TestApplyFiltersCombined(t *testing.T) {
	filtered := applyFilters(sampleResults(), []string{"pizza_restaurant", "food"}, EstablishmentCafe, 10)
	assert.Equal(t, []string{"Corner Cafe"}, names(filtered))
}
