package restaurant

import (
	"context"
	"testing"
	"time"

	"lunch-chooser/domain"
	"lunch-chooser/entities"
	"lunch-chooser/pkg/places"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlacesClient struct {
	places   []places.Place
	searches int
}

func (f *fakePlacesClient) SearchText(ctx context.Context, query string, latitude, longitude, radiusMeters float64, maxResults int) ([]places.Place, error) {
	f.searches++
	return f.places, nil
}

func (f *fakePlacesClient) GetPlaceDetails(ctx context.Context, placeID string) (*places.Place, error) {
	for i := range f.places {
		if f.places[i].ID == placeID {
			return &f.places[i], nil
		}
	}
	return nil, nil
}

type fakeRestaurantRepository struct {
	byPlaceID map[string]*entities.Restaurant
	upserts   int
}

func newFakeRestaurantRepository() *fakeRestaurantRepository {
	return &fakeRestaurantRepository{byPlaceID: make(map[string]*entities.Restaurant)}
}

func (f *fakeRestaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	for _, r := range f.byPlaceID {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, domain.ErrRestaurantNotFound
}

func (f *fakeRestaurantRepository) GetRestaurantByGooglePlaceID(ctx context.Context, googlePlaceID string) (*entities.Restaurant, error) {
	return f.byPlaceID[googlePlaceID], nil
}

func (f *fakeRestaurantRepository) UpsertRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	f.upserts++
	f.byPlaceID[restaurant.GooglePlaceID] = restaurant
	return nil
}

func searchPlace(id, name string, lat, lng float64, types ...string) places.Place {
	p := places.Place{ID: id, Types: types}
	p.DisplayName.Text = name
	p.Location.Latitude = lat
	p.Location.Longitude = lng
	return p
}

func TestSearchRestaurantsCachesResults(t *testing.T) {
	client := &fakePlacesClient{places: []places.Place{
		searchPlace("p1", "Pizza Palace", 0, 0.001, "restaurant", "pizza_restaurant"),
	}}
	repo := newFakeRestaurantRepository()
	service := NewRestaurantService(repo, client)

	res, err := service.SearchRestaurants(context.Background(), domain.SearchRestaurantsRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)

	assert.Equal(t, 1, repo.upserts)
	cached := repo.byPlaceID["p1"]
	require.NotNil(t, cached)
	assert.Equal(t, "Pizza Palace", cached.Name)
	assert.NotEqual(t, uuid.Nil, cached.ID)
	assert.WithinDuration(t, time.Now(), cached.LastCachedAt, time.Minute)
}

func TestSearchRestaurantsServesFreshCache(t *testing.T) {
	client := &fakePlacesClient{places: []places.Place{
		searchPlace("p1", "Pizza Palace", 0, 0.001, "restaurant"),
	}}
	repo := newFakeRestaurantRepository()
	repo.byPlaceID["p1"] = &entities.Restaurant{
		ID:            uuid.New(),
		GooglePlaceID: "p1",
		Name:          "Pizza Palace (cached)",
		Latitude:      0,
		Longitude:     0.001,
		VisitCount:    7,
		LastCachedAt:  time.Now().Add(-1 * time.Hour),
	}
	service := NewRestaurantService(repo, client)

	res, err := service.SearchRestaurants(context.Background(), domain.SearchRestaurantsRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)

	// Fresh cache rows are served without a re-upsert.
	assert.Equal(t, 0, repo.upserts)
	assert.Equal(t, "Pizza Palace (cached)", res.Restaurants[0].Name)
	assert.Equal(t, 7, res.Restaurants[0].VisitCount)
}

func TestSearchRestaurantsRefreshesStaleCachePreservingVisits(t *testing.T) {
	client := &fakePlacesClient{places: []places.Place{
		searchPlace("p1", "Pizza Palace", 0, 0.001, "restaurant"),
	}}
	repo := newFakeRestaurantRepository()
	staleID := uuid.New()
	visited := time.Now().Add(-48 * time.Hour)
	repo.byPlaceID["p1"] = &entities.Restaurant{
		ID:            staleID,
		GooglePlaceID: "p1",
		Name:          "Old Name",
		Latitude:      0,
		Longitude:     0.001,
		VisitCount:    3,
		LastVisitedAt: &visited,
		LastCachedAt:  time.Now().Add(-25 * time.Hour),
	}
	service := NewRestaurantService(repo, client)

	res, err := service.SearchRestaurants(context.Background(), domain.SearchRestaurantsRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)

	assert.Equal(t, 1, repo.upserts)
	refreshed := repo.byPlaceID["p1"]
	assert.Equal(t, staleID, refreshed.ID)
	assert.Equal(t, "Pizza Palace", refreshed.Name)
	assert.Equal(t, 3, refreshed.VisitCount)
	assert.Equal(t, &visited, refreshed.LastVisitedAt)
}

func TestSearchRestaurantsSortsByDistance(t *testing.T) {
	client := &fakePlacesClient{places: []places.Place{
		searchPlace("far", "Far Diner", 0, 0.01, "restaurant"),
		searchPlace("near", "Near Deli", 0, 0.001, "restaurant"),
	}}
	repo := newFakeRestaurantRepository()
	service := NewRestaurantService(repo, client)

	res, err := service.SearchRestaurants(context.Background(), domain.SearchRestaurantsRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)

	assert.Equal(t, "Near Deli", res.Restaurants[0].Name)
	assert.Equal(t, "Far Diner", res.Restaurants[1].Name)
	assert.Less(t, res.Restaurants[0].Distance, res.Restaurants[1].Distance)
	assert.LessOrEqual(t, res.Restaurants[0].WalkTime, res.Restaurants[1].WalkTime)
}

func TestSearchRestaurantsAppliesFilters(t *testing.T) {
	client := &fakePlacesClient{places: []places.Place{
		searchPlace("p1", "Pizza Palace", 0, 0.001, "restaurant", "pizza_restaurant"),
		searchPlace("p2", "Grab & Go", 0, 0.002, "meal_takeaway", "food"),
	}}
	repo := newFakeRestaurantRepository()
	service := NewRestaurantService(repo, client)

	res, err := service.SearchRestaurants(context.Background(), domain.SearchRestaurantsRequest{
		EstablishmentType: EstablishmentTakeaway,
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Grab & Go", res.Restaurants[0].Name)
}
