package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"lunch-chooser/internal/utils"
)

const (
	baseURL = "https://places.googleapis.com/v1"

	searchFieldMask = "places.id,places.displayName,places.formattedAddress,places.location," +
		"places.types,places.rating,places.userRatingCount,places.priceLevel," +
		"places.openingHours,places.photos,places.websiteUri,places.nationalPhoneNumber"
	detailsFieldMask = "id,displayName,formattedAddress,location,types,rating,userRatingCount," +
		"priceLevel,openingHours,photos,websiteUri,nationalPhoneNumber"
)

var ErrAPIKeyMissing = errors.New("GOOGLE_PLACES_API_KEY is not configured")

type (
	// Place mirrors the Google Places API (New) place shape, limited to the
	// fields the restaurant cache consumes.
	Place struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text         string `json:"text"`
			LanguageCode string `json:"languageCode"`
		} `json:"displayName"`
		FormattedAddress string `json:"formattedAddress"`
		Location         struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
		Types           []string      `json:"types"`
		Rating          float64       `json:"rating,omitempty"`
		UserRatingCount int           `json:"userRatingCount,omitempty"`
		PriceLevel      string        `json:"priceLevel,omitempty"`
		OpeningHours    *OpeningHours `json:"openingHours,omitempty"`
		Photos          []Photo       `json:"photos,omitempty"`
		WebsiteURI      string        `json:"websiteUri,omitempty"`
		NationalPhone   string        `json:"nationalPhoneNumber,omitempty"`
	}

	OpeningHours struct {
		OpenNow             bool     `json:"openNow"`
		WeekdayDescriptions []string `json:"weekdayDescriptions"`
	}

	Photo struct {
		Name     string `json:"name"`
		WidthPx  int    `json:"widthPx"`
		HeightPx int    `json:"heightPx"`
	}

	searchTextRequest struct {
		TextQuery      string        `json:"textQuery"`
		LocationBias   *locationBias `json:"locationBias,omitempty"`
		MaxResultCount int           `json:"maxResultCount,omitempty"`
		IncludedType   string        `json:"includedType,omitempty"`
		LanguageCode   string        `json:"languageCode,omitempty"`
	}

	locationBias struct {
		Circle circle `json:"circle"`
	}

	circle struct {
		Center center  `json:"center"`
		Radius float64 `json:"radius"`
	}

	center struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	searchTextResponse struct {
		Places []Place `json:"places"`
	}

	PlacesClient interface {
		SearchText(ctx context.Context, query string, latitude, longitude, radiusMeters float64, maxResults int) ([]Place, error)
		GetPlaceDetails(ctx context.Context, placeID string) (*Place, error)
	}

	placesClient struct {
		httpClient *http.Client
		apiKey     string
	}
)

func NewPlacesClient() PlacesClient {
	return &placesClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     utils.GetConfig("GOOGLE_PLACES_API_KEY"),
	}
}

func (p *placesClient) SearchText(ctx context.Context, query string, latitude, longitude, radiusMeters float64, maxResults int) ([]Place, error) {
	if p.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	reqBody := searchTextRequest{
		TextQuery: query,
		LocationBias: &locationBias{
			Circle: circle{
				Center: center{Latitude: latitude, Longitude: longitude},
				Radius: radiusMeters,
			},
		},
		MaxResultCount: maxResults,
		IncludedType:   "restaurant",
		LanguageCode:   "en",
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		baseURL+"/places:searchText",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", p.apiKey)
	req.Header.Set("X-Goog-FieldMask", searchFieldMask)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google places API error (%d): %s", resp.StatusCode, string(body))
	}

	var result searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Places, nil
}

func (p *placesClient) GetPlaceDetails(ctx context.Context, placeID string) (*Place, error) {
	if p.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/places/"+placeID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Goog-Api-Key", p.apiKey)
	req.Header.Set("X-Goog-FieldMask", detailsFieldMask)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google places API error (%d): %s", resp.StatusCode, string(body))
	}

	var place Place
	if err := json.NewDecoder(resp.Body).Decode(&place); err != nil {
		return nil, err
	}

	return &place, nil
}
