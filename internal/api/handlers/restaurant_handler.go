package handlers

import (
	"strconv"
	"strings"

	"lunch-chooser/domain"
	"lunch-chooser/internal/api/presenters"
	"lunch-chooser/pkg/restaurant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RestaurantHandler interface {
		SearchRestaurants(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(restaurantService restaurant.RestaurantService, validator *validator.Validate) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		validator:         validator,
	}
}

func (h *restaurantHandler) SearchRestaurants(c *fiber.Ctx) error {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRestaurants, err)
	}

	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRestaurants, err)
	}

	radius, _ := strconv.ParseFloat(c.Query("radius", "0"), 64)
	maxWalkTime, _ := strconv.Atoi(c.Query("max_walk_time", "0"))

	var foodTypes []string
	if raw := c.Query("food_types"); raw != "" {
		foodTypes = strings.Split(raw, ",")
	}

	req := domain.SearchRestaurantsRequest{
		Latitude:          latitude,
		Longitude:         longitude,
		Radius:            radius,
		FoodTypes:         foodTypes,
		EstablishmentType: c.Query("establishment_type"),
		MaxWalkTime:       maxWalkTime,
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRestaurants, err)
	}

	res, err := h.restaurantService.SearchRestaurants(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrorStatusCode(err), domain.MessageFailedSearchRestaurants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRestaurants)
}
