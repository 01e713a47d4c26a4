package routes

import (
	"lunch-chooser/internal/api/handlers"
	"lunch-chooser/internal/middleware"
	"lunch-chooser/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	LunchGroupHandler handlers.LunchGroupHandler
	RestaurantHandler handlers.RestaurantHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.LunchGroups()
	c.Restaurants()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/profile-image", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadProfileImage)
		user.Get("/dietary-requirements", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetDietaryRequirements)
	}
}

func (c *Config) LunchGroups() {
	lunchGroups := c.App.Group("/api/v1/lunch-groups", c.Middleware.AuthMiddleware(c.JWTService))

	lunchGroups.Get("", c.LunchGroupHandler.GetLunchGroups)
	lunchGroups.Post("", c.LunchGroupHandler.CreateLunchGroup)
	lunchGroups.Get("/:id", c.LunchGroupHandler.GetLunchGroupDetails)
	lunchGroups.Patch("/:id", c.LunchGroupHandler.UpdateLunchGroup)

	lunchGroups.Post("/:id/participants", c.LunchGroupHandler.AddParticipant)
	lunchGroups.Delete("/:id/participants/:userId", c.LunchGroupHandler.RemoveParticipant)

	lunchGroups.Post("/:id/votes", c.LunchGroupHandler.CastVote)
	lunchGroups.Get("/:id/votes", c.LunchGroupHandler.GetVotes)
	lunchGroups.Delete("/:id/votes/:voteId", c.LunchGroupHandler.RemoveVote)
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/v1/restaurants", c.Middleware.AuthMiddleware(c.JWTService))
	restaurants.Get("/search", c.RestaurantHandler.SearchRestaurants)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
