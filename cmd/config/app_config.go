package config

import (
	"lunch-chooser/internal/api/handlers"
	"lunch-chooser/internal/api/routes"
	"lunch-chooser/internal/middleware"
	"lunch-chooser/internal/utils"
	"lunch-chooser/internal/utils/storage"
	"lunch-chooser/pkg/jwt"
	"lunch-chooser/pkg/lunchgroup"
	"lunch-chooser/pkg/places"
	"lunch-chooser/pkg/restaurant"
	"lunch-chooser/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	placesClient := places.NewPlacesClient()

	// Repository
	userRepository := user.NewUserRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	lunchGroupRepository := lunchgroup.NewLunchGroupRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	restaurantService := restaurant.NewRestaurantService(restaurantRepository, placesClient)
	lunchGroupService := lunchgroup.NewLunchGroupService(
		lunchGroupRepository,
		userRepository,
		restaurantRepository,
		utils.GetMaxVotesPerUser(),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	lunchGroupHandler := handlers.NewLunchGroupHandler(lunchGroupService, validator)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		LunchGroupHandler: lunchGroupHandler,
		RestaurantHandler: restaurantHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
