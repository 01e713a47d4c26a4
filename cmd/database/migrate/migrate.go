package migration

import (
	"fmt"
	"log"
	"lunch-chooser/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DietaryRequirement{}); err != nil {
		log.Fatalf("Error migrating dietary requirement database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RestaurantCategory{}); err != nil {
		log.Fatalf("Error migrating restaurant category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Restaurant{}); err != nil {
		log.Fatalf("Error migrating restaurant database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.LunchGroup{}); err != nil {
		log.Fatalf("Error migrating lunch group database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.LunchGroupParticipant{}); err != nil {
		log.Fatalf("Error migrating lunch group participant database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Vote{}); err != nil {
		log.Fatalf("Error migrating vote database: %v", err)
		return err
	}

	if err := Seed(db); err != nil {
		log.Fatalf("Error seeding reference data: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// Seed inserts the fixed dietary requirement and restaurant category
// catalogs. Re-running is a no-op for rows that already exist.
func Seed(db *gorm.DB) error {
	dietaryRequirements := []entities.DietaryRequirement{
		{ID: "diet_vegetarian", Name: "vegetarian", Description: "No meat or fish"},
		{ID: "diet_vegan", Name: "vegan", Description: "No animal products"},
		{ID: "diet_gluten-free", Name: "gluten-free", Description: "No gluten-containing ingredients"},
		{ID: "diet_dairy-free", Name: "dairy-free", Description: "No dairy products"},
		{ID: "diet_nut-free", Name: "nut-free", Description: "No nuts"},
		{ID: "diet_halal", Name: "halal", Description: "Halal-certified food"},
		{ID: "diet_kosher", Name: "kosher", Description: "Kosher-certified food"},
		{ID: "diet_pescatarian", Name: "pescatarian", Description: "Fish but no meat"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dietaryRequirements).Error; err != nil {
		return err
	}

	restaurantCategories := []entities.RestaurantCategory{
		{ID: "cat_italian", Name: "Italian", Slug: "italian", Description: "Italian cuisine"},
		{ID: "cat_asian", Name: "Asian", Slug: "asian", Description: "Asian cuisine"},
		{ID: "cat_mexican", Name: "Mexican", Slug: "mexican", Description: "Mexican cuisine"},
		{ID: "cat_american", Name: "American", Slug: "american", Description: "American cuisine"},
		{ID: "cat_sandwiches", Name: "Sandwiches", Slug: "sandwiches", Description: "Sandwich shops"},
		{ID: "cat_pizza", Name: "Pizza", Slug: "pizza", Description: "Pizza restaurants"},
		{ID: "cat_seafood", Name: "Seafood", Slug: "seafood", Description: "Seafood restaurants"},
		{ID: "cat_vegetarian", Name: "Vegetarian", Slug: "vegetarian", Description: "Vegetarian restaurants"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&restaurantCategories).Error; err != nil {
		return err
	}

	return nil
}
