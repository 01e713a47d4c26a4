package entities

// DietaryRequirement is reference data seeded at migration time, never
// mutated at runtime.
type DietaryRequirement struct {
	ID          string `gorm:"primary_key" json:"id"` // e.g. "diet_vegan"
	Name        string `gorm:"uniqueIndex" json:"name"`
	Description string `json:"description,omitempty"`
}

// RestaurantCategory is the cuisine catalog, seeded alongside the dietary
// requirements.
type RestaurantCategory struct {
	ID          string `gorm:"primary_key" json:"id"` // e.g. "cat_italian"
	Name        string `json:"name"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `json:"description,omitempty"`
}
