package models

import "time"

// Meal type values accepted on a listing.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnacks    = "Snacks"
)

// FoodListing is a quantity of food made available by a provider, with
// expiry and meal-type metadata. Quantity never goes negative.
type FoodListing struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProviderID uint      `gorm:"not null;index" json:"provider_id"`
	FoodName   string    `gorm:"size:255;not null" json:"food_name"`
	FoodType   string    `gorm:"size:100;not null;index" json:"food_type"` // Vegetarian, Non-Vegetarian, Vegan
	Quantity   int       `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	MealType   string    `gorm:"size:50;not null;index" json:"meal_type"`
	Location   string    `gorm:"size:100;not null;index" json:"location"`
	ExpiryDate time.Time `gorm:"not null" json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Provider *Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Claims   []Claim   `gorm:"foreignKey:FoodListingID" json:"-"`
}
