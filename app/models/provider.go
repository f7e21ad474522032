package models

import "time"

// Provider type categories carried by seed data.
const (
	ProviderRestaurant  = "Restaurant"
	ProviderGrocery     = "Grocery Store"
	ProviderSupermarket = "Supermarket"
	ProviderCatering    = "Catering Service"
)

// Provider is an entity donating food. Providers arrive through seed data
// and are read-only in normal operation.
type Provider struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Type      string    `gorm:"size:100;not null;index" json:"type"`
	Address   string    `gorm:"type:text" json:"address"`
	City      string    `gorm:"size:100;not null;index" json:"city"`
	Contact   string    `gorm:"size:100" json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Listings []FoodListing `gorm:"foreignKey:ProviderID" json:"-"`
}
