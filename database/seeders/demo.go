package seeders

import (
	"time"

	"github.com/nikitaraj/foodbridge/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("demo", Demo)
}

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// Demo inserts the fixed demo dataset the dashboard ships with. Analytics
// tests assert exact aggregate values against these rows, so changing
// them means updating the expectations in app/services.
func Demo(db *gorm.DB) error {
	providers := []models.Provider{
		{Name: "Annapurna Kitchen", Type: models.ProviderRestaurant, Address: "12 Temple St", City: "Chennai", Contact: "+91-9000000001"},
		{Name: "GreenGrocer", Type: models.ProviderGrocery, Address: "4 Market Rd", City: "Chennai", Contact: "+91-9000000002"},
		{Name: "City Supermart", Type: models.ProviderSupermarket, Address: "88 Link Rd", City: "Mumbai", Contact: "+91-9000000003"},
		{Name: "Feast Caterers", Type: models.ProviderCatering, Address: "7 Ring Rd", City: "Delhi", Contact: "+91-9000000004"},
	}
	if err := db.Create(&providers).Error; err != nil {
		return err
	}

	receivers := []models.Receiver{
		{Name: "Hope Foundation", Type: "NGO", City: "Chennai", Contact: "+91-9100000001"},
		{Name: "Night Shelter", Type: "Shelter", City: "Mumbai", Contact: "+91-9100000002"},
		{Name: "Helping Hands", Type: "Charity", City: "Chennai", Contact: "+91-9100000003"},
		{Name: "Ravi Kumar", Type: "Individual", City: "Delhi", Contact: "+91-9100000004"},
	}
	if err := db.Create(&receivers).Error; err != nil {
		return err
	}

	listings := []models.FoodListing{
		{ProviderID: providers[0].ID, FoodName: "Veg Biryani", FoodType: "Vegetarian", Quantity: 40, MealType: models.MealLunch, Location: "Chennai", ExpiryDate: date("2026-09-05")},
		{ProviderID: providers[0].ID, FoodName: "Idli Batter", FoodType: "Vegetarian", Quantity: 25, MealType: models.MealBreakfast, Location: "Chennai", ExpiryDate: date("2026-09-03")},
		{ProviderID: providers[1].ID, FoodName: "Fruit Crates", FoodType: "Vegan", Quantity: 60, MealType: models.MealSnacks, Location: "Chennai", ExpiryDate: date("2026-09-10")},
		{ProviderID: providers[2].ID, FoodName: "Chicken Curry", FoodType: "Non-Vegetarian", Quantity: 30, MealType: models.MealDinner, Location: "Mumbai", ExpiryDate: date("2026-09-04")},
		{ProviderID: providers[2].ID, FoodName: "Bread Loaves", FoodType: "Vegetarian", Quantity: 50, MealType: models.MealBreakfast, Location: "Mumbai", ExpiryDate: date("2026-09-06")},
		{ProviderID: providers[3].ID, FoodName: "Paneer Tikka", FoodType: "Vegetarian", Quantity: 20, MealType: models.MealDinner, Location: "Delhi", ExpiryDate: date("2026-09-02")},
	}
	if err := db.Create(&listings).Error; err != nil {
		return err
	}

	claims := []models.Claim{
		{FoodListingID: listings[0].ID, ReceiverID: receivers[0].ID, Status: models.ClaimCompleted},
		{FoodListingID: listings[0].ID, ReceiverID: receivers[2].ID, Status: models.ClaimPending},
		{FoodListingID: listings[1].ID, ReceiverID: receivers[0].ID, Status: models.ClaimCompleted},
		{FoodListingID: listings[2].ID, ReceiverID: receivers[2].ID, Status: models.ClaimCompleted},
		{FoodListingID: listings[3].ID, ReceiverID: receivers[1].ID, Status: models.ClaimPending},
		{FoodListingID: listings[3].ID, ReceiverID: receivers[1].ID, Status: models.ClaimCancelled},
		{FoodListingID: listings[4].ID, ReceiverID: receivers[1].ID, Status: models.ClaimCompleted},
		{FoodListingID: listings[5].ID, ReceiverID: receivers[3].ID, Status: models.ClaimPending},
	}
	return db.Create(&claims).Error
}
