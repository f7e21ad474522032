package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/app/repositories"
	"github.com/nikitaraj/foodbridge/database/seeders"
	"github.com/nikitaraj/foodbridge/pkg/apperr"
	"github.com/nikitaraj/foodbridge/pkg/database"
)

// setupDB opens a fresh in-memory store with the schema and demo rows.
func setupDB(t *testing.T) {
	t.Helper()

	require.NoError(t, database.Open("sqlite", "file::memory:?_fk=1"))
	require.NoError(t, database.DB.AutoMigrate(
		&models.Provider{},
		&models.Receiver{},
		&models.FoodListing{},
		&models.Claim{},
	))
	require.NoError(t, seeders.Demo(database.DB))
}

func TestListProvidersCityFilter(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProviderRepository()

	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	chennai, err := repo.List("Chennai")
	require.NoError(t, err)
	require.Len(t, chennai, 2)
	for _, p := range chennai {
		assert.Equal(t, "Chennai", p.City)
	}
}

func TestProviderCities(t *testing.T) {
	setupDB(t)
	repo := repositories.NewProviderRepository()

	cities, err := repo.Cities()
	require.NoError(t, err)
	assert.Equal(t, []string{"Chennai", "Delhi", "Mumbai"}, cities)
}

func TestListReceiversCityFilter(t *testing.T) {
	setupDB(t)
	repo := repositories.NewReceiverRepository()

	mumbai, err := repo.List("Mumbai")
	require.NoError(t, err)
	require.Len(t, mumbai, 1)
	assert.Equal(t, "Night Shelter", mumbai[0].Name)
}

func TestListListingsFilters(t *testing.T) {
	setupDB(t)
	repo := repositories.NewListingRepository()

	all, err := repo.List(repositories.ListingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	chennai, err := repo.List(repositories.ListingFilter{Location: "Chennai"})
	require.NoError(t, err)
	require.Len(t, chennai, 3)
	for _, l := range chennai {
		assert.Equal(t, "Chennai", l.Location)
	}

	breakfast, err := repo.List(repositories.ListingFilter{MealType: models.MealBreakfast})
	require.NoError(t, err)
	require.Len(t, breakfast, 2)
	for _, l := range breakfast {
		assert.Equal(t, models.MealBreakfast, l.MealType)
	}

	both, err := repo.List(repositories.ListingFilter{Location: "Chennai", MealType: models.MealBreakfast})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Idli Batter", both[0].FoodName)
}

func TestCreateListingRoundTrip(t *testing.T) {
	setupDB(t)
	repo := repositories.NewListingRepository()

	expiry, _ := time.Parse("2006-01-02", "2026-09-15")
	listing := &models.FoodListing{
		ProviderID: 2,
		FoodName:   "Sandwich Platters",
		FoodType:   "Vegetarian",
		Quantity:   15,
		MealType:   models.MealSnacks,
		Location:   "Chennai",
		ExpiryDate: expiry,
	}
	require.NoError(t, repo.Create(listing))
	assert.NotZero(t, listing.ID, "store should assign an identity")

	all, err := repo.List(repositories.ListingFilter{})
	require.NoError(t, err)
	require.Len(t, all, 7)

	got := all[len(all)-1]
	assert.Equal(t, "Sandwich Platters", got.FoodName)
	assert.Equal(t, uint(2), got.ProviderID)
	assert.Equal(t, 15, got.Quantity)
	assert.Equal(t, models.MealSnacks, got.MealType)
	assert.Equal(t, "Chennai", got.Location)
}

func TestCreateListingUnknownProvider(t *testing.T) {
	setupDB(t)
	repo := repositories.NewListingRepository()

	err := repo.Create(&models.FoodListing{
		ProviderID: 999,
		FoodName:   "Ghost Meal",
		FoodType:   "Vegan",
		Quantity:   5,
		MealType:   models.MealLunch,
		Location:   "Chennai",
		ExpiryDate: time.Now(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, apperr.FieldsOf(err), "provider_id")

	n, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 6, n, "failed create must leave the table unchanged")
}

func TestDeleteListing(t *testing.T) {
	setupDB(t)
	repo := repositories.NewListingRepository()

	// The demo set claims every listing, so add an unclaimed one first.
	expiry, _ := time.Parse("2006-01-02", "2026-09-20")
	listing := &models.FoodListing{
		ProviderID: 1, FoodName: "Extra Rice", FoodType: "Vegetarian",
		Quantity: 10, MealType: models.MealDinner, Location: "Chennai", ExpiryDate: expiry,
	}
	require.NoError(t, repo.Create(listing))

	require.NoError(t, repo.Delete(listing.ID))

	err := repo.Delete(listing.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteListingWithClaims(t *testing.T) {
	setupDB(t)
	repo := repositories.NewListingRepository()

	// Listing 1 is referenced by two claims; the store must refuse.
	err := repo.Delete(1)
	require.Error(t, err)
	assert.True(t, apperr.IsConstraint(err))
}

func TestListClaimsStatusFilter(t *testing.T) {
	setupDB(t)
	repo := repositories.NewClaimRepository()

	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 8)

	pending, err := repo.List(models.ClaimPending)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	for _, c := range pending {
		assert.Equal(t, models.ClaimPending, c.Status)
	}
}

func TestUpdateClaimStatus(t *testing.T) {
	setupDB(t)
	repo := repositories.NewClaimRepository()

	before, err := repo.List("")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(2, models.ClaimCompleted))

	after, err := repo.List("")
	require.NoError(t, err)
	require.Len(t, after, len(before))

	for i, c := range after {
		if c.ID == 2 {
			assert.Equal(t, models.ClaimCompleted, c.Status)
			continue
		}
		assert.Equal(t, before[i].Status, c.Status, "claim %d must be untouched", c.ID)
	}
}

func TestUpdateClaimStatusNotFound(t *testing.T) {
	setupDB(t)
	repo := repositories.NewClaimRepository()

	err := repo.UpdateStatus(999, models.ClaimCompleted)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateClaimStatusInvalid(t *testing.T) {
	setupDB(t)
	repo := repositories.NewClaimRepository()

	err := repo.UpdateStatus(1, "Lost")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestDeleteClaim(t *testing.T) {
	setupDB(t)
	repo := repositories.NewClaimRepository()

	require.NoError(t, repo.Delete(8))

	claims, err := repo.List("")
	require.NoError(t, err)
	require.Len(t, claims, 7)
	for _, c := range claims {
		assert.NotEqual(t, uint(8), c.ID)
	}

	err = repo.Delete(8)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateClaimDefaultsAndRefChecks(t *testing.T) {
	setupDB(t)
	repo := repositories.NewClaimRepository()

	claim, err := repo.Create(3, 4, "")
	require.NoError(t, err)
	assert.Equal(t, models.ClaimPending, claim.Status)
	assert.NotZero(t, claim.ID)

	before, err := repo.Count()
	require.NoError(t, err)

	_, err = repo.Create(999, 1, "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, apperr.FieldsOf(err), "food_listing_id")

	_, err = repo.Create(1, 999, "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, apperr.FieldsOf(err), "receiver_id")

	after, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed creates must leave the table unchanged")
}
