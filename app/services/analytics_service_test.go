package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/app/services"
	"github.com/nikitaraj/foodbridge/database/seeders"
	"github.com/nikitaraj/foodbridge/pkg/apperr"
	"github.com/nikitaraj/foodbridge/pkg/database"
)

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

func run(t *testing.T, key, param string) *services.Report {
	t.Helper()

	report, err := services.NewAnalyticsService().Run(key, param)
	require.NoError(t, err, "report %s", key)
	return report
}

func TestCatalogueListsFifteenReports(t *testing.T) {
	catalogue := services.NewAnalyticsService().Catalogue()
	require.Len(t, catalogue, 15)

	seen := map[string]bool{}
	for _, meta := range catalogue {
		assert.False(t, seen[meta.Key], "duplicate key %s", meta.Key)
		seen[meta.Key] = true
		assert.NotEmpty(t, meta.Title)
	}
}

func TestUnknownReport(t *testing.T) {
	setupDB(t)

	_, err := services.NewAnalyticsService().Run("no-such-report", "")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestProvidersPerCity(t *testing.T) {
	setupDB(t)

	report := run(t, "providers-per-city", "")
	assert.Equal(t, []string{"city", "providers"}, report.Columns)
	assert.Equal(t, [][]interface{}{
		{"Chennai", int64(2)},
		{"Delhi", int64(1)},
		{"Mumbai", int64(1)},
	}, report.Rows)
}

func TestReceiversPerCity(t *testing.T) {
	setupDB(t)

	report := run(t, "receivers-per-city", "")
	assert.Equal(t, [][]interface{}{
		{"Chennai", int64(2)},
		{"Delhi", int64(1)},
		{"Mumbai", int64(1)},
	}, report.Rows)
}

func TestProviderTypeQuantity(t *testing.T) {
	setupDB(t)

	report := run(t, "provider-type-quantity", "")
	assert.Equal(t, [][]interface{}{
		{models.ProviderSupermarket, int64(80)},
		{models.ProviderRestaurant, int64(65)},
		{models.ProviderGrocery, int64(60)},
		{models.ProviderCatering, int64(20)},
	}, report.Rows)
}

func TestProviderContactsParam(t *testing.T) {
	setupDB(t)

	chennai := run(t, "provider-contacts", "Chennai")
	assert.Equal(t, [][]interface{}{
		{"Annapurna Kitchen", "+91-9000000001"},
		{"GreenGrocer", "+91-9000000002"},
	}, chennai.Rows)

	all := run(t, "provider-contacts", "")
	assert.Len(t, all.Rows, 4, "empty param matches every city")
}

func TestTopReceivers(t *testing.T) {
	setupDB(t)

	report := run(t, "top-receivers", "")
	assert.Equal(t, [][]interface{}{
		{"Night Shelter", int64(3)},
		{"Helping Hands", int64(2)},
		{"Hope Foundation", int64(2)},
		{"Ravi Kumar", int64(1)},
	}, report.Rows)
}

func TestTotalQuantity(t *testing.T) {
	setupDB(t)

	report := run(t, "total-quantity", "")
	assert.Equal(t, [][]interface{}{{int64(225)}}, report.Rows)
}

func TestListingsPerCity(t *testing.T) {
	setupDB(t)

	report := run(t, "listings-per-city", "")
	assert.Equal(t, [][]interface{}{
		{"Chennai", int64(3)},
		{"Mumbai", int64(2)},
		{"Delhi", int64(1)},
	}, report.Rows)
}

func TestCommonFoodTypes(t *testing.T) {
	setupDB(t)

	report := run(t, "common-food-types", "")
	assert.Equal(t, [][]interface{}{
		{"Vegetarian", int64(4)},
		{"Non-Vegetarian", int64(1)},
		{"Vegan", int64(1)},
	}, report.Rows)
}

func TestClaimsPerListing(t *testing.T) {
	setupDB(t)

	report := run(t, "claims-per-listing", "")
	assert.Equal(t, [][]interface{}{
		{"Chicken Curry", int64(2)},
		{"Veg Biryani", int64(2)},
		{"Bread Loaves", int64(1)},
		{"Fruit Crates", int64(1)},
		{"Idli Batter", int64(1)},
		{"Paneer Tikka", int64(1)},
	}, report.Rows)
}

func TestTopProvidersCompleted(t *testing.T) {
	setupDB(t)

	report := run(t, "top-providers-completed", "")
	assert.Equal(t, [][]interface{}{
		{"Annapurna Kitchen", int64(2)},
		{"City Supermart", int64(1)},
		{"GreenGrocer", int64(1)},
	}, report.Rows)
}

func TestClaimStatusBreakdown(t *testing.T) {
	setupDB(t)

	report := run(t, "claim-status-breakdown", "")
	assert.Equal(t, []string{"status", "pct"}, report.Columns)
	assert.Equal(t, [][]interface{}{
		{models.ClaimCompleted, 50.0},
		{models.ClaimPending, 37.5},
		{models.ClaimCancelled, 12.5},
	}, report.Rows)
}

func TestAvgClaimedQuantity(t *testing.T) {
	setupDB(t)

	report := run(t, "avg-claimed-quantity", "")
	assert.Equal(t, [][]interface{}{
		{"Helping Hands", 50.0},
		{"Night Shelter", 36.67},
		{"Hope Foundation", 32.5},
		{"Ravi Kumar", 20.0},
	}, report.Rows)
}

func TestMealTypeClaims(t *testing.T) {
	setupDB(t)

	report := run(t, "meal-type-claims", "")
	assert.Equal(t, [][]interface{}{
		{models.MealDinner, int64(3)},
		{models.MealBreakfast, int64(2)},
		{models.MealLunch, int64(2)},
		{models.MealSnacks, int64(1)},
	}, report.Rows)
}

func TestProviderQuantity(t *testing.T) {
	setupDB(t)

	report := run(t, "provider-quantity", "")
	assert.Equal(t, [][]interface{}{
		{"City Supermart", int64(80)},
		{"Annapurna Kitchen", int64(65)},
		{"GreenGrocer", int64(60)},
		{"Feast Caterers", int64(20)},
	}, report.Rows)
}

func TestMealTypeQuantity(t *testing.T) {
	setupDB(t)

	report := run(t, "meal-type-quantity", "")
	assert.Equal(t, [][]interface{}{
		{models.MealBreakfast, int64(75)},
		{models.MealSnacks, int64(60)},
		{models.MealDinner, int64(50)},
		{models.MealLunch, int64(40)},
	}, report.Rows)
}

func TestDashboardOverview(t *testing.T) {
	setupDB(t)

	overview, err := services.NewDashboardService().Overview()
	require.NoError(t, err)
	assert.EqualValues(t, 4, overview.Providers)
	assert.EqualValues(t, 4, overview.Receivers)
	assert.EqualValues(t, 6, overview.FoodListings)
	assert.EqualValues(t, 8, overview.Claims)
}
