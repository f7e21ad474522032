package repositories

import (
	"fmt"

	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/pkg/apperr"
	"github.com/nikitaraj/foodbridge/pkg/cache"
	"github.com/nikitaraj/foodbridge/pkg/orm"
)

// ListingFilter narrows a listing query. Empty fields match everything.
type ListingFilter struct {
	Location string
	MealType string
}

// ListingRepository handles CRUD for FoodListing.
type ListingRepository struct {
	providers *ProviderRepository
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{providers: NewProviderRepository()}
}

// List returns food listings matching the filter.
func (r *ListingRepository) List(f ListingFilter) ([]models.FoodListing, error) {
	q := orm.DB().Model(&models.FoodListing{})
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.MealType != "" {
		q = q.Where("meal_type = ?", f.MealType)
	}

	var listings []models.FoodListing
	err := q.Order("id").Get(&listings)
	return listings, err
}

// Locations returns the distinct listing locations for the filter dropdown.
func (r *ListingRepository) Locations() ([]string, error) {
	var locations []string
	err := orm.DB().Model(&models.FoodListing{}).Distinct("location").Order("location").Pluck("location", &locations)
	return locations, err
}

// Create inserts a new listing with a store-assigned identity. The
// provider reference is checked up front so an unresolved foreign key
// surfaces as a ValidationError even on stores that do not enforce FKs.
func (r *ListingRepository) Create(listing *models.FoodListing) error {
	if listing.Quantity < 0 {
		return apperr.ValidationFields(map[string]string{
			"quantity": "The quantity field must be greater than or equal to 0.",
		})
	}

	ok, err := r.providers.Exists(listing.ProviderID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ValidationFields(map[string]string{
			"provider_id": fmt.Sprintf("provider %d does not exist", listing.ProviderID),
		})
	}

	if err := orm.DB().Create(listing); err != nil {
		return translateStore(err, "food listing rejected by store")
	}

	cache.FlushPrefix(cache.ReportPrefix)
	return nil
}

// Delete removes the listing with the given id. Zero matched rows is
// reported as NotFoundError; callers choosing idempotent semantics may
// treat that as success.
func (r *ListingRepository) Delete(id uint) error {
	rows, err := orm.DB().Where("id = ?", id).Delete(&models.FoodListing{})
	if err != nil {
		return translateStore(err, "food listing still referenced by claims")
	}
	if rows == 0 {
		return apperr.NotFound("food listing", id)
	}

	cache.FlushPrefix(cache.ReportPrefix)
	return nil
}

// Exists reports whether a listing row with the given id is present.
func (r *ListingRepository) Exists(id uint) (bool, error) {
	var n int64
	err := orm.DB().Model(&models.FoodListing{}).Where("id = ?", id).Count(&n)
	return n > 0, err
}

// Count returns the total number of listings (dashboard tile).
func (r *ListingRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.FoodListing{}).Count(&n)
	return n, err
}
