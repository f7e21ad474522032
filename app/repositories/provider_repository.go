package repositories

import (
	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/pkg/orm"
)

// ProviderRepository handles read operations for Provider.
type ProviderRepository struct{}

func NewProviderRepository() *ProviderRepository {
	return &ProviderRepository{}
}

// List returns providers, optionally restricted to one city.
func (r *ProviderRepository) List(city string) ([]models.Provider, error) {
	q := orm.DB().Model(&models.Provider{})
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var providers []models.Provider
	err := q.Order("id").Get(&providers)
	return providers, err
}

// Cities returns the distinct provider cities for the filter dropdown.
func (r *ProviderRepository) Cities() ([]string, error) {
	var cities []string
	err := orm.DB().Model(&models.Provider{}).Distinct("city").Order("city").Pluck("city", &cities)
	return cities, err
}

// Exists reports whether a provider row with the given id is present.
func (r *ProviderRepository) Exists(id uint) (bool, error) {
	var n int64
	err := orm.DB().Model(&models.Provider{}).Where("id = ?", id).Count(&n)
	return n > 0, err
}

// Count returns the total number of providers (dashboard tile).
func (r *ProviderRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Provider{}).Count(&n)
	return n, err
}
