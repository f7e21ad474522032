package repositories

import (
	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/pkg/orm"
)

// ReceiverRepository handles read operations for Receiver.
type ReceiverRepository struct{}

func NewReceiverRepository() *ReceiverRepository {
	return &ReceiverRepository{}
}

// List returns receivers, optionally restricted to one city.
func (r *ReceiverRepository) List(city string) ([]models.Receiver, error) {
	q := orm.DB().Model(&models.Receiver{})
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var receivers []models.Receiver
	err := q.Order("id").Get(&receivers)
	return receivers, err
}

// Cities returns the distinct receiver cities for the filter dropdown.
func (r *ReceiverRepository) Cities() ([]string, error) {
	var cities []string
	err := orm.DB().Model(&models.Receiver{}).Distinct("city").Order("city").Pluck("city", &cities)
	return cities, err
}

// Exists reports whether a receiver row with the given id is present.
func (r *ReceiverRepository) Exists(id uint) (bool, error) {
	var n int64
	err := orm.DB().Model(&models.Receiver{}).Where("id = ?", id).Count(&n)
	return n > 0, err
}

// Count returns the total number of receivers (dashboard tile).
func (r *ReceiverRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Receiver{}).Count(&n)
	return n, err
}
