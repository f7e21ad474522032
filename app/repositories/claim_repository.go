package repositories

import (
	"fmt"

	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/pkg/apperr"
	"github.com/nikitaraj/foodbridge/pkg/cache"
	"github.com/nikitaraj/foodbridge/pkg/orm"
)

// ClaimRepository handles CRUD for Claim.
type ClaimRepository struct {
	listings  *ListingRepository
	receivers *ReceiverRepository
}

func NewClaimRepository() *ClaimRepository {
	return &ClaimRepository{
		listings:  NewListingRepository(),
		receivers: NewReceiverRepository(),
	}
}

// List returns claims, optionally restricted to one status.
func (r *ClaimRepository) List(status string) ([]models.Claim, error) {
	q := orm.DB().Model(&models.Claim{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var claims []models.Claim
	err := q.Order("id").Get(&claims)
	return claims, err
}

// Create inserts a new claim. status defaults to Pending when empty.
// Both referenced rows are checked up front so an unresolved foreign key
// surfaces as a ValidationError and the claims table stays unchanged.
func (r *ClaimRepository) Create(foodListingID, receiverID uint, status string) (*models.Claim, error) {
	if status == "" {
		status = models.ClaimPending
	}
	if !models.ValidClaimStatus(status) {
		return nil, apperr.ValidationFields(map[string]string{
			"status": fmt.Sprintf("status must be one of: %s, %s, %s", models.ClaimPending, models.ClaimCompleted, models.ClaimCancelled),
		})
	}

	ok, err := r.listings.Exists(foodListingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ValidationFields(map[string]string{
			"food_listing_id": fmt.Sprintf("food listing %d does not exist", foodListingID),
		})
	}

	ok, err = r.receivers.Exists(receiverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ValidationFields(map[string]string{
			"receiver_id": fmt.Sprintf("receiver %d does not exist", receiverID),
		})
	}

	claim := &models.Claim{
		FoodListingID: foodListingID,
		ReceiverID:    receiverID,
		Status:        status,
	}
	if err := orm.DB().Create(claim); err != nil {
		return nil, translateStore(err, "claim rejected by store")
	}

	cache.FlushPrefix(cache.ReportPrefix)
	return claim, nil
}

// UpdateStatus sets the status of one claim as a single atomic statement.
// Missing claims are reported as NotFoundError.
func (r *ClaimRepository) UpdateStatus(id uint, status string) error {
	if !models.ValidClaimStatus(status) {
		return apperr.ValidationFields(map[string]string{
			"status": fmt.Sprintf("status must be one of: %s, %s, %s", models.ClaimPending, models.ClaimCompleted, models.ClaimCancelled),
		})
	}

	rows, err := orm.DB().Model(&models.Claim{}).Where("id = ?", id).Update("status", status)
	if err != nil {
		return translateStore(err, "claim update rejected by store")
	}
	if rows == 0 {
		return apperr.NotFound("claim", id)
	}

	cache.FlushPrefix(cache.ReportPrefix)
	return nil
}

// Delete removes the claim with the given id, reporting NotFoundError
// when no row matched.
func (r *ClaimRepository) Delete(id uint) error {
	rows, err := orm.DB().Where("id = ?", id).Delete(&models.Claim{})
	if err != nil {
		return translateStore(err, "claim delete rejected by store")
	}
	if rows == 0 {
		return apperr.NotFound("claim", id)
	}

	cache.FlushPrefix(cache.ReportPrefix)
	return nil
}

// Count returns the total number of claims (dashboard tile).
func (r *ClaimRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Claim{}).Count(&n)
	return n, err
}
