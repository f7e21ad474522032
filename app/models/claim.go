package models

import "time"

// Claim statuses. Status only ever holds one of these three values.
const (
	ClaimPending   = "Pending"
	ClaimCompleted = "Completed"
	ClaimCancelled = "Cancelled"
)

// ClaimStatuses lists every valid status, in display order.
var ClaimStatuses = []string{ClaimPending, ClaimCompleted, ClaimCancelled}

// ValidClaimStatus reports whether s is one of the three claim statuses.
func ValidClaimStatus(s string) bool {
	for _, v := range ClaimStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Claim is a receiver's request against a specific food listing.
type Claim struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FoodListingID uint      `gorm:"not null;index" json:"food_listing_id"`
	ReceiverID    uint      `gorm:"not null;index" json:"receiver_id"`
	Status        string    `gorm:"size:50;not null;default:Pending;index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	FoodListing *FoodListing `gorm:"foreignKey:FoodListingID" json:"food_listing,omitempty"`
	Receiver    *Receiver    `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
