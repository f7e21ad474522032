package models

import "time"

// Receiver is an entity requesting or receiving food. Like providers,
// receivers come from seed data and are read-only in normal operation.
type Receiver struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Type      string    `gorm:"size:100;not null" json:"type"` // NGO, Shelter, Charity, Individual
	City      string    `gorm:"size:100;not null;index" json:"city"`
	Contact   string    `gorm:"size:100" json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Claims []Claim `gorm:"foreignKey:ReceiverID" json:"-"`
}
