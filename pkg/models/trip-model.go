package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTripStatus is applied when a trip is created without a status
const DefaultTripStatus = "Planned"

// Trip represents a planned or completed journey owned by a client.
// The owner tag is a free-form string supplied by the client, not a
// verified identity.
type Trip struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string `gorm:"size:128;not null;index" json:"user_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Destination string `gorm:"size:255;not null" json:"destination"`
	StartDate   Date   `gorm:"type:date;index" json:"start_date"`
	EndDate     Date   `gorm:"type:date" json:"end_date"`
	ImageURL    string `gorm:"size:500" json:"image_url"`
	Status      string `gorm:"size:64;default:'Planned'" json:"status"`
}

func (Trip) TableName() string {
	return "trips"
}

// BeforeCreate assigns the primary key and default status
func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = DefaultTripStatus
	}
	return nil
}
