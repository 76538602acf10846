package models

import (
	"time"
)

// PopularCity is a recommended destination shown to all users. The
// (name, country) pair is treated as the natural key by the seeding
// routine but is not enforced unique at the schema level.
type PopularCity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"size:128;not null;index" json:"name"`
	Country  string `gorm:"size:128;not null" json:"country"`
	ImageURL string `gorm:"size:500" json:"image_url"`
	Rating   Rating `gorm:"type:numeric(3,1);default:0" json:"rating"`
	Reviews  uint   `gorm:"default:0" json:"reviews"`
}

func (PopularCity) TableName() string {
	return "popular_cities"
}
