package venue

import "gorm.io/gorm"

// Venue is a (name, sport) pair. The same physical location may appear once
// per sport it hosts.
type Venue struct {
	gorm.Model
	Name  string `gorm:"not null;uniqueIndex:idx_venue_name_sport" json:"name"`
	Sport string `gorm:"not null;uniqueIndex:idx_venue_name_sport;index" json:"sport"`
}

// VenueInput is the upsert payload.
type VenueInput struct {
	Name  string `json:"name" binding:"required"`
	Sport string `json:"sport" binding:"required"`
}
