package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Show books an artist into a venue at a start time (stored in UTC)
type Show struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ArtistID  string    `gorm:"type:uuid;index;not null" json:"artist_id"`
	VenueID   string    `gorm:"type:uuid;index;not null" json:"venue_id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
}

// BeforeCreate hook to generate UUID
func (s *Show) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Show) TableName() string {
	return "shows"
}

// IsUpcoming reports whether the show starts after now
func (s Show) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
