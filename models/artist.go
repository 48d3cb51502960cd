package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artist is a performer that can be booked into venues
type Artist struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name               string   `gorm:"size:120;not null;index" json:"name"`
	City               string   `gorm:"size:120;not null" json:"city"`
	State              string   `gorm:"size:120;not null" json:"state"`
	Phone              string   `gorm:"size:120" json:"phone,omitempty"`
	Genres             []string `gorm:"serializer:json;not null" json:"genres"`
	ImageLink          string   `gorm:"size:500" json:"image_link,omitempty"`
	FacebookLink       string   `gorm:"size:120" json:"facebook_link,omitempty"`
	WebsiteLink        string   `gorm:"size:120" json:"website_link,omitempty"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `gorm:"type:text" json:"seeking_description,omitempty"`

	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"shows,omitempty"`
}

// BeforeCreate hook to generate UUID
func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Artist) TableName() string {
	return "artists"
}
