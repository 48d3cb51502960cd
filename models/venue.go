package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Venue is a place that can host shows
type Venue struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name               string   `gorm:"size:120;not null;index" json:"name"`
	City               string   `gorm:"size:120;not null" json:"city"`
	State              string   `gorm:"size:120;not null" json:"state"`
	Address            string   `gorm:"size:120;not null" json:"address"`
	Phone              string   `gorm:"size:120" json:"phone,omitempty"`
	Genres             []string `gorm:"serializer:json;not null" json:"genres"`
	ImageLink          string   `gorm:"size:500" json:"image_link,omitempty"`
	FacebookLink       string   `gorm:"size:120" json:"facebook_link,omitempty"`
	WebsiteLink        string   `gorm:"size:120" json:"website_link,omitempty"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `gorm:"type:text" json:"seeking_description,omitempty"`

	// Relationships
	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"shows,omitempty"`
}

// BeforeCreate hook to generate UUID
func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Venue) TableName() string {
	return "venues"
}
