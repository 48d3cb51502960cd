package services

import (
	"errors"
	"fmt"
	"time"

	"fyyur_app_go/models"

	"gorm.io/gorm"
)

// Booking rule violations returned by CreateShow
var (
	ErrArtistNotSeeking = errors.New("artist is not accepting shows")
	ErrVenueNotSeeking  = errors.New("venue is not accepting shows")
	ErrShowInPast       = errors.New("show time is in the past")
)

// ShowListing is one row of the shows page
type ShowListing struct {
	ShowID          string
	VenueID         string
	VenueName       string
	ArtistID        string
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ListShows returns every show with its venue and artist, soonest first
func ListShows(db *gorm.DB) ([]ShowListing, error) {
	var rows []ShowListing
	err := db.Model(&models.Show{}).
		Select("shows.id AS show_id, shows.start_time, shows.venue_id, venues.name AS venue_name, " +
			"shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Order("shows.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return rows, nil
}

// CreateShow books a show after checking both parties exist, are looking for
// bookings, and that the start time is not before now
func CreateShow(db *gorm.DB, form ShowForm, now time.Time) (*models.Show, error) {
	startTime, err := ParseISOString(form.StartTime)
	if err != nil {
		return nil, err
	}

	artist, err := GetArtist(db, form.ArtistID)
	if err != nil {
		return nil, err
	}
	venue, err := GetVenue(db, form.VenueID)
	if err != nil {
		return nil, err
	}

	if !artist.SeekingVenue {
		return nil, fmt.Errorf("%w: %s", ErrArtistNotSeeking, artist.ID)
	}
	if !venue.SeekingTalent {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotSeeking, venue.ID)
	}
	if startTime.Before(now) {
		return nil, fmt.Errorf("%w: %s", ErrShowInPast, startTime.Format(time.RFC3339))
	}

	show := &models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: startTime}
	if err := db.Create(show).Error; err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}
	return show, nil
}

// ShowErrorMessage turns a CreateShow error into the message flashed to the user
func ShowErrorMessage(err error, form ShowForm) string {
	switch {
	case errors.Is(err, ErrInvalidTimestamp):
		return "Invalid start time: " + form.StartTime
	case errors.Is(err, ErrArtistNotFound):
		return "Unable to find artist with ID: " + form.ArtistID
	case errors.Is(err, ErrVenueNotFound):
		return "Unable to find venue with ID: " + form.VenueID
	case errors.Is(err, ErrArtistNotSeeking):
		return "Artist is not accepting shows at the moment."
	case errors.Is(err, ErrVenueNotSeeking):
		return "Venue is not accepting shows at the moment."
	case errors.Is(err, ErrShowInPast):
		return "Show time cannot be in the past."
	default:
		return "An error occurred. Show could not be listed."
	}
}
