package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"fyyur_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestShowsHandler(t *testing.T) {
	database := setupTestDB(t)
	artist := seedArtist(t, database, "Guns N Petals", true)
	venue := seedVenue(t, database, "The Musical Hop", true)
	database.Create(&models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)})

	_, c, rec := setupEcho(http.MethodGet, "/shows", nil)
	err := ShowsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guns N Petals")
	assert.Contains(t, rec.Body.String(), "The Musical Hop")
	assert.Contains(t, rec.Body.String(), "Sunday April 1, 2035 at 8:00PM")
}

func TestCreateShowHandler(t *testing.T) {
	database := setupTestDB(t)
	artist := seedArtist(t, database, "Guns N Petals", true)
	busyArtist := seedArtist(t, database, "Matt Quevedo", false)
	venue := seedVenue(t, database, "The Musical Hop", true)
	closedVenue := seedVenue(t, database, "Park Square Live Music", false)

	future := time.Now().UTC().Add(30 * 24 * time.Hour).Format("2006-01-02 15:04:05")

	tests := []struct {
		name     string
		artistID string
		venueID  string
		start    string
		status   int
		message  string
	}{
		{"Booked", artist.ID, venue.ID, future, http.StatusOK, "Show was successfully listed!"},
		{"Artist not seeking", busyArtist.ID, venue.ID, future, http.StatusBadRequest, "Artist is not accepting shows at the moment."},
		{"Venue not seeking", artist.ID, closedVenue.ID, future, http.StatusBadRequest, "Venue is not accepting shows at the moment."},
		{"Unknown artist", "nope", venue.ID, future, http.StatusBadRequest, "Unable to find artist with ID: nope"},
		{"Unknown venue", artist.ID, "nope", future, http.StatusBadRequest, "Unable to find venue with ID: nope"},
		{"In the past", artist.ID, venue.ID, "2001-01-01 10:00:00", http.StatusBadRequest, "Show time cannot be in the past."},
		{"Garbage time", artist.ID, venue.ID, "soon", http.StatusBadRequest, "Invalid start time: soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{"artist_id": {tt.artistID}, "venue_id": {tt.venueID}, "start_time": {tt.start}}
			_, c, rec := setupFormEcho("/shows/create", form)

			err := CreateShowHandler(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}

	var count int64
	database.Model(&models.Show{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateShowHandlerMissingFields(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupFormEcho("/shows/create", url.Values{"artist_id": {"a"}})
	err := CreateShowHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venue ID is required")
	assert.Contains(t, rec.Body.String(), "Start date is required")
}
