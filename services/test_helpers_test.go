package services

import (
	"testing"
	"time"

	"fyyur_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testNow = time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)

func setupServicesTestDB(t *testing.T) *gorm.DB {
	// Unique shared memory name isolates tests while keeping one database across pooled connections
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(models.AllModels()...))
	return testDB
}

func createVenue(t *testing.T, db *gorm.DB, name, city, state string, seeking bool) *models.Venue {
	v := &models.Venue{
		Name:          name,
		City:          city,
		State:         state,
		Address:       "1 Main St",
		Genres:        []string{"Jazz"},
		SeekingTalent: seeking,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func createArtist(t *testing.T, db *gorm.DB, name string, seeking bool) *models.Artist {
	a := &models.Artist{
		Name:         name,
		City:         "San Francisco",
		State:        "CA",
		Genres:       []string{"Jazz"},
		ImageLink:    "https://images.example.com/" + name + ".jpg",
		SeekingVenue: seeking,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func createShow(t *testing.T, db *gorm.DB, artist *models.Artist, venue *models.Venue, start time.Time) *models.Show {
	s := &models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: start}
	require.NoError(t, db.Create(s).Error)
	return s
}
