package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupModelsDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(AllModels()...))
	return testDB
}

func TestBeforeCreateAssignsIDs(t *testing.T) {
	testDB := setupModelsDB(t)

	venue := &Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street", Genres: []string{"Jazz", "Folk"}}
	require.NoError(t, testDB.Create(venue).Error)
	_, err := uuid.Parse(venue.ID)
	assert.NoError(t, err)

	artist := &Artist{ID: "fixed-artist", Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: []string{"Rock n Roll"}}
	require.NoError(t, testDB.Create(artist).Error)
	assert.Equal(t, "fixed-artist", artist.ID)

	show := &Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)}
	require.NoError(t, testDB.Create(show).Error)
	assert.NotEmpty(t, show.ID)
}

func TestGenresRoundTripAsJSON(t *testing.T) {
	testDB := setupModelsDB(t)

	venue := &Venue{Name: "Park Square", City: "San Francisco", State: "CA", Address: "34 Whiskey Moore Ave", Genres: []string{"Jazz", "Hip-Hop"}}
	require.NoError(t, testDB.Create(venue).Error)

	var raw string
	require.NoError(t, testDB.Raw("SELECT genres FROM venues WHERE id = ?", venue.ID).Scan(&raw).Error)
	assert.Equal(t, `["Jazz","Hip-Hop"]`, raw)

	var loaded Venue
	require.NoError(t, testDB.First(&loaded, "id = ?", venue.ID).Error)
	assert.Equal(t, []string{"Jazz", "Hip-Hop"}, loaded.Genres)
}

func TestChoices(t *testing.T) {
	assert.True(t, IsGenre("Musical Theatre"))
	assert.False(t, IsGenre("musical theatre"))
	assert.True(t, IsState("NY"))
	assert.False(t, IsState("XX"))
	assert.Len(t, States, 51)
}

func TestShowIsUpcoming(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, Show{StartTime: now.Add(time.Hour)}.IsUpcoming(now))
	assert.False(t, Show{StartTime: now.Add(-time.Hour)}.IsUpcoming(now))
	assert.False(t, Show{StartTime: now}.IsUpcoming(now))
}
