package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"fyyur_app_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistsHandler(t *testing.T) {
	database := setupTestDB(t)
	seedArtist(t, database, "Guns N Petals", true)
	seedArtist(t, database, "Matt Quevedo", false)

	_, c, rec := setupEcho(http.MethodGet, "/artists", nil)
	err := ArtistsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guns N Petals")
	assert.Contains(t, rec.Body.String(), "Matt Quevedo")
}

func TestSearchArtistsHandler(t *testing.T) {
	database := setupTestDB(t)
	seedArtist(t, database, "Guns N Petals", true)
	seedArtist(t, database, "Matt Quevedo", false)
	seedArtist(t, database, "The Wild Sax Band", false)

	_, c, rec := setupFormEcho("/artists/search", url.Values{"search_term": {"a"}})
	err := SearchArtistsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `: 3</h3>`)

	_, c, rec = setupFormEcho("/artists/search", url.Values{"search_term": {"band"}})
	err = SearchArtistsHandler(c)
	assert.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "The Wild Sax Band")
	assert.NotContains(t, rec.Body.String(), "Matt Quevedo")
}

func TestShowArtistHandler(t *testing.T) {
	database := setupTestDB(t)
	artist := seedArtist(t, database, "Guns N Petals", true)
	venue := seedVenue(t, database, "The Musical Hop", true)
	database.Create(&models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Now().Add(72 * time.Hour)})

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/artists/"+artist.ID, nil)
		err := ShowArtistHandler(withID(c, artist.ID))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "1 Upcoming Show")
		assert.Contains(t, rec.Body.String(), `href="/venues/`+venue.ID+`"`)
		assert.Contains(t, rec.Body.String(), "Currently seeking performance venues")
	})

	t.Run("Unknown artist redirects", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/artists/missing", nil)
		err := ShowArtistHandler(withID(c, "missing"))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/artists", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestCreateArtistHandler(t *testing.T) {
	database := setupTestDB(t)

	form := url.Values{
		"name":          {"The Wild Sax Band"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"432-325-5432"},
		"genres":        {"Jazz", "Classical"},
		"seeking_venue": {"y"},
	}

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupFormEcho("/artists/create", form)
		err := CreateArtistHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Artist The Wild Sax Band was successfully listed!")

		var artist models.Artist
		require.NoError(t, database.First(&artist, "name = ?", "The Wild Sax Band").Error)
		assert.True(t, artist.SeekingVenue)
	})

	t.Run("Unknown genre", func(t *testing.T) {
		bad := url.Values{}
		for k, v := range form {
			bad[k] = v
		}
		bad["genres"] = []string{"Jazz", "Polka"}

		_, c, rec := setupFormEcho("/artists/create", bad)
		err := CreateArtistHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid genre. Please select a valid genre.")
	})
}

func TestEditArtistHandler(t *testing.T) {
	database := setupTestDB(t)
	artist := seedArtist(t, database, "Guns N Petals", true)

	form := url.Values{
		"name":   {"Guns N Roses"},
		"city":   {"Los Angeles"},
		"state":  {"CA"},
		"genres": {"Rock n Roll"},
	}

	_, c, rec := setupFormEcho("/artists/"+artist.ID+"/edit", form)
	err := EditArtistHandler(withID(c, artist.ID))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/artists/"+artist.ID, rec.Header().Get(echo.HeaderLocation))

	var updated models.Artist
	require.NoError(t, database.First(&updated, "id = ?", artist.ID).Error)
	assert.Equal(t, "Guns N Roses", updated.Name)
	assert.Equal(t, "Los Angeles", updated.City)
	assert.False(t, updated.SeekingVenue)

	_, c, _ = setupFormEcho("/artists/missing/edit", form)
	err = EditArtistHandler(withID(c, "missing"))
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
