package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"fyyur_app_go/models"
	"fyyur_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestVenuesHandler(t *testing.T) {
	database := setupTestDB(t)
	hop := seedVenue(t, database, "The Musical Hop", true)
	artist := seedArtist(t, database, "Guns N Petals", true)
	database.Create(&models.Show{ArtistID: artist.ID, VenueID: hop.ID, StartTime: time.Now().Add(48 * time.Hour)})

	_, c, rec := setupEcho(http.MethodGet, "/venues", nil)
	err := VenuesHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "San Francisco, CA")
	assert.Contains(t, rec.Body.String(), "The Musical Hop")
	assert.Contains(t, rec.Body.String(), "1 upcoming show")
}

func TestSearchVenuesHandler(t *testing.T) {
	database := setupTestDB(t)
	seedVenue(t, database, "The Musical Hop", true)
	seedVenue(t, database, "Park Square Live Music & Coffee", false)

	_, c, rec := setupFormEcho("/venues/search", url.Values{"search_term": {"HOP"}})
	err := SearchVenuesHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Musical Hop")
	assert.NotContains(t, rec.Body.String(), "Park Square")
	assert.Contains(t, rec.Body.String(), `: 1</h3>`)
}

func TestShowVenueHandler(t *testing.T) {
	database := setupTestDB(t)
	venue := seedVenue(t, database, "The Musical Hop", true)
	artist := seedArtist(t, database, "Guns N Petals", true)
	database.Create(&models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Now().Add(-48 * time.Hour)})

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/venues/"+venue.ID, nil)
		err := ShowVenueHandler(withID(c, venue.ID))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `class="btn btn-danger deleteVenueBtn" data-id="`+venue.ID+`"`)
		assert.Contains(t, body, "1 Past Show")
		assert.Contains(t, body, "0 Upcoming Shows")
		assert.Contains(t, body, "Guns N Petals")
	})

	t.Run("Unknown venue redirects with flash", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/venues/missing", nil)
		err := ShowVenueHandler(withID(c, "missing"))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/venues", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "flash=")
	})
}

func TestCreateVenueHandler(t *testing.T) {
	database := setupTestDB(t)

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupFormEcho("/venues/create", venueFormValues("The Dueling Pianos Bar"))
		err := CreateVenueHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Venue The Dueling Pianos Bar was successfully listed!")

		var venue models.Venue
		require.NoError(t, database.First(&venue, "name = ?", "The Dueling Pianos Bar").Error)
		assert.Equal(t, []string{"Jazz", "Classical"}, venue.Genres)
		assert.True(t, venue.SeekingTalent)
		assert.Equal(t, "Looking for local artists", venue.SeekingDescription)
	})

	t.Run("Validation errors re-render the form", func(t *testing.T) {
		form := venueFormValues("Bad Venue")
		form.Set("state", "ZZ")
		form.Set("phone", "5551234")

		_, c, rec := setupFormEcho("/venues/create", form)
		err := CreateVenueHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid state. Please select a valid state.")
		assert.Contains(t, rec.Body.String(), "Invalid phone number. Please use the format 123-456-7890")

		var count int64
		database.Model(&models.Venue{}).Where("name = ?", "Bad Venue").Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestEditVenueHandlers(t *testing.T) {
	database := setupTestDB(t)
	venue := seedVenue(t, database, "The Musical Hop", true)

	t.Run("Form is prefilled", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/venues/"+venue.ID+"/edit", nil)
		err := EditVenueFormHandler(withID(c, venue.ID))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="The Musical Hop"`)
		assert.Contains(t, rec.Body.String(), `name="seeking_talent" value="y" checked`)
	})

	t.Run("Unchecked seeking clears the flag", func(t *testing.T) {
		form := venueFormValues("The Musical Hop Annex")
		form.Del("seeking_talent")

		_, c, rec := setupFormEcho("/venues/"+venue.ID+"/edit", form)
		err := EditVenueHandler(withID(c, venue.ID))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/venues/"+venue.ID, rec.Header().Get(echo.HeaderLocation))

		updated, err := services.GetVenue(database, venue.ID)
		require.NoError(t, err)
		assert.Equal(t, "The Musical Hop Annex", updated.Name)
		assert.False(t, updated.SeekingTalent)
	})

	t.Run("Unknown venue", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/venues/missing/edit", nil)
		err := EditVenueFormHandler(withID(c, "missing"))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestDeleteVenueHandler(t *testing.T) {
	database := setupTestDB(t)
	venue := seedVenue(t, database, "The Musical Hop", true)
	other := seedVenue(t, database, "Park Square Live Music", true)
	artist := seedArtist(t, database, "Guns N Petals", true)
	database.Create(&models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Now().Add(time.Hour)})
	database.Create(&models.Show{ArtistID: artist.ID, VenueID: other.ID, StartTime: time.Now().Add(time.Hour)})

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodDelete, "/venues/"+venue.ID, nil)
		err := DeleteVenueHandler(withID(c, venue.ID))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		var venues, shows int64
		database.Model(&models.Venue{}).Where("id = ?", venue.ID).Count(&venues)
		database.Model(&models.Show{}).Where("venue_id = ?", venue.ID).Count(&shows)
		assert.Equal(t, int64(0), venues)
		assert.Equal(t, int64(0), shows)

		database.Model(&models.Show{}).Where("venue_id = ?", other.ID).Count(&shows)
		assert.Equal(t, int64(1), shows)
	})

	t.Run("Unknown venue", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodDelete, "/venues/"+venue.ID, nil)
		err := DeleteVenueHandler(withID(c, venue.ID))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestExportVenuesHandler(t *testing.T) {
	database := setupTestDB(t)
	seedVenue(t, database, "The Musical Hop", true)

	_, c, rec := setupEcho(http.MethodGet, "/venues/export", nil)
	err := ExportVenuesHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=venues_")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(services.VenueExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "The Musical Hop")
}
