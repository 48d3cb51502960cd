package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyyur_app_go/models"
	"fyyur_app_go/services/venueui"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeleteVenueFlow drives the page's delete control against a running server
func TestDeleteVenueFlow(t *testing.T) {
	database := setupTestDB(t)
	venue := seedVenue(t, database, "The Musical Hop", true)
	artist := seedArtist(t, database, "Guns N Petals", true)
	database.Create(&models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Now().Add(time.Hour)})

	e := echo.New()
	Register(e, testConfig)
	srv := httptest.NewServer(e)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/venues/" + venue.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	nav := venueui.NewHTTPNavigator(srv.URL, nil)
	handler, _, err := venueui.BindDocument(resp.Body, venueui.NewHTTPRequester(srv.URL, nil), nav)
	require.NoError(t, err)
	require.Len(t, handler.Controls(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("Deletes then goes home", func(t *testing.T) {
		outcome := <-handler.Controls()[0].Click(ctx)
		assert.NoError(t, outcome.DeleteErr)
		assert.NoError(t, outcome.NavigateErr)
		assert.Equal(t, venue.ID, outcome.VenueID)
		assert.Equal(t, "/venues/"+venue.ID, outcome.Path)

		location, status := nav.Location()
		assert.Equal(t, "/", location)
		assert.Equal(t, http.StatusOK, status)

		var venues, shows int64
		database.Model(&models.Venue{}).Count(&venues)
		database.Model(&models.Show{}).Count(&shows)
		assert.Equal(t, int64(0), venues)
		assert.Equal(t, int64(0), shows)
	})

	t.Run("Second click still navigates after a 404", func(t *testing.T) {
		outcome := <-handler.Controls()[0].Click(ctx)
		assert.NoError(t, outcome.DeleteErr)
		assert.NoError(t, outcome.NavigateErr)
		assert.Equal(t, 2, nav.Visits())
	})

	t.Run("Unreachable server still navigates", func(t *testing.T) {
		deadNav := venueui.NewHTTPNavigator(srv.URL, nil)
		h := venueui.Bind(
			[]venueui.Element{venueui.Attrs{venueui.IDAttribute: "abc"}},
			venueui.NewHTTPRequester("http://127.0.0.1:1", nil),
			deadNav,
		)
		outcome := <-h.Controls()[0].Click(ctx)
		assert.Error(t, outcome.DeleteErr)
		assert.NoError(t, outcome.NavigateErr)
		assert.Equal(t, 1, deadNav.Visits())
	})
}
