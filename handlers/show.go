package handlers

import (
	"net/http"
	"time"

	"fyyur_app_go/db"
	"fyyur_app_go/middleware"
	"fyyur_app_go/services"
	"fyyur_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ShowsHandler lists every booked show
func ShowsHandler(c echo.Context) error {
	shows, err := services.ListShows(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load shows").SetInternal(err)
	}
	return render(c, http.StatusOK, pages.Shows(shows, middleware.ConsumeFlashes(c)))
}

func CreateShowFormHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.ShowForm(services.ShowForm{}, nil, middleware.ConsumeFlashes(c)))
}

// CreateShowHandler books a show. Any booking rule failure is flashed and the
// form is shown again with the submitted values.
func CreateShowHandler(c echo.Context) error {
	var form services.ShowForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	if errs := form.Validate(); errs != nil {
		return render(c, http.StatusBadRequest, pages.ShowForm(form, errs, middleware.ConsumeFlashes(c)))
	}

	if _, err := services.CreateShow(db.DB, form, time.Now()); err != nil {
		log.Warn().Err(err).Str("artist_id", form.ArtistID).Str("venue_id", form.VenueID).Msg("Show rejected")
		middleware.AddFlash(c, middleware.FlashError, services.ShowErrorMessage(err, form))
		return render(c, http.StatusBadRequest, pages.ShowForm(form, nil, middleware.ConsumeFlashes(c)))
	}

	middleware.AddFlash(c, middleware.FlashInfo, "Show was successfully listed!")
	return render(c, http.StatusOK, pages.Home(middleware.ConsumeFlashes(c)))
}
