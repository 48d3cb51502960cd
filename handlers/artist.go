package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fyyur_app_go/db"
	"fyyur_app_go/middleware"
	"fyyur_app_go/services"
	"fyyur_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ArtistsHandler lists artists, newest first
func ArtistsHandler(c echo.Context) error {
	artists, err := services.ListArtists(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load artists").SetInternal(err)
	}
	return render(c, http.StatusOK, pages.Artists(artists, middleware.ConsumeFlashes(c)))
}

// SearchArtistsHandler runs a case-insensitive name search
func SearchArtistsHandler(c echo.Context) error {
	term := c.FormValue("search_term")
	result, err := services.SearchArtists(db.DB, term, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search artists").SetInternal(err)
	}
	return render(c, http.StatusOK, pages.SearchArtists(result, term, middleware.ConsumeFlashes(c)))
}

// ShowArtistHandler renders an artist with their past and upcoming shows
func ShowArtistHandler(c echo.Context) error {
	detail, err := services.GetArtistDetail(db.DB, c.Param("id"), time.Now())
	if errors.Is(err, services.ErrArtistNotFound) {
		middleware.AddFlash(c, middleware.FlashError, "Artist not found.")
		return c.Redirect(http.StatusSeeOther, "/artists")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load artist").SetInternal(err)
	}
	return render(c, http.StatusOK, pages.ShowArtist(detail, middleware.ConsumeFlashes(c)))
}

func CreateArtistFormHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.ArtistForm("List a new artist", "/artists/create",
		services.ArtistForm{}, nil, middleware.ConsumeFlashes(c)))
}

func CreateArtistHandler(c echo.Context) error {
	form, err := bindArtistForm(c)
	if err != nil {
		return err
	}

	if errs := form.Validate(); errs != nil {
		return render(c, http.StatusBadRequest, pages.ArtistForm("List a new artist", "/artists/create",
			form, errs, middleware.ConsumeFlashes(c)))
	}

	if _, err := services.CreateArtist(db.DB, form); err != nil {
		log.Error().Err(err).Str("artist", form.Name).Msg("Failed to create artist")
		middleware.AddFlash(c, middleware.FlashError, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
	} else {
		middleware.AddFlash(c, middleware.FlashInfo, fmt.Sprintf("Artist %s was successfully listed!", form.Name))
	}
	return render(c, http.StatusOK, pages.Home(middleware.ConsumeFlashes(c)))
}

func EditArtistFormHandler(c echo.Context) error {
	id := c.Param("id")
	artist, err := services.GetArtist(db.DB, id)
	if errors.Is(err, services.ErrArtistNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Artist not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load artist").SetInternal(err)
	}

	return render(c, http.StatusOK, pages.ArtistForm("Edit artist "+artist.Name, "/artists/"+id+"/edit",
		services.ArtistFormFrom(*artist), nil, middleware.ConsumeFlashes(c)))
}

func EditArtistHandler(c echo.Context) error {
	id := c.Param("id")
	form, err := bindArtistForm(c)
	if err != nil {
		return err
	}

	if errs := form.Validate(); errs != nil {
		return render(c, http.StatusBadRequest, pages.ArtistForm("Edit artist", "/artists/"+id+"/edit",
			form, errs, middleware.ConsumeFlashes(c)))
	}

	artist, err := services.UpdateArtist(db.DB, id, form)
	if errors.Is(err, services.ErrArtistNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Artist not found")
	}
	if err != nil {
		log.Error().Err(err).Str("artist_id", id).Msg("Failed to update artist")
		middleware.AddFlash(c, middleware.FlashError, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return c.Redirect(http.StatusSeeOther, "/artists/"+id)
	}

	middleware.AddFlash(c, middleware.FlashInfo, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	return c.Redirect(http.StatusSeeOther, "/artists/"+artist.ID)
}

func bindArtistForm(c echo.Context) (services.ArtistForm, error) {
	var form services.ArtistForm
	if err := c.Bind(&form); err != nil {
		return form, echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	form.SeekingVenue = c.FormValue("seeking_venue") != ""
	return form, nil
}
