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

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// VenuesHandler lists venues grouped by city and state
func VenuesHandler(c echo.Context) error {
	areas, err := services.ListVenueAreas(db.DB, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load venues").SetInternal(err)
	}
	return render(c, http.StatusOK, pages.Venues(areas, middleware.ConsumeFlashes(c)))
}

// SearchVenuesHandler runs a case-insensitive name search
func SearchVenuesHandler(c echo.Context) error {
	term := c.FormValue("search_term")
	result, err := services.SearchVenues(db.DB, term, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search venues").SetInternal(err)
	}
	return render(c, http.StatusOK, pages.SearchVenues(result, term, middleware.ConsumeFlashes(c)))
}

// ShowVenueHandler renders a venue with its past and upcoming shows
func ShowVenueHandler(c echo.Context) error {
	id := c.Param("id")
	detail, err := services.GetVenueDetail(db.DB, id, time.Now())
	if errors.Is(err, services.ErrVenueNotFound) {
		middleware.AddFlash(c, middleware.FlashError, "Venue not found.")
		return c.Redirect(http.StatusSeeOther, "/venues")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load venue").SetInternal(err)
	}
	return render(c, http.StatusOK, pages.ShowVenue(detail, middleware.ConsumeFlashes(c)))
}

// CreateVenueFormHandler renders an empty venue form
func CreateVenueFormHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.VenueForm("List a new venue", "/venues/create",
		services.VenueForm{}, nil, middleware.ConsumeFlashes(c)))
}

// CreateVenueHandler validates and stores a new venue, then renders the home page
func CreateVenueHandler(c echo.Context) error {
	form, err := bindVenueForm(c)
	if err != nil {
		return err
	}

	if errs := form.Validate(); errs != nil {
		return render(c, http.StatusBadRequest, pages.VenueForm("List a new venue", "/venues/create",
			form, errs, middleware.ConsumeFlashes(c)))
	}

	if _, err := services.CreateVenue(db.DB, form); err != nil {
		log.Error().Err(err).Str("venue", form.Name).Msg("Failed to create venue")
		middleware.AddFlash(c, middleware.FlashError, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
	} else {
		middleware.AddFlash(c, middleware.FlashInfo, fmt.Sprintf("Venue %s was successfully listed!", form.Name))
	}
	return render(c, http.StatusOK, pages.Home(middleware.ConsumeFlashes(c)))
}

// EditVenueFormHandler renders the venue form prefilled from the stored venue
func EditVenueFormHandler(c echo.Context) error {
	id := c.Param("id")
	venue, err := services.GetVenue(db.DB, id)
	if errors.Is(err, services.ErrVenueNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Venue not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load venue").SetInternal(err)
	}

	return render(c, http.StatusOK, pages.VenueForm("Edit venue "+venue.Name, "/venues/"+id+"/edit",
		services.VenueFormFrom(*venue), nil, middleware.ConsumeFlashes(c)))
}

// EditVenueHandler validates and saves changes to a venue
func EditVenueHandler(c echo.Context) error {
	id := c.Param("id")
	form, err := bindVenueForm(c)
	if err != nil {
		return err
	}

	if errs := form.Validate(); errs != nil {
		return render(c, http.StatusBadRequest, pages.VenueForm("Edit venue", "/venues/"+id+"/edit",
			form, errs, middleware.ConsumeFlashes(c)))
	}

	venue, err := services.UpdateVenue(db.DB, id, form)
	if errors.Is(err, services.ErrVenueNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Venue not found")
	}
	if err != nil {
		log.Error().Err(err).Str("venue_id", id).Msg("Failed to update venue")
		middleware.AddFlash(c, middleware.FlashError, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return c.Redirect(http.StatusSeeOther, "/venues/"+id)
	}

	middleware.AddFlash(c, middleware.FlashInfo, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	return c.Redirect(http.StatusSeeOther, "/venues/"+venue.ID)
}

// DeleteVenueHandler removes a venue and its shows. The page script navigates
// home on its own once this settles, so the response has no body.
func DeleteVenueHandler(c echo.Context) error {
	id := c.Param("id")
	err := services.DeleteVenue(db.DB, id)
	if errors.Is(err, services.ErrVenueNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Venue not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete venue").SetInternal(err)
	}

	log.Info().Str("venue_id", id).Msg("Venue deleted")
	middleware.AddFlash(c, middleware.FlashInfo, "Venue was successfully deleted.")
	return c.NoContent(http.StatusNoContent)
}

// ExportVenuesHandler downloads every venue as a spreadsheet
func ExportVenuesHandler(c echo.Context) error {
	buf, err := services.ExportVenuesXLSX(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export venues").SetInternal(err)
	}

	filename := fmt.Sprintf("venues_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func bindVenueForm(c echo.Context) (services.VenueForm, error) {
	var form services.VenueForm
	if err := c.Bind(&form); err != nil {
		return form, echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	// unchecked boxes are absent from the body
	form.SeekingTalent = c.FormValue("seeking_talent") != ""
	return form, nil
}
