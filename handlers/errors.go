package handlers

import (
	"errors"
	"net/http"

	"fyyur_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders the 404 and 500 pages in place of echo's JSON errors
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Request failed")
	}

	if c.Request().Method == http.MethodHead || c.Request().Method == http.MethodDelete {
		if werr := c.NoContent(code); werr != nil {
			log.Error().Err(werr).Msg("Failed to write error response")
		}
		return
	}

	var werr error
	switch {
	case code == http.StatusNotFound:
		werr = render(c, code, pages.NotFound())
	case code >= http.StatusInternalServerError:
		werr = render(c, code, pages.ServerError())
	default:
		werr = c.String(code, http.StatusText(code))
	}
	if werr != nil {
		log.Error().Err(werr).Msg("Failed to write error response")
	}
}
