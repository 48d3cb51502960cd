package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	t.Run("Not found page", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/nowhere", nil)
		ErrorHandler(echo.ErrNotFound, c)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>404</h1>")
	})

	t.Run("Plain errors become 500", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/venues", nil)
		ErrorHandler(errors.New("database is locked"), c)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "<h1>500</h1>")
		assert.NotContains(t, rec.Body.String(), "database is locked")
	})

	t.Run("Other client errors", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/venues/create", nil)
		ErrorHandler(echo.NewHTTPError(http.StatusBadRequest, "Invalid form data"), c)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Bad Request", rec.Body.String())
	})

	t.Run("Delete gets no body", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodDelete, "/venues/missing", nil)
		ErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Venue not found"), c)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
