package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyyur_app_go/logger"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	logger.SetupWithWriter("info", "production", &buf)

	e := echo.New()
	e.Use(RequestLogger())
	e.DELETE("/venues/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Venue not found")
	})

	req := httptest.NewRequest(http.MethodDelete, "/venues/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "DELETE", entry["method"])
	assert.Equal(t, "/venues/missing", entry["uri"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
}
