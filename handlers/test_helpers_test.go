package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fyyur_app_go/config"
	"fyyur_app_go/db"
	"fyyur_app_go/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testConfig = &config.Config{
	Environment:   "test",
	SessionSecret: "test-secret-for-flash-cookies-0123456789",
}

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache across pooled connections
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.Exec("PRAGMA journal_mode=WAL;").Error
	assert.NoError(t, err)

	err = testDB.AutoMigrate(models.AllModels()...)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig)

	return e, c, rec
}

func setupFormEcho(path string, form url.Values) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e, c, rec := setupEcho(http.MethodPost, path, strings.NewReader(form.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return e, c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func seedVenue(t *testing.T, database *gorm.DB, name string, seeking bool) *models.Venue {
	v := &models.Venue{
		Name:          name,
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		Phone:         "123-123-1234",
		Genres:        []string{"Jazz", "Folk"},
		SeekingTalent: seeking,
	}
	assert.NoError(t, database.Create(v).Error)
	return v
}

func seedArtist(t *testing.T, database *gorm.DB, name string, seeking bool) *models.Artist {
	a := &models.Artist{
		Name:         name,
		City:         "San Francisco",
		State:        "CA",
		Genres:       []string{"Rock n Roll"},
		ImageLink:    "https://images.example.com/artist.jpg",
		SeekingVenue: seeking,
	}
	assert.NoError(t, database.Create(a).Error)
	return a
}

func venueFormValues(name string) url.Values {
	return url.Values{
		"name":                {name},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"genres":              {"Jazz", "Classical"},
		"website_link":        {"https://www.themusicalhop.com"},
		"seeking_talent":      {"y"},
		"seeking_description": {"Looking for <b>local</b> artists"},
	}
}
