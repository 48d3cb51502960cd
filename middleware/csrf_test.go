package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fyyur_app_go/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	t.Run("TokenExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		expectedToken := "test-csrf-token"
		c.Set("csrf", expectedToken)

		token := GetCSRFToken(c)
		assert.Equal(t, expectedToken, token)
	})

	t.Run("TokenMissing", func(t *testing.T) {
		c := e.NewContext(nil, nil)

		token := GetCSRFToken(c)
		assert.Equal(t, "", token)
	})

	t.Run("TokenInvalidType", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", 123) // Not a string

		token := GetCSRFToken(c)
		assert.Equal(t, "", token)
	})
}

func TestCSRF(t *testing.T) {
	cfg := &config.Config{Environment: "test"}
	e := echo.New()
	e.Use(CSRF(cfg))
	e.GET("/form", func(c echo.Context) error {
		return c.String(http.StatusOK, GetCSRFToken(c))
	})
	e.POST("/form", func(c echo.Context) error {
		return c.String(http.StatusOK, "saved")
	})
	e.DELETE("/form", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/form", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	token := rec.Body.String()
	assert.NotEmpty(t, token)

	var csrfCookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "_csrf" {
			csrfCookie = ck
		}
	}
	if !assert.NotNil(t, csrfCookie) {
		return
	}
	assert.Equal(t, token, csrfCookie.Value)
	assert.True(t, csrfCookie.HttpOnly)

	post := func(formToken string) *httptest.ResponseRecorder {
		form := url.Values{"name": {"The Musical Hop"}}
		if formToken != "" {
			form.Set("csrf_token", formToken)
		}
		req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(csrfCookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("PostWithoutTokenRejected", func(t *testing.T) {
		rec := post("")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotContains(t, rec.Body.String(), "saved")
	})

	t.Run("PostWithWrongTokenRejected", func(t *testing.T) {
		rec := post("not-the-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("PostWithTokenAccepted", func(t *testing.T) {
		rec := post(token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "saved", rec.Body.String())
	})

	t.Run("DeleteSkipsToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/form", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
