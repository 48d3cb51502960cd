package handlers

import (
	"net/http"

	"fyyur_app_go/middleware"
	"fyyur_app_go/templates/pages"
	"fyyur_app_go/templates/partials"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// HomeHandler renders the landing page
func HomeHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.Home(middleware.ConsumeFlashes(c)))
}

// render writes a page with the given status. Flashes must already be consumed.
func render(c echo.Context, status int, component templ.Component) error {
	ctx := partials.WithCSRFToken(c.Request().Context(), middleware.GetCSRFToken(c))
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(ctx, c.Response().Writer)
}
