package handlers

import (
	"fyyur_app_go/config"
	"fyyur_app_go/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Register installs the middleware chain, error handler and every route on e
func Register(e *echo.Echo, cfg *config.Config) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Flash(cfg))
	e.Use(middleware.CSRF(cfg))

	e.Static("/static", "static")

	e.GET("/", HomeHandler)

	venues := e.Group("/venues")
	{
		venues.GET("", VenuesHandler)
		venues.POST("/search", SearchVenuesHandler)
		venues.GET("/export", ExportVenuesHandler)
		venues.GET("/create", CreateVenueFormHandler)
		venues.POST("/create", CreateVenueHandler)
		venues.GET("/:id", ShowVenueHandler)
		venues.DELETE("/:id", DeleteVenueHandler)
		venues.GET("/:id/edit", EditVenueFormHandler)
		venues.POST("/:id/edit", EditVenueHandler)
	}

	artists := e.Group("/artists")
	{
		artists.GET("", ArtistsHandler)
		artists.POST("/search", SearchArtistsHandler)
		artists.GET("/create", CreateArtistFormHandler)
		artists.POST("/create", CreateArtistHandler)
		artists.GET("/:id", ShowArtistHandler)
		artists.GET("/:id/edit", EditArtistFormHandler)
		artists.POST("/:id/edit", EditArtistHandler)
	}

	shows := e.Group("/shows")
	{
		shows.GET("", ShowsHandler)
		shows.GET("/create", CreateShowFormHandler)
		shows.POST("/create", CreateShowHandler)
	}
}
