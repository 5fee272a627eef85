// Package router assembles the HTTP surface.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuehub/internal/domain/booking"
	"venuehub/internal/domain/listing"
	"venuehub/internal/domain/notification"
	"venuehub/internal/domain/upload"
	"venuehub/internal/domain/venue"
	"venuehub/internal/domain/wizard"
	"venuehub/internal/middleware"
	"venuehub/internal/pkg/jwt"
)

type Handlers struct {
	Venues        *venue.Handler
	Wizards       *wizard.Handler
	Listings      *listing.Handler
	Bookings      *booking.Handler
	Uploads       *upload.Handler
	Notifications *notification.Handler
}

type Options struct {
	JWT         *jwt.Service
	CORSOrigins string
	// StaticURL and StaticDir serve locally stored uploads; both empty disables it.
	StaticURL string
	StaticDir string
}

// New returns the engine with middleware and every route mounted under /api/v1.
func New(opts Options, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.StaticURL != "" && opts.StaticDir != "" {
		r.Static(opts.StaticURL, opts.StaticDir)
	}

	v1 := r.Group("/api/v1")
	{
		// public
		h.Venues.RegisterRoutes(v1)

		ws := v1.Group("")
		ws.Use(middleware.QueryTokenAuth(opts.JWT))
		h.Notifications.RegisterWSRoutes(ws)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(opts.JWT))
		{
			h.Wizards.RegisterRoutes(protected)
			h.Listings.RegisterRoutes(protected)
			h.Bookings.RegisterRoutes(protected)
			h.Uploads.RegisterRoutes(protected)
			h.Notifications.RegisterRoutes(protected)
		}
	}
	return r
}
