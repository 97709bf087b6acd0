package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rentora/config"
	"rentora/handlers"
)

// RegisterRoutes wires all endpoints of the rental pricing & availability
// service onto the router.
func RegisterRoutes(
	r *gin.Engine,
	quoteHandler *handlers.QuoteHandler,
	bookingHandler *handlers.BookingHandler,
	vendorHandler *handlers.VendorHandler,
) {
	r.Use(corsMiddleware())

	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")
	{
		api.POST("/quotes", quoteHandler.ComputeQuote)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingHandler.ConfirmBooking)
			bookings.POST("/validate", bookingHandler.ValidateBooking)
			bookings.PATCH("/:id/cancel", bookingHandler.CancelBooking)
		}

		vendor := api.Group("/vendor/listings")
		{
			vendor.POST("", vendorHandler.CreateListing)
			vendor.PUT("/:id/pricing", vendorHandler.UpdatePricing)
			vendor.PUT("/:id/seasons", vendorHandler.ReplaceSeasons)
			vendor.GET("/:id/calendar", vendorHandler.GetCalendar)
			vendor.POST("/:id/calendar/block", vendorHandler.BlockCalendar)
			vendor.POST("/:id/calendar/unblock", vendorHandler.UnblockCalendar)
			vendor.DELETE("/:id/calendar/blocks", vendorHandler.ClearBlocks)
		}
	}
}

// corsMiddleware allows the browser booking UI to call the API from its
// own origin. Origins come from config; "*" (the default) allows any.
func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}

	origins := strings.TrimSpace(config.AppConfig.CORSAllowedOrigins)
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		for _, o := range strings.Split(origins, ",") {
			cfg.AllowOrigins = append(cfg.AllowOrigins, strings.TrimSpace(o))
		}
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
