package routes

import (
	"net/http"
	"time"

	"vitago/handlers"
	"vitago/middleware"
	"vitago/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers client account endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.POST("/register", hb.RegisterClientHandler)
		api.POST("/login", hb.AuthenticateClientHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthClientMiddleware(hb.ClientRepo))
		api.GET("/me", hb.GetClientHandler)
		api.PATCH("/update", hb.UpdateClientHandler)
		api.DELETE("/delete", hb.DeleteClientHandler)
		api.DELETE("/revoke", hb.RevokeClientAuthTokenHandler)
	}
}

// RegisterProviderRoutes registers provider management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public provider endpoints (registration, login, browsing)
		api.POST("/register", hb.RegisterProviderHandler)
		api.POST("/login", hb.AuthenticateProviderHandler)
		api.GET("", hb.GetProvidersHandler)
		api.GET("/id/:id", hb.GetProviderByIDHandler)

		// Endpoints that read or modify the caller's own record require
		// strict authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		protected.PATCH("/update", hb.UpdateProviderHandler)
		protected.DELETE("/delete", hb.DeleteProviderHandler)
		protected.DELETE("/revoke", hb.RevokeProviderAuthTokenHandler)
		protected.GET("/availability", hb.GetAvailabilityHandler)
		protected.PUT("/availability", hb.UpdateAvailabilityHandler)
		protected.PATCH("/availability/toggle", hb.ToggleAvailabilityHandler)
		protected.GET("/onboarding-status", hb.OnboardingStatusHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Selection options are public: the booking form needs them before
		// the client commits to anything.
		api.GET("/options/month", hb.MonthOptionsHandler)
		api.GET("/options/times", hb.TimeOptionsHandler)

		// Client side of the lifecycle.
		client := api.Group("")
		client.Use(middleware.JWTAuthClientMiddleware(hb.ClientRepo))
		client.POST("", hb.CreateBookingHandler)
		client.GET("", hb.GetClientBookingsHandler)
		client.PUT("/:id/cancel", hb.CancelBookingHandler)

		// Provider side of the lifecycle.
		provider := api.Group("")
		provider.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		provider.GET("/provider", hb.GetProviderBookingsHandler)
		provider.PUT("/:id/accept", hb.AcceptBookingHandler)
		provider.PUT("/:id/decline", hb.DeclineBookingHandler)
		provider.PUT("/:id/complete", hb.CompleteBookingHandler)
	}
}

// RegisterReportRoutes sets up post-service report endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.GET("/booking/:id", hb.GetBookingReportsHandler)
		api.GET("/provider/:id", hb.GetProviderReportsHandler)

		client := api.Group("")
		client.Use(middleware.JWTAuthClientMiddleware(hb.ClientRepo))
		client.POST("/client", hb.FileClientReportHandler)

		provider := api.Group("")
		provider.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		provider.POST("/provider", hb.FileProviderReportHandler)
	}
}

// RegisterCatalogueRoute registers the searchable service catalogue.
func RegisterCatalogueRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services/catalogue", hb.CatalogueHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		checks := utils.GetHealthStatus()
		status := "ok"
		if !checks.CheckedAt.IsZero() && !checks.Healthy() {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"message": "Hi, I'm Vitago",
			"checks":  checks,
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterClientRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterCatalogueRoute(r, hb)
	RegisterHealthRoute(r)
}
