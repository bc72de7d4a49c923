package handlers

import (
	clientRepoPkg "vitago/database/repository/client"
	providerRepoPkg "vitago/database/repository/provider"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct. The repos are
// carried alongside so route registration can hand them to the auth
// middleware.
type HandlerBundle struct {
	ProviderRepo providerRepoPkg.ProviderRepository
	ClientRepo   clientRepoPkg.ClientRepository

	// Provider endpoints
	RegisterProviderHandler        gin.HandlerFunc
	AuthenticateProviderHandler    gin.HandlerFunc
	RevokeProviderAuthTokenHandler gin.HandlerFunc
	GetProviderByIDHandler         gin.HandlerFunc
	GetProvidersHandler            gin.HandlerFunc
	UpdateProviderHandler          gin.HandlerFunc
	DeleteProviderHandler          gin.HandlerFunc
	GetAvailabilityHandler         gin.HandlerFunc
	UpdateAvailabilityHandler      gin.HandlerFunc
	ToggleAvailabilityHandler      gin.HandlerFunc
	OnboardingStatusHandler        gin.HandlerFunc

	// Client endpoints
	RegisterClientHandler        gin.HandlerFunc
	AuthenticateClientHandler    gin.HandlerFunc
	RevokeClientAuthTokenHandler gin.HandlerFunc
	GetClientHandler             gin.HandlerFunc
	UpdateClientHandler          gin.HandlerFunc
	DeleteClientHandler          gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler        gin.HandlerFunc
	GetClientBookingsHandler    gin.HandlerFunc
	GetProviderBookingsHandler  gin.HandlerFunc
	AcceptBookingHandler        gin.HandlerFunc
	DeclineBookingHandler       gin.HandlerFunc
	CancelBookingHandler        gin.HandlerFunc
	CompleteBookingHandler      gin.HandlerFunc
	MonthOptionsHandler         gin.HandlerFunc
	TimeOptionsHandler          gin.HandlerFunc

	// Report endpoints
	FileClientReportHandler   gin.HandlerFunc
	FileProviderReportHandler gin.HandlerFunc
	GetBookingReportsHandler  gin.HandlerFunc
	GetProviderReportsHandler gin.HandlerFunc

	// Catalogue endpoint
	CatalogueHandler gin.HandlerFunc
}
