package provider

import (
	"context"

	providerRepo "vitago/database/repository/provider"
	"vitago/models"
)

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

// ProviderService defines provider account and availability operations.
type ProviderService interface {
	// Registration and authentication
	RegisterProvider(ctx context.Context, p models.Provider) (*models.ProviderAuthResponse, error)
	AuthenticateProvider(ctx context.Context, email, password string) (*models.ProviderAuthResponse, error)
	RevokeProviderAuthToken(providerID string) error

	// Account management
	GetProviderByID(ctx context.Context, id string) (*models.Provider, error)
	GetProviderByEmail(ctx context.Context, email string) (*models.Provider, error)
	GetAllProviders() ([]models.Provider, error)
	GetProvidersByServiceType(service string) ([]models.Provider, error)
	UpdateProvider(ctx context.Context, id string, updates map[string]interface{}) (*models.Provider, error)
	DeleteProvider(id string) error

	// Availability management
	GetAvailability(ctx context.Context, providerID string) (models.WeeklyAvailability, error)
	UpdateAvailability(ctx context.Context, providerID string, raw any) (models.WeeklyAvailability, error)
	ToggleAvailabilitySlot(ctx context.Context, providerID string, period models.Period, day string) (models.WeeklyAvailability, error)

	// Onboarding
	OnboardingStatus(ctx context.Context, providerID string) (models.OnboardingStatus, error)

	// Ratings
	ApplyRating(ctx context.Context, providerID string, rating float64, count int) error
}

// Compile-time check.
var _ ProviderService = (*DefaultProviderService)(nil)
