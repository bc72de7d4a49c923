package provider

import (
	"context"
	"fmt"
	"time"

	"vitago/models"
	"vitago/services/availability"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultProviderService) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	p.Availability = availability.NormalizeGrid(p.Availability)
	p.Security = models.Security{}
	return p, nil
}

func (s *DefaultProviderService) GetProviderByEmail(ctx context.Context, email string) (*models.Provider, error) {
	p, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	p.Availability = availability.NormalizeGrid(p.Availability)
	p.Security = models.Security{}
	return p, nil
}

func (s *DefaultProviderService) GetAllProviders() ([]models.Provider, error) {
	providers, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return sanitizeProviders(providers), nil
}

// GetProvidersByServiceType returns the providers offering a service,
// matched case-insensitively. Backs the catalogue's provider listing.
func (s *DefaultProviderService) GetProvidersByServiceType(service string) ([]models.Provider, error) {
	providers, err := s.Repo.GetByServiceType(service)
	if err != nil {
		return nil, err
	}
	return sanitizeProviders(providers), nil
}

func sanitizeProviders(providers []models.Provider) []models.Provider {
	for i := range providers {
		providers[i].Availability = availability.NormalizeGrid(providers[i].Availability)
		providers[i].Security = models.Security{}
	}
	return providers
}

// UpdateProvider merges allowed updates and returns the updated provider
// record. It implements patch-style updates.
func (s *DefaultProviderService) UpdateProvider(ctx context.Context, id string, updates map[string]interface{}) (*models.Provider, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}

	updateFields := bson.M{}

	if v, ok := updates["provider_name"].(string); ok && v != "" {
		updateFields["profile.providerName"] = v
	}
	if v, ok := updates["phone_number"].(string); ok && v != "" {
		updateFields["profile.phoneNumber"] = v
	}
	if v, ok := updates["profile_image"].(string); ok && v != "" {
		updateFields["profile.profileImage"] = v
	}
	if v, ok := updates["service_type"].(string); ok && v != "" {
		updateFields["profile.serviceType"] = v
	}
	if v, ok := updates["city"].(string); ok && v != "" {
		updateFields["profile.city"] = v
	}
	if v, ok := updates["bio"].(string); ok && v != "" {
		updateFields["profile.bio"] = v
	}
	if v, ok := updates["social_security_number"].(string); ok && v != "" {
		updateFields["socialSecurityNumber"] = v
	}
	if bank, ok := updates["bank_details"].(map[string]interface{}); ok {
		details := models.BankDetails{}
		if v, ok := bank["name"].(string); ok {
			details.Name = v
		}
		if v, ok := bank["clearingNumber"].(string); ok {
			details.ClearingNumber = v
		}
		if v, ok := bank["bankNumber"].(string); ok {
			details.BankNumber = v
		}
		updateFields["bankDetails"] = details
	}
	if consents, ok := updates["consents"].(map[string]interface{}); ok {
		if v, ok := consents["generalConsent"].(bool); ok {
			updateFields["consents"] = models.Consents{GeneralConsent: v}
		}
	}

	updateFields["updatedAt"] = time.Now()

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": updateFields}); err != nil {
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}

	return s.GetProviderByID(ctx, id)
}

// DeleteProvider removes a provider record by its ID.
func (s *DefaultProviderService) DeleteProvider(providerID string) error {
	if err := s.Repo.Delete(providerID); err != nil {
		return fmt.Errorf("failed to delete provider with id %s: %w", providerID, err)
	}
	return nil
}

// ApplyRating writes a recomputed rating aggregate onto the provider record.
func (s *DefaultProviderService) ApplyRating(ctx context.Context, providerID string, rating float64, count int) error {
	updateDoc := bson.M{
		"$set": bson.M{
			"profile.rating":      rating,
			"profile.ratingCount": count,
			"updatedAt":           time.Now(),
		},
	}
	if err := s.Repo.UpdateWithDocument(providerID, updateDoc); err != nil {
		return fmt.Errorf("failed to apply rating to provider %s: %w", providerID, err)
	}
	return nil
}
