package provider

import (
	"context"
	"fmt"
	"time"

	"vitago/models"
	"vitago/services/availability"

	"go.mongodb.org/mongo-driver/bson"
)

// GetAvailability returns the provider's weekly grid, normalized so callers
// never see a malformed or partial schedule.
func (s *DefaultProviderService) GetAvailability(ctx context.Context, providerID string) (models.WeeklyAvailability, error) {
	p, err := s.Repo.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	return availability.NormalizeGrid(p.Availability), nil
}

// UpdateAvailability normalizes and stores a raw weekly grid as submitted
// by the profile page. Malformed input degrades to all-unavailable slots
// rather than failing.
func (s *DefaultProviderService) UpdateAvailability(ctx context.Context, providerID string, raw any) (models.WeeklyAvailability, error) {
	grid := availability.Normalize(raw)
	updateDoc := bson.M{"$set": bson.M{"availability": grid, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(providerID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	return grid, nil
}

// ToggleAvailabilitySlot flips a single slot and stores the replaced grid,
// mirroring the calendar's one-slot-per-edit interaction.
func (s *DefaultProviderService) ToggleAvailabilitySlot(ctx context.Context, providerID string, period models.Period, day string) (models.WeeklyAvailability, error) {
	p, err := s.Repo.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	grid := availability.ToggleSlot(p.Availability, period, day)
	updateDoc := bson.M{"$set": bson.M{"availability": grid, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(providerID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to toggle availability slot: %w", err)
	}
	return grid, nil
}
