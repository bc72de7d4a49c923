package provider

import (
	"context"
	"fmt"
	"strings"

	"vitago/models"
)

// ValidateOnboarding computes which mandatory onboarding fields a provider
// is still missing. The rules per group: the social security number is
// missing when blank; bank details are missing when any of name, clearing
// number or bank number is blank; consents are missing unless the general
// consent is set. HasAnyData is a looser check than the missing-field
// rules: it flips as soon as any single underlying field carries content,
// so a started-but-incomplete profile reads differently from an untouched
// one. A nil record reports all three groups missing.
func ValidateOnboarding(p *models.Provider) models.OnboardingStatus {
	status := models.OnboardingStatus{}

	if p == nil {
		status.MissingFields = []string{
			models.FieldSocialSecurityNumber,
			models.FieldBankDetails,
			models.FieldConsents,
		}
		return status
	}

	ssn := strings.TrimSpace(p.SocialSecurityNumber)
	if ssn == "" {
		status.MissingFields = append(status.MissingFields, models.FieldSocialSecurityNumber)
	}

	var bankName, clearing, bankNumber string
	if p.BankDetails != nil {
		bankName = strings.TrimSpace(p.BankDetails.Name)
		clearing = strings.TrimSpace(p.BankDetails.ClearingNumber)
		bankNumber = strings.TrimSpace(p.BankDetails.BankNumber)
	}
	if bankName == "" || clearing == "" || bankNumber == "" {
		status.MissingFields = append(status.MissingFields, models.FieldBankDetails)
	}

	consented := p.Consents != nil && p.Consents.GeneralConsent
	if !consented {
		status.MissingFields = append(status.MissingFields, models.FieldConsents)
	}

	status.IsComplete = len(status.MissingFields) == 0
	status.HasAnyData = ssn != "" ||
		bankName != "" || clearing != "" || bankNumber != "" ||
		consented
	return status
}

// OnboardingStatus fetches the provider fresh and derives its completeness
// state. Gated actions call this immediately before acting so they never
// trust a stale snapshot.
func (s *DefaultProviderService) OnboardingStatus(ctx context.Context, providerID string) (models.OnboardingStatus, error) {
	p, err := s.Repo.GetByID(providerID)
	if err != nil {
		return models.OnboardingStatus{}, fmt.Errorf("failed to fetch provider for onboarding check: %w", err)
	}
	return ValidateOnboarding(p), nil
}
