package provider

import (
	"testing"

	"vitago/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateOnboardingNilRecord(t *testing.T) {
	status := ValidateOnboarding(nil)

	assert.False(t, status.IsComplete)
	assert.False(t, status.HasAnyData)
	assert.Equal(t, []string{
		models.FieldSocialSecurityNumber,
		models.FieldBankDetails,
		models.FieldConsents,
	}, status.MissingFields)
}

func TestValidateOnboardingEmptyRecord(t *testing.T) {
	status := ValidateOnboarding(&models.Provider{SocialSecurityNumber: ""})

	assert.False(t, status.IsComplete)
	assert.False(t, status.HasAnyData)
	assert.Equal(t, []string{
		models.FieldSocialSecurityNumber,
		models.FieldBankDetails,
		models.FieldConsents,
	}, status.MissingFields)
}

func TestValidateOnboardingSSNOnly(t *testing.T) {
	status := ValidateOnboarding(&models.Provider{
		SocialSecurityNumber: "19900101-1234",
	})

	assert.False(t, status.IsComplete)
	assert.True(t, status.HasAnyData)
	assert.Equal(t, []string{models.FieldBankDetails, models.FieldConsents}, status.MissingFields)
}

func TestValidateOnboardingPartialBankDetails(t *testing.T) {
	status := ValidateOnboarding(&models.Provider{
		BankDetails: &models.BankDetails{Name: "SEB"},
	})

	// one bank field present: started but the group still counts as missing
	assert.True(t, status.HasAnyData)
	assert.Contains(t, status.MissingFields, models.FieldBankDetails)
}

func TestValidateOnboardingBlankFieldsDoNotCount(t *testing.T) {
	status := ValidateOnboarding(&models.Provider{
		SocialSecurityNumber: "   ",
		BankDetails:          &models.BankDetails{Name: " ", ClearingNumber: "", BankNumber: ""},
	})

	assert.False(t, status.HasAnyData)
	assert.Len(t, status.MissingFields, 3)
}

func TestValidateOnboardingConsentOnly(t *testing.T) {
	status := ValidateOnboarding(&models.Provider{
		Consents: &models.Consents{GeneralConsent: true},
	})

	assert.True(t, status.HasAnyData)
	assert.Equal(t, []string{models.FieldSocialSecurityNumber, models.FieldBankDetails}, status.MissingFields)
}

func TestValidateOnboardingComplete(t *testing.T) {
	status := ValidateOnboarding(&models.Provider{
		SocialSecurityNumber: "19900101-1234",
		BankDetails: &models.BankDetails{
			Name:           "SEB",
			ClearingNumber: "5000",
			BankNumber:     "1234567",
		},
		Consents: &models.Consents{GeneralConsent: true},
	})

	assert.True(t, status.IsComplete)
	assert.True(t, status.HasAnyData)
	assert.Empty(t, status.MissingFields)
}

func TestValidateOnboardingChecksAllGroupsIndependently(t *testing.T) {
	// a missing SSN must not short-circuit the other group checks
	status := ValidateOnboarding(&models.Provider{
		BankDetails: &models.BankDetails{
			Name:           "SEB",
			ClearingNumber: "5000",
			BankNumber:     "1234567",
		},
		Consents: &models.Consents{GeneralConsent: true},
	})

	assert.Equal(t, []string{models.FieldSocialSecurityNumber}, status.MissingFields)
	assert.True(t, status.HasAnyData)
}
