package models

import "time"

// Profile carries a provider's public-facing details.
type Profile struct {
	ProviderName string  `bson:"providerName" json:"providerName,omitempty"`
	Email        string  `bson:"email" json:"email,omitempty"`
	PhoneNumber  string  `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	ServiceType  string  `bson:"serviceType" json:"serviceType,omitempty"`
	City         string  `bson:"city" json:"city,omitempty"`
	Bio          string  `bson:"bio" json:"bio,omitempty"`
	ProfileImage string  `bson:"profileImage" json:"profileImage,omitempty"`
	Status       string  `bson:"status" json:"status,omitempty"`
	Rating       float64 `bson:"rating" json:"rating,omitempty"`
	RatingCount  int     `bson:"ratingCount" json:"ratingCount,omitempty"`
}

// BankDetails holds the payout account a provider registers during onboarding.
type BankDetails struct {
	Name           string `bson:"name" json:"name,omitempty"`
	ClearingNumber string `bson:"clearingNumber" json:"clearingNumber,omitempty"`
	BankNumber     string `bson:"bankNumber" json:"bankNumber,omitempty"`
}

// Consents holds the agreements a provider must accept before taking jobs.
type Consents struct {
	GeneralConsent bool `bson:"generalConsent" json:"generalConsent"`
}

type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// Provider is a service provider account.
type Provider struct {
	ID                   string             `bson:"id" json:"id,omitempty"`
	Profile              Profile            `bson:"profile" json:"profile"`
	Security             Security           `bson:"security" json:"security,omitzero"`
	SocialSecurityNumber string             `bson:"socialSecurityNumber" json:"socialSecurityNumber,omitempty"`
	BankDetails          *BankDetails       `bson:"bankDetails,omitempty" json:"bankDetails,omitempty"`
	Consents             *Consents          `bson:"consents,omitempty" json:"consents,omitempty"`
	Availability         WeeklyAvailability `bson:"availability,omitempty" json:"availability,omitempty"`
	CompletedBookings    int                `bson:"completedBookings" json:"completedBookings,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// OnboardingField names one of the mandatory onboarding groups.
const (
	FieldSocialSecurityNumber = "socialSecurityNumber"
	FieldBankDetails          = "bankDetails"
	FieldConsents             = "consents"
)

// OnboardingStatus is the derived completeness state of a provider's
// mandatory onboarding fields. It is recomputed on demand, never stored.
type OnboardingStatus struct {
	IsComplete    bool     `json:"isComplete"`
	MissingFields []string `json:"missingFields"`
	HasAnyData    bool     `json:"hasAnyData"`
}

// ProviderAuthResponse is returned on successful provider authentication.
type ProviderAuthResponse struct {
	Provider Provider `json:"provider"`
	Token    string   `json:"token"`
}
