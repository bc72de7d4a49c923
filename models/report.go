package models

import "time"

// Report direction: who wrote the report about whom.
const (
	ReportDirectionProviderToClient = "providerToClient"
	ReportDirectionClientToProvider = "clientToProvider"
)

// Report is a post-service report exchanged after a completed booking.
type Report struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	Direction  string    `bson:"direction" json:"direction"`
	Rating     float64   `bson:"rating" json:"rating"` // Expected value between 1 and 5.
	Comment    string    `bson:"comment" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
