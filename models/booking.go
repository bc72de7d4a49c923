package models

import "time"

// Booking status lifecycle.
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusDeclined  = "declined"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a service booking between a client and a provider.
// General requests carry no provider and bypass availability constraints
// until a provider is assigned.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	ProviderID     string    `bson:"providerId" json:"providerId,omitempty"`
	ClientID       string    `bson:"clientId" json:"clientId"`
	ServiceType    string    `bson:"serviceType" json:"serviceType"`
	Date           string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime      string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime        string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Period         Period    `bson:"period,omitempty" json:"period,omitempty"`
	GeneralRequest bool      `bson:"generalRequest" json:"generalRequest"`
	Address        string    `bson:"address" json:"address,omitempty"`
	Description    string    `bson:"description" json:"description,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Active reports whether the booking still occupies its time window.
func (b Booking) Active() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusAccepted
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	ProviderID     string `json:"providerId"`
	ServiceType    string `json:"serviceType" binding:"required"`
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"startTime" binding:"required"`
	EndTime        string `json:"endTime"`
	GeneralRequest bool   `json:"generalRequest"`
	Address        string `json:"address"`
	Description    string `json:"description"`
}
