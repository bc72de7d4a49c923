package models

import "time"

// Client is a customer account booking services on the platform.
type Client struct {
	ID           string    `bson:"id" json:"id,omitempty"`
	FirstName    string    `bson:"firstName" json:"firstName,omitempty"`
	LastName     string    `bson:"lastName" json:"lastName,omitempty"`
	Email        string    `bson:"email" json:"email,omitempty"`
	PhoneNumber  string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Address      string    `bson:"address" json:"address,omitempty"`
	PostalCode   string    `bson:"postalCode" json:"postalCode,omitempty"`
	City         string    `bson:"city" json:"city,omitempty"`
	Security     Security  `bson:"security" json:"security,omitzero"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ClientAuthResponse is returned on successful client authentication.
type ClientAuthResponse struct {
	Client Client `json:"client"`
	Token  string `json:"token"`
}
