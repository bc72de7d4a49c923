package clientRepo

import (
	"vitago/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ClientRepository defines methods for client account data access.
type ClientRepository interface {
	// GetByID retrieves a client by its unique ID.
	GetByID(id string) (*models.Client, error)
	// GetByEmail retrieves a client by its email address.
	GetByEmail(email string) (*models.Client, error)
	// Create inserts a new client record.
	Create(client *models.Client) error
	// UpdateWithDocument patches a client document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a client record by its ID.
	Delete(id string) error
}
