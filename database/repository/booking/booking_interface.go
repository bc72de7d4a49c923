package bookingRepo

import "vitago/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateStatus transitions a booking to the given status.
	UpdateStatus(id, status string) error
	// GetByProvider retrieves all bookings assigned to a provider.
	GetByProvider(providerID string) ([]models.Booking, error)
	// GetByProviderAndDate retrieves a provider's bookings on a "YYYY-MM-DD" date.
	GetByProviderAndDate(providerID, date string) ([]models.Booking, error)
	// GetByClient retrieves all bookings made by a client.
	GetByClient(clientID string) ([]models.Booking, error)
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
