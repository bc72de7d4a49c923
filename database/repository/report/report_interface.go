package reportRepo

import "vitago/models"

// ReportRepository defines methods for post-service report data access.
type ReportRepository interface {
	// Create inserts a new report record.
	Create(report *models.Report) error
	// GetByBooking retrieves all reports attached to a booking.
	GetByBooking(bookingID string) ([]models.Report, error)
	// GetByProvider retrieves all reports naming a provider.
	GetByProvider(providerID string) ([]models.Report, error)
	// AverageProviderRating computes the mean client rating for a provider
	// along with the number of ratings counted.
	AverageProviderRating(providerID string) (float64, int, error)
}
