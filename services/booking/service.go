package booking

import (
	"context"

	bookingRepo "vitago/database/repository/booking"
	clientRepo "vitago/database/repository/client"
	providerRepo "vitago/database/repository/provider"
	"vitago/models"
	"vitago/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	ClientRepo   clientRepo.ClientRepository
	Notifier     notification.NotificationService
	TaskClient   *asynq.Client
	// Cache holds computed month options briefly. Nil disables caching.
	Cache *redis.Client

	// MaxLeadDays bounds how far ahead a booking may be placed.
	MaxLeadDays int
	// DailyLimit is how many active bookings fill a provider's day.
	DailyLimit int
}

// BookingService defines booking lifecycle and selection operations.
type BookingService interface {
	CreateBooking(ctx context.Context, clientID string, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetBookingsByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	GetBookingsByClient(ctx context.Context, clientID string) ([]models.Booking, error)

	// AcceptBooking is the gated action: it re-fetches the provider and
	// requires a complete onboarding profile before accepting.
	AcceptBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error)
	DeclineBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, clientID, bookingID string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error)

	// MonthOptions reports selectable dates and open periods for a month.
	MonthOptions(ctx context.Context, providerID string, year, month int, generalRequest bool) (*MonthOptions, error)
	// TimeOptionsForDate reports the 5-minute time grid for a date.
	TimeOptionsForDate(ctx context.Context, providerID, date string, generalRequest bool) (*DayOptions, error)
}

var _ BookingService = (*DefaultBookingService)(nil)
