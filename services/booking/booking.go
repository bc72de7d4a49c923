package booking

import (
	"context"
	"fmt"
	"time"

	"vitago/models"
	"vitago/services/availability"
	"vitago/services/schedule"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vitago/utils"
)

// buildWindow assembles the booking window for a provider. General
// requests get an unconstrained window beyond the platform date range.
func (s *DefaultBookingService) buildWindow(providerID string, generalRequest bool) (schedule.Window, error) {
	now := time.Now()
	w := schedule.Window{
		MinDate:        now,
		MaxDate:        now.AddDate(0, 0, s.MaxLeadDays),
		GeneralRequest: generalRequest,
	}
	if generalRequest {
		return w, nil
	}

	p, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return w, fmt.Errorf("provider not found: %w", err)
	}
	// A provider that never saved a grid stays unconstrained. Normalizing
	// nil would produce an all-unavailable grid and block every date.
	if p.Availability != nil {
		w.Availability = availability.NormalizeGrid(p.Availability)
	}

	bookings, err := s.Repo.GetByProvider(providerID)
	if err != nil {
		return w, fmt.Errorf("failed to load provider bookings: %w", err)
	}
	w.UnavailableDates = schedule.UnavailableDatesFromBookings(bookings, s.DailyLimit)
	return w, nil
}

// CreateBooking validates the requested slot against the provider's window
// and stores a pending booking. General requests carry no provider and skip
// availability constraints.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, clientID string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !req.GeneralRequest && req.ProviderID == "" {
		return nil, fmt.Errorf("providerId is required unless the booking is a general request")
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date: %w", err)
	}
	startHour, _, err := schedule.ParseTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	if req.EndTime != "" {
		if _, _, err := schedule.ParseTime(req.EndTime); err != nil {
			return nil, fmt.Errorf("invalid end time: %w", err)
		}
	}

	w, err := s.buildWindow(req.ProviderID, req.GeneralRequest)
	if err != nil {
		return nil, err
	}
	if !w.IsDateSelectable(date) {
		return nil, &SlotUnavailableError{Reason: fmt.Sprintf("date %s is not selectable", req.Date)}
	}
	if !req.GeneralRequest {
		existing, err := s.Repo.GetByProviderAndDate(req.ProviderID, req.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to load bookings for %s: %w", req.Date, err)
		}
		w.DisabledTimes = schedule.DisabledTimesFromBookings(existing, req.Date)
	}
	if !w.IsTimeStringAvailable(req.StartTime) {
		return nil, &SlotUnavailableError{Reason: fmt.Sprintf("time %s is not available on %s", req.StartTime, req.Date)}
	}

	booking := models.Booking{
		ID:             uuid.NewString(),
		ProviderID:     req.ProviderID,
		ClientID:       clientID,
		ServiceType:    req.ServiceType,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Period:         schedule.PeriodForTime(startHour),
		GeneralRequest: req.GeneralRequest,
		Address:        req.Address,
		Description:    req.Description,
		Status:         models.BookingStatusPending,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.Create(&booking); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("providerID", booking.ProviderID),
		zap.String("date", booking.Date),
		zap.Bool("generalRequest", booking.GeneralRequest))
	return &booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultBookingService) GetBookingsByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.Repo.GetByProvider(providerID)
}

func (s *DefaultBookingService) GetBookingsByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	return s.Repo.GetByClient(clientID)
}
