package booking

import (
	"context"
	"fmt"
	"time"

	"vitago/models"
	"vitago/services/notification"
	providerSvc "vitago/services/provider"
	"vitago/services/schedule"
	"vitago/utils"

	"go.uber.org/zap"
)

// AcceptBooking transitions a pending booking to accepted. The action is
// gated on onboarding completeness: the provider record is fetched fresh
// immediately before the check so a stale approval can't slip through. The
// fetch-validate-act sequence is awaited in order per call but is not
// atomic against concurrent edits.
func (s *DefaultBookingService) AcceptBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != providerID {
		return nil, fmt.Errorf("booking %s does not belong to provider %s", bookingID, providerID)
	}
	if b.Status != models.BookingStatusPending {
		return nil, &InvalidTransitionError{From: b.Status, To: models.BookingStatusAccepted}
	}

	p, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider for completion check: %w", err)
	}
	if status := providerSvc.ValidateOnboarding(p); !status.IsComplete {
		return nil, &IncompleteProfileError{Missing: status.MissingFields}
	}

	if err := s.Repo.UpdateStatus(bookingID, models.BookingStatusAccepted); err != nil {
		return nil, err
	}
	b.Status = models.BookingStatusAccepted

	s.notifyAccepted(*b)
	return b, nil
}

// notifyAccepted sends the confirmation mail and schedules the reminder.
// Delivery problems are logged, never surfaced to the accept call.
func (s *DefaultBookingService) notifyAccepted(b models.Booking) {
	logger := utils.GetLogger()

	recipient := ""
	if s.ClientRepo != nil {
		if c, err := s.ClientRepo.GetByID(b.ClientID); err == nil {
			recipient = c.Email
		}
	}
	if recipient == "" {
		return
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(b, recipient); err != nil {
			logger.Warn("booking confirmation mail failed", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	if s.TaskClient == nil {
		return
	}
	fireAt, err := reminderFireAt(b)
	if err != nil || fireAt.Before(time.Now()) {
		return
	}
	task, opts, err := notification.NewReminderTask(notification.ReminderPayload{
		BookingID: b.ID,
		Recipient: recipient,
	}, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task", zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// reminderFireAt computes when the pre-booking reminder goes out: 24 hours
// before the booking's start instant, not before its date's midnight. An
// accept the evening before a next-day booking must still land in the
// future.
func reminderFireAt(b models.Booking) (time.Time, error) {
	date, err := schedule.ParseDate(b.Date)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := schedule.TimeToMinutes(b.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(minutes)*time.Minute - 24*time.Hour), nil
}

// DeclineBooking transitions a pending booking to declined.
func (s *DefaultBookingService) DeclineBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != providerID {
		return nil, fmt.Errorf("booking %s does not belong to provider %s", bookingID, providerID)
	}
	if b.Status != models.BookingStatusPending {
		return nil, &InvalidTransitionError{From: b.Status, To: models.BookingStatusDeclined}
	}
	if err := s.Repo.UpdateStatus(bookingID, models.BookingStatusDeclined); err != nil {
		return nil, err
	}
	b.Status = models.BookingStatusDeclined
	return b, nil
}

// CancelBooking lets the booking client cancel while the booking is still active.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, clientID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, fmt.Errorf("booking %s does not belong to client %s", bookingID, clientID)
	}
	if !b.Active() {
		return nil, &InvalidTransitionError{From: b.Status, To: models.BookingStatusCancelled}
	}
	if err := s.Repo.UpdateStatus(bookingID, models.BookingStatusCancelled); err != nil {
		return nil, err
	}
	b.Status = models.BookingStatusCancelled
	return b, nil
}

// CompleteBooking marks an accepted booking as carried out, opening it for
// post-service reports.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, providerID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != providerID {
		return nil, fmt.Errorf("booking %s does not belong to provider %s", bookingID, providerID)
	}
	if b.Status != models.BookingStatusAccepted {
		return nil, &InvalidTransitionError{From: b.Status, To: models.BookingStatusCompleted}
	}
	if err := s.Repo.UpdateStatus(bookingID, models.BookingStatusCompleted); err != nil {
		return nil, err
	}
	b.Status = models.BookingStatusCompleted
	return b, nil
}
