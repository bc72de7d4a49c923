package schedule

import (
	"testing"

	"vitago/models"

	"github.com/stretchr/testify/assert"
)

func TestDisabledTimesFromBookings(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2024-01-12", StartTime: "09:00", EndTime: "09:15", Status: models.BookingStatusAccepted},
		{Date: "2024-01-12", StartTime: "14:00", EndTime: "", Status: models.BookingStatusPending},
		{Date: "2024-01-13", StartTime: "09:00", EndTime: "10:00", Status: models.BookingStatusAccepted},
		{Date: "2024-01-12", StartTime: "11:00", EndTime: "11:30", Status: models.BookingStatusCancelled},
	}

	disabled := DisabledTimesFromBookings(bookings, "2024-01-12")

	assert.Contains(t, disabled, "09:00")
	assert.Contains(t, disabled, "09:05")
	assert.Contains(t, disabled, "09:10")
	assert.NotContains(t, disabled, "09:15", "end is exclusive")

	// open-ended booking blocks only its start mark
	assert.Contains(t, disabled, "14:00")
	assert.NotContains(t, disabled, "14:05")

	// other dates and cancelled bookings do not contribute
	assert.NotContains(t, disabled, "10:00")
	assert.NotContains(t, disabled, "11:00")

	assert.Len(t, disabled, 4)
}

func TestUnavailableDatesFromBookings(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2024-01-12", Status: models.BookingStatusAccepted},
		{Date: "2024-01-12", Status: models.BookingStatusPending},
		{Date: "2024-01-13", Status: models.BookingStatusAccepted},
		{Date: "2024-01-13", Status: models.BookingStatusDeclined},
	}

	unavailable := UnavailableDatesFromBookings(bookings, 2)

	assert.Contains(t, unavailable, "2024-01-12")
	assert.NotContains(t, unavailable, "2024-01-13")
}

func TestUnavailableDatesFromBookingsNoLimit(t *testing.T) {
	bookings := []models.Booking{{Date: "2024-01-12", Status: models.BookingStatusAccepted}}
	assert.Empty(t, UnavailableDatesFromBookings(bookings, 0))
}
