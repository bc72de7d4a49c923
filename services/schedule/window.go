// Package schedule computes which dates and times are open for booking
// given a provider's weekly availability, existing bookings and the
// platform's booking-range limits.
package schedule

import (
	"time"

	"vitago/models"
	"vitago/services/availability"
)

const dateLayout = "2006-01-02"

// Window is the constraint set a booking selection is checked against.
// It is ephemeral: built per request from current data, never stored.
type Window struct {
	// MinDate and MaxDate bound the selectable range, inclusive.
	// A zero value means unbounded on that side.
	MinDate time.Time
	MaxDate time.Time
	// UnavailableDates holds fully booked or blocked "YYYY-MM-DD" dates.
	UnavailableDates map[string]struct{}
	// DisabledTimes holds "HH:MM" values already occupied on the selected date.
	DisabledTimes map[string]struct{}
	// AvailableTimes, when non-empty, is an explicit allow-list of "HH:MM" values.
	AvailableTimes []string
	// GeneralRequest bypasses provider-availability constraints entirely.
	GeneralRequest bool
	// Availability is the provider's weekly grid. Nil means no constraint
	// data is available and date checks fall back to range rules alone.
	Availability models.WeeklyAvailability
}

// IsDateSelectable reports whether the calendar date can be chosen. A date
// is selectable iff it falls within [MinDate, MaxDate], is not among the
// unavailable dates and, unless this is a general request, its weekday has
// at least one available period on the provider's grid. Without a grid the
// check is permissive.
func (w Window) IsDateSelectable(date time.Time) bool {
	d := civil(date)
	if !w.MinDate.IsZero() && d.Before(civil(w.MinDate)) {
		return false
	}
	if !w.MaxDate.IsZero() && d.After(civil(w.MaxDate)) {
		return false
	}
	if _, blocked := w.UnavailableDates[d.Format(dateLayout)]; blocked {
		return false
	}
	if w.GeneralRequest {
		return true
	}
	if len(w.Availability) == 0 {
		return true
	}
	return availability.HasAnyPeriod(w.Availability, d.Weekday())
}

// AvailablePeriods returns the day periods open on the given date. General
// requests always get the full period set, as do windows carrying no grid.
func (w Window) AvailablePeriods(date time.Time) []models.Period {
	if w.GeneralRequest || len(w.Availability) == 0 {
		return models.AllPeriods()
	}
	return availability.PeriodsForDay(w.Availability, civil(date).Weekday())
}

// IsTimeAvailable reports whether the clock time can be chosen. Disabled
// times always lose; a non-empty allow-list requires membership; otherwise
// any time is fine. General requests skip every check.
func (w Window) IsTimeAvailable(hour, minute int) bool {
	if w.GeneralRequest {
		return true
	}
	key := FormatTime(hour, minute)
	if _, disabled := w.DisabledTimes[key]; disabled {
		return false
	}
	if len(w.AvailableTimes) > 0 {
		for _, t := range w.AvailableTimes {
			if t == key {
				return true
			}
		}
		return false
	}
	return true
}

// IsTimeStringAvailable is IsTimeAvailable for an "HH:MM" value.
func (w Window) IsTimeStringAvailable(value string) bool {
	h, m, err := ParseTime(value)
	if err != nil {
		return false
	}
	return w.IsTimeAvailable(h, m)
}

// civil truncates a timestamp to its calendar date.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "YYYY-MM-DD" value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// FormatDate renders a timestamp as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
