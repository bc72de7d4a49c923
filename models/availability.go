package models

import "time"

// Period is one of the four fixed day segments of the weekly availability grid.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodNoon      Period = "noon"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// AllPeriods returns the fixed period set in display order.
func AllPeriods() []Period {
	return []Period{PeriodMorning, PeriodNoon, PeriodAfternoon, PeriodEvening}
}

// DayKeys lists the days of the week, Monday first, as used for grid keys.
var DayKeys = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DayKey maps a time.Weekday onto the grid key for that day.
func DayKey(w time.Weekday) string {
	// time.Weekday counts Sunday as 0; the grid is Monday-first.
	return DayKeys[(int(w)+6)%7]
}

// WeeklyAvailability is a provider's recurring weekly schedule: for each
// period, a map from day key to whether the provider takes bookings then.
// A normalized grid always carries exactly 4x7 boolean entries.
type WeeklyAvailability map[Period]map[string]bool
