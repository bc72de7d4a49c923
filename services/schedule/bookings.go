package schedule

import "vitago/models"

// DisabledTimesFromBookings collects every 5-minute mark covered by an
// active booking's [start, end) window on the given date. The resulting set
// feeds Window.DisabledTimes for that date.
func DisabledTimesFromBookings(bookings []models.Booking, date string) map[string]struct{} {
	disabled := make(map[string]struct{})
	for _, b := range bookings {
		if b.Date != date || !b.Active() {
			continue
		}
		start, err := TimeToMinutes(b.StartTime)
		if err != nil {
			continue
		}
		end, err := TimeToMinutes(b.EndTime)
		if err != nil || end <= start {
			// open-ended bookings block their start mark only
			end = start + MinuteStep
		}
		for t := start - start%MinuteStep; t < end; t += MinuteStep {
			disabled[FormatTime(t/60, t%60)] = struct{}{}
		}
	}
	return disabled
}

// UnavailableDatesFromBookings marks dates carrying dailyLimit or more
// active bookings as fully booked.
func UnavailableDatesFromBookings(bookings []models.Booking, dailyLimit int) map[string]struct{} {
	if dailyLimit <= 0 {
		return map[string]struct{}{}
	}
	perDate := make(map[string]int)
	for _, b := range bookings {
		if b.Active() {
			perDate[b.Date]++
		}
	}
	unavailable := make(map[string]struct{})
	for date, n := range perDate {
		if n >= dailyLimit {
			unavailable[date] = struct{}{}
		}
	}
	return unavailable
}
