// Package availability owns the weekly availability grid: a fixed set of
// four day periods crossed with the seven days of the week, each slot a
// boolean. Raw grids arrive from clients and old documents in arbitrary
// shape, so everything is normalized before use.
package availability

import (
	"time"

	"vitago/models"
)

// Normalize builds a well-formed weekly grid from an untyped blob. Every
// (period, day) pair is present in the result; only values that are strictly
// boolean survive, anything else defaults to unavailable. Non-map input
// yields an all-unavailable grid. Normalize never fails.
func Normalize(raw any) models.WeeklyAvailability {
	grid := make(models.WeeklyAvailability, len(models.AllPeriods()))

	byPeriod, _ := raw.(map[string]any)
	for _, period := range models.AllPeriods() {
		days := make(map[string]bool, len(models.DayKeys))
		byDay, _ := byPeriod[string(period)].(map[string]any)
		for _, day := range models.DayKeys {
			if v, ok := byDay[day].(bool); ok {
				days[day] = v
			} else {
				days[day] = false
			}
		}
		grid[period] = days
	}
	return grid
}

// NormalizeGrid re-normalizes a typed grid, filling any missing slots.
func NormalizeGrid(grid models.WeeklyAvailability) models.WeeklyAvailability {
	out := make(models.WeeklyAvailability, len(models.AllPeriods()))
	for _, period := range models.AllPeriods() {
		days := make(map[string]bool, len(models.DayKeys))
		for _, day := range models.DayKeys {
			days[day] = grid[period][day]
		}
		out[period] = days
	}
	return out
}

// ToggleSlot returns a new grid with exactly one slot flipped. The input
// grid is never mutated; callers replace their copy wholesale.
func ToggleSlot(grid models.WeeklyAvailability, period models.Period, day string) models.WeeklyAvailability {
	out := NormalizeGrid(grid)
	if _, ok := out[period]; !ok {
		return out
	}
	if !validDay(day) {
		return out
	}
	out[period][day] = !out[period][day]
	return out
}

// PeriodsForDay returns the periods flagged available on the given weekday,
// in display order.
func PeriodsForDay(grid models.WeeklyAvailability, w time.Weekday) []models.Period {
	day := models.DayKey(w)
	var periods []models.Period
	for _, period := range models.AllPeriods() {
		if grid[period][day] {
			periods = append(periods, period)
		}
	}
	return periods
}

// HasAnyPeriod reports whether at least one period is available on the weekday.
func HasAnyPeriod(grid models.WeeklyAvailability, w time.Weekday) bool {
	day := models.DayKey(w)
	for _, period := range models.AllPeriods() {
		if grid[period][day] {
			return true
		}
	}
	return false
}

func validDay(day string) bool {
	for _, d := range models.DayKeys {
		if d == day {
			return true
		}
	}
	return false
}
