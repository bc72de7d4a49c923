package schedule

import (
	"fmt"
	"time"

	"vitago/models"
)

// The time picker works on a 24-hour grid with 5-minute steps.
const (
	MinuteStep = 5
	MaxHour    = 23
	MaxMinute  = 55
)

// FormatTime renders a zero-padded "HH:MM" value.
func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseTime parses an "HH:MM" value into hour and minute.
func ParseTime(value string) (int, int, error) {
	var h, m int
	if _, err := fmt.Sscanf(value, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", value, err)
	}
	if h < 0 || h > MaxHour || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", value)
	}
	return h, m, nil
}

// TimeToMinutes converts "HH:MM" to minutes from midnight.
func TimeToMinutes(value string) (int, error) {
	h, m, err := ParseTime(value)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// ClampStep moves a grid value by delta steps, clamped to [0, max] with no
// wraparound. Hours step by 1, minutes by MinuteStep.
func ClampStep(value, delta, step, max int) int {
	v := value + delta*step
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// TimeOptions enumerates the full 24h x 5min grid against the window,
// returning each mark with its availability.
func (w Window) TimeOptions() []TimeOption {
	options := make([]TimeOption, 0, (MaxHour+1)*(60/MinuteStep))
	for h := 0; h <= MaxHour; h++ {
		for m := 0; m <= MaxMinute; m += MinuteStep {
			options = append(options, TimeOption{
				Time:      FormatTime(h, m),
				Available: w.IsTimeAvailable(h, m),
			})
		}
	}
	return options
}

// TimeOption is one selectable mark on the clock grid.
type TimeOption struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Preset names map to canonical "HH:MM" values. "now" rounds the current
// minute down to the nearest grid step; the period anchors are fixed.
var periodAnchors = map[string]string{
	"morning":   "08:00",
	"noon":      "12:00",
	"afternoon": "15:00",
	"evening":   "19:00",
}

// ResolvePreset translates a preset name into an "HH:MM" value. The result
// routes through the same availability checks as any manual selection.
func ResolvePreset(name string, now time.Time) (string, bool) {
	if name == "now" {
		return FormatTime(now.Hour(), now.Minute()-now.Minute()%MinuteStep), true
	}
	value, ok := periodAnchors[name]
	return value, ok
}

// PeriodForTime maps an hour of day onto its grid period.
func PeriodForTime(hour int) models.Period {
	switch {
	case hour >= 5 && hour < 10:
		return models.PeriodMorning
	case hour >= 10 && hour < 13:
		return models.PeriodNoon
	case hour >= 13 && hour < 17:
		return models.PeriodAfternoon
	default:
		return models.PeriodEvening
	}
}

// MonthGrid describes one displayed month: the number of leading blank
// cells before day 1 (Monday-first weeks) and the day count.
type MonthGrid struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leadingBlanks"`
	DaysInMonth   int        `json:"daysInMonth"`
}

// NewMonthGrid computes the grid for a displayed month.
func NewMonthGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthGrid{
		Year:          first.Year(),
		Month:         first.Month(),
		LeadingBlanks: (int(first.Weekday()) + 6) % 7,
		DaysInMonth:   first.AddDate(0, 1, -1).Day(),
	}
}

// Next returns the grid for the following month; year rollover falls out of
// date construction.
func (g MonthGrid) Next() MonthGrid {
	return NewMonthGrid(g.Year, g.Month+1)
}

// Prev returns the grid for the preceding month.
func (g MonthGrid) Prev() MonthGrid {
	return NewMonthGrid(g.Year, g.Month-1)
}

// Dates enumerates the calendar dates of the month.
func (g MonthGrid) Dates() []time.Time {
	dates := make([]time.Time, 0, g.DaysInMonth)
	for day := 1; day <= g.DaysInMonth; day++ {
		dates = append(dates, time.Date(g.Year, g.Month, day, 0, 0, 0, 0, time.UTC))
	}
	return dates
}
