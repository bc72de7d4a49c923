package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vitago/models"
	"vitago/services/schedule"
	"vitago/utils"

	"go.uber.org/zap"
)

// DateOption describes one calendar cell of a month view.
type DateOption struct {
	Date       string          `json:"date"`
	Selectable bool            `json:"selectable"`
	Periods    []models.Period `json:"periods"`
}

// MonthOptions is the month view served to booking calendars: a Monday-first
// grid shape plus the per-date selection state.
type MonthOptions struct {
	Year          int          `json:"year"`
	Month         int          `json:"month"`
	LeadingBlanks int          `json:"leadingBlanks"`
	Dates         []DateOption `json:"dates"`
}

// DayOptions is the 5-minute time grid for one date.
type DayOptions struct {
	Date    string                `json:"date"`
	Options []schedule.TimeOption `json:"options"`
}

func monthCacheKey(providerID string, year, month int, generalRequest bool) string {
	return fmt.Sprintf("%smonth:%s:%04d-%02d:%t", utils.ScheduleCachePrefix, providerID, year, month, generalRequest)
}

// MonthOptions computes the selectable dates and open periods for a month.
// Results are cached briefly in Redis since calendars re-request the same
// month on every navigation.
func (s *DefaultBookingService) MonthOptions(ctx context.Context, providerID string, year, month int, generalRequest bool) (*MonthOptions, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month: %d", month)
	}

	cache := s.Cache
	key := monthCacheKey(providerID, year, month, generalRequest)
	if cache != nil {
		if raw, err := cache.Get(ctx, key).Result(); err == nil {
			var cached MonthOptions
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	w, err := s.buildWindow(providerID, generalRequest)
	if err != nil {
		return nil, err
	}

	grid := schedule.NewMonthGrid(year, time.Month(month))
	out := &MonthOptions{
		Year:          grid.Year,
		Month:         int(grid.Month),
		LeadingBlanks: grid.LeadingBlanks,
		Dates:         make([]DateOption, 0, grid.DaysInMonth),
	}
	for _, d := range grid.Dates() {
		opt := DateOption{
			Date:       schedule.FormatDate(d),
			Selectable: w.IsDateSelectable(d),
		}
		if opt.Selectable {
			opt.Periods = w.AvailablePeriods(d)
		}
		out.Dates = append(out.Dates, opt)
	}

	if cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := cache.Set(ctx, key, raw, utils.ScheduleCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache month options", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return out, nil
}

// TimeOptionsForDate computes the per-slot availability of a date, taking
// the provider's existing bookings on that date into account.
func (s *DefaultBookingService) TimeOptionsForDate(ctx context.Context, providerID, date string, generalRequest bool) (*DayOptions, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	w, err := s.buildWindow(providerID, generalRequest)
	if err != nil {
		return nil, err
	}
	if !generalRequest {
		existing, err := s.Repo.GetByProviderAndDate(providerID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
		}
		w.DisabledTimes = schedule.DisabledTimesFromBookings(existing, date)
	}

	return &DayOptions{Date: date, Options: w.TimeOptions()}, nil
}
