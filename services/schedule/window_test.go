package schedule

import (
	"testing"
	"time"

	"vitago/models"
	"vitago/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestIsDateSelectableRangeAndBlocked(t *testing.T) {
	w := Window{
		MinDate:          time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		MaxDate:          time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		UnavailableDates: map[string]struct{}{"2024-01-15": {}},
	}

	assert.True(t, w.IsDateSelectable(mustDate(t, "2024-01-12")))
	assert.False(t, w.IsDateSelectable(mustDate(t, "2024-01-15")), "blocked date")
	assert.False(t, w.IsDateSelectable(mustDate(t, "2024-01-05")), "before range")
	assert.False(t, w.IsDateSelectable(mustDate(t, "2024-01-25")), "after range")

	// bounds are inclusive
	assert.True(t, w.IsDateSelectable(mustDate(t, "2024-01-10")))
	assert.True(t, w.IsDateSelectable(mustDate(t, "2024-01-20")))
}

func TestIsDateSelectableWithAvailability(t *testing.T) {
	grid := availability.Normalize(map[string]any{
		"morning": map[string]any{"monday": true},
	})
	w := Window{Availability: grid}

	// 2024-01-08 is a Monday, 2024-01-09 a Tuesday.
	monday := mustDate(t, "2024-01-08")
	tuesday := mustDate(t, "2024-01-09")

	assert.True(t, w.IsDateSelectable(monday))
	assert.False(t, w.IsDateSelectable(tuesday))

	assert.Equal(t, []models.Period{models.PeriodMorning}, w.AvailablePeriods(monday))
	assert.Empty(t, w.AvailablePeriods(tuesday))
}

func TestIsDateSelectableNoGridIsPermissive(t *testing.T) {
	w := Window{}
	assert.True(t, w.IsDateSelectable(mustDate(t, "2024-01-09")))
}

func TestGeneralRequestBypassesAvailability(t *testing.T) {
	grid := availability.Normalize(nil) // all unavailable
	w := Window{GeneralRequest: true, Availability: grid}

	tuesday := mustDate(t, "2024-01-09")
	assert.True(t, w.IsDateSelectable(tuesday))
	assert.Equal(t, models.AllPeriods(), w.AvailablePeriods(tuesday))
	assert.True(t, w.IsTimeAvailable(9, 0))
}

func TestGeneralRequestStillBoundedByRange(t *testing.T) {
	w := Window{
		MinDate:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		MaxDate:        time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		GeneralRequest: true,
	}
	assert.False(t, w.IsDateSelectable(mustDate(t, "2024-01-05")))
	assert.True(t, w.IsDateSelectable(mustDate(t, "2024-01-12")))
}

func TestIsTimeAvailableDisabledSet(t *testing.T) {
	w := Window{DisabledTimes: map[string]struct{}{"09:00": {}}}

	assert.False(t, w.IsTimeAvailable(9, 0))
	assert.True(t, w.IsTimeAvailable(9, 5))
}

func TestIsTimeAvailableAllowList(t *testing.T) {
	w := Window{AvailableTimes: []string{"10:00", "10:30"}}

	assert.True(t, w.IsTimeAvailable(10, 0))
	assert.True(t, w.IsTimeAvailable(10, 30))
	assert.False(t, w.IsTimeAvailable(10, 15))
	assert.False(t, w.IsTimeAvailable(9, 0))
}

func TestIsTimeStringAvailable(t *testing.T) {
	w := Window{DisabledTimes: map[string]struct{}{"09:00": {}}}

	assert.False(t, w.IsTimeStringAvailable("09:00"))
	assert.True(t, w.IsTimeStringAvailable("09:05"))
	assert.False(t, w.IsTimeStringAvailable("not a time"))
}
