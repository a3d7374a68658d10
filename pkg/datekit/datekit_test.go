package datekit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extkit/extkit/pkg/datekit"
)

// reference is a Wednesday mid-month, mid-day, with sub-second precision.
var reference = time.Date(2024, time.June, 12, 15, 42, 37, 123456789, time.UTC)

func TestHourBoundaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC), datekit.StartOfHour(reference))
	assert.Equal(t, time.Date(2024, time.June, 12, 15, 59, 59, 999999999, time.UTC), datekit.EndOfHour(reference))
}

func TestDayBoundaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC), datekit.StartOfDay(reference))
	assert.Equal(t, time.Date(2024, time.June, 12, 23, 59, 59, 999999999, time.UTC), datekit.EndOfDay(reference))
}

func TestWeekBoundaries(t *testing.T) {
	t.Parallel()

	t.Run("mid-week", func(t *testing.T) {
		start := datekit.StartOfWeek(reference)
		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Monday, start.Weekday())

		end := datekit.EndOfWeek(reference)
		assert.Equal(t, time.Date(2024, time.June, 16, 23, 59, 59, 999999999, time.UTC), end)
		assert.Equal(t, time.Sunday, end.Weekday())
	})

	t.Run("monday maps to itself", func(t *testing.T) {
		monday := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), datekit.StartOfWeek(monday))
	})

	t.Run("sunday belongs to the preceding monday's week", func(t *testing.T) {
		sunday := time.Date(2024, time.June, 16, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), datekit.StartOfWeek(sunday))
	})

	t.Run("week spanning a month boundary", func(t *testing.T) {
		// Saturday June 1, 2024 is in the week starting Monday May 27.
		first := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, time.May, 27, 0, 0, 0, 0, time.UTC), datekit.StartOfWeek(first))
	})
}

func TestMonthBoundaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), datekit.StartOfMonth(reference))
	assert.Equal(t, time.Date(2024, time.June, 30, 23, 59, 59, 999999999, time.UTC), datekit.EndOfMonth(reference))

	t.Run("leap february", func(t *testing.T) {
		feb := time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC), datekit.EndOfMonth(feb))
	})

	t.Run("non-leap february", func(t *testing.T) {
		feb := time.Date(2023, time.February, 10, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2023, time.February, 28, 23, 59, 59, 999999999, time.UTC), datekit.EndOfMonth(feb))
	})
}

func TestYearBoundaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), datekit.StartOfYear(reference))
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 999999999, time.UTC), datekit.EndOfYear(reference))
}

func TestBoundariesPreserveLocation(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	local := time.Date(2024, time.June, 12, 15, 0, 0, 0, loc)
	assert.Equal(t, loc, datekit.StartOfDay(local).Location())
	assert.Equal(t, loc, datekit.EndOfMonth(local).Location())
}

func TestEndStartAdjacency(t *testing.T) {
	t.Parallel()

	next := datekit.EndOfDay(reference).Add(time.Nanosecond)
	assert.Equal(t, datekit.StartOfDay(reference).AddDate(0, 0, 1), next)
}

func TestIsLeapYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year     int
		expected bool
	}{
		{year: 2024, expected: true},
		{year: 2023, expected: false},
		{year: 2000, expected: true},
		{year: 1900, expected: false},
		{year: 1600, expected: true},
		{year: 2100, expected: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, datekit.IsLeapYear(tt.year), "year %d", tt.year)
	}
}
