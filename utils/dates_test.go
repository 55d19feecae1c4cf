package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodBoundaries(t *testing.T) {
	ts := time.Date(2025, time.August, 17, 14, 30, 12, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.August, 17, 0, 0, 0, 0, time.UTC), BeginningOfDay(ts))
	assert.Equal(t, time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), BeginningOfMonth(ts))
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), BeginningOfQuarter(ts))
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), BeginningOfYear(ts))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, time.August, 17, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.August, 20, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(start, end))
}
