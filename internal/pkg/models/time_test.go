package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOToBookingDate(t *testing.T) {
	out, err := ISOToBookingDate("2025-03-01")
	assert.NoError(t, err)
	assert.Equal(t, "01-03-2025", out)

	_, err = ISOToBookingDate("01-03-2025")
	assert.Error(t, err)
}

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10:00 AM", "10:00"},
		{"12:30 PM", "12:30"},
		{"12:05 am", "00:05"},
		{"9:15 pm", "21:15"},
		{"14:00", "14:00"},
		{"00:00", "00:00"},
	}

	for _, tt := range tests {
		got, err := To24Hour(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := To24Hour("half past ten")
	assert.Error(t, err)
}

func TestDayChip(t *testing.T) {
	now := time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "Today", DayChip("2025-03-01", now))
	assert.Equal(t, "Next Day", DayChip("2025-03-02", now))
	assert.Equal(t, "", DayChip("2025-03-05", now))
	assert.Equal(t, "", DayChip("2025-02-28", now))
	assert.Equal(t, "", DayChip("not-a-date", now))
}

func TestFormatBookingTime(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "09:05", FormatBookingTime(at))
	assert.Equal(t, "01-03-2025", FormatBookingDate(at))
}
