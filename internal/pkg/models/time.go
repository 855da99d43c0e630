package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	isoDateLayout     = "2006-01-02"
	bookingDateLayout = "02-01-2006"
	bookingTimeLayout = "15:04"
	twelveHourLayout  = "3:04 PM"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatISODate formats a time as an ISO date string (2006-01-02)
func FormatISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// ParseISODate parses an ISO date string (2006-01-02)
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(isoDateLayout, s)
}

// FormatBookingDate formats a time in the backend's DD-MM-YYYY wire format
func FormatBookingDate(t time.Time) string {
	return t.Format(bookingDateLayout)
}

// ISOToBookingDate converts an ISO date string to the backend's DD-MM-YYYY
// wire format
func ISOToBookingDate(s string) (string, error) {
	t, err := ParseISODate(s)
	if err != nil {
		return "", fmt.Errorf("invalid booking date %q: %w", s, err)
	}
	return FormatBookingDate(t), nil
}

// FormatBookingTime formats a time in the backend's 24-hour HH:MM wire format
func FormatBookingTime(t time.Time) string {
	return t.Format(bookingTimeLayout)
}

// To24Hour normalizes a time-of-day string to 24-hour HH:MM. The scheduling
// screens produce 12-hour strings like "10:00 AM"; 24-hour input passes
// through unchanged.
func To24Hour(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		t, err := time.Parse(twelveHourLayout, upper)
		if err != nil {
			return "", fmt.Errorf("invalid 12-hour time %q: %w", s, err)
		}
		return t.Format(bookingTimeLayout), nil
	}
	t, err := time.Parse(bookingTimeLayout, trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Format(bookingTimeLayout), nil
}

// DayChip derives the confirmation-screen chip for a scheduled ISO date:
// "Today" for now's date, "Next Day" for the day after, empty otherwise.
func DayChip(isoDate string, now time.Time) string {
	t, err := ParseISODate(isoDate)
	if err != nil {
		return ""
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch int(target.Sub(today).Hours() / 24) {
	case 0:
		return "Today"
	case 1:
		return "Next Day"
	default:
		return ""
	}
}
