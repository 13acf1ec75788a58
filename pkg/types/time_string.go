package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format (e.g. "09:30").
// It is stored as a plain string so it survives JSON and SQL round-trips
// without timezone conversions.
type TimeString string

const timeLayout = "15:04"

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOverflow возвращается, когда результат операции выходит за пределы суток
	ErrTimeOverflow = errors.New("types: time is out of day range")
)

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate checks that the value matches the HH:MM format.
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero returns true for the empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// MinutesFromMidnight converts the value to minutes since midnight.
func (t TimeString) MinutesFromMidnight() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parsed, _ := time.Parse(timeLayout, string(t))
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Hours converts the value to decimal hours (e.g. "09:30" -> 9.5).
// Used by calendar rendering where positions are proportional to hours.
func (t TimeString) Hours() (float64, error) {
	minutes, err := t.MinutesFromMidnight()
	if err != nil {
		return 0, err
	}
	return float64(minutes) / 60.0, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Returns ErrTimeOverflow if the result leaves the current day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	base, err := t.MinutesFromMidnight()
	if err != nil {
		return "", err
	}
	total := base + minutes
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOverflow, string(t), minutes)
	}
	// 24:00 не представимо в HH:MM, считаем переполнением
	if total == minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOverflow, string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Invalid values compare as false.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.MinutesFromMidnight()
	b, errB := other.MinutesFromMidnight()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
// Invalid values compare as false.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.MinutesFromMidnight()
	b, errB := other.MinutesFromMidnight()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Equal reports whether both values denote the same minute of the day.
func (t TimeString) Equal(other TimeString) bool {
	a, errA := t.MinutesFromMidnight()
	b, errB := other.MinutesFromMidnight()
	if errA != nil || errB != nil {
		return false
	}
	return a == b
}
