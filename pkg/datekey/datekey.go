package datekey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Layout is the time layout of a date key, e.g. "07-03-2025" for March 7th 2025.
const Layout = "02-01-2006"

var ErrInvalidKey = errors.New("invalid date key")

// FormatError reports a clock time that does not match "HH:MM".
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: expected HH:MM", e.Input)
}

// ToKey formats the local calendar fields of date as DD-MM-YYYY.
// No timezone conversion is applied.
func ToKey(date time.Time) string {
	return fmt.Sprintf("%02d-%02d-%04d", date.Day(), int(date.Month()), date.Year())
}

// FromKey parses a DD-MM-YYYY key into midnight of that day in loc.
func FromKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if len(key) != len(Layout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	date, err := time.ParseInLocation(Layout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidKey, key, err)
	}
	return date, nil
}

// Parse12Hour converts "HH:MM" into a 12-hour clock string such as "1:05 PM".
func Parse12Hour(time24 string) (string, error) {
	hour, minutes, err := split(time24)
	if err != nil {
		return "", err
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, minutes, ampm), nil
}

// To12Hour is the lenient form of Parse12Hour used on the render path.
// Malformed input is returned unchanged.
func To12Hour(time24 string) string {
	formatted, err := Parse12Hour(time24)
	if err != nil {
		log.Debugf("keeping unformatted event time: %v", err)
		return time24
	}
	return formatted
}

// HourPrefix returns the zero-padded two digit hour used to match event times to hourly slots.
func HourPrefix(hour int) string {
	return fmt.Sprintf("%02d", hour)
}

func split(time24 string) (int, string, error) {
	hours, minutes, found := strings.Cut(time24, ":")
	if !found || !twoDigits(hours) || !twoDigits(minutes) {
		return 0, "", &FormatError{Input: time24}
	}
	hour, err := strconv.Atoi(hours)
	if err != nil || hour < 0 || hour > 23 {
		return 0, "", &FormatError{Input: time24}
	}
	minute, err := strconv.Atoi(minutes)
	if err != nil || minute < 0 || minute > 59 {
		return 0, "", &FormatError{Input: time24}
	}
	return hour, minutes, nil
}

func twoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}
