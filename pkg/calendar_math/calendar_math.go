package calendar_math

import (
	"fmt"
	"time"
)

const (
	DaysPerWeek  = 7
	HoursPerDay  = 24
	FirstWeekDay = time.Sunday
)

// TimeSlot is one row of the day timeline.
type TimeSlot struct {
	Hour   int
	Time24 string // "HH:00"
	Time12 string // "H:00 AM/PM"
}

// DaysInMonth returns the number of days of month in year.
// It relies on day 0 of the following month normalizing to the last day of month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st of the month (Sunday = 0).
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// HourlySlots returns the 24 hourly slots of a day, midnight first.
func HourlySlots() []TimeSlot {
	slots := make([]TimeSlot, 0, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		hour12 := hour % 12
		if hour12 == 0 {
			hour12 = 12
		}
		ampm := "AM"
		if hour >= 12 {
			ampm = "PM"
		}
		slots = append(slots, TimeSlot{
			Hour:   hour,
			Time24: fmt.Sprintf("%02d:00", hour),
			Time12: fmt.Sprintf("%d:00 %s", hour12, ampm),
		})
	}
	return slots
}

// WeekOf returns the Sunday on or before anchor followed by the next six days.
// Each date keeps the anchor's clock time and location.
func WeekOf(anchor time.Time) []time.Time {
	start := StartOfWeek(anchor)
	days := make([]time.Time, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// StartOfWeek returns the Sunday on or before date.
func StartOfWeek(date time.Time) time.Time {
	delta := (int(date.Weekday()) - int(FirstWeekDay) + DaysPerWeek) % DaysPerWeek
	return date.AddDate(0, 0, -delta)
}

// SameDay reports whether a and b fall on the same calendar day, comparing local fields.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
