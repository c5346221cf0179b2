package calendar_math

import "time"

// Derived groups the values every view needs for one anchor date.
// It only depends on the anchor, so it can be cached until the anchor changes.
type Derived struct {
	Anchor      time.Time
	Year        int
	Month       time.Month
	DaysInMonth int
	FirstDay    time.Weekday
	TimeSlots   []TimeSlot
	DaysOfWeek  []time.Time
}

func Compute(anchor time.Time) Derived {
	year, month := anchor.Year(), anchor.Month()
	return Derived{
		Anchor:      anchor,
		Year:        year,
		Month:       month,
		DaysInMonth: DaysInMonth(year, month),
		FirstDay:    FirstWeekday(year, month),
		TimeSlots:   HourlySlots(),
		DaysOfWeek:  WeekOf(anchor),
	}
}

// GridSize is the number of month cells including the leading blanks.
func (d Derived) GridSize() int {
	return int(d.FirstDay) + d.DaysInMonth
}
