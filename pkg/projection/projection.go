package projection

import (
	"strings"
	"time"

	"github.com/klokku/calview/pkg/calendar_math"
	"github.com/klokku/calview/pkg/datekey"
	"github.com/klokku/calview/pkg/event"
)

const (
	DefaultMonthCap = 2
	DefaultWeekCap  = 4
)

// MonthCell is one cell of the month grid. Leading cells before the 1st are Empty.
type MonthCell struct {
	Empty         bool
	Date          time.Time
	Events        []event.Record
	OverflowCount int
	IsToday       bool
	IsSelected    bool
}

type WeekColumn struct {
	Date          time.Time
	Events        []event.Record
	OverflowCount int
	IsToday       bool
	IsSelected    bool
}

// DaySlotRow holds every event of the selected day starting in the slot's hour.
type DaySlotRow struct {
	Slot   calendar_math.TimeSlot
	Events []event.Record
}

// Projector turns calendar math and an event map into view structures.
type Projector struct {
	MonthCap int
	WeekCap  int
}

// NewProjector falls back to the default caps for non-positive values.
func NewProjector(monthCap, weekCap int) Projector {
	if monthCap <= 0 {
		monthCap = DefaultMonthCap
	}
	if weekCap <= 0 {
		weekCap = DefaultWeekCap
	}
	return Projector{MonthCap: monthCap, WeekCap: weekCap}
}

func (p Projector) ProjectMonth(anchor, selected, today time.Time, events event.Map) []MonthCell {
	return p.projectMonth(calendar_math.Compute(anchor), selected, today, events)
}

func (p Projector) projectMonth(d calendar_math.Derived, selected, today time.Time, events event.Map) []MonthCell {
	cells := make([]MonthCell, 0, d.GridSize())
	for i := 0; i < int(d.FirstDay); i++ {
		cells = append(cells, MonthCell{Empty: true})
	}
	for day := 1; day <= d.DaysInMonth; day++ {
		date := time.Date(d.Year, d.Month, day, 0, 0, 0, 0, d.Anchor.Location())
		visible, overflow := capEvents(events.EventsFor(date), p.MonthCap)
		cells = append(cells, MonthCell{
			Date:          date,
			Events:        visible,
			OverflowCount: overflow,
			IsToday:       calendar_math.SameDay(date, today),
			IsSelected:    calendar_math.SameDay(date, selected),
		})
	}
	return cells
}

func (p Projector) ProjectWeek(anchor, selected, today time.Time, events event.Map) []WeekColumn {
	return p.projectWeek(calendar_math.WeekOf(anchor), selected, today, events)
}

func (p Projector) projectWeek(week []time.Time, selected, today time.Time, events event.Map) []WeekColumn {
	columns := make([]WeekColumn, 0, len(week))
	for _, date := range week {
		visible, overflow := capEvents(events.EventsFor(date), p.WeekCap)
		columns = append(columns, WeekColumn{
			Date:          date,
			Events:        visible,
			OverflowCount: overflow,
			IsToday:       calendar_math.SameDay(date, today),
			IsSelected:    calendar_math.SameDay(date, selected),
		})
	}
	return columns
}

// ProjectDay groups the selected day's events into the 24 hourly slots. Events
// whose time does not start with a two digit hour appear in no slot.
func ProjectDay(selected time.Time, events event.Map) []DaySlotRow {
	return projectDay(calendar_math.HourlySlots(), selected, events)
}

func projectDay(slots []calendar_math.TimeSlot, selected time.Time, events event.Map) []DaySlotRow {
	dayEvents := events.EventsFor(selected)
	rows := make([]DaySlotRow, 0, len(slots))
	for _, slot := range slots {
		prefix := datekey.HourPrefix(slot.Hour)
		matching := []event.Record{}
		for _, record := range dayEvents {
			if strings.HasPrefix(record.Time, prefix) {
				matching = append(matching, record)
			}
		}
		rows = append(rows, DaySlotRow{Slot: slot, Events: matching})
	}
	return rows
}

// capEvents returns at most limit records and how many were left out.
func capEvents(records []event.Record, limit int) ([]event.Record, int) {
	if len(records) <= limit {
		return records[:len(records):len(records)], 0
	}
	return records[:limit:limit], len(records) - limit
}
