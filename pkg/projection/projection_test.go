package projection

import (
	"fmt"
	"testing"
	"time"

	"github.com/klokku/calview/pkg/calendar_math"
	"github.com/klokku/calview/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// October 2026 starts on a Thursday.
	anchor   = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)
	today    = time.Date(2026, time.October, 14, 18, 0, 0, 0, time.UTC)
	selected = time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
)

func fiveEvents() []event.Record {
	return []event.Record{
		{Time: "08:00", Event: "Gym"},
		{Time: "09:30", Event: "Standup", Link: "https://example.com/standup"},
		{Time: "09:45", Event: "Coffee"},
		{Time: "13:00", Event: "Lunch"},
		{Time: "23:15", Event: "Deploy"},
	}
}

func testEvents() event.Map {
	return event.Map{
		"16-10-2026": fiveEvents(),
		"12-10-2026": {{Time: "10:00", Event: "Planning"}},
		"01-10-2026": {{Time: "11:00", Event: "A"}, {Time: "12:00", Event: "B"}},
	}
}

func TestProjectMonth_LeadingBlanks(t *testing.T) {
	// July 2026 starts on a Wednesday.
	require.Equal(t, time.Wednesday, calendar_math.FirstWeekday(2026, time.July))

	cells := NewProjector(0, 0).ProjectMonth(time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC), selected, today, event.Map{})

	require.Len(t, cells, 3+31)
	for i := 0; i < 3; i++ {
		assert.True(t, cells[i].Empty)
	}
	for i, cell := range cells[3:] {
		assert.False(t, cell.Empty)
		assert.Equal(t, i+1, cell.Date.Day())
		assert.Equal(t, time.July, cell.Date.Month())
		assert.NotNil(t, cell.Events)
	}
}

func TestProjectMonth_CapsAndFlags(t *testing.T) {
	cells := NewProjector(0, 0).ProjectMonth(anchor, selected, today, testEvents())

	require.Len(t, cells, 4+31)
	cellFor := func(day int) MonthCell { return cells[4+day-1] }

	busy := cellFor(16)
	assert.Equal(t, fiveEvents()[:2], busy.Events)
	assert.Equal(t, 3, busy.OverflowCount)
	assert.True(t, busy.IsSelected)
	assert.False(t, busy.IsToday)

	assert.True(t, cellFor(14).IsToday)
	assert.False(t, cellFor(14).IsSelected)

	two := cellFor(1)
	assert.Len(t, two.Events, 2)
	assert.Equal(t, 0, two.OverflowCount)

	empty := cellFor(2)
	assert.Empty(t, empty.Events)
	assert.Equal(t, 0, empty.OverflowCount)
}

func TestProjectMonth_FlagsRequireSameMonthAndYear(t *testing.T) {
	lastYear := selected.AddDate(-1, 0, 0)
	cells := NewProjector(0, 0).ProjectMonth(anchor, lastYear, lastYear, event.Map{})
	for _, cell := range cells {
		assert.False(t, cell.IsToday)
		assert.False(t, cell.IsSelected)
	}
}

func TestProjectWeek(t *testing.T) {
	columns := NewProjector(0, 0).ProjectWeek(anchor, selected, today, testEvents())

	require.Len(t, columns, 7)
	assert.Equal(t, time.Sunday, columns[0].Date.Weekday())
	assert.Equal(t, 11, columns[0].Date.Day())
	assert.Equal(t, 17, columns[6].Date.Day())

	friday := columns[5]
	assert.Equal(t, fiveEvents()[:4], friday.Events)
	assert.Equal(t, 1, friday.OverflowCount)
	assert.True(t, friday.IsSelected)

	assert.True(t, columns[3].IsToday)
	assert.Equal(t, []event.Record{{Time: "10:00", Event: "Planning"}}, columns[1].Events)
	assert.Equal(t, 0, columns[1].OverflowCount)
}

func TestProjectWeek_CustomCap(t *testing.T) {
	columns := NewProjector(1, 2).ProjectWeek(anchor, selected, today, testEvents())
	assert.Len(t, columns[5].Events, 2)
	assert.Equal(t, 3, columns[5].OverflowCount)
}

func TestProjectDay(t *testing.T) {
	rows := ProjectDay(selected, testEvents())

	require.Len(t, rows, 24)
	total := 0
	for hour, row := range rows {
		assert.Equal(t, hour, row.Slot.Hour)
		total += len(row.Events)
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, []event.Record{{Time: "08:00", Event: "Gym"}}, rows[8].Events)
	assert.Len(t, rows[9].Events, 2)
	assert.Equal(t, "Standup", rows[9].Events[0].Event)
	assert.Equal(t, "Coffee", rows[9].Events[1].Event)
	assert.Len(t, rows[13].Events, 1)
	assert.Len(t, rows[23].Events, 1)
	assert.Empty(t, rows[0].Events)
}

func TestProjectDay_NoCap(t *testing.T) {
	var records []event.Record
	for i := 0; i < 12; i++ {
		records = append(records, event.Record{Time: fmt.Sprintf("07:%02d", i*5), Event: "e"})
	}
	rows := ProjectDay(selected, event.Map{"16-10-2026": records})
	assert.Len(t, rows[7].Events, 12)
}

func TestProjectDay_MalformedTimeDoesNotBreakView(t *testing.T) {
	records := []event.Record{{Time: "noon", Event: "Broken"}, {Time: "12:00", Event: "Lunch"}}
	rows := ProjectDay(selected, event.Map{"16-10-2026": records})

	require.Len(t, rows, 24)
	assert.Equal(t, []event.Record{{Time: "12:00", Event: "Lunch"}}, rows[12].Events)
}

func TestCapEvents_DoesNotExposeHiddenRecords(t *testing.T) {
	records := fiveEvents()
	visible, overflow := capEvents(records, 2)
	assert.Equal(t, 3, overflow)

	visible = append(visible, event.Record{Event: "appended"})
	assert.Len(t, visible, 3)
	assert.Equal(t, "Coffee", records[2].Event)
}

func TestCapEvents_UnderCapDoesNotShareSpareCapacity(t *testing.T) {
	backing := make([]event.Record, 2, 4)
	backing[0] = event.Record{Time: "09:00", Event: "Standup"}
	backing[1] = event.Record{Time: "10:00", Event: "Review"}
	spare := backing[:3]
	spare[2] = event.Record{Time: "11:00", Event: "Lunch"}

	visible, overflow := capEvents(backing, 4)
	assert.Equal(t, 0, overflow)
	assert.Equal(t, 2, cap(visible))

	_ = append(visible, event.Record{Event: "appended"})
	assert.Equal(t, "Lunch", spare[2].Event)
}
