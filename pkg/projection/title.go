package projection

import (
	"fmt"
	"time"

	"github.com/klokku/calview/pkg/datekey"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/navigation"
)

const (
	monthTitleLayout = "January 2006"
	weekStartLayout  = "Jan 2"
	weekEndLayout    = "Jan 2, 2006"
	dayTitleLayout   = "January 2, 2006"
)

// WeekdayNames are the month grid column headers, Sunday first.
var WeekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// TitleFor builds the header of the current view. week must hold the 7 days
// of the anchor's week and is only read for the week view.
func TitleFor(view navigation.View, anchor, selected time.Time, week []time.Time) string {
	switch view {
	case navigation.Week:
		if len(week) == 0 {
			return ""
		}
		return fmt.Sprintf("Week of %s – %s", week[0].Format(weekStartLayout), week[len(week)-1].Format(weekEndLayout))
	case navigation.Day:
		return selected.Format(dayTitleLayout)
	default:
		return anchor.Format(monthTitleLayout)
	}
}

// EventLabel is the text shown for an event: "9:30 AM - Standup".
func EventLabel(record event.Record) string {
	return datekey.To12Hour(record.Time) + " - " + record.Event
}

// OverflowLabel describes hidden events, e.g. "+3 more". It is empty when nothing is hidden.
func OverflowLabel(count int) string {
	if count <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", count)
}
