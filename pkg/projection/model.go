package projection

import (
	"time"

	"github.com/klokku/calview/pkg/calendar_math"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/navigation"
)

// Model is the display model of one view. It is implemented only by
// MonthModel, WeekModel and DayModel.
type Model interface {
	View() navigation.View
	isModel()
}

type MonthModel struct {
	Weekdays [7]string
	Cells    []MonthCell
}

type WeekModel struct {
	Columns []WeekColumn
}

type DayModel struct {
	Date time.Time
	Rows []DaySlotRow
}

func (MonthModel) View() navigation.View { return navigation.Month }
func (WeekModel) View() navigation.View  { return navigation.Week }
func (DayModel) View() navigation.View   { return navigation.Day }

func (MonthModel) isModel() {}
func (WeekModel) isModel()  {}
func (DayModel) isModel()   {}

// Project builds the model and title for state from precomputed calendar math.
func (p Projector) Project(state navigation.State, derived calendar_math.Derived, today time.Time, events event.Map) (Model, string) {
	title := TitleFor(state.View, state.AnchorDate, state.SelectedDate, derived.DaysOfWeek)
	switch state.View {
	case navigation.Week:
		return WeekModel{Columns: p.projectWeek(derived.DaysOfWeek, state.SelectedDate, today, events)}, title
	case navigation.Day:
		return DayModel{Date: state.SelectedDate, Rows: projectDay(derived.TimeSlots, state.SelectedDate, events)}, title
	default:
		return MonthModel{Weekdays: WeekdayNames, Cells: p.projectMonth(derived, state.SelectedDate, today, events)}, title
	}
}
