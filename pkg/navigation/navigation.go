package navigation

import (
	"context"
	"time"

	"github.com/klokku/calview/internal/event_bus"
	"github.com/klokku/calview/internal/utils"
	log "github.com/sirupsen/logrus"
)

// State is the navigation state of one calendar instance.
// AnchorDate picks the displayed month or week, SelectedDate the highlighted
// day and the day view content.
type State struct {
	AnchorDate   time.Time
	View         View
	SelectedDate time.Time
}

// Controller owns a State and only changes it through its transitions.
// It is not safe for concurrent use.
type Controller struct {
	clock    utils.Clock
	eventBus *event_bus.EventBus
	state    State
}

// NewController starts at "now" in month view. eventBus may be nil.
func NewController(clock utils.Clock, eventBus *event_bus.EventBus) *Controller {
	return NewControllerAt(clock.Now(), clock, eventBus)
}

// NewControllerAt anchors and selects start instead of now. The clock still
// drives GoToToday.
func NewControllerAt(start time.Time, clock utils.Clock, eventBus *event_bus.EventBus) *Controller {
	return &Controller{
		clock:    clock,
		eventBus: eventBus,
		state: State{
			AnchorDate:   start,
			View:         Month,
			SelectedDate: start,
		},
	}
}

func (c *Controller) State() State {
	return c.state
}

// Prev moves the anchor back by one unit of the current view.
func (c *Controller) Prev() State {
	c.state.AnchorDate = Step(c.state.AnchorDate, c.state.View, -1)
	return c.changed("prev")
}

// Next moves the anchor forward by one unit of the current view.
func (c *Controller) Next() State {
	c.state.AnchorDate = Step(c.state.AnchorDate, c.state.View, 1)
	return c.changed("next")
}

// GoToToday resets anchor and selection to now and keeps the view.
func (c *Controller) GoToToday() State {
	now := c.clock.Now()
	c.state.AnchorDate = now
	c.state.SelectedDate = now
	return c.changed("today")
}

// SelectDate selects date and drills into the day view.
// The anchor is left alone, so switching back shows the previous month or week.
func (c *Controller) SelectDate(date time.Time) State {
	c.state.SelectedDate = date
	c.state.View = Day
	return c.changed("select")
}

// SetView switches the layout only; unknown views are ignored.
func (c *Controller) SetView(view View) State {
	if !view.Valid() {
		log.Warnf("ignoring unknown calendar view %d", int(view))
		return c.state
	}
	c.state.View = view
	return c.changed("view")
}

func (c *Controller) changed(transition string) State {
	log.Tracef("calendar %s: anchor=%s view=%s selected=%s", transition,
		c.state.AnchorDate.Format(time.DateOnly), c.state.View, c.state.SelectedDate.Format(time.DateOnly))
	if c.eventBus != nil {
		err := c.eventBus.Publish(event_bus.NewEvent(context.Background(), event_bus.CalendarStateChanged, event_bus.StateChanged{
			Transition:   transition,
			AnchorDate:   c.state.AnchorDate,
			SelectedDate: c.state.SelectedDate,
			View:         c.state.View.String(),
		}))
		if err != nil {
			log.Errorf("failed to publish state change: %v", err)
		}
	}
	return c.state
}

// Step moves date by n units of view: months for Month, weeks for Week and days for Day.
//
// Month steps use AddDate normalization, so a day-of-month missing in the
// target month rolls over into the following month (Jan 31 + 1 month = Mar 3,
// or Mar 2 in leap years).
func Step(date time.Time, view View, n int) time.Time {
	switch view {
	case Month:
		return date.AddDate(0, n, 0)
	case Week:
		return date.AddDate(0, 0, 7*n)
	case Day:
		return date.AddDate(0, 0, n)
	default:
		return date
	}
}
