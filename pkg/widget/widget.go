package widget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klokku/calview/internal/event_bus"
	"github.com/klokku/calview/internal/utils"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/navigation"
	"github.com/klokku/calview/pkg/projection"
	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = errors.New("event not found")

// Output is everything the rendering layer needs for one frame.
type Output struct {
	View         navigation.View
	Title        string
	Model        projection.Model
	AnchorDate   time.Time
	SelectedDate time.Time
}

// EventSource provides the current event map snapshot.
type EventSource interface {
	Snapshot() event.Snapshot
}

// Widget is one calendar instance. It owns its navigation state and render
// cache; nothing is shared with other widgets except the read-only events.
// A Widget is not safe for concurrent use.
type Widget struct {
	Id         string
	clock      utils.Clock
	eventBus   *event_bus.EventBus
	events     EventSource
	controller *navigation.Controller
	memo       *projection.Memo
}

func New(id string, clock utils.Clock, events EventSource, projector projection.Projector, eventBus *event_bus.EventBus) *Widget {
	return NewAt(id, clock.Now(), clock, events, projector, eventBus)
}

// NewAt opens the widget on start. Today is still taken from clock.
func NewAt(id string, start time.Time, clock utils.Clock, events EventSource, projector projection.Projector, eventBus *event_bus.EventBus) *Widget {
	return &Widget{
		Id:         id,
		clock:      clock,
		eventBus:   eventBus,
		events:     events,
		controller: navigation.NewControllerAt(start, clock, eventBus),
		memo:       projection.NewMemo(projector),
	}
}

func (w *Widget) State() navigation.State {
	return w.controller.State()
}

func (w *Widget) Prev()                     { w.controller.Prev() }
func (w *Widget) Next()                     { w.controller.Next() }
func (w *Widget) GoToToday()                { w.controller.GoToToday() }
func (w *Widget) SelectDate(date time.Time) { w.controller.SelectDate(date) }
func (w *Widget) SetView(v navigation.View) { w.controller.SetView(v) }

// Render projects the current state against the latest event snapshot.
func (w *Widget) Render() Output {
	state := w.controller.State()
	model, title := w.memo.Project(state, w.clock.Now(), w.events.Snapshot())
	return Output{
		View:         state.View,
		Title:        title,
		Model:        model,
		AnchorDate:   state.AnchorDate,
		SelectedDate: state.SelectedDate,
	}
}

// Activate resolves the index-th event of date and, when it has a link,
// announces it on the event bus. Opening the link is left to subscribers;
// an event without a link is a no-op.
func (w *Widget) Activate(ctx context.Context, date time.Time, index int) (event.Record, error) {
	records := w.events.Snapshot().Events.EventsFor(date)
	if index < 0 || index >= len(records) {
		return event.Record{}, fmt.Errorf("%w: index %d of %d on %s", ErrEventNotFound, index, len(records), date.Format(time.DateOnly))
	}
	record := records[index]
	if !record.HasLink() {
		log.Debugf("event %q has no link, nothing to open", record.Event)
		return record, nil
	}
	if w.eventBus != nil {
		err := w.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.CalendarEventActivated, event_bus.EventActivated{
			SessionId: w.Id,
			Date:      date,
			Time:      record.Time,
			Event:     record.Event,
			Link:      record.Link,
		}))
		if err != nil {
			log.Warnf("event activation handlers failed: %v", err)
		}
	}
	return record, nil
}
