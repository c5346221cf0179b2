package widget

import (
	"context"
	"testing"
	"time"

	"github.com/klokku/calview/internal/event_bus"
	"github.com/klokku/calview/internal/utils"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/navigation"
	"github.com/klokku/calview/pkg/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

func setupWidget(t *testing.T, events event.Map) (*Widget, *event.Store, *event_bus.EventBus) {
	t.Helper()
	store := event.NewStore(events)
	bus := event_bus.NewEventBus()
	w := New("test", &utils.MockClock{FixedNow: now}, store, projection.NewProjector(0, 0), bus)
	return w, store, bus
}

func TestWidget_RenderFollowsNavigation(t *testing.T) {
	w, _, _ := setupWidget(t, event.Map{})

	out := w.Render()
	assert.Equal(t, navigation.Month, out.View)
	assert.Equal(t, "October 2026", out.Title)
	assert.IsType(t, projection.MonthModel{}, out.Model)

	w.Next()
	assert.Equal(t, "November 2026", w.Render().Title)

	w.SetView(navigation.Week)
	out = w.Render()
	assert.Equal(t, navigation.Week, out.View)
	assert.Equal(t, "Week of Nov 15 – Nov 21, 2026", out.Title)

	w.SelectDate(time.Date(2026, time.November, 18, 0, 0, 0, 0, time.UTC))
	out = w.Render()
	assert.Equal(t, navigation.Day, out.View)
	assert.Equal(t, "November 18, 2026", out.Title)

	w.GoToToday()
	out = w.Render()
	assert.Equal(t, navigation.Day, out.View)
	assert.Equal(t, now, out.SelectedDate)
	assert.Equal(t, now, out.AnchorDate)
}

func TestWidget_RenderSeesReplacedEvents(t *testing.T) {
	w, store, _ := setupWidget(t, event.Map{})
	w.SetView(navigation.Day)

	first := w.Render().Model.(projection.DayModel)
	assert.Empty(t, first.Rows[10].Events)

	store.Replace(event.Map{"17-10-2026": {{Time: "10:30", Event: "Call"}}})
	second := w.Render().Model.(projection.DayModel)
	assert.Len(t, second.Rows[10].Events, 1)
}

func TestWidget_InstancesAreIndependent(t *testing.T) {
	store := event.NewStore(nil)
	clock := &utils.MockClock{FixedNow: now}
	a := New("a", clock, store, projection.NewProjector(0, 0), nil)
	b := New("b", clock, store, projection.NewProjector(0, 0), nil)

	a.Next()
	a.SetView(navigation.Week)

	assert.Equal(t, navigation.Month, b.State().View)
	assert.Equal(t, now, b.State().AnchorDate)
}

func TestWidget_Activate(t *testing.T) {
	w, _, bus := setupWidget(t, event.Map{"17-10-2026": {
		{Time: "09:00", Event: "No link"},
		{Time: "10:00", Event: "Meeting", Link: "https://meet.example.com/x"},
	}})
	var opened []string
	event_bus.SubscribeTyped(bus, event_bus.CalendarEventActivated, func(e event_bus.EventT[event_bus.EventActivated]) error {
		opened = append(opened, e.Data.Link)
		return nil
	})

	record, err := w.Activate(context.Background(), now, 0)
	require.NoError(t, err)
	assert.Equal(t, "No link", record.Event)
	assert.Empty(t, opened)

	record, err = w.Activate(context.Background(), now, 1)
	require.NoError(t, err)
	assert.Equal(t, "Meeting", record.Event)
	assert.Equal(t, []string{"https://meet.example.com/x"}, opened)

	_, err = w.Activate(context.Background(), now, 2)
	assert.ErrorIs(t, err, ErrEventNotFound)
	_, err = w.Activate(context.Background(), now.AddDate(0, 0, 1), 0)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
