package projection

import (
	"testing"

	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo_Project(t *testing.T) {
	memo := NewMemo(NewProjector(0, 0))
	snapshot := event.Snapshot{Events: testEvents(), Version: 1}
	state := navigation.State{AnchorDate: anchor, View: navigation.Month, SelectedDate: selected}

	model, title := memo.Project(state, today, snapshot)
	month, ok := model.(MonthModel)
	require.True(t, ok)
	assert.Equal(t, navigation.Month, model.View())
	assert.Equal(t, "October 2026", title)
	assert.Len(t, month.Cells, 35)
	assert.Equal(t, "Sunday", month.Weekdays[0])

	memo.Project(state, today.Add(1), snapshot)
	assert.Equal(t, 1, memo.ModelComputations, "same inputs must hit the cache")
	assert.Equal(t, 1, memo.DerivedComputations)

	state.View = navigation.Week
	model, _ = memo.Project(state, today, snapshot)
	assert.IsType(t, WeekModel{}, model)
	assert.Equal(t, 2, memo.ModelComputations)
	assert.Equal(t, 1, memo.DerivedComputations, "anchor did not change")

	state.View = navigation.Day
	model, title = memo.Project(state, today, snapshot)
	day, ok := model.(DayModel)
	require.True(t, ok)
	assert.Len(t, day.Rows, 24)
	assert.Equal(t, selected, day.Date)
	assert.Equal(t, "October 16, 2026", title)

	snapshot.Version = 2
	memo.Project(state, today, snapshot)
	assert.Equal(t, 4, memo.ModelComputations, "new events version invalidates the model")

	state.AnchorDate = anchor.AddDate(0, 1, 0)
	memo.Project(state, today, snapshot)
	assert.Equal(t, 2, memo.DerivedComputations)
}

func TestMemo_TodayChangeInvalidates(t *testing.T) {
	memo := NewMemo(NewProjector(0, 0))
	snapshot := event.Snapshot{Events: event.Map{}, Version: 1}
	state := navigation.State{AnchorDate: anchor, View: navigation.Week, SelectedDate: selected}

	memo.Project(state, today, snapshot)
	model, _ := memo.Project(state, today.AddDate(0, 0, 1), snapshot)

	assert.Equal(t, 2, memo.ModelComputations)
	assert.True(t, model.(WeekModel).Columns[4].IsToday)
}
