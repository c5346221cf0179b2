package event

import (
	"strings"
	"testing"
	"time"

	"github.com/klokku/calview/pkg/datekey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, time.October, 17, 10, 0, 0, 0, time.Local)

func TestMap_EventsFor(t *testing.T) {
	events := Map{
		"17-10-2026": {
			{Time: "09:00", Event: "Standup"},
			{Time: "14:30", Event: "Review", Link: "https://example.com/review"},
		},
	}

	got := events.EventsFor(day)
	require.Len(t, got, 2)
	assert.Equal(t, "Standup", got[0].Event)
	assert.Equal(t, "Review", got[1].Event)
	assert.True(t, got[1].HasLink())
	assert.False(t, got[0].HasLink())
}

func TestMap_EventsFor_MissingDate(t *testing.T) {
	got := Map{}.EventsFor(day)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	var nilMap Map
	assert.Empty(t, nilMap.EventsFor(day))
}

func TestDecode_YAML(t *testing.T) {
	input := `
"17-10-2026":
  - time: "09:30"
    event: Standup
    link: https://meet.example.com/standup
  - time: "18:00"
    event: Dinner
"18-10-2026": []
`
	events, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, events.Count())
	records := events.EventsFor(day)
	require.Len(t, records, 2)
	assert.Equal(t, Record{Time: "09:30", Event: "Standup", Link: "https://meet.example.com/standup"}, records[0])
	assert.Equal(t, Record{Time: "18:00", Event: "Dinner"}, records[1])
}

func TestDecode_JSON(t *testing.T) {
	input := `{"01-02-2024": [{"time": "07:00", "event": "Run"}]}`
	events, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	records := events.EventsFor(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local))
	assert.Equal(t, []Record{{Time: "07:00", Event: "Run"}}, records)
}

func TestDecode_Empty(t *testing.T) {
	events, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDecode_InvalidKey(t *testing.T) {
	_, err := Decode(strings.NewReader(`"2026-10-17": []`))
	assert.ErrorIs(t, err, datekey.ErrInvalidKey)
}

func TestLoadFile_EmptyPath(t *testing.T) {
	events, err := LoadFile("")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/missing.yaml")
	assert.Error(t, err)
}

func TestStore_Replace(t *testing.T) {
	store := NewStore(nil)
	first := store.Snapshot()
	assert.Empty(t, first.Events)

	replacement := Map{"17-10-2026": {{Time: "10:00", Event: "Call"}}}
	version := store.Replace(replacement)

	second := store.Snapshot()
	assert.Equal(t, version, second.Version)
	assert.Greater(t, second.Version, first.Version)
	assert.Len(t, second.Events.EventsFor(day), 1)
	assert.Empty(t, first.Events, "earlier snapshot must not change")
}
