package event

import (
	"time"

	"github.com/klokku/calview/pkg/datekey"
)

// Record is a single dated event as supplied by the host.
type Record struct {
	Time  string `yaml:"time" json:"time"`
	Event string `yaml:"event" json:"event"`
	Link  string `yaml:"link,omitempty" json:"link,omitempty"`
}

// HasLink reports whether activating the record opens anything.
func (r Record) HasLink() bool {
	return r.Link != ""
}

// Map indexes records by DD-MM-YYYY date key. It is read-only once handed to the calendar.
type Map map[string][]Record

// EventsFor returns the records stored for the date, or an empty slice.
// The returned slice shares its backing array with the map and must not be modified.
func (m Map) EventsFor(date time.Time) []Record {
	records, ok := m[datekey.ToKey(date)]
	if !ok {
		return []Record{}
	}
	return records
}

// Count returns the total number of records in the map.
func (m Map) Count() int {
	count := 0
	for _, records := range m {
		count += len(records)
	}
	return count
}
