package event_bus

import (
	"time"
)

const (
	CalendarEventActivated EventType = "calendar.event.activated"
	CalendarStateChanged   EventType = "calendar.state.changed"
)

// EventActivated is published when the user activates an event that has a link.
type EventActivated struct {
	SessionId string
	Date      time.Time
	Time      string
	Event     string
	Link      string
}

// StateChanged is published after every navigation transition.
type StateChanged struct {
	Transition   string
	AnchorDate   time.Time
	SelectedDate time.Time
	View         string
}
