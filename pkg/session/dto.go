package session

import (
	"time"

	"github.com/klokku/calview/pkg/datekey"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/projection"
	"github.com/klokku/calview/pkg/widget"
)

const dateLayout = time.DateOnly

type OutputDTO struct {
	SessionId    string          `json:"sessionId,omitempty"`
	View         string          `json:"view"`
	Title        string          `json:"title"`
	AnchorDate   string          `json:"anchorDate"`
	SelectedDate string          `json:"selectedDate"`
	Month        *MonthDTO       `json:"month,omitempty"`
	Week         []WeekColumnDTO `json:"week,omitempty"`
	Day          *DayDTO         `json:"day,omitempty"`
}

type EventDTO struct {
	Time   string `json:"time"`
	Time12 string `json:"time12"`
	Event  string `json:"event"`
	Link   string `json:"link,omitempty"`
	Label  string `json:"label"`
}

type MonthDTO struct {
	Weekdays []string       `json:"weekdays"`
	Cells    []MonthCellDTO `json:"cells"`
}

type MonthCellDTO struct {
	Empty         bool       `json:"empty,omitempty"`
	Date          string     `json:"date,omitempty"`
	Day           int        `json:"day,omitempty"`
	Events        []EventDTO `json:"events,omitempty"`
	Overflow      int        `json:"overflow,omitempty"`
	OverflowLabel string     `json:"overflowLabel,omitempty"`
	Today         bool       `json:"today,omitempty"`
	Selected      bool       `json:"selected,omitempty"`
}

type WeekColumnDTO struct {
	Date          string     `json:"date"`
	Weekday       string     `json:"weekday"`
	Day           int        `json:"day"`
	Events        []EventDTO `json:"events"`
	Overflow      int        `json:"overflow"`
	OverflowLabel string     `json:"overflowLabel,omitempty"`
	Today         bool       `json:"today"`
	Selected      bool       `json:"selected"`
}

type DayDTO struct {
	Date string       `json:"date"`
	Rows []DaySlotDTO `json:"rows"`
}

type DaySlotDTO struct {
	Hour   int        `json:"hour"`
	Time   string     `json:"time"`
	Time12 string     `json:"time12"`
	Events []EventDTO `json:"events"`
}

// OutputToDTO converts a rendered frame into its JSON shape.
func OutputToDTO(sessionId string, out widget.Output) OutputDTO {
	dto := OutputDTO{
		SessionId:    sessionId,
		View:         out.View.String(),
		Title:        out.Title,
		AnchorDate:   out.AnchorDate.Format(dateLayout),
		SelectedDate: out.SelectedDate.Format(dateLayout),
	}
	switch model := out.Model.(type) {
	case projection.MonthModel:
		dto.Month = monthToDTO(model)
	case projection.WeekModel:
		dto.Week = weekToDTO(model)
	case projection.DayModel:
		dto.Day = dayToDTO(model)
	}
	return dto
}

func monthToDTO(model projection.MonthModel) *MonthDTO {
	cells := make([]MonthCellDTO, 0, len(model.Cells))
	for _, c := range model.Cells {
		if c.Empty {
			cells = append(cells, MonthCellDTO{Empty: true})
			continue
		}
		cells = append(cells, MonthCellDTO{
			Date:          c.Date.Format(dateLayout),
			Day:           c.Date.Day(),
			Events:        eventsToDTO(c.Events),
			Overflow:      c.OverflowCount,
			OverflowLabel: projection.OverflowLabel(c.OverflowCount),
			Today:         c.IsToday,
			Selected:      c.IsSelected,
		})
	}
	return &MonthDTO{Weekdays: model.Weekdays[:], Cells: cells}
}

func weekToDTO(model projection.WeekModel) []WeekColumnDTO {
	columns := make([]WeekColumnDTO, 0, len(model.Columns))
	for _, c := range model.Columns {
		columns = append(columns, WeekColumnDTO{
			Date:          c.Date.Format(dateLayout),
			Weekday:       c.Date.Weekday().String(),
			Day:           c.Date.Day(),
			Events:        eventsToDTO(c.Events),
			Overflow:      c.OverflowCount,
			OverflowLabel: projection.OverflowLabel(c.OverflowCount),
			Today:         c.IsToday,
			Selected:      c.IsSelected,
		})
	}
	return columns
}

func dayToDTO(model projection.DayModel) *DayDTO {
	rows := make([]DaySlotDTO, 0, len(model.Rows))
	for _, r := range model.Rows {
		rows = append(rows, DaySlotDTO{
			Hour:   r.Slot.Hour,
			Time:   r.Slot.Time24,
			Time12: r.Slot.Time12,
			Events: eventsToDTO(r.Events),
		})
	}
	return &DayDTO{Date: model.Date.Format(dateLayout), Rows: rows}
}

func eventsToDTO(records []event.Record) []EventDTO {
	dtos := make([]EventDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, eventToDTO(r))
	}
	return dtos
}

func eventToDTO(r event.Record) EventDTO {
	return EventDTO{
		Time:   r.Time,
		Time12: datekey.To12Hour(r.Time),
		Event:  r.Event,
		Link:   r.Link,
		Label:  projection.EventLabel(r),
	}
}
