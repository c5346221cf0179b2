package app

import (
	"fmt"

	"github.com/klokku/calview/internal/config"
	"github.com/klokku/calview/internal/event_bus"
	"github.com/klokku/calview/internal/utils"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/projection"
	"github.com/klokku/calview/pkg/session"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus

	EventStore   *event.Store
	EventHandler *event.Handler

	Projector projection.Projector

	SessionService *session.ServiceImpl
	SessionHandler *session.Handler
}

// BuildDependencies loads the events file and wires services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.EventBus = event_bus.NewEventBus()
	SubscribeLinkOpener(deps.EventBus)

	events, err := event.LoadFile(cfg.Events.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	deps.EventStore = event.NewStore(events)
	deps.EventHandler = event.NewHandler(deps.EventStore)

	deps.Projector = projection.NewProjector(cfg.Calendar.MonthCap, cfg.Calendar.WeekCap)

	deps.SessionService = session.NewService(deps.Clock, deps.EventStore, deps.Projector, deps.EventBus, session.Limits{
		IdleTTL: cfg.Session.IdleTTL,
		Max:     cfg.Session.Max,
	})
	deps.SessionHandler = session.NewHandler(deps.SessionService)

	return deps, nil
}

// SubscribeLinkOpener records activated links. The browser opens the link
// itself; the server side only needs the audit trail.
func SubscribeLinkOpener(bus *event_bus.EventBus) func() {
	return event_bus.SubscribeTyped(bus, event_bus.CalendarEventActivated,
		func(e event_bus.EventT[event_bus.EventActivated]) error {
			log.WithFields(log.Fields{
				"session": e.Data.SessionId,
				"date":    e.Data.Date.Format("2006-01-02"),
				"time":    e.Data.Time,
				"event":   e.Data.Event,
			}).Infof("Opening %s", e.Data.Link)
			return nil
		})
}
