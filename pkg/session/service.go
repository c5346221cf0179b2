package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klokku/calview/internal/event_bus"
	"github.com/klokku/calview/internal/utils"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/projection"
	"github.com/klokku/calview/pkg/widget"
	log "github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

type Service interface {
	Create() *Session
	Get(id string) (*Session, error)
	Delete(id string) error
	Count() int
}

// Limits bounds how many sessions are kept and for how long.
// Zero values disable the corresponding limit.
type Limits struct {
	IdleTTL time.Duration
	Max     int
}

// Session serializes access to one widget.
type Session struct {
	mu     sync.Mutex
	widget *widget.Widget
	// lastUsed is guarded by ServiceImpl.mu.
	lastUsed time.Time
}

func (s *Session) Id() string {
	return s.widget.Id
}

// Do runs fn with exclusive access to the session's widget.
func (s *Session) Do(fn func(w *widget.Widget)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.widget)
}

type ServiceImpl struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	clock     utils.Clock
	events    *event.Store
	projector projection.Projector
	eventBus  *event_bus.EventBus
	limits    Limits
}

func NewService(clock utils.Clock, events *event.Store, projector projection.Projector, eventBus *event_bus.EventBus, limits Limits) *ServiceImpl {
	return &ServiceImpl{
		sessions:  make(map[string]*Session),
		clock:     clock,
		events:    events,
		projector: projector,
		eventBus:  eventBus,
		limits:    limits,
	}
}

// Create starts a new calendar instance at today's date in month view.
// Idle sessions are dropped first; at the cap the least recently used one goes.
func (s *ServiceImpl) Create() *Session {
	id := uuid.NewString()
	now := s.clock.Now()
	session := &Session{
		widget:   widget.New(id, s.clock, s.events, s.projector, s.eventBus),
		lastUsed: now,
	}

	s.mu.Lock()
	s.evictIdle(now)
	if s.limits.Max > 0 && len(s.sessions) >= s.limits.Max {
		s.evictOldest()
	}
	s.sessions[id] = session
	s.mu.Unlock()

	log.Debugf("created calendar session %s", id)
	return session
}

// Get returns the session and marks it as used. Sessions idle for longer
// than the TTL are treated as gone.
func (s *ServiceImpl) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := s.clock.Now()
	if s.expired(session, now) {
		delete(s.sessions, id)
		log.Debugf("calendar session %s expired", id)
		return nil, ErrSessionNotFound
	}
	session.lastUsed = now
	return session, nil
}

func (s *ServiceImpl) expired(session *Session, now time.Time) bool {
	return s.limits.IdleTTL > 0 && now.Sub(session.lastUsed) > s.limits.IdleTTL
}

// evictIdle must be called with s.mu held.
func (s *ServiceImpl) evictIdle(now time.Time) {
	for id, session := range s.sessions {
		if s.expired(session, now) {
			delete(s.sessions, id)
			log.Debugf("calendar session %s expired", id)
		}
	}
}

// evictOldest must be called with s.mu held.
func (s *ServiceImpl) evictOldest() {
	var oldestId string
	var oldest time.Time
	for id, session := range s.sessions {
		if oldestId == "" || session.lastUsed.Before(oldest) {
			oldestId, oldest = id, session.lastUsed
		}
	}
	if oldestId != "" {
		delete(s.sessions, oldestId)
		log.Infof("session limit %d reached, evicted calendar session %s", s.limits.Max, oldestId)
	}
}

func (s *ServiceImpl) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	log.Debugf("deleted calendar session %s", id)
	return nil
}

func (s *ServiceImpl) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
