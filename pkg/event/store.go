package event

import (
	"sync"
)

// Snapshot is an immutable view of the event map. Version changes every time
// the map is replaced, so derived views can be cached per version.
type Snapshot struct {
	Events  Map
	Version uint64
}

// Store holds the current event map. The host replaces it wholesale;
// readers always get a complete snapshot.
type Store struct {
	mu      sync.RWMutex
	events  Map
	version uint64
}

func NewStore(initial Map) *Store {
	if initial == nil {
		initial = Map{}
	}
	return &Store{events: initial, version: 1}
}

// Snapshot returns the current map. Callers must treat it as read-only.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Events: s.events, Version: s.version}
}

// Replace swaps in a new map; previously returned snapshots are left untouched.
func (s *Store) Replace(events Map) uint64 {
	if events == nil {
		events = Map{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = events
	s.version++
	return s.version
}
