package projection

import (
	"time"

	"github.com/klokku/calview/pkg/calendar_math"
	"github.com/klokku/calview/pkg/datekey"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/navigation"
	log "github.com/sirupsen/logrus"
)

// Memo caches the calendar math per anchor date and the last projected model
// per (state, today, events version). It is not safe for concurrent use.
type Memo struct {
	projector Projector

	derived    calendar_math.Derived
	hasDerived bool

	key      memoKey
	model    Model
	title    string
	hasModel bool

	// DerivedComputations and ModelComputations count cache misses.
	DerivedComputations int
	ModelComputations   int
}

type memoKey struct {
	state   navigation.State
	today   string
	version uint64
}

func (k memoKey) equal(other memoKey) bool {
	return k.state.View == other.state.View &&
		k.state.AnchorDate.Equal(other.state.AnchorDate) &&
		k.state.SelectedDate.Equal(other.state.SelectedDate) &&
		k.today == other.today &&
		k.version == other.version
}

func NewMemo(projector Projector) *Memo {
	return &Memo{projector: projector}
}

// Derived returns the calendar math for anchor, recomputing it only when the anchor changed.
func (m *Memo) Derived(anchor time.Time) calendar_math.Derived {
	if m.hasDerived && m.derived.Anchor.Equal(anchor) {
		return m.derived
	}
	m.derived = calendar_math.Compute(anchor)
	m.hasDerived = true
	m.DerivedComputations++
	return m.derived
}

// Project returns the model and title for state, reusing the previous result when
// none of the inputs changed.
func (m *Memo) Project(state navigation.State, today time.Time, snapshot event.Snapshot) (Model, string) {
	key := memoKey{state: state, today: datekey.ToKey(today), version: snapshot.Version}
	if m.hasModel && m.key.equal(key) {
		return m.model, m.title
	}
	derived := m.Derived(state.AnchorDate)
	m.model, m.title = m.projector.Project(state, derived, today, snapshot.Events)
	m.key = key
	m.hasModel = true
	m.ModelComputations++
	log.Tracef("projected %s view %q", state.View, m.title)
	return m.model, m.title
}
