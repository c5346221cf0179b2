package event

import (
	"bytes"
	"net/http"

	"github.com/klokku/calview/internal/rest"
	log "github.com/sirupsen/logrus"
)

// MaxEventsBodyBytes caps the size of an uploaded event map.
const MaxEventsBodyBytes = 8 << 20

type Handler struct {
	store *Store
}

type replaceResponse struct {
	Version uint64 `json:"version"`
	Dates   int    `json:"dates"`
	Events  int    `json:"events"`
}

func NewHandler(store *Store) *Handler {
	return &Handler{store}
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, h.store.Snapshot().Events)
}

// ReplaceEvents swaps the whole event map for the request body (JSON or YAML).
func (h *Handler) ReplaceEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := rest.ReadBody(w, r, MaxEventsBodyBytes)
	if !ok {
		return
	}
	events, err := Decode(bytes.NewReader(body))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid events", err.Error())
		return
	}
	version := h.store.Replace(events)
	log.Infof("Replaced event map: %d events on %d dates (version %d)", events.Count(), len(events), version)
	rest.WriteJSON(w, http.StatusOK, replaceResponse{Version: version, Dates: len(events), Events: events.Count()})
}
