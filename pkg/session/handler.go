package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/klokku/calview/internal/rest"
	"github.com/klokku/calview/pkg/event"
	"github.com/klokku/calview/pkg/navigation"
	"github.com/klokku/calview/pkg/widget"
	log "github.com/sirupsen/logrus"
)

const maxRequestBytes = 4 << 10

type Handler struct {
	sessions Service
}

type viewRequest struct {
	View string `json:"view"`
}

type selectRequest struct {
	Date string `json:"date"`
}

type activateRequest struct {
	Date  string `json:"date"`
	Index int    `json:"index"`
}

type activateResponse struct {
	Event EventDTO `json:"event"`
	// Opened is false when the event has no link.
	Opened bool `json:"opened"`
}

func NewHandler(sessions Service) *Handler {
	return &Handler{sessions}
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Create()
	var out widget.Output
	session.Do(func(wg *widget.Widget) { out = wg.Render() })
	rest.WriteJSON(w, http.StatusCreated, OutputToDTO(session.Id(), out))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.withWidget(w, r, func(*widget.Widget) {})
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(mux.Vars(r)["sessionId"]); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Prev(w http.ResponseWriter, r *http.Request) {
	h.withWidget(w, r, func(wg *widget.Widget) {
		wg.Prev()
	})
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.withWidget(w, r, func(wg *widget.Widget) {
		wg.Next()
	})
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	h.withWidget(w, r, func(wg *widget.Widget) {
		wg.GoToToday()
	})
}

func (h *Handler) SetView(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	view, err := navigation.ParseView(req.View)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid view", "'view' must be one of month, week, day")
		return
	}
	h.withWidget(w, r, func(wg *widget.Widget) {
		wg.SetView(view)
	})
}

func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
		return
	}
	h.withWidget(w, r, func(wg *widget.Widget) {
		wg.SelectDate(date)
	})
}

func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	var req activateRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
		return
	}
	session, err := h.sessions.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		writeSessionError(w, err)
		return
	}

	var resp activateResponse
	session.Do(func(wg *widget.Widget) {
		var record event.Record
		record, err = wg.Activate(r.Context(), date, req.Index)
		resp = activateResponse{Event: eventToDTO(record), Opened: record.HasLink()}
	})
	if err != nil {
		if errors.Is(err, widget.ErrEventNotFound) {
			rest.WriteError(w, http.StatusNotFound, "Event not found", err.Error())
			return
		}
		rest.WriteError(w, http.StatusInternalServerError, "Failed to activate event", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, resp)
}

// withWidget applies action to the session's widget and responds with the rendered frame.
func (h *Handler) withWidget(w http.ResponseWriter, r *http.Request, action func(*widget.Widget)) {
	session, err := h.sessions.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		writeSessionError(w, err)
		return
	}

	var out widget.Output
	session.Do(func(wg *widget.Widget) {
		action(wg)
		out = wg.Render()
	})
	log.Tracef("session %s rendered %s view", session.Id(), out.View)
	rest.WriteJSON(w, http.StatusOK, OutputToDTO(session.Id(), out))
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	body, ok := rest.ReadBody(w, r, maxRequestBytes)
	if !ok {
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrSessionNotFound) {
		rest.WriteError(w, http.StatusNotFound, "Session not found", err.Error())
		return
	}
	rest.WriteError(w, http.StatusInternalServerError, "Session lookup failed", err.Error())
}
