package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/klokku/calview/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calendar sessions
	r.HandleFunc("/api/session", deps.SessionHandler.CreateSession).Methods("POST")
	r.HandleFunc("/api/session/{sessionId}", deps.SessionHandler.GetSession).Methods("GET")
	r.HandleFunc("/api/session/{sessionId}", deps.SessionHandler.DeleteSession).Methods("DELETE")
	r.HandleFunc("/api/session/{sessionId}/prev", deps.SessionHandler.Prev).Methods("POST")
	r.HandleFunc("/api/session/{sessionId}/next", deps.SessionHandler.Next).Methods("POST")
	r.HandleFunc("/api/session/{sessionId}/today", deps.SessionHandler.Today).Methods("POST")
	r.HandleFunc("/api/session/{sessionId}/view", deps.SessionHandler.SetView).Methods("PUT")
	r.HandleFunc("/api/session/{sessionId}/selected", deps.SessionHandler.SelectDate).Methods("PUT")
	r.HandleFunc("/api/session/{sessionId}/activate", deps.SessionHandler.Activate).Methods("POST")

	// Event map
	r.HandleFunc("/api/events", deps.EventHandler.GetEvents).Methods("GET")
	r.HandleFunc("/api/events", deps.EventHandler.ReplaceEvents).Methods("PUT")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
}
