package app

import (
	"github.com/gorilla/mux"
	"github.com/slotsync/slotsync/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// User management
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")

	// Timetable upload/preview
	r.HandleFunc("/api/timetable/csv", deps.TimetableHandler.UploadCSV).Methods("POST")

	// Sync
	r.HandleFunc("/api/sync/preview", deps.SyncHandler.Preview).Methods("POST")
	r.HandleFunc("/api/sync/google", deps.SyncHandler.SyncToGoogle).Methods("POST")
	r.HandleFunc("/api/sync/ics", deps.SyncHandler.ExportICS).Methods("POST")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth", deps.GoogleAuth.IsAuthenticated).Methods("GET")
	r.HandleFunc("/api/integrations/google/calendars", deps.GoogleHandler.ListCalendars).Methods("GET")
}
