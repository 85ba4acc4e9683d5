package timetable

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/slotsync/slotsync/internal/rest"
)

// Handler parses uploaded timetables so the UI can preview and correct rows
// before a sync is triggered. Rows are never persisted; the parsed result is
// simply echoed back.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// UploadCSV accepts a CSV timetable in the request body and returns the
// parsed rows as JSON.
func (h *Handler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rows, err := ParseCSV(r.Body)
	if err != nil {
		log.Warnf("failed to parse uploaded timetable: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid timetable CSV",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if rows == nil {
		rows = []Row{}
	}
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
