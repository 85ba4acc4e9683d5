package sync

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/slotsync/slotsync/internal/rest"
	"github.com/slotsync/slotsync/pkg/google"
	"github.com/slotsync/slotsync/pkg/ics"
	"github.com/slotsync/slotsync/pkg/schedule"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Preview runs the engine only and returns the specs that a sync would
// submit, together with the per-row outcomes.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	result, catalogWarnings, err := h.service.Preview(r.Context(), req)
	if err != nil {
		writeBadRequest(w, "Invalid sync request", err)
		return
	}

	writeResult(w, BatchResponse{
		Summary:         result.Summary(),
		Outcomes:        result.Outcomes,
		Specs:           result.Specs,
		CatalogWarnings: catalogWarnings,
	})
}

// SyncToGoogle runs the engine and submits the emitted specs to the user's
// Google calendar.
func (h *Handler) SyncToGoogle(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	result, catalogWarnings, err := h.service.SyncToGoogle(r.Context(), req)
	if err != nil {
		if errors.Is(err, google.ErrUnauthenticated) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		writeBadRequest(w, "Sync failed", err)
		return
	}

	writeResult(w, BatchResponse{
		Summary:         result.Summary(),
		Outcomes:        result.Outcomes,
		CatalogWarnings: catalogWarnings,
	})
}

// ExportICS runs the engine and renders the emitted specs as an iCalendar
// document instead of submitting them anywhere.
func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	result, _, err := h.service.Preview(r.Context(), req)
	if err != nil {
		writeBadRequest(w, "Invalid sync request", err)
		return
	}

	name := req.CalendarName
	if name == "" {
		name = h.service.defaults.CalendarName
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="timetable.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(ics.Render(name, result.Specs))); err != nil {
		log.Errorf("failed to write ICS response: %v", err)
	}
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (SyncRequest, bool) {
	var req SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body", err)
		return SyncRequest{}, false
	}
	return req, true
}

func writeBadRequest(w http.ResponseWriter, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   message,
		Details: err.Error(),
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func writeResult(w http.ResponseWriter, response BatchResponse) {
	if response.Outcomes == nil {
		response.Outcomes = []schedule.RowOutcome{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
