package sync

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/slotsync/slotsync/internal/rest"
	"github.com/slotsync/slotsync/pkg/google"
)

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handlerFunc(rr, req)
	return rr
}

func TestHandler_Preview(t *testing.T) {
	handler := NewHandler(NewService(&stubGateway{}, nil, testDefaults()))

	t.Run("returns summary, outcomes, and specs", func(t *testing.T) {
		rr := postJSON(t, handler.Preview, "/api/sync/preview", testRequest())

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp BatchResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Summary.Total)
		assert.Equal(t, 1, resp.Summary.Completed)
		assert.Equal(t, 1, resp.Summary.Skipped)
		assert.True(t, resp.Summary.Success)
		assert.Len(t, resp.Outcomes, 2)
		assert.Len(t, resp.Specs, 2)
	})

	t.Run("rejects a non-JSON body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/sync/preview", strings.NewReader("not json"))
		rr := httptest.NewRecorder()
		handler.Preview(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var errResp rest.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "Invalid request body", errResp.Error)
	})

	t.Run("rejects malformed semester dates", func(t *testing.T) {
		req := testRequest()
		req.Semester.EndDate = "soon"
		rr := postJSON(t, handler.Preview, "/api/sync/preview", req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandler_SyncToGoogle(t *testing.T) {
	t.Run("submits and reports outcomes without specs", func(t *testing.T) {
		inserter := &stubInserter{}
		handler := NewHandler(NewService(&stubGateway{inserter: inserter}, nil, testDefaults()))

		rr := postJSON(t, handler.SyncToGoogle, "/api/sync/google", testRequest())

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp BatchResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Summary.Success)
		assert.Empty(t, resp.Specs)
		assert.Len(t, inserter.inserted, 2)
	})

	t.Run("returns 403 when Google is not connected", func(t *testing.T) {
		handler := NewHandler(NewService(&stubGateway{err: google.ErrUnauthenticated}, nil, testDefaults()))

		rr := postJSON(t, handler.SyncToGoogle, "/api/sync/google", testRequest())
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestHandler_ExportICS(t *testing.T) {
	handler := NewHandler(NewService(&stubGateway{}, nil, testDefaults()))

	rr := postJSON(t, handler.ExportICS, "/api/sync/ics", testRequest())

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/calendar", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "timetable.ics")

	body := rr.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "SUMMARY:CSE1001 [A1]")
	assert.Contains(t, body, "RRULE:")
	assert.Contains(t, body, "X-WR-CALNAME:Academic Timetable")
}
