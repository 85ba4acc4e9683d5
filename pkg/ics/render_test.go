package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotsync/slotsync/pkg/schedule"
	"github.com/slotsync/slotsync/pkg/slot"
)

func testSpecs(t *testing.T) []schedule.EventSpec {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	return []schedule.EventSpec{{
		Summary:        "CSE1001 [A1]",
		Location:       "AB1-101",
		Description:    "Prof. Rao",
		Start:          time.Date(2025, 1, 28, 9, 0, 0, 0, loc),
		End:            time.Date(2025, 1, 28, 9, 50, 0, 0, loc),
		TimeZone:       "Asia/Kolkata",
		Day:            slot.Tuesday,
		RecurrenceRule: "FREQ=WEEKLY;BYDAY=TU;UNTIL=20250515T182959Z",
		ExclusionDates: []time.Time{
			time.Date(2025, 2, 25, 9, 0, 0, 0, loc),
		},
	}}
}

func TestRender(t *testing.T) {
	t.Run("renders a complete document", func(t *testing.T) {
		doc := Render("Academic Timetable", testSpecs(t))

		assert.Contains(t, doc, "BEGIN:VCALENDAR")
		assert.Contains(t, doc, "END:VCALENDAR")
		assert.Contains(t, doc, "X-WR-CALNAME:Academic Timetable")
		assert.Contains(t, doc, "BEGIN:VEVENT")
		assert.Contains(t, doc, "SUMMARY:CSE1001 [A1]")
		assert.Contains(t, doc, "LOCATION:AB1-101")
		assert.Contains(t, doc, "DESCRIPTION:Prof. Rao")
		assert.Contains(t, doc, "RRULE:FREQ=WEEKLY;BYDAY=TU;UNTIL=20250515T182959Z")
		// 09:00 IST is 03:30 UTC.
		assert.Contains(t, doc, "EXDATE:20250225T033000Z")
	})

	t.Run("empty batch still renders a valid calendar", func(t *testing.T) {
		doc := Render("Academic Timetable", nil)

		assert.Contains(t, doc, "BEGIN:VCALENDAR")
		assert.NotContains(t, doc, "BEGIN:VEVENT")
	})

	t.Run("output is deterministic", func(t *testing.T) {
		specs := testSpecs(t)
		assert.Equal(t, Render("Academic Timetable", specs), Render("Academic Timetable", specs))
	})
}
