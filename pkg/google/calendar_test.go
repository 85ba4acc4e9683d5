package google

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotsync/slotsync/pkg/schedule"
	"github.com/slotsync/slotsync/pkg/slot"
)

func TestEventFromSpec(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	spec := schedule.EventSpec{
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
		ReminderMinutes: []int{10, 5},
	}

	event := eventFromSpec(spec)

	t.Run("identity fields", func(t *testing.T) {
		assert.Equal(t, "CSE1001 [A1]", event.Summary)
		assert.Equal(t, "AB1-101", event.Location)
		assert.Equal(t, "Prof. Rao", event.Description)
	})

	t.Run("start and end carry the named zone", func(t *testing.T) {
		assert.Equal(t, "2025-01-28T09:00:00+05:30", event.Start.DateTime)
		assert.Equal(t, "2025-01-28T09:50:00+05:30", event.End.DateTime)
		assert.Equal(t, "Asia/Kolkata", event.Start.TimeZone)
		assert.Equal(t, "Asia/Kolkata", event.End.TimeZone)
	})

	t.Run("recurrence lines include rule and exdates", func(t *testing.T) {
		require.Len(t, event.Recurrence, 2)
		assert.Equal(t, "RRULE:FREQ=WEEKLY;BYDAY=TU;UNTIL=20250515T182959Z", event.Recurrence[0])
		assert.Equal(t, "EXDATE;TZID=Asia/Kolkata:20250225T090000", event.Recurrence[1])
	})

	t.Run("reminders become popup overrides", func(t *testing.T) {
		require.NotNil(t, event.Reminders)
		assert.False(t, event.Reminders.UseDefault)
		assert.Contains(t, event.Reminders.ForceSendFields, "UseDefault")

		require.Len(t, event.Reminders.Overrides, 2)
		assert.Equal(t, "popup", event.Reminders.Overrides[0].Method)
		assert.Equal(t, int64(10), event.Reminders.Overrides[0].Minutes)
		assert.Equal(t, int64(5), event.Reminders.Overrides[1].Minutes)
	})
}
